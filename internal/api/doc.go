// Package api contains the HTTP handlers, request/response models, and
// error translation for the service's REST surface.
package api
