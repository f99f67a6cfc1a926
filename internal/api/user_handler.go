// Package api provides HTTP handlers for the API.
package api

import (
	"log/slog"
	"net/http"

	"github.com/jwhitley/storefront-api/internal/api/shared"
	"github.com/jwhitley/storefront-api/internal/platform/logger"
	"github.com/jwhitley/storefront-api/internal/store"
)

// UserHandler handles user-related HTTP requests.
type UserHandler struct {
	users  store.UserStore
	logger *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users store.UserStore, log *slog.Logger) *UserHandler {
	if users == nil {
		panic("users store cannot be nil for UserHandler")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserHandler{
		users:  users,
		logger: log.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /api/v1/users requests.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to fetch users", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// Get handles GET /api/v1/users/{id} requests.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.users.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Create handles POST /api/v1/users requests.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: missing required fields")
		return
	}

	user, err := h.users.Create(r.Context(), req.toParams())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to create user", err)
		return
	}

	log.Debug("user created", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// Update handles PUT /api/v1/users/{id} requests.
// All body fields are optional; absent fields retain their stored values.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := h.users.Update(r.Context(), id, req.toParams())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// Delete handles DELETE /api/v1/users/{id} requests.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
