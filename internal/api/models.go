package api

import (
	"github.com/jwhitley/storefront-api/internal/domain"
)

// Request/response structures and their explicit wire mappings. The wire
// contract (field names, optionality) lives here, not in struct tags on the
// domain types alone, so handlers never serialize a domain record directly
// without going through a mapping function.

// CreateUserRequest defines the payload for creating a user.
// All fields are required but no field-content validation is applied:
// the Optional wrapper is zero only when the key is absent, so the
// required tag checks presence, not content. An empty name or email is
// accepted.
type CreateUserRequest struct {
	Name  domain.Optional[string] `json:"name"  validate:"required"`
	Email domain.Optional[string] `json:"email" validate:"required"`
}

// UpdateUserRequest defines the payload for a partial user update.
// Absent fields leave the stored value unchanged.
type UpdateUserRequest struct {
	Name  domain.Optional[string] `json:"name"`
	Email domain.Optional[string] `json:"email"`
}

// UserResponse represents the response data for a user.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateProductRequest defines the payload for creating a product.
// Required-by-presence, same as CreateUserRequest; a zero price is valid.
type CreateProductRequest struct {
	Name        domain.Optional[string]  `json:"name"        validate:"required"`
	Description domain.Optional[string]  `json:"description" validate:"required"`
	Price       domain.Optional[float64] `json:"price"       validate:"required"`
}

// UpdateProductRequest defines the payload for a partial product update.
type UpdateProductRequest struct {
	Name        domain.Optional[string]  `json:"name"`
	Description domain.Optional[string]  `json:"description"`
	Price       domain.Optional[float64] `json:"price"`
}

// ProductResponse represents the response data for a product.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// HealthResponse represents the response data for the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func (req CreateUserRequest) toParams() domain.CreateUser {
	return domain.CreateUser{
		Name:  req.Name.Value,
		Email: req.Email.Value,
	}
}

func (req UpdateUserRequest) toParams() domain.UpdateUser {
	return domain.UpdateUser{
		Name:  req.Name,
		Email: req.Email,
	}
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out
}

func (req CreateProductRequest) toParams() domain.CreateProduct {
	return domain.CreateProduct{
		Name:        req.Name.Value,
		Description: req.Description.Value,
		Price:       req.Price.Value,
	}
}

func (req UpdateProductRequest) toParams() domain.UpdateProduct {
	return domain.UpdateProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
}

func productToResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

func productsToResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return out
}
