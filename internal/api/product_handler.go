package api

import (
	"log/slog"
	"net/http"

	"github.com/jwhitley/storefront-api/internal/api/shared"
	"github.com/jwhitley/storefront-api/internal/platform/logger"
	"github.com/jwhitley/storefront-api/internal/store"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(products store.ProductStore, log *slog.Logger) *ProductHandler {
	if products == nil {
		panic("products store cannot be nil for ProductHandler")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ProductHandler{
		products: products,
		logger:   log.With(slog.String("component", "product_handler")),
	}
}

// List handles GET /api/v1/products requests.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to fetch products", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productsToResponse(products))
}

// Get handles GET /api/v1/products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	product, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// Create handles POST /api/v1/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: missing required fields")
		return
	}

	product, err := h.products.Create(r.Context(), req.toParams())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), "Failed to create product", err)
		return
	}

	log.Debug("product created", slog.Int64("product_id", product.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, productToResponse(product))
}

// Update handles PUT /api/v1/products/{id} requests.
// All body fields are optional; absent fields retain their stored values.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := h.products.Update(r.Context(), id, req.toParams())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// Delete handles DELETE /api/v1/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
