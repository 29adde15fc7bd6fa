package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ecommerce-api/internal/api/shared"
	"github.com/phrazzld/ecommerce-api/internal/service"
	"github.com/phrazzld/ecommerce-api/internal/store"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService service.ProductService
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService service.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProductHandler")
	}
	return &ProductHandler{
		productService: productService,
		logger:         logger.With(slog.String("component", "product_handler")),
	}
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.productService.CreateProduct(r.Context(), payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, productToResponse(product))
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productService.ListProducts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productsToResponse(products))
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", store.ErrProductNotFound)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// UpdateProduct handles PUT /products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", store.ErrProductNotFound)
	if !ok {
		return
	}

	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		if _, getErr := h.productService.GetProduct(r.Context(), id); getErr != nil {
			HandleAPIError(w, r, getErr)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	product, err := h.productService.UpdateProduct(r.Context(), id, payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productToResponse(product))
}

// DeleteProduct handles DELETE /products/{id}. The product is dropped from
// every order that carried it.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", store.ErrProductNotFound)
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, fmt.Sprintf("Product %d deleted successfully", id))
}
