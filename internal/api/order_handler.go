package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ecommerce-api/internal/api/shared"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/phrazzld/ecommerce-api/internal/service"
	"github.com/phrazzld/ecommerce-api/internal/store"
)

// OrderHandler handles order requests, including the products on an order.
type OrderHandler struct {
	orderService service.OrderService
	logger       *slog.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *slog.Logger) *OrderHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for OrderHandler")
	}
	return &OrderHandler{
		orderService: orderService,
		logger:       logger.With(slog.String("component", "order_handler")),
	}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), payload)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, err, shared.WithErrorKey())
			return
		}
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, orderToResponse(order))
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListOrders(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ordersToResponse(orders))
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", store.ErrOrderNotFound)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", store.ErrOrderNotFound)
	if !ok {
		return
	}

	payload, err := shared.DecodePayload(w, r)
	if err != nil {
		if _, getErr := h.orderService.GetOrder(r.Context(), id); getErr != nil {
			HandleAPIError(w, r, getErr)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), id, payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// DeleteOrder handles DELETE /orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", store.ErrOrderNotFound)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, fmt.Sprintf("Order %d deleted successfully", id))
}

// ListOrderProducts handles GET /orders/{id}/products
func (h *OrderHandler) ListOrderProducts(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", store.ErrOrderNotFound)
	if !ok {
		return
	}

	products, err := h.orderService.ListOrderProducts(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, productsToResponse(products))
}

// AddProductToOrder handles POST /orders/{id}/products
func (h *OrderHandler) AddProductToOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "id", store.ErrOrderNotFound)
	if !ok {
		return
	}

	payload, err := shared.DecodeLinkPayload(w, r)
	if err != nil {
		if _, getErr := h.orderService.GetOrder(r.Context(), orderID); getErr != nil {
			HandleAPIError(w, r, getErr)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	productID, err := h.orderService.AddProductToOrder(r.Context(), orderID, payload)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("product linked to order",
		slog.Int64("order_id", orderID),
		slog.Int64("product_id", productID))
	shared.RespondWithMessage(w, r, http.StatusOK,
		fmt.Sprintf("Product %d added to order %d", productID, orderID))
}

// RemoveProductFromOrder handles DELETE /orders/{id}/products/{productID}
func (h *OrderHandler) RemoveProductFromOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathID(w, r, "id", store.ErrOrderNotFound)
	if !ok {
		return
	}
	productID, ok := pathID(w, r, "productID", store.ErrProductNotFound)
	if !ok {
		return
	}

	if err := h.orderService.RemoveProductFromOrder(r.Context(), orderID, productID); err != nil {
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK,
		fmt.Sprintf("Product %d removed from order %d", productID, orderID))
}
