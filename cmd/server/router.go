package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/ecommerce-api/internal/api"
	apiMiddleware "github.com/phrazzld/ecommerce-api/internal/api/middleware"
	"github.com/phrazzld/ecommerce-api/internal/api/shared"
)

// setupRouter creates the router with middleware and every route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithMessage(w, r, http.StatusNotFound, "Resource not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithMessage(w, r, http.StatusMethodNotAllowed, "Method not allowed")
	})

	userHandler := api.NewUserHandler(app.userService, app.logger)
	productHandler := api.NewProductHandler(app.productService, app.logger)
	orderHandler := api.NewOrderHandler(app.orderService, app.logger)
	healthHandler := api.NewHealthHandler(app.db, 0, app.logger)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{id}", userHandler.GetUser)
		r.Put("/{id}", userHandler.UpdateUser)
		r.Delete("/{id}", userHandler.DeleteUser)
		r.Get("/{id}/orders", userHandler.ListUserOrders)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", productHandler.CreateProduct)
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Post("/", orderHandler.CreateOrder)
		r.Get("/", orderHandler.ListOrders)
		r.Get("/{id}", orderHandler.GetOrder)
		r.Put("/{id}", orderHandler.UpdateOrder)
		r.Delete("/{id}", orderHandler.DeleteOrder)
		r.Get("/{id}/products", orderHandler.ListOrderProducts)
		r.Post("/{id}/products", orderHandler.AddProductToOrder)
		r.Delete("/{id}/products/{productID}", orderHandler.RemoveProductFromOrder)
	})

	r.Get("/health", healthHandler.Check)

	return r
}
