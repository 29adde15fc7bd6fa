package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/ecommerce-api/internal/api"
	"github.com/phrazzld/ecommerce-api/internal/mocks"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestRouter mounts the handlers on the same paths the server uses.
// Nil services are replaced with empty mocks.
func newTestRouter(
	users *mocks.MockUserService,
	products *mocks.MockProductService,
	orders *mocks.MockOrderService,
) http.Handler {
	if users == nil {
		users = &mocks.MockUserService{}
	}
	if products == nil {
		products = &mocks.MockProductService{}
	}
	if orders == nil {
		orders = &mocks.MockOrderService{}
	}

	uh := api.NewUserHandler(users, testLogger)
	ph := api.NewProductHandler(products, testLogger)
	oh := api.NewOrderHandler(orders, testLogger)

	r := chi.NewRouter()
	r.Route("/users", func(r chi.Router) {
		r.Post("/", uh.CreateUser)
		r.Get("/", uh.ListUsers)
		r.Get("/{id}", uh.GetUser)
		r.Put("/{id}", uh.UpdateUser)
		r.Delete("/{id}", uh.DeleteUser)
		r.Get("/{id}/orders", uh.ListUserOrders)
	})
	r.Route("/products", func(r chi.Router) {
		r.Post("/", ph.CreateProduct)
		r.Get("/", ph.ListProducts)
		r.Get("/{id}", ph.GetProduct)
		r.Put("/{id}", ph.UpdateProduct)
		r.Delete("/{id}", ph.DeleteProduct)
	})
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", oh.CreateOrder)
		r.Get("/", oh.ListOrders)
		r.Get("/{id}", oh.GetOrder)
		r.Put("/{id}", oh.UpdateOrder)
		r.Delete("/{id}", oh.DeleteOrder)
		r.Get("/{id}/products", oh.ListOrderProducts)
		r.Post("/{id}/products", oh.AddProductToOrder)
		r.Delete("/{id}/products/{productID}", oh.RemoveProductFromOrder)
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func ptr[T any](v T) *T {
	return &v
}
