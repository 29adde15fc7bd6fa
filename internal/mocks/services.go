package mocks

import (
	"context"

	"github.com/phrazzld/ecommerce-api/internal/domain"
)

// MockUserService implements service.UserService for testing.
// Unset functions return DefaultError.
type MockUserService struct {
	CreateUserFn     func(ctx context.Context, payload domain.Payload) (*domain.User, error)
	GetUserFn        func(ctx context.Context, userID int64) (*domain.User, error)
	ListUsersFn      func(ctx context.Context) ([]domain.User, error)
	UpdateUserFn     func(ctx context.Context, userID int64, payload domain.Payload) (*domain.User, error)
	DeleteUserFn     func(ctx context.Context, userID int64) error
	ListUserOrdersFn func(ctx context.Context, userID int64) ([]domain.Order, error)

	DefaultError error
}

func (m *MockUserService) CreateUser(ctx context.Context, payload domain.Payload) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, payload)
	}
	return nil, m.DefaultError
}

func (m *MockUserService) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, userID)
	}
	return nil, m.DefaultError
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, m.DefaultError
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID int64, payload domain.Payload) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, userID, payload)
	}
	return nil, m.DefaultError
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID int64) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	return m.DefaultError
}

func (m *MockUserService) ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	if m.ListUserOrdersFn != nil {
		return m.ListUserOrdersFn(ctx, userID)
	}
	return nil, m.DefaultError
}

// MockProductService implements service.ProductService for testing.
type MockProductService struct {
	CreateProductFn func(ctx context.Context, payload domain.Payload) (*domain.Product, error)
	GetProductFn    func(ctx context.Context, productID int64) (*domain.Product, error)
	ListProductsFn  func(ctx context.Context) ([]domain.Product, error)
	UpdateProductFn func(ctx context.Context, productID int64, payload domain.Payload) (*domain.Product, error)
	DeleteProductFn func(ctx context.Context, productID int64) error

	DefaultError error
}

func (m *MockProductService) CreateProduct(ctx context.Context, payload domain.Payload) (*domain.Product, error) {
	if m.CreateProductFn != nil {
		return m.CreateProductFn(ctx, payload)
	}
	return nil, m.DefaultError
}

func (m *MockProductService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	if m.GetProductFn != nil {
		return m.GetProductFn(ctx, productID)
	}
	return nil, m.DefaultError
}

func (m *MockProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListProductsFn != nil {
		return m.ListProductsFn(ctx)
	}
	return nil, m.DefaultError
}

func (m *MockProductService) UpdateProduct(
	ctx context.Context,
	productID int64,
	payload domain.Payload,
) (*domain.Product, error) {
	if m.UpdateProductFn != nil {
		return m.UpdateProductFn(ctx, productID, payload)
	}
	return nil, m.DefaultError
}

func (m *MockProductService) DeleteProduct(ctx context.Context, productID int64) error {
	if m.DeleteProductFn != nil {
		return m.DeleteProductFn(ctx, productID)
	}
	return m.DefaultError
}

// MockOrderService implements service.OrderService for testing.
type MockOrderService struct {
	CreateOrderFn            func(ctx context.Context, payload domain.Payload) (*domain.Order, error)
	GetOrderFn               func(ctx context.Context, orderID int64) (*domain.Order, error)
	ListOrdersFn             func(ctx context.Context) ([]domain.Order, error)
	UpdateOrderFn            func(ctx context.Context, orderID int64, payload domain.Payload) (*domain.Order, error)
	DeleteOrderFn            func(ctx context.Context, orderID int64) error
	ListOrderProductsFn      func(ctx context.Context, orderID int64) ([]domain.Product, error)
	AddProductToOrderFn      func(ctx context.Context, orderID int64, payload domain.Payload) (int64, error)
	RemoveProductFromOrderFn func(ctx context.Context, orderID, productID int64) error

	DefaultError error
}

func (m *MockOrderService) CreateOrder(ctx context.Context, payload domain.Payload) (*domain.Order, error) {
	if m.CreateOrderFn != nil {
		return m.CreateOrderFn(ctx, payload)
	}
	return nil, m.DefaultError
}

func (m *MockOrderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	if m.GetOrderFn != nil {
		return m.GetOrderFn(ctx, orderID)
	}
	return nil, m.DefaultError
}

func (m *MockOrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if m.ListOrdersFn != nil {
		return m.ListOrdersFn(ctx)
	}
	return nil, m.DefaultError
}

func (m *MockOrderService) UpdateOrder(
	ctx context.Context,
	orderID int64,
	payload domain.Payload,
) (*domain.Order, error) {
	if m.UpdateOrderFn != nil {
		return m.UpdateOrderFn(ctx, orderID, payload)
	}
	return nil, m.DefaultError
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if m.DeleteOrderFn != nil {
		return m.DeleteOrderFn(ctx, orderID)
	}
	return m.DefaultError
}

func (m *MockOrderService) ListOrderProducts(ctx context.Context, orderID int64) ([]domain.Product, error) {
	if m.ListOrderProductsFn != nil {
		return m.ListOrderProductsFn(ctx, orderID)
	}
	return nil, m.DefaultError
}

func (m *MockOrderService) AddProductToOrder(ctx context.Context, orderID int64, payload domain.Payload) (int64, error) {
	if m.AddProductToOrderFn != nil {
		return m.AddProductToOrderFn(ctx, orderID, payload)
	}
	return 0, m.DefaultError
}

func (m *MockOrderService) RemoveProductFromOrder(ctx context.Context, orderID, productID int64) error {
	if m.RemoveProductFromOrderFn != nil {
		return m.RemoveProductFromOrderFn(ctx, orderID, productID)
	}
	return m.DefaultError
}
