package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// OrderStore is a mock of store.OrderStore for use with testify/mock
type OrderStore struct {
	mock.Mock
}

var _ store.OrderStore = (*OrderStore)(nil)

// Create is a mock implementation of store.OrderStore.Create
func (m *OrderStore) Create(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// GetByID is a mock implementation of store.OrderStore.GetByID
func (m *OrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *OrderStore) orders(args mock.Arguments) ([]domain.Order, error) {
	if orders, ok := args.Get(0).([]domain.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.OrderStore.List
func (m *OrderStore) List(ctx context.Context) ([]domain.Order, error) {
	return m.orders(m.Called(ctx))
}

// ListByUser is a mock implementation of store.OrderStore.ListByUser
func (m *OrderStore) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return m.orders(m.Called(ctx, userID))
}

// CountByUser is a mock implementation of store.OrderStore.CountByUser
func (m *OrderStore) CountByUser(ctx context.Context, userID int64) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// Update is a mock implementation of store.OrderStore.Update
func (m *OrderStore) Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error) {
	args := m.Called(ctx, id, patch)
	if order, ok := args.Get(0).(*domain.Order); ok {
		return order, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.OrderStore.Delete
func (m *OrderStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ListProducts is a mock implementation of store.OrderStore.ListProducts
func (m *OrderStore) ListProducts(ctx context.Context, orderID int64) ([]domain.Product, error) {
	args := m.Called(ctx, orderID)
	if products, ok := args.Get(0).([]domain.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

// HasProduct is a mock implementation of store.OrderStore.HasProduct
func (m *OrderStore) HasProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	args := m.Called(ctx, orderID, productID)
	return args.Bool(0), args.Error(1)
}

// AddProduct is a mock implementation of store.OrderStore.AddProduct
func (m *OrderStore) AddProduct(ctx context.Context, orderID, productID int64) error {
	args := m.Called(ctx, orderID, productID)
	return args.Error(0)
}

// RemoveProduct is a mock implementation of store.OrderStore.RemoveProduct
func (m *OrderStore) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	args := m.Called(ctx, orderID, productID)
	return args.Error(0)
}

// WithTx returns the mock itself.
func (m *OrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return m
}
