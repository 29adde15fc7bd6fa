package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// ProductStore is a mock of store.ProductStore for use with testify/mock
type ProductStore struct {
	mock.Mock
}

var _ store.ProductStore = (*ProductStore)(nil)

// Create is a mock implementation of store.ProductStore.Create
func (m *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// GetByID is a mock implementation of store.ProductStore.GetByID
func (m *ProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

// List is a mock implementation of store.ProductStore.List
func (m *ProductStore) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if products, ok := args.Get(0).([]domain.Product); ok {
		return products, args.Error(1)
	}
	return nil, args.Error(1)
}

// Update is a mock implementation of store.ProductStore.Update
func (m *ProductStore) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	args := m.Called(ctx, id, patch)
	if product, ok := args.Get(0).(*domain.Product); ok {
		return product, args.Error(1)
	}
	return nil, args.Error(1)
}

// Delete is a mock implementation of store.ProductStore.Delete
func (m *ProductStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTx returns the mock itself.
func (m *ProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return m
}
