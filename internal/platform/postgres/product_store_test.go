package postgres_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/platform/postgres"
	"github.com/phrazzld/ecommerce-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRowColumns = []string{"id", "name", "price"}

func TestPostgresProductStore_CreateAndList(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProductStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id")).
		WithArgs("Widget", 9.99).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	p := &domain.Product{Name: "Widget", Price: 9.99}
	require.NoError(t, s.Create(context.Background(), p))
	assert.Equal(t, int64(3), p.ID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(productRowColumns).
			AddRow(int64(1), "Gadget", 1.5).
			AddRow(int64(3), "Widget", 9.99))

	products, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Gadget", products[0].Name)
	assert.Equal(t, int64(3), products[1].ID)
}

func TestPostgresProductStore_CreateConstraintViolation(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProductStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products")).
		WillReturnError(newPgError("23502"))

	err := s.Create(context.Background(), &domain.Product{Name: "Widget", Price: -1})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestPostgresProductStore_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProductStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id = $1")).
		WithArgs(int64(8)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), 8)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestPostgresProductStore_Update(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProductStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE products SET price = $1 WHERE id = $2 RETURNING id, name, price")).
		WithArgs(12.5, int64(1)).
		WillReturnRows(sqlmock.NewRows(productRowColumns).AddRow(int64(1), "Widget", 12.5))

	p, err := s.Update(context.Background(), 1, domain.ProductPatch{Price: domain.Some(12.5)})
	require.NoError(t, err)
	assert.InDelta(t, 12.5, p.Price, 1e-9)
}

func TestPostgresProductStore_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresProductStore(db, nil)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, s.Delete(context.Background(), 1))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.Delete(context.Background(), 2), store.ErrProductNotFound)
}
