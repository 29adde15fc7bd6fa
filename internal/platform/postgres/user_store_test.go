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

var userRowColumns = []string{"id", "name", "email", "street_number", "street_name", "city", "state", "zip_code"}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func strPtr(s string) *string { return &s }

func TestPostgresUserStore_Create(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	user := &domain.User{Name: "Ada", Email: strPtr("ada@example.com")}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("Ada", "ada@example.com", nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	require.NoError(t, s.Create(context.Background(), user))
	assert.Equal(t, int64(1), user.ID)
}

func TestPostgresUserStore_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(1), "Ada", "ada@example.com", int64(12), nil, "Paris", nil, nil))

	u, err := s.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name)
	require.NotNil(t, u.Email)
	assert.Equal(t, "ada@example.com", *u.Email)
	require.NotNil(t, u.StreetNumber)
	assert.Equal(t, int64(12), *u.StreetNumber)
	assert.Nil(t, u.StreetName)
	require.NotNil(t, u.City)
	assert.Nil(t, u.ZipCode)
}

func TestPostgresUserStore_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPostgresUserStore_List_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(userRowColumns))

	users, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestPostgresUserStore_Update(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	patch := domain.UserPatch{Name: domain.Some("Grace"), Email: domain.Null[string]()}
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET name = $1, email = $2 WHERE id = $3 RETURNING")).
		WithArgs("Grace", nil, int64(5)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(5), "Grace", nil, nil, nil, nil, nil, nil))

	u, err := s.Update(context.Background(), 5, patch)
	require.NoError(t, err)
	assert.Equal(t, "Grace", u.Name)
	assert.Nil(t, u.Email)
}

func TestPostgresUserStore_Update_EmptyPatchReadsCurrent(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userRowColumns).
			AddRow(int64(5), "Grace", nil, nil, nil, nil, nil, nil))

	u, err := s.Update(context.Background(), 5, domain.UserPatch{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
}

func TestPostgresUserStore_Update_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users")).
		WillReturnError(sql.ErrNoRows)

	_, err := s.Update(context.Background(), 9, domain.UserPatch{Name: domain.Some("X")})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPostgresUserStore_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresUserStore(db, nil)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
			WithArgs(int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		assert.NoError(t, s.Delete(context.Background(), 1))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresUserStore(db, nil)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		assert.ErrorIs(t, s.Delete(context.Background(), 1), store.ErrUserNotFound)
	})

	t.Run("still referenced", func(t *testing.T) {
		db, mock := newMockDB(t)
		s := postgres.NewPostgresUserStore(db, nil)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
			WillReturnError(newPgError("23503"))
		err := s.Delete(context.Background(), 1)
		assert.ErrorIs(t, err, store.ErrUserHasOrders)
		assert.ErrorIs(t, err, store.ErrReferenced)
	})
}

func TestPostgresUserStore_WithTx(t *testing.T) {
	db, mock := newMockDB(t)
	s := postgres.NewPostgresUserStore(db, nil)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.RunInTransaction(context.Background(), db, func(ctx context.Context, tx *sql.Tx) error {
		return s.WithTx(tx).Delete(ctx, 3)
	})
	assert.NoError(t, err)
}

func TestNewPostgresUserStore_NilDBPanics(t *testing.T) {
	assert.Panics(t, func() { postgres.NewPostgresUserStore(nil, nil) })
}
