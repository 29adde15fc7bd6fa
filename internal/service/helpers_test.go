package service_test

import (
	"database/sql"
	"io"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/mocks"
	"github.com/phrazzld/ecommerce-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ service.UserService    = (*mocks.MockUserService)(nil)
	_ service.ProductService = (*mocks.MockProductService)(nil)
	_ service.OrderService   = (*mocks.MockOrderService)(nil)
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTxDB returns a sqlmock-backed *sql.DB. Each service call is expected to
// open exactly one transaction, so tests declare ExpectBegin plus either
// ExpectCommit or ExpectRollback.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func payload(t *testing.T, body string) domain.Payload {
	t.Helper()
	p, err := domain.ParsePayload([]byte(body))
	require.NoError(t, err)
	return p
}

func expectCommit(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectCommit()
}

func expectRollback(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectRollback()
}
