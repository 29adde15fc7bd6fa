package main

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/ecommerce-api/internal/config"
	"github.com/phrazzld/ecommerce-api/internal/mocks"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "debug",
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		Database: config.DatabaseConfig{
			URL:          "postgres://app@localhost:5432/shop",
			MaxOpenConns: 2,
		},
	}
}

// newTestApplication returns an application backed by service mocks and a
// sqlmock database that answers pings.
func newTestApplication(t *testing.T) (*application, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &application{
		config:         testConfig(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		db:             db,
		userService:    &mocks.MockUserService{},
		productService: &mocks.MockProductService{},
		orderService:   &mocks.MockOrderService{},
	}, mock
}
