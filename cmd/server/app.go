package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/ecommerce-api/internal/config"
	"github.com/phrazzld/ecommerce-api/internal/platform/postgres"
	"github.com/phrazzld/ecommerce-api/internal/service"
)

// application holds the shared dependencies of the server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userService    service.UserService
	productService service.ProductService
	orderService   service.OrderService
}

// newApplication wires the PostgreSQL stores into the services.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	userStore := postgres.NewPostgresUserStore(db, logger)
	productStore := postgres.NewPostgresProductStore(db, logger)
	orderStore := postgres.NewPostgresOrderStore(db, logger)

	return &application{
		config:         cfg,
		logger:         logger,
		db:             db,
		userService:    service.NewUserService(userStore, orderStore, db, logger),
		productService: service.NewProductService(productStore, db, logger),
		orderService:   service.NewOrderService(orderStore, userStore, productStore, db, logger),
	}
}
