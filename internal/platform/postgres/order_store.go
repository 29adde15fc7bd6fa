package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/phrazzld/ecommerce-api/internal/store"
)

const orderColumns = "id, order_date, user_id"

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOrderStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the OrderStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresOrderStore(db store.DBTX, logger *slog.Logger) *PostgresOrderStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

var _ store.OrderStore = (*PostgresOrderStore)(nil)

// WithTx implements store.OrderStore.WithTx
func (s *PostgresOrderStore) WithTx(tx *sql.Tx) store.OrderStore {
	return &PostgresOrderStore{db: tx, logger: s.logger}
}

func scanOrder(row rowScanner) (domain.Order, error) {
	var o domain.Order
	err := row.Scan(&o.ID, &o.OrderDate, &o.UserID)
	return o, err
}

// Create implements store.OrderStore.Create
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(
		ctx,
		"INSERT INTO orders (order_date, user_id) VALUES ($1, $2) RETURNING id",
		order.OrderDate,
		order.UserID,
	).Scan(&order.ID)
	if err != nil {
		log.Error("failed to create order",
			slog.String("error", err.Error()),
			slog.Int64("user_id", order.UserID))
		return MapError(err)
	}

	log.Info("order created successfully",
		slog.Int64("order_id", order.ID),
		slog.Int64("user_id", order.UserID))
	return nil
}

// GetByID implements store.OrderStore.GetByID
func (s *PostgresOrderStore) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"
	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("order not found", slog.Int64("order_id", id))
			return nil, store.ErrOrderNotFound
		}
		log.Error("failed to get order by ID",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return nil, MapError(err)
	}
	return &o, nil
}

// List implements store.OrderStore.List
func (s *PostgresOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	return s.listOrders(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY id")
}

// ListByUser implements store.OrderStore.ListByUser
func (s *PostgresOrderStore) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	return s.listOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY id", userID)
}

func (s *PostgresOrderStore) listOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list orders", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	orders, err := collect(log, rows, scanOrder)
	if err != nil {
		log.Error("failed to scan orders", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return orders, nil
}

// CountByUser implements store.OrderStore.CountByUser
func (s *PostgresOrderStore) CountByUser(ctx context.Context, userID int64) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders WHERE user_id = $1", userID).Scan(&n)
	if err != nil {
		log.Error("failed to count orders",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID))
		return 0, MapError(err)
	}
	return n, nil
}

// Update implements store.OrderStore.Update
func (s *PostgresOrderStore) Update(
	ctx context.Context,
	id int64,
	patch domain.OrderPatch,
) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := newUpdate("orders")
	setOptional(b, domain.OrderFieldOrderDate, patch.OrderDate)
	setOptional(b, domain.OrderFieldUserID, patch.UserID)

	if b.empty() {
		return s.GetByID(ctx, id)
	}

	query, args := b.build(id, orderColumns)
	o, err := scanOrder(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrOrderNotFound
		}
		log.Error("failed to update order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return nil, MapError(err)
	}

	log.Info("order updated successfully", slog.Int64("order_id", id))
	return &o, nil
}

// Delete implements store.OrderStore.Delete
// Product links are removed by the ON DELETE CASCADE on order_products.
func (s *PostgresOrderStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrOrderNotFound); err != nil {
		return err
	}

	log.Info("order deleted successfully", slog.Int64("order_id", id))
	return nil
}

// ListProducts implements store.OrderStore.ListProducts
func (s *PostgresOrderStore) ListProducts(ctx context.Context, orderID int64) ([]domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT p.id, p.name, p.price
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1
		ORDER BY p.id
	`
	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		log.Error("failed to list order products",
			slog.String("error", err.Error()),
			slog.Int64("order_id", orderID))
		return nil, MapError(err)
	}

	products, err := collect(log, rows, scanProduct)
	if err != nil {
		log.Error("failed to scan order products", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return products, nil
}

// HasProduct implements store.OrderStore.HasProduct
func (s *PostgresOrderStore) HasProduct(ctx context.Context, orderID, productID int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	err := s.db.QueryRowContext(
		ctx,
		"SELECT EXISTS (SELECT 1 FROM order_products WHERE order_id = $1 AND product_id = $2)",
		orderID,
		productID,
	).Scan(&exists)
	if err != nil {
		log.Error("failed to check order product",
			slog.String("error", err.Error()),
			slog.Int64("order_id", orderID),
			slog.Int64("product_id", productID))
		return false, MapError(err)
	}
	return exists, nil
}

// AddProduct implements store.OrderStore.AddProduct
// The insert is idempotent at the database level; a conflicting pair writes
// no row and is reported as ErrProductAlreadyInOrder.
func (s *PostgresOrderStore) AddProduct(ctx context.Context, orderID, productID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		`INSERT INTO order_products (order_id, product_id) VALUES ($1, $2)
		ON CONFLICT (order_id, product_id) DO NOTHING`,
		orderID,
		productID,
	)
	if err != nil {
		log.Error("failed to add product to order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", orderID),
			slog.Int64("product_id", productID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductAlreadyInOrder); err != nil {
		return err
	}

	log.Info("product added to order",
		slog.Int64("order_id", orderID),
		slog.Int64("product_id", productID))
	return nil
}

// RemoveProduct implements store.OrderStore.RemoveProduct
func (s *PostgresOrderStore) RemoveProduct(ctx context.Context, orderID, productID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(
		ctx,
		"DELETE FROM order_products WHERE order_id = $1 AND product_id = $2",
		orderID,
		productID,
	)
	if err != nil {
		log.Error("failed to remove product from order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", orderID),
			slog.Int64("product_id", productID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductNotInOrder); err != nil {
		return err
	}

	log.Info("product removed from order",
		slog.Int64("order_id", orderID),
		slog.Int64("product_id", productID))
	return nil
}
