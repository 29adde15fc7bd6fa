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

const productColumns = "id, name, price"

// PostgresProductStore implements the store.ProductStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProductStore creates a new PostgreSQL implementation of the ProductStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresProductStore(db store.DBTX, logger *slog.Logger) *PostgresProductStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

var _ store.ProductStore = (*PostgresProductStore)(nil)

// WithTx implements store.ProductStore.WithTx
func (s *PostgresProductStore) WithTx(tx *sql.Tx) store.ProductStore {
	return &PostgresProductStore{db: tx, logger: s.logger}
}

func scanProduct(row rowScanner) (domain.Product, error) {
	var p domain.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price)
	return p, err
}

// Create implements store.ProductStore.Create
func (s *PostgresProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.db.QueryRowContext(
		ctx,
		"INSERT INTO products (name, price) VALUES ($1, $2) RETURNING id",
		product.Name,
		product.Price,
	).Scan(&product.ID)
	if err != nil {
		log.Error("failed to create product", slog.String("error", err.Error()))
		return MapError(err)
	}

	log.Info("product created successfully", slog.Int64("product_id", product.ID))
	return nil
}

// GetByID implements store.ProductStore.GetByID
func (s *PostgresProductStore) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + productColumns + " FROM products WHERE id = $1"
	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.Int64("product_id", id))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product by ID",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}
	return &p, nil
}

// List implements store.ProductStore.List
func (s *PostgresProductStore) List(ctx context.Context) ([]domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, "SELECT "+productColumns+" FROM products ORDER BY id")
	if err != nil {
		log.Error("failed to list products", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	products, err := collect(log, rows, scanProduct)
	if err != nil {
		log.Error("failed to scan products", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	return products, nil
}

// Update implements store.ProductStore.Update
func (s *PostgresProductStore) Update(
	ctx context.Context,
	id int64,
	patch domain.ProductPatch,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	b := newUpdate("products")
	setOptional(b, domain.ProductFieldName, patch.Name)
	setOptional(b, domain.ProductFieldPrice, patch.Price)

	if b.empty() {
		return s.GetByID(ctx, id)
	}

	query, args := b.build(id, productColumns)
	p, err := scanProduct(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return nil, MapError(err)
	}

	log.Info("product updated successfully", slog.Int64("product_id", id))
	return &p, nil
}

// Delete implements store.ProductStore.Delete
// Links from orders are removed by the ON DELETE CASCADE on order_products.
func (s *PostgresProductStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.Int64("product_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrProductNotFound); err != nil {
		return err
	}

	log.Info("product deleted successfully", slog.Int64("product_id", id))
	return nil
}
