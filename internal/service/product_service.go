package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ecommerce-api/internal/domain"
	"github.com/phrazzld/ecommerce-api/internal/platform/logger"
	"github.com/phrazzld/ecommerce-api/internal/store"
)

// ProductService provides product-related operations.
type ProductService interface {
	CreateProduct(ctx context.Context, payload domain.Payload) (*domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, productID int64, payload domain.Payload) (*domain.Product, error)

	// DeleteProduct removes a product and drops it from every order.
	DeleteProduct(ctx context.Context, productID int64) error
}

type productService struct {
	productStore store.ProductStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewProductService creates a new ProductService
func NewProductService(productStore store.ProductStore, db *sql.DB, logger *slog.Logger) ProductService {
	if logger == nil {
		logger = slog.Default()
	}
	return &productService{
		productStore: productStore,
		db:           db,
		logger:       logger.With("component", "product_service"),
	}
}

func (s *productService) CreateProduct(ctx context.Context, payload domain.Payload) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	patch, err := domain.ParseProduct(payload, false)
	if err != nil {
		return nil, err
	}
	product := patch.Product()

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.productStore.WithTx(tx).Create(ctx, product)
	})
	if err != nil {
		log.Error("failed to save product to database", "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	log.Info("product created successfully", "product_id", product.ID)
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	var product *domain.Product
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		product, err = s.productStore.WithTx(tx).GetByID(ctx, productID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		products, err = s.productStore.WithTx(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) UpdateProduct(
	ctx context.Context,
	productID int64,
	payload domain.Payload,
) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var product *domain.Product
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.productStore.WithTx(tx)

		if _, err := txStore.GetByID(ctx, productID); err != nil {
			return err
		}

		patch, err := domain.ParseProduct(payload, true)
		if err != nil {
			return err
		}

		product, err = txStore.Update(ctx, productID, patch)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, store.ErrProductNotFound) {
			log.Error("failed to update product", "error", err, "product_id", productID)
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	log.Info("product updated successfully", "product_id", productID)
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, productID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.productStore.WithTx(tx).Delete(ctx, productID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	log.Info("product deleted successfully", "product_id", productID)
	return nil
}
