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

// OrderService provides order operations, including the order/product links.
type OrderService interface {
	// CreateOrder validates the payload, then checks that its user exists.
	CreateOrder(ctx context.Context, payload domain.Payload) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)

	// UpdateOrder checks the order, validates the payload, then checks any
	// new user_id.
	UpdateOrder(ctx context.Context, orderID int64, payload domain.Payload) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID int64) error

	// ListOrderProducts returns the products linked to an existing order.
	ListOrderProducts(ctx context.Context, orderID int64) ([]domain.Product, error)

	// AddProductToOrder reads product_id from the payload and links it to the
	// order, returning the linked product ID.
	AddProductToOrder(ctx context.Context, orderID int64, payload domain.Payload) (int64, error)

	// RemoveProductFromOrder unlinks a product from an order.
	RemoveProductFromOrder(ctx context.Context, orderID, productID int64) error
}

type orderService struct {
	orderStore   store.OrderStore
	userStore    store.UserStore
	productStore store.ProductStore
	db           *sql.DB
	logger       *slog.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderStore store.OrderStore,
	userStore store.UserStore,
	productStore store.ProductStore,
	db *sql.DB,
	logger *slog.Logger,
) OrderService {
	if logger == nil {
		logger = slog.Default()
	}
	return &orderService{
		orderStore:   orderStore,
		userStore:    userStore,
		productStore: productStore,
		db:           db,
		logger:       logger.With("component", "order_service"),
	}
}

func (s *orderService) CreateOrder(ctx context.Context, payload domain.Payload) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	patch, err := domain.ParseOrder(payload, false)
	if err != nil {
		return nil, err
	}
	order := patch.Order()

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.userStore.WithTx(tx).GetByID(ctx, order.UserID); err != nil {
			return err
		}
		return s.orderStore.WithTx(tx).Create(ctx, order)
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to save order to database", "error", err)
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	log.Info("order created successfully", "order_id", order.ID, "user_id", order.UserID)
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order *domain.Order
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		order, err = s.orderStore.WithTx(tx).GetByID(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		orders, err = s.orderStore.WithTx(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) UpdateOrder(
	ctx context.Context,
	orderID int64,
	payload domain.Payload,
) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var order *domain.Order
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txOrders := s.orderStore.WithTx(tx)

		if _, err := txOrders.GetByID(ctx, orderID); err != nil {
			return err
		}

		patch, err := domain.ParseOrder(payload, true)
		if err != nil {
			return err
		}

		if patch.UserID.Set && patch.UserID.Value != nil {
			if _, err := s.userStore.WithTx(tx).GetByID(ctx, *patch.UserID.Value); err != nil {
				return err
			}
		}

		order, err = txOrders.Update(ctx, orderID, patch)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !store.IsNotFoundError(err) {
			log.Error("failed to update order", "error", err, "order_id", orderID)
		}
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	log.Info("order updated successfully", "order_id", orderID)
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.orderStore.WithTx(tx).Delete(ctx, orderID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	log.Info("order deleted successfully", "order_id", orderID)
	return nil
}

func (s *orderService) ListOrderProducts(ctx context.Context, orderID int64) ([]domain.Product, error) {
	var products []domain.Product
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txOrders := s.orderStore.WithTx(tx)

		if _, err := txOrders.GetByID(ctx, orderID); err != nil {
			return err
		}

		var err error
		products, err = txOrders.ListProducts(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list order products: %w", err)
	}
	return products, nil
}

// AddProductToOrder checks, in order: the order exists, product_id is
// present and well-formed, the product exists, and the pair is not linked.
func (s *orderService) AddProductToOrder(
	ctx context.Context,
	orderID int64,
	payload domain.Payload,
) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var productID int64
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txOrders := s.orderStore.WithTx(tx)

		if _, err := txOrders.GetByID(ctx, orderID); err != nil {
			return err
		}

		var err error
		productID, err = domain.ParseProductLink(payload)
		if err != nil {
			return err
		}

		if _, err := s.productStore.WithTx(tx).GetByID(ctx, productID); err != nil {
			return err
		}

		linked, err := txOrders.HasProduct(ctx, orderID, productID)
		if err != nil {
			return err
		}
		if linked {
			return store.ErrProductAlreadyInOrder
		}

		return txOrders.AddProduct(ctx, orderID, productID)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to add product to order: %w", err)
	}

	log.Info("product added to order", "order_id", orderID, "product_id", productID)
	return productID, nil
}

// RemoveProductFromOrder checks the order, then the product, then the link.
func (s *orderService) RemoveProductFromOrder(ctx context.Context, orderID, productID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txOrders := s.orderStore.WithTx(tx)

		if _, err := txOrders.GetByID(ctx, orderID); err != nil {
			return err
		}
		if _, err := s.productStore.WithTx(tx).GetByID(ctx, productID); err != nil {
			return err
		}
		return txOrders.RemoveProduct(ctx, orderID, productID)
	})
	if err != nil {
		return fmt.Errorf("failed to remove product from order: %w", err)
	}

	log.Info("product removed from order", "order_id", orderID, "product_id", productID)
	return nil
}
