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

// UserService provides user-related operations.
type UserService interface {
	// CreateUser validates a full user payload and stores it.
	CreateUser(ctx context.Context, payload domain.Payload) (*domain.User, error)

	// GetUser retrieves a user by ID.
	GetUser(ctx context.Context, userID int64) (*domain.User, error)

	// ListUsers returns every user.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// UpdateUser applies a partial payload to an existing user.
	UpdateUser(ctx context.Context, userID int64, payload domain.Payload) (*domain.User, error)

	// DeleteUser removes a user that owns no orders.
	DeleteUser(ctx context.Context, userID int64) error

	// ListUserOrders returns the orders of an existing user.
	ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	orderStore store.OrderStore
	db         *sql.DB
	logger     *slog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	userStore store.UserStore,
	orderStore store.OrderStore,
	db *sql.DB,
	logger *slog.Logger,
) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:  userStore,
		orderStore: orderStore,
		db:         db,
		logger:     logger.With("component", "user_service"),
	}
}

// CreateUser validates the payload before opening a transaction.
func (s *UserServiceImpl) CreateUser(ctx context.Context, payload domain.Payload) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	patch, err := domain.ParseUser(payload, false)
	if err != nil {
		log.Debug("user payload rejected", "error", err)
		return nil, err
	}
	user := patch.User()

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		log.Error("failed to save user to database", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created successfully", "user_id", user.ID)
	return user, nil
}

// GetUser retrieves a user by their ID
func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*domain.User, error) {
	var user *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		user, err = s.userStore.WithTx(tx).GetByID(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// ListUsers returns every user ordered by ID
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var err error
		users, err = s.userStore.WithTx(tx).List(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser checks that the user exists before validating the payload, so a
// missing user is reported as such even when the body is also invalid.
func (s *UserServiceImpl) UpdateUser(
	ctx context.Context,
	userID int64,
	payload domain.Payload,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var user *domain.User
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.userStore.WithTx(tx)

		if _, err := txStore.GetByID(ctx, userID); err != nil {
			return err
		}

		patch, err := domain.ParseUser(payload, true)
		if err != nil {
			return err
		}

		user, err = txStore.Update(ctx, userID, patch)
		return err
	})
	if err != nil {
		if !errors.Is(err, domain.ErrValidation) && !errors.Is(err, store.ErrUserNotFound) {
			log.Error("failed to update user", "error", err, "user_id", userID)
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated successfully", "user_id", userID)
	return user, nil
}

// DeleteUser refuses to remove a user that still owns orders.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txUsers := s.userStore.WithTx(tx)

		if _, err := txUsers.GetByID(ctx, userID); err != nil {
			return err
		}

		n, err := s.orderStore.WithTx(tx).CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if n > 0 {
			log.Debug("refusing to delete user with orders",
				"user_id", userID,
				"order_count", n)
			return store.ErrUserHasOrders
		}

		return txUsers.Delete(ctx, userID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	log.Info("user deleted successfully", "user_id", userID)
	return nil
}

// ListUserOrders returns the orders of an existing user
func (s *UserServiceImpl) ListUserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	var orders []domain.Order
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.userStore.WithTx(tx).GetByID(ctx, userID); err != nil {
			return err
		}

		var err error
		orders, err = s.orderStore.WithTx(tx).ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list user orders: %w", err)
	}
	return orders, nil
}
