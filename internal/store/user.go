package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/ecommerce-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create inserts a new user and sets its ID.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// List returns every user ordered by ID.
	List(ctx context.Context) ([]domain.User, error)

	// Update writes the supplied fields of patch and returns the stored user.
	// An empty patch returns the user unchanged.
	// Returns ErrUserNotFound if the user does not exist.
	Update(ctx context.Context, id int64, patch domain.UserPatch) (*domain.User, error)

	// Delete removes a user by ID.
	// Returns ErrUserNotFound if the user does not exist and ErrUserHasOrders
	// if orders still reference it.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
