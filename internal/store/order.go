package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/ecommerce-api/internal/domain"
)

// OrderStore defines the interface for order persistence, including the
// order/product association.
type OrderStore interface {
	// Create inserts a new order and sets its ID.
	Create(ctx context.Context, order *domain.Order) error

	// GetByID retrieves an order by ID.
	// Returns ErrOrderNotFound if the order does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Order, error)

	// List returns every order ordered by ID.
	List(ctx context.Context) ([]domain.Order, error)

	// ListByUser returns the orders of one user ordered by ID.
	ListByUser(ctx context.Context, userID int64) ([]domain.Order, error)

	// CountByUser returns how many orders reference the user.
	CountByUser(ctx context.Context, userID int64) (int, error)

	// Update writes the supplied fields of patch and returns the stored order.
	// Returns ErrOrderNotFound if the order does not exist.
	Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.Order, error)

	// Delete removes an order by ID, along with its product links.
	// Returns ErrOrderNotFound if the order does not exist.
	Delete(ctx context.Context, id int64) error

	// ListProducts returns the products linked to an order ordered by ID.
	ListProducts(ctx context.Context, orderID int64) ([]domain.Product, error)

	// HasProduct reports whether the product is linked to the order.
	HasProduct(ctx context.Context, orderID, productID int64) (bool, error)

	// AddProduct links a product to an order.
	// Returns ErrProductAlreadyInOrder if the link exists.
	AddProduct(ctx context.Context, orderID, productID int64) error

	// RemoveProduct unlinks a product from an order.
	// Returns ErrProductNotInOrder if there was no link.
	RemoveProduct(ctx context.Context, orderID, productID int64) error

	// WithTx returns an OrderStore bound to the given transaction.
	WithTx(tx *sql.Tx) OrderStore
}
