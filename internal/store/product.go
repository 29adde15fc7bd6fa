package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/ecommerce-api/internal/domain"
)

// ProductStore defines the interface for product data persistence.
type ProductStore interface {
	// Create inserts a new product and sets its ID.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by ID.
	// Returns ErrProductNotFound if the product does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)

	// List returns every product ordered by ID.
	List(ctx context.Context) ([]domain.Product, error)

	// Update writes the supplied fields of patch and returns the stored product.
	// Returns ErrProductNotFound if the product does not exist.
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*domain.Product, error)

	// Delete removes a product by ID, along with its order links.
	// Returns ErrProductNotFound if the product does not exist.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a ProductStore bound to the given transaction.
	WithTx(tx *sql.Tx) ProductStore
}
