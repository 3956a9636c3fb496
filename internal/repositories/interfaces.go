package repositories

import (
	"context"

	"vibestore-api/internal/models"
)

// ContactRepository defines operations on the store contact record. The
// current contact is the row with the maximum id; the table is never
// truncated, only the latest row is surfaced.
type ContactRepository interface {
	// GetCurrent returns the contact row with the maximum id, or a
	// not-found error when the table is empty.
	GetCurrent(ctx context.Context) (*models.Contact, error)

	// Create inserts a new contact row and fills the generated id and
	// timestamps on the passed model.
	Create(ctx context.Context, contact *models.Contact) error

	// Update rewrites the address, phone and email of the row identified by
	// contact.ID and refreshes its updated_at timestamp.
	Update(ctx context.Context, contact *models.Contact) error
}

// ProductRepository defines operations on the product catalog
type ProductRepository interface {
	// List returns all products, newest first
	List(ctx context.Context) ([]*models.Product, error)

	// GetByID retrieves a product by id
	GetByID(ctx context.Context, id int64) (*models.Product, error)

	// Create inserts a new product and fills the generated id and timestamps
	Create(ctx context.Context, product *models.Product) error

	// Update rewrites all mutable columns of the row identified by
	// product.ID and refreshes its updated_at timestamp.
	Update(ctx context.Context, product *models.Product) error

	// Delete permanently removes a product by id
	Delete(ctx context.Context, id int64) error

	// Count returns the total number of products
	Count(ctx context.Context) (int64, error)
}

// RepositoryContainer holds all repository implementations
type RepositoryContainer struct {
	ContactRepo ContactRepository
	ProductRepo ProductRepository
}
