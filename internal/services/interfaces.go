package services

import (
	"context"

	"vibestore-api/internal/models"
)

// UpdateContactRequest carries the full replacement contact record. All three
// fields are required together; a partial contact is never stored.
type UpdateContactRequest struct {
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"required"`
}

// CreateProductRequest carries the data for a new catalog item. Price is a
// pointer so that an explicit zero passes the required check while an absent
// price fails it.
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Image       string   `json:"image"`
}

// UpdateProductRequest carries a partial product update. Every field is
// optional; absent fields leave the stored value unchanged.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Image       *string  `json:"image"`
}

// ContactService defines operations on the store contact record
type ContactService interface {
	// GetContact returns the current contact, or the fixed placeholder
	// record when no contact has ever been stored.
	GetContact(ctx context.Context) (*models.Contact, error)

	// UpdateContact replaces the current contact fields, creating the row on
	// first use.
	UpdateContact(ctx context.Context, req *UpdateContactRequest) (*models.Contact, error)
}

// ProductService defines operations on the product catalog
type ProductService interface {
	ListProducts(ctx context.Context) ([]*models.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ServiceContainer holds all service implementations
type ServiceContainer struct {
	ContactService ContactService
	ProductService ProductService
}
