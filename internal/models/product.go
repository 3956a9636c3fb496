package models

import (
	"fmt"
	"strings"
	"time"
)

// Product represents a catalog item in the storefront
type Product struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name" validate:"required,min=1,max=255"`
	Price       float64   `json:"price" db:"price"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category" validate:"required"`
	Image       string    `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// NewProduct creates a new product with timestamps. Description and image
// default to empty strings when the caller has nothing to set.
func NewProduct(name, category string, price float64) *Product {
	now := time.Now()
	return &Product{
		Name:      name,
		Category:  category,
		Price:     price,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the product data. A zero price is valid; the catalog
// carries free items during promotions.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required")
	}

	if len(p.Name) > 255 {
		return fmt.Errorf("product name cannot exceed 255 characters")
	}

	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("product category is required")
	}

	return nil
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (p *Product) UpdateTimestamp() {
	p.UpdatedAt = time.Now()
}
