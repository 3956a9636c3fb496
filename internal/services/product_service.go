package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"vibestore-api/internal/models"
	"vibestore-api/internal/repositories"
)

// productService implements the ProductService interface
type productService struct {
	productRepo repositories.ProductRepository
	validator   *validator.Validate
}

// NewProductService creates a new product service instance
func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &productService{
		productRepo: productRepo,
		validator:   validator.New(),
	}
}

// ListProducts retrieves the full catalog, newest first
func (s *productService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}

// CreateProduct creates a new catalog item. Description and image default to
// empty strings when absent.
func (s *productService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("validation failed: create product request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	product := models.NewProduct(req.Name, req.Category, *req.Price)
	product.Description = req.Description
	product.Image = req.Image

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// UpdateProduct applies a partial update to an existing product: each supplied
// field overwrites the stored column, each absent field keeps its value. The
// fetch happens before any write, so an unknown id never commits anything.
func (s *productService) UpdateProduct(ctx context.Context, id int64, req *UpdateProductRequest) (*models.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("validation failed: update product request cannot be nil")
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Image != nil {
		product.Image = *req.Image
	}

	// A supplied empty name or category would blank a required column
	if err := product.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct permanently removes a product. Deleting the same id twice
// yields a not-found error on the second call.
func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
