package services

import (
	"context"
	"sort"
	"strconv"
	"testing"
	"time"

	"vibestore-api/internal/models"
	"vibestore-api/internal/repositories"
)

// memProductRepo is an in-memory ProductRepository for tests
type memProductRepo struct {
	products map[int64]*models.Product
	nextID   int64
	writes   int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[int64]*models.Product), nextID: 1}
}

func (r *memProductRepo) List(ctx context.Context) ([]*models.Product, error) {
	list := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		copied := *p
		list = append(list, &copied)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

func (r *memProductRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, repositories.NotFoundError("product", strconv.FormatInt(id, 10))
	}
	copied := *p
	return &copied, nil
}

func (r *memProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = r.nextID
	r.nextID++
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	copied := *product
	r.products[product.ID] = &copied
	r.writes++
	return nil
}

func (r *memProductRepo) Update(ctx context.Context, product *models.Product) error {
	existing, ok := r.products[product.ID]
	if !ok {
		return repositories.NotFoundError("product", strconv.FormatInt(product.ID, 10))
	}

	copied := *product
	copied.CreatedAt = existing.CreatedAt
	copied.UpdatedAt = time.Now()
	r.products[product.ID] = &copied
	product.UpdatedAt = copied.UpdatedAt
	r.writes++
	return nil
}

func (r *memProductRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.products[id]; !ok {
		return repositories.NotFoundError("product", strconv.FormatInt(id, 10))
	}
	delete(r.products, id)
	r.writes++
	return nil
}

func (r *memProductRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.products)), nil
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func TestProductServiceCreate(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	product, err := service.CreateProduct(ctx, &CreateProductRequest{
		Name:     "Hoodie",
		Price:    floatPtr(49.90),
		Category: "clothing",
	})
	if err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}

	if product.ID == 0 {
		t.Error("CreateProduct() should assign an id")
	}
	if product.Description != "" || product.Image != "" {
		t.Errorf("description/image = %q/%q, want empty defaults", product.Description, product.Image)
	}
}

func TestProductServiceCreateZeroPrice(t *testing.T) {
	service := NewProductService(newMemProductRepo())
	ctx := context.Background()

	// An explicit zero price is valid; only an absent price fails
	product, err := service.CreateProduct(ctx, &CreateProductRequest{
		Name:     "Sticker",
		Price:    floatPtr(0),
		Category: "merch",
	})
	if err != nil {
		t.Fatalf("CreateProduct() failed for zero price: %v", err)
	}
	if product.Price != 0 {
		t.Errorf("price = %v, want 0", product.Price)
	}
}

func TestProductServiceCreateValidation(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *CreateProductRequest
	}{
		{"missing name", &CreateProductRequest{Price: floatPtr(10), Category: "clothing"}},
		{"missing price", &CreateProductRequest{Name: "X", Category: "clothing"}},
		{"missing category", &CreateProductRequest{Name: "X", Price: floatPtr(10)}},
		{"nil request", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.CreateProduct(ctx, tt.req); err == nil {
				t.Error("CreateProduct() should fail validation")
			}
		})
	}

	if repo.writes != 0 {
		t.Errorf("repository writes = %d, want 0 after failed validations", repo.writes)
	}
}

func TestProductServiceUpdateMergesSuppliedFields(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, &CreateProductRequest{
		Name:        "Hoodie",
		Price:       floatPtr(49.90),
		Description: "warm",
		Category:    "clothing",
		Image:       "https://cdn.example.com/hoodie.jpg",
	})
	if err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}

	updated, err := service.UpdateProduct(ctx, created.ID, &UpdateProductRequest{
		Price: floatPtr(20),
	})
	if err != nil {
		t.Fatalf("UpdateProduct() failed: %v", err)
	}

	if updated.Price != 20 {
		t.Errorf("price = %v, want 20", updated.Price)
	}
	if updated.Name != "Hoodie" || updated.Category != "clothing" {
		t.Errorf("name/category = %q/%q, want unchanged values", updated.Name, updated.Category)
	}
	if updated.Description != "warm" || updated.Image != "https://cdn.example.com/hoodie.jpg" {
		t.Errorf("description/image changed on partial update: %q/%q", updated.Description, updated.Image)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) && !updated.UpdatedAt.Equal(created.UpdatedAt) {
		t.Error("UpdatedAt should not move backwards")
	}
}

func TestProductServiceUpdateAllFields(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, &CreateProductRequest{
		Name:     "Hoodie",
		Price:    floatPtr(49.90),
		Category: "clothing",
	})
	if err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}

	updated, err := service.UpdateProduct(ctx, created.ID, &UpdateProductRequest{
		Name:        strPtr("Zip Hoodie"),
		Price:       floatPtr(59.90),
		Description: strPtr("with zipper"),
		Category:    strPtr("outerwear"),
		Image:       strPtr("https://cdn.example.com/zip.jpg"),
	})
	if err != nil {
		t.Fatalf("UpdateProduct() failed: %v", err)
	}

	if updated.Name != "Zip Hoodie" || updated.Price != 59.90 || updated.Category != "outerwear" {
		t.Errorf("full update not applied: %+v", updated)
	}
}

func TestProductServiceUpdateRejectsBlankRequiredFields(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, &CreateProductRequest{
		Name:     "Hoodie",
		Price:    floatPtr(49.90),
		Category: "clothing",
	})
	if err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}
	writesAfterCreate := repo.writes

	if _, err := service.UpdateProduct(ctx, created.ID, &UpdateProductRequest{Name: strPtr("")}); err == nil {
		t.Error("UpdateProduct() should reject a blank name")
	}
	if _, err := service.UpdateProduct(ctx, created.ID, &UpdateProductRequest{Category: strPtr("  ")}); err == nil {
		t.Error("UpdateProduct() should reject a blank category")
	}

	if repo.writes != writesAfterCreate {
		t.Errorf("repository writes = %d, want %d after rejected updates", repo.writes, writesAfterCreate)
	}

	stored, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if stored.Name != "Hoodie" || stored.Category != "clothing" {
		t.Errorf("stored product = %+v, want it untouched", stored)
	}
}

func TestProductServiceUpdateNotFound(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	_, err := service.UpdateProduct(ctx, 999999, &UpdateProductRequest{Price: floatPtr(20)})
	if err == nil {
		t.Fatal("UpdateProduct() should fail for unknown id")
	}
	if !repositories.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}
	if repo.writes != 0 {
		t.Errorf("repository writes = %d, want 0 for unknown id", repo.writes)
	}
}

func TestProductServiceDeleteTwice(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	created, err := service.CreateProduct(ctx, &CreateProductRequest{
		Name:     "Hoodie",
		Price:    floatPtr(49.90),
		Category: "clothing",
	})
	if err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}

	if err := service.DeleteProduct(ctx, created.ID); err != nil {
		t.Fatalf("first DeleteProduct() failed: %v", err)
	}

	err = service.DeleteProduct(ctx, created.ID)
	if err == nil {
		t.Fatal("second DeleteProduct() should fail")
	}
	if !repositories.IsNotFound(err) {
		t.Errorf("error = %v, want not-found", err)
	}

	count, _ := repo.Count(ctx)
	if count != 0 {
		t.Errorf("product count = %d, want 0", count)
	}
}

func TestProductServiceList(t *testing.T) {
	repo := newMemProductRepo()
	service := NewProductService(repo)
	ctx := context.Background()

	if _, err := service.CreateProduct(ctx, &CreateProductRequest{Name: "A", Price: floatPtr(1), Category: "c"}); err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, err := service.CreateProduct(ctx, &CreateProductRequest{Name: "B", Price: floatPtr(2), Category: "c"}); err != nil {
		t.Fatalf("CreateProduct() failed: %v", err)
	}

	products, err := service.ListProducts(ctx)
	if err != nil {
		t.Fatalf("ListProducts() failed: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("len(products) = %d, want 2", len(products))
	}
	if products[0].Name != "B" {
		t.Errorf("first product = %q, want the newest first", products[0].Name)
	}
}
