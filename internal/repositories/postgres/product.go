package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"vibestore-api/internal/models"
	"vibestore-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ProductRepository implements the ProductRepository interface for Postgres
type ProductRepository struct {
	*BaseRepository
}

// NewProductRepository creates a new Postgres product repository
func NewProductRepository(db *sql.DB, logger *logrus.Logger) repositories.ProductRepository {
	return &ProductRepository{
		BaseRepository: NewBaseRepository(db, "products", logger),
	}
}

// List retrieves all products ordered by creation time, newest first. The
// catalog is small by design; no pagination.
func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	query := `
		SELECT id, name, price, description, category, image,
			   created_at, updated_at
		FROM products
		ORDER BY created_at DESC`

	rows, err := r.executeQuery(ctx, "list", query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product := &models.Product{}
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Price,
			&product.Description,
			&product.Category,
			&product.Image,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, repositories.NewRepositoryError("list", "product", "", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError("list", "product", "", err)
	}

	return products, nil
}

// GetByID retrieves a product by id
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT id, name, price, description, category, image,
			   created_at, updated_at
		FROM products
		WHERE id = $1`

	row := r.executeQueryRow(ctx, "get_by_id", query, id)

	product := &models.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.Description,
		&product.Category,
		&product.Image,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError("product", strconv.FormatInt(id, 10))
		}
		return nil, repositories.NewRepositoryError("get_by_id", "product", strconv.FormatInt(id, 10), err)
	}

	return product, nil
}

// Create inserts a new product row
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return repositories.ValidationError("product", "", err)
	}

	query := `
		INSERT INTO products (name, price, description, category, image)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	row := r.executeQueryRow(ctx, "create", query,
		product.Name,
		product.Price,
		product.Description,
		product.Category,
		product.Image,
	)

	if err := row.Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt); err != nil {
		return repositories.NewRepositoryError("create", "product", "", err)
	}

	return nil
}

// Update rewrites all mutable columns of the row identified by product.ID and
// refreshes its updated_at timestamp.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return repositories.ValidationError("product", strconv.FormatInt(product.ID, 10), err)
	}

	query := `
		UPDATE products
		SET name = $1,
			price = $2,
			description = $3,
			category = $4,
			image = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING created_at, updated_at`

	row := r.executeQueryRow(ctx, "update", query,
		product.Name,
		product.Price,
		product.Description,
		product.Category,
		product.Image,
		product.ID,
	)

	if err := row.Scan(&product.CreatedAt, &product.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return repositories.NotFoundError("product", strconv.FormatInt(product.ID, 10))
		}
		return repositories.NewRepositoryError("update", "product", strconv.FormatInt(product.ID, 10), err)
	}

	return nil
}

// Delete permanently removes a product by id
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM products WHERE id = $1"

	result, err := r.executeExec(ctx, "delete", query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return repositories.NewRepositoryError("delete", "product", strconv.FormatInt(id, 10), err)
	}

	if rowsAffected == 0 {
		return repositories.NotFoundError("product", strconv.FormatInt(id, 10))
	}

	return nil
}

// Count returns the total number of products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	row := r.executeQueryRow(ctx, "count", "SELECT COUNT(*) FROM products")

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, repositories.NewRepositoryError("count", "product", "", err)
	}

	return count, nil
}
