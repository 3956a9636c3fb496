package postgres

import (
	"context"
	"database/sql"
	"strconv"

	"vibestore-api/internal/models"
	"vibestore-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// ContactRepository implements the ContactRepository interface for Postgres
type ContactRepository struct {
	*BaseRepository
}

// NewContactRepository creates a new Postgres contact repository
func NewContactRepository(db *sql.DB, logger *logrus.Logger) repositories.ContactRepository {
	return &ContactRepository{
		BaseRepository: NewBaseRepository(db, "contacts", logger),
	}
}

// GetCurrent retrieves the contact row with the maximum id. Nothing enforces
// at-most-one-row; the latest insert wins.
func (r *ContactRepository) GetCurrent(ctx context.Context) (*models.Contact, error) {
	query := `
		SELECT id, address, phone, email, created_at, updated_at
		FROM contacts
		ORDER BY id DESC
		LIMIT 1`

	row := r.executeQueryRow(ctx, "get_current", query)

	contact := &models.Contact{}
	err := row.Scan(
		&contact.ID,
		&contact.Address,
		&contact.Phone,
		&contact.Email,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repositories.NotFoundError("contact", "current")
		}
		return nil, repositories.NewRepositoryError("get_current", "contact", "", err)
	}

	return contact, nil
}

// Create inserts a new contact row
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	if err := contact.Validate(); err != nil {
		return repositories.ValidationError("contact", "", err)
	}

	query := `
		INSERT INTO contacts (address, phone, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`

	row := r.executeQueryRow(ctx, "create", query,
		contact.Address,
		contact.Phone,
		contact.Email,
	)

	if err := row.Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt); err != nil {
		return repositories.NewRepositoryError("create", "contact", "", err)
	}

	return nil
}

// Update rewrites the contact fields of the row identified by contact.ID and
// refreshes its updated_at timestamp.
func (r *ContactRepository) Update(ctx context.Context, contact *models.Contact) error {
	if err := contact.Validate(); err != nil {
		return repositories.ValidationError("contact", strconv.FormatInt(contact.ID, 10), err)
	}

	query := `
		UPDATE contacts
		SET address = $1,
			phone = $2,
			email = $3,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING created_at, updated_at`

	row := r.executeQueryRow(ctx, "update", query,
		contact.Address,
		contact.Phone,
		contact.Email,
		contact.ID,
	)

	if err := row.Scan(&contact.CreatedAt, &contact.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return repositories.NotFoundError("contact", strconv.FormatInt(contact.ID, 10))
		}
		return repositories.NewRepositoryError("update", "contact", strconv.FormatInt(contact.ID, 10), err)
	}

	return nil
}
