package models

import (
	"fmt"
	"strings"
	"time"
)

// Contact represents the store contact information record. The id and
// timestamps are omitted when zero, so the placeholder record serializes to
// just its three fields while stored rows carry the full shape.
type Contact struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	Address   string    `json:"address" db:"address" validate:"required"`
	Phone     string    `json:"phone" db:"phone" validate:"required"`
	Email     string    `json:"email" db:"email" validate:"required"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at,omitzero" db:"updated_at"`
}

// NewContact creates a new contact with timestamps
func NewContact(address, phone, email string) *Contact {
	now := time.Now()
	return &Contact{
		Address:   address,
		Phone:     phone,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultContact returns the placeholder contact served when no row exists,
// so the storefront never renders an empty contact block.
func DefaultContact() *Contact {
	return &Contact{
		Address: "Москва, ул. Модная, 123",
		Phone:   "+7 (999) 123-45-67",
		Email:   "hello@vibestore.com",
	}
}

// Validate validates the contact data
func (c *Contact) Validate() error {
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("contact address is required")
	}

	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("contact phone is required")
	}

	if strings.TrimSpace(c.Email) == "" {
		return fmt.Errorf("contact email is required")
	}

	return nil
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (c *Contact) UpdateTimestamp() {
	c.UpdatedAt = time.Now()
}
