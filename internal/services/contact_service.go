package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"vibestore-api/internal/models"
	"vibestore-api/internal/repositories"
)

// contactService implements the ContactService interface
type contactService struct {
	contactRepo repositories.ContactRepository
	validator   *validator.Validate
}

// NewContactService creates a new contact service instance
func NewContactService(contactRepo repositories.ContactRepository) ContactService {
	return &contactService{
		contactRepo: contactRepo,
		validator:   validator.New(),
	}
}

// GetContact returns the current contact record. An empty table is not an
// error: the fixed placeholder record is served so the storefront always has
// something to render.
func (s *contactService) GetContact(ctx context.Context) (*models.Contact, error) {
	contact, err := s.contactRepo.GetCurrent(ctx)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.DefaultContact(), nil
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}

// UpdateContact replaces the address, phone and email of the current contact
// row, or inserts the first row when none exists. No write happens when
// validation fails.
func (s *contactService) UpdateContact(ctx context.Context, req *UpdateContactRequest) (*models.Contact, error) {
	if req == nil {
		return nil, fmt.Errorf("validation failed: update contact request cannot be nil")
	}

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.contactRepo.GetCurrent(ctx)
	if err != nil {
		if !repositories.IsNotFound(err) {
			return nil, fmt.Errorf("failed to get current contact: %w", err)
		}

		contact = models.NewContact(req.Address, req.Phone, req.Email)
		if err := s.contactRepo.Create(ctx, contact); err != nil {
			return nil, fmt.Errorf("failed to create contact: %w", err)
		}
		return contact, nil
	}

	contact.Address = req.Address
	contact.Phone = req.Phone
	contact.Email = req.Email

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}
