package services

import (
	"fmt"

	"vibestore-api/internal/repositories"
)

// NewServiceContainer creates all services from the repository container
func NewServiceContainer(repos *repositories.RepositoryContainer) (*ServiceContainer, error) {
	if repos == nil {
		return nil, fmt.Errorf("repository container cannot be nil")
	}

	if repos.ContactRepo == nil {
		return nil, fmt.Errorf("contact repository cannot be nil")
	}

	if repos.ProductRepo == nil {
		return nil, fmt.Errorf("product repository cannot be nil")
	}

	return &ServiceContainer{
		ContactService: NewContactService(repos.ContactRepo),
		ProductService: NewProductService(repos.ProductRepo),
	}, nil
}
