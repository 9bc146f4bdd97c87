package repository

import (
	"org-management-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetByPartitionKey(key string) (*models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// AdminRepositoryInterface defines the interface for admin repository operations
type AdminRepositoryInterface interface {
	Create(admin *models.Admin) error
	GetByID(id uuid.UUID) (*models.Admin, error)
	GetByEmail(email string) (*models.Admin, error)
	Update(admin *models.Admin) error
	Delete(id uuid.UUID) error
}

// PartitionRepositoryInterface provisions and destroys per-organization data
// partitions. Keys must come from database.PartitionKey.
type PartitionRepositoryInterface interface {
	Create(key string) error
	Rename(oldKey, newKey string) error
	Drop(key string) error
	Exists(key string) (bool, error)
}
