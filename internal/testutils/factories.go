package testutils

import (
	"time"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/database"
	"org-management-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all test data factories
type FactorySet struct {
	Organization *OrganizationFactory
	Admin        *AdminFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		Admin:        NewAdminFactory(),
	}
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:         "Test Organization",
		PartitionKey: database.PartitionKey("Test Organization"),
		AdminID:      uuid.New(),
		AdminEmail:   "admin@test.com",
	}
}

// WithName sets a custom name and recomputes the partition key
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.PartitionKey = database.PartitionKey(name)
	return org
}

// WithAdmin links the organization to an existing admin record
func (f *OrganizationFactory) WithAdmin(admin *models.Admin) *models.Organization {
	org := f.Create()
	org.AdminID = admin.ID
	org.AdminEmail = admin.Email
	return org
}

// AdminFactory provides methods to create test Admin data
type AdminFactory struct{}

// NewAdminFactory creates a new AdminFactory
func NewAdminFactory() *AdminFactory {
	return &AdminFactory{}
}

// Create creates a test Admin with default values. The stored hash matches the
// plaintext "test-password".
func (f *AdminFactory) Create() *models.Admin {
	hash, _ := auth.HashPassword("test-password")
	return &models.Admin{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Email:            "admin@test.com",
		HashedPassword:   hash,
		OrganizationName: "Test Organization",
		PartitionKey:     database.PartitionKey("Test Organization"),
	}
}

// WithEmail sets a custom email for the admin
func (f *AdminFactory) WithEmail(email string) *models.Admin {
	admin := f.Create()
	admin.Email = email
	return admin
}

// WithOrganization sets the admin's organization and partition key
func (f *AdminFactory) WithOrganization(name string) *models.Admin {
	admin := f.Create()
	admin.OrganizationName = name
	admin.PartitionKey = database.PartitionKey(name)
	return admin
}
