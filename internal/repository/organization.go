package repository

import (
	"errors"

	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a Postgres unique-index violation.
// The pre-checks in the service layer only produce friendlier errors earlier;
// this is the authoritative conflict signal under concurrent inserts.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	if err := r.db.Create(org).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrOrganizationExists
		}
		return err
	}
	return nil
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id uuid.UUID) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByName retrieves an organization by name
func (r *OrganizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByPartitionKey retrieves an organization by its partition key
func (r *OrganizationRepository) GetByPartitionKey(key string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "partition_key = ?", key).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// Update updates an organization
func (r *OrganizationRepository) Update(org *models.Organization) error {
	if err := r.db.Save(org).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrOrganizationExists
		}
		return err
	}
	return nil
}

// Delete deletes an organization
func (r *OrganizationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Organization{}, "id = ?", id).Error
}
