package repository

import (
	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminRepository handles database operations for admins
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin
func (r *AdminRepository) Create(admin *models.Admin) error {
	if err := r.db.Create(admin).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAdminExists
		}
		return err
	}
	return nil
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(id uuid.UUID) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.First(&admin, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Update updates an admin
func (r *AdminRepository) Update(admin *models.Admin) error {
	if err := r.db.Save(admin).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAdminExists
		}
		return err
	}
	return nil
}

// Delete deletes an admin
func (r *AdminRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Admin{}, "id = ?", id).Error
}
