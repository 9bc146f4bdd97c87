package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"org-management-backend/internal/auth"
	"org-management-backend/internal/database"
	"org-management-backend/internal/database/models"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/logger"
	"org-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for the organization+admin
// lifecycle: the pair is created, renamed and deleted together, and every
// organization owns exactly one data partition.
type OrganizationService struct {
	orgRepo    repository.OrganizationRepositoryInterface
	adminRepo  repository.AdminRepositoryInterface
	partitions repository.PartitionRepositoryInterface
	validator  *validator.Validate
	log        *logger.Logger
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryInterface,
	adminRepo repository.AdminRepositoryInterface,
	partitions repository.PartitionRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:    orgRepo,
		adminRepo:  adminRepo,
		partitions: partitions,
		validator:  validator,
		log:        logger.New(),
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	OrganizationName string `json:"organization_name" validate:"required,min=1,max=100"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
}

// UpdateOrganizationRequest represents the request to update an organization;
// any subset of fields may be supplied
type UpdateOrganizationRequest struct {
	NewOrganizationName *string `json:"new_organization_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
	Password            *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// OrganizationResponse represents the outward view of an organization
type OrganizationResponse struct {
	OrganizationName string `json:"organization_name"`
	PartitionKey     string `json:"partition_key"`
	AdminEmail       string `json:"admin_email"`
	CreatedAt        string `json:"created_at"`
}

// AdminResponse represents the outward view of an admin; the password hash is
// never part of it
type AdminResponse struct {
	AdminID          string `json:"admin_id"`
	Email            string `json:"email"`
	OrganizationName string `json:"organization_name"`
	PartitionKey     string `json:"partition_key"`
	CreatedAt        string `json:"created_at"`
}

// CreateOrganizationResponse returns both records created by Create
type CreateOrganizationResponse struct {
	Organization OrganizationResponse `json:"organization"`
	Admin        AdminResponse        `json:"admin"`
}

// Create creates an organization together with its admin account and
// provisions the organization's data partition. The uniqueness pre-checks only
// produce friendlier errors early; the store's unique indexes are the
// authoritative guard and also surface as Conflict.
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*CreateOrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	name := strings.TrimSpace(req.OrganizationName)
	if name == "" {
		return nil, apperrors.NewValidationError("organization_name", "must not be empty")
	}
	partitionKey := database.PartitionKey(name)

	existingByName, err := s.orgRepo.GetByName(name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
	}
	if existingByName != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	// Two different names that normalize to the same partition key would
	// collide on the same data partition; treat that as a naming conflict.
	existingByKey, err := s.orgRepo.GetByPartitionKey(partitionKey)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing organization by partition key: %w", err)
	}
	if existingByKey != nil {
		return nil, apperrors.ErrOrganizationExists
	}

	existingAdmin, err := s.adminRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing admin by email: %w", err)
	}
	if existingAdmin != nil {
		return nil, apperrors.ErrAdminExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Email:            req.Email,
		HashedPassword:   hashedPassword,
		OrganizationName: name,
		PartitionKey:     partitionKey,
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:         name,
		PartitionKey: partitionKey,
		AdminID:      admin.ID,
		AdminEmail:   req.Email,
	}
	if err := s.orgRepo.Create(org); err != nil {
		if delErr := s.adminRepo.Delete(admin.ID); delErr != nil {
			return nil, apperrors.NewPartialFailureError("create organization",
				"admin record inserted but organization insert failed and rollback did not complete", delErr)
		}
		return nil, err
	}

	if err := s.partitions.Create(partitionKey); err != nil {
		var rollbackErr error
		if delErr := s.orgRepo.Delete(org.ID); delErr != nil {
			rollbackErr = delErr
		}
		if delErr := s.adminRepo.Delete(admin.ID); delErr != nil && rollbackErr == nil {
			rollbackErr = delErr
		}
		if rollbackErr != nil {
			return nil, apperrors.NewPartialFailureError("create organization",
				"records inserted but partition provisioning failed and rollback did not complete", rollbackErr)
		}
		return nil, fmt.Errorf("failed to provision partition: %w", err)
	}

	s.log.WithField("organization", name).Info("organization created")

	return &CreateOrganizationResponse{
		Organization: *toOrganizationResponse(org),
		Admin:        *toAdminResponse(admin),
	}, nil
}

// Get retrieves organization metadata by name
func (s *OrganizationService) Get(name string) (*OrganizationResponse, error) {
	org, err := s.orgRepo.GetByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return toOrganizationResponse(org), nil
}

// Update mutates any combination of organization name, admin email and admin
// password. The caller must be the organization's admin. A rename recomputes
// the partition key and moves the partition atomically: either all data ends
// up under the new key or the operation fails with the old partition intact.
func (s *OrganizationService) Update(name string, callerID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	org, err := s.orgRepo.GetByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if org.AdminID != callerID {
		return nil, apperrors.ErrNotOrganizationAdmin
	}

	admin, err := s.adminRepo.GetByID(org.AdminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	priorAdmin := *admin

	oldName := org.Name
	oldPartitionKey := org.PartitionKey
	newPartitionKey := oldPartitionKey

	if req.NewOrganizationName != nil {
		newName := strings.TrimSpace(*req.NewOrganizationName)
		if newName == "" {
			return nil, apperrors.NewValidationError("new_organization_name", "must not be empty")
		}
		if newName != oldName {
			newPartitionKey = database.PartitionKey(newName)

			existing, err := s.orgRepo.GetByName(newName)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check existing organization by name: %w", err)
			}
			if existing != nil {
				return nil, apperrors.ErrOrganizationExists
			}

			if newPartitionKey != oldPartitionKey {
				existingByKey, err := s.orgRepo.GetByPartitionKey(newPartitionKey)
				if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("failed to check existing organization by partition key: %w", err)
				}
				if existingByKey != nil {
					return nil, apperrors.ErrOrganizationExists
				}
			}

			org.Name = newName
			org.PartitionKey = newPartitionKey
			admin.OrganizationName = newName
			admin.PartitionKey = newPartitionKey
		}
	}

	if req.Email != nil {
		existing, err := s.adminRepo.GetByEmail(*req.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing admin by email: %w", err)
		}
		if existing != nil && existing.ID != admin.ID {
			return nil, apperrors.ErrAdminExists
		}
		admin.Email = *req.Email
		org.AdminEmail = *req.Email
	}

	if req.Password != nil {
		hashedPassword, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		admin.HashedPassword = hashedPassword
	}

	if newPartitionKey != oldPartitionKey {
		if err := s.partitions.Rename(oldPartitionKey, newPartitionKey); err != nil {
			return nil, fmt.Errorf("failed to move partition: %w", err)
		}
	}

	if err := s.adminRepo.Update(admin); err != nil {
		return nil, s.revertPartition(oldPartitionKey, newPartitionKey, err)
	}
	if err := s.orgRepo.Update(org); err != nil {
		// The admin row already carries the new values; restore it before
		// moving the partition back so the two records keep agreeing.
		restored := priorAdmin
		if restoreErr := s.adminRepo.Update(&restored); restoreErr != nil {
			return nil, apperrors.NewPartialFailureError("update organization",
				"admin record updated but organization update failed and the admin could not be restored", restoreErr)
		}
		return nil, s.revertPartition(oldPartitionKey, newPartitionKey, err)
	}

	s.log.WithField("organization", org.Name).Info("organization updated")

	return toOrganizationResponse(org), nil
}

// revertPartition undoes a partition rename after a failed record update. A
// failed revert is reported as PartialFailure, never swallowed.
func (s *OrganizationService) revertPartition(oldKey, newKey string, cause error) error {
	if oldKey == newKey {
		return cause
	}
	if err := s.partitions.Rename(newKey, oldKey); err != nil {
		return apperrors.NewPartialFailureError("update organization",
			"partition moved but record update failed and the move could not be reverted", err)
	}
	return cause
}

// Delete removes the organization, its admin and its data partition. The
// caller must be the organization's admin.
func (s *OrganizationService) Delete(name string, callerID uuid.UUID) error {
	org, err := s.orgRepo.GetByName(strings.TrimSpace(name))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganizationNotFound
		}
		return fmt.Errorf("failed to get organization: %w", err)
	}

	if org.AdminID != callerID {
		return apperrors.ErrNotOrganizationAdmin
	}

	if err := s.partitions.Drop(org.PartitionKey); err != nil {
		return fmt.Errorf("failed to drop partition: %w", err)
	}

	if err := s.orgRepo.Delete(org.ID); err != nil {
		return apperrors.NewPartialFailureError("delete organization",
			"partition dropped but organization record removal failed", err)
	}
	if err := s.adminRepo.Delete(org.AdminID); err != nil {
		return apperrors.NewPartialFailureError("delete organization",
			"organization removed but admin record removal failed", err)
	}

	s.log.WithField("organization", org.Name).Info("organization deleted")

	return nil
}

// toOrganizationResponse converts an organization model to its outward view
func toOrganizationResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		OrganizationName: org.Name,
		PartitionKey:     org.PartitionKey,
		AdminEmail:       org.AdminEmail,
		CreatedAt:        org.CreatedAt.Format(time.RFC3339),
	}
}

// toAdminResponse converts an admin model to its outward view
func toAdminResponse(admin *models.Admin) *AdminResponse {
	return &AdminResponse{
		AdminID:          admin.ID.String(),
		Email:            admin.Email,
		OrganizationName: admin.OrganizationName,
		PartitionKey:     admin.PartitionKey,
		CreatedAt:        admin.CreatedAt.Format(time.RFC3339),
	}
}
