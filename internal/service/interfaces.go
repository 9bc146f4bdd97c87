package service

import (
	"org-management-backend/internal/auth"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for the organization service
type OrganizationServiceInterface interface {
	Create(req *CreateOrganizationRequest) (*CreateOrganizationResponse, error)
	Get(name string) (*OrganizationResponse, error)
	Update(name string, callerID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(name string, callerID uuid.UUID) error
}

// AuthServiceInterface defines the interface for the authentication service
type AuthServiceInterface interface {
	Login(req *LoginRequest) (*TokenResponse, error)
	Resolve(token string) (*auth.Identity, error)
}
