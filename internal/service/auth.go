package service

import (
	"errors"
	"fmt"

	"org-management-backend/internal/auth"
	apperrors "org-management-backend/internal/errors"
	"org-management-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AuthService handles admin login and bearer-token resolution
type AuthService struct {
	adminRepo repository.AdminRepositoryInterface
	tokens    *auth.TokenService
	validator *validator.Validate
}

// NewAuthService creates a new authentication service
func NewAuthService(
	adminRepo repository.AdminRepositoryInterface,
	tokens *auth.TokenService,
	validator *validator.Validate,
) *AuthService {
	return &AuthService{
		adminRepo: adminRepo,
		tokens:    tokens,
		validator: validator,
	}
}

// LoginRequest represents the admin login request
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse represents a successful login
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Admin       AdminResponse `json:"admin"`
}

// Login authenticates an admin and issues a bearer token. Unknown email and
// wrong password produce the same error so the endpoint cannot be used to
// enumerate registered accounts.
func (s *AuthService) Login(req *LoginRequest) (*TokenResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	admin, err := s.adminRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !auth.VerifyPassword(req.Password, admin.HashedPassword) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(admin.ID, admin.OrganizationName, admin.PartitionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Admin:       *toAdminResponse(admin),
	}, nil
}

// Resolve verifies a bearer token and returns the caller identity it asserts.
// Every token failure maps to an authentication error.
func (s *AuthService) Resolve(token string) (*auth.Identity, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	return auth.IdentityFromClaims(claims)
}
