package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// PartialFailureError reports a multi-step operation that left the system in
// an inconsistent intermediate state and could not be rolled back.
type PartialFailureError struct {
	Op      string
	Message string
	Err     error
}

func (e *PartialFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("partial failure during %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("partial failure during %s: %s", e.Op, e.Message)
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrAdminNotFound        = &NotFoundError{Entity: "admin"}
	ErrPartitionNotFound    = &NotFoundError{Entity: "partition"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name"}
	ErrAdminExists        = &AlreadyExistsError{Entity: "admin", Context: "with this email"}
	ErrPartitionExists    = &AlreadyExistsError{Entity: "partition", Context: "with this key"}
)

// Authentication and Authorization Errors
var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so callers cannot enumerate registered accounts.
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid email or password"}
	ErrInvalidToken       = &AuthenticationError{Message: "invalid or expired token"}
	ErrMissingCredentials = &AuthenticationError{Message: "authorization required"}

	ErrNotOrganizationAdmin = &AuthorizationError{Message: "only the organization admin can perform this operation"}
)

// Configuration Errors
var (
	ErrJWTSecretNotSet      = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
	ErrUnsupportedAlgorithm = &ConfigurationError{Message: "unsupported JWT signing algorithm"}
)

// Business Logic Errors
var (
	ErrInvalidPartitionKey = errors.New("invalid partition key")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsPartialFailure checks if an error is a PartialFailureError
func IsPartialFailure(err error) bool {
	var partialErr *PartialFailureError
	return errors.As(err, &partialErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewPartialFailureError creates a new PartialFailureError for a failed
// multi-step operation whose compensation also failed.
func NewPartialFailureError(op, message string, err error) error {
	return &PartialFailureError{Op: op, Message: message, Err: err}
}
