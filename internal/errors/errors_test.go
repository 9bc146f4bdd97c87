package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "organization"}
		assert.Equal(t, "organization not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "organization"}
		err2 := &NotFoundError{Entity: "organization"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "organization"}
		err2 := &NotFoundError{Entity: "admin"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrOrganizationNotFound, ErrOrganizationNotFound))
		assert.False(t, errors.Is(ErrOrganizationNotFound, ErrAdminNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrganizationNotFound))
		assert.False(t, IsNotFound(ErrInvalidCredentials))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "admin", Context: "with this email"}
		assert.Equal(t, "admin already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "organization"}
		assert.Equal(t, "organization already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "organization", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "organization", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrOrganizationExists))
		assert.False(t, IsAlreadyExists(ErrOrganizationNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrOrganizationNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrNotOrganizationAdmin))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotOrganizationAdmin))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})

	t.Run("authentication failures share one message", func(t *testing.T) {
		// Unknown email and wrong password must be indistinguishable.
		assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
	})
}

func TestPartialFailureError(t *testing.T) {
	t.Run("Error message wraps cause", func(t *testing.T) {
		cause := errors.New("drop schema failed")
		err := NewPartialFailureError("delete organization", "records removed but partition remains", cause)
		assert.Contains(t, err.Error(), "partial failure during delete organization")
		assert.Contains(t, err.Error(), "drop schema failed")
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("IsPartialFailure helper", func(t *testing.T) {
		err := NewPartialFailureError("create organization", "rollback failed", nil)
		assert.True(t, IsPartialFailure(err))
		assert.False(t, IsPartialFailure(ErrOrganizationNotFound))
	})

	t.Run("partial failure is not downgraded to other kinds", func(t *testing.T) {
		err := NewPartialFailureError("create organization", "rollback failed", nil)
		assert.False(t, IsNotFound(err))
		assert.False(t, IsAlreadyExists(err))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.True(t, IsAuthorization(err))
	})
}
