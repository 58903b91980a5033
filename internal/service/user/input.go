package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

const minPasswordLength = 4

// CreateUserInput holds the parameters for creating a user account.
type CreateUserInput struct {
	Username string
	Password string
	FullName string
	IsAdmin  bool
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(i.Password) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "password", Message: "must be at least 4 characters"})
	}
	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "fullName", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds the parameters for editing a user account. Nil fields
// are left unchanged. Passwords are changed through ResetPassword, not here.
type UpdateUserInput struct {
	UserID uuid.UUID

	Username *string
	FullName *string
	IsAdmin  *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if i.Username != nil && strings.TrimSpace(*i.Username) == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "must not be empty"})
	}
	if i.FullName != nil && strings.TrimSpace(*i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "fullName", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResetPasswordInput holds the parameters for setting a new password.
type ResetPasswordInput struct {
	UserID      uuid.UUID
	NewPassword string
}

// Validate checks all fields and collects all errors.
func (i ResetPasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "userId", Message: "required"})
	}
	if len(i.NewPassword) < minPasswordLength {
		errs = append(errs, domain.FieldError{Field: "newPassword", Message: "must be at least 4 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteUserInput holds the parameters for deleting a user account.
type DeleteUserInput struct {
	UserID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteUserInput) Validate() error {
	if i.UserID == uuid.Nil {
		return domain.NewValidationError("userId", "required")
	}
	return nil
}
