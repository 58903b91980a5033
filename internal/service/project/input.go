package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
// IsActive defaults to true when nil.
type CreateProjectInput struct {
	WorksiteID  uuid.UUID
	Name        string
	Description *string
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.WorksiteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "worksiteId", Message: "required"})
	}
	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for editing a project. Nil fields
// are left unchanged. A project cannot move between worksites.
type UpdateProjectInput struct {
	ProjectID uuid.UUID

	Name        *string
	Description *string
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "projectId", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteProjectInput holds the parameters for deleting a project.
type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteProjectInput) Validate() error {
	if i.ProjectID == uuid.Nil {
		return domain.NewValidationError("projectId", "required")
	}
	return nil
}

// ListInput holds the optional filters for listing projects.
type ListInput struct {
	WorksiteID *uuid.UUID
	ActiveOnly bool
}
