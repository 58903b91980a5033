package worksite

import (
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// CreateWorksiteInput holds the parameters for creating a worksite.
// Latitude/Longitude are only consulted when no geocoder is configured.
type CreateWorksiteInput struct {
	Name    string
	Address string

	Latitude  *float64
	Longitude *float64
}

// Validate checks all fields and collects all errors.
func (i CreateWorksiteInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(i.Address) == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWorksiteInput holds the parameters for editing a worksite. Nil fields
// are left unchanged. Changing the address re-geocodes it when a geocoder is
// configured.
type UpdateWorksiteInput struct {
	WorksiteID uuid.UUID

	Name    *string
	Address *string

	Latitude  *float64
	Longitude *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateWorksiteInput) Validate() error {
	var errs []domain.FieldError

	if i.WorksiteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "worksiteId", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if i.Address != nil && strings.TrimSpace(*i.Address) == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteWorksiteInput holds the parameters for deleting a worksite.
type DeleteWorksiteInput struct {
	WorksiteID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteWorksiteInput) Validate() error {
	if i.WorksiteID == uuid.Nil {
		return domain.NewValidationError("worksiteId", "required")
	}
	return nil
}

// ListInput holds the optional caller coordinates. When both are present the
// result is annotated with distances and sorted nearest first.
type ListInput struct {
	Latitude  *float64
	Longitude *float64
}
