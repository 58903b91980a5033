package timeentry

import (
	"time"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// CreateEntryInput holds the parameters for creating a time entry. Leaving
// EndTime nil on a timed entry starts a running timer (clock-in); setting it
// records a completed block. EntryType defaults to timed.
type CreateEntryInput struct {
	// UserID lets an admin create an entry on behalf of another user.
	// Ignored for non-admin requesters.
	UserID *uuid.UUID

	WorksiteID uuid.UUID
	ProjectID  *uuid.UUID
	EntryType  domain.EntryType

	EntryDate    *time.Time
	StartTime    *time.Time
	EndTime      *time.Time
	BreakMinutes int
	TotalHours   *float64

	Notes     *string
	PhotoPath *string
	TaskIDs   []uuid.UUID
}

// Validate checks the structural parts of the input. Field rules that depend
// on the entry type are enforced by domain.TimeEntry.Validate on the built
// entry.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.WorksiteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "worksiteId", Message: "required"})
	}
	if i.EntryType != "" && !i.EntryType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entryType", Message: "must be 'timed' or 'duration'"})
	}
	if i.EndTime != nil && i.StartTime == nil {
		errs = append(errs, domain.FieldError{Field: "startTime", Message: "required when endTime is set"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ClockOutInput holds the parameters for closing a running timer.
// A nil EndTime means "now".
type ClockOutInput struct {
	EntryID      uuid.UUID
	EndTime      *time.Time
	BreakMinutes *int
	Notes        *string
	// TaskIDs replaces the linked tasks when non-nil.
	TaskIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ClockOutInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("entryId", "required")
	}
	return nil
}

// UpdateEntryInput holds the parameters for editing an entry. Nil fields are
// left unchanged; TaskIDs, when non-nil, replaces the linked tasks wholesale.
type UpdateEntryInput struct {
	EntryID uuid.UUID

	WorksiteID *uuid.UUID
	ProjectID  *uuid.UUID

	EntryDate    *time.Time
	StartTime    *time.Time
	EndTime      *time.Time
	BreakMinutes *int
	TotalHours   *float64

	Notes     *string
	PhotoPath *string
	TaskIDs   []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("entryId", "required")
	}
	return nil
}

// DeleteEntryInput holds the parameters for deleting an entry.
type DeleteEntryInput struct {
	EntryID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteEntryInput) Validate() error {
	if i.EntryID == uuid.Nil {
		return domain.NewValidationError("entryId", "required")
	}
	return nil
}

// ListInput holds the filters for listing entries. Non-admins are always
// scoped to their own entries regardless of UserID.
type ListInput struct {
	UserID *uuid.UUID
	From   *time.Time
	To     *time.Time
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	if i.From != nil && i.To != nil && i.To.Before(*i.From) {
		return domain.NewValidationError("to", "must not be before from")
	}
	return nil
}

// ActiveTimerInput holds the parameters for looking up a running timer.
// UserID lets an admin inspect another user's timer.
type ActiveTimerInput struct {
	UserID *uuid.UUID
}
