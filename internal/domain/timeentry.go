package domain

import (
	"time"

	"github.com/google/uuid"
)

// TimeEntry is a single record on a user's timeline: either a timed entry
// bounded by clock timestamps (possibly still running), or a duration-only
// entry recording a date and a total-hours value.
type TimeEntry struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	WorksiteID uuid.UUID
	ProjectID  *uuid.UUID

	EntryType EntryType

	// EntryDate is authoritative for duration entries and derived from
	// StartTime for timed entries.
	EntryDate time.Time

	StartTime *time.Time
	EndTime   *time.Time

	BreakMinutes int
	TotalHours   *float64
	Notes        *string
	PhotoPath    *string

	// IsActive is true only for a timed entry with a start and no end.
	IsActive bool

	TaskIDs []uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TimeEntryFilter narrows List queries. Nil fields are ignored.
type TimeEntryFilter struct {
	UserID *uuid.UUID
	// From/To bound the entries' dates (inclusive), so duration entries
	// without clock times are covered too.
	From *time.Time
	To   *time.Time
}

// IsRunning reports whether the entry is an open timer.
func (e *TimeEntry) IsRunning() bool {
	return e.EntryType == EntryTypeTimed && e.StartTime != nil && e.EndTime == nil
}

// Derive recomputes all dependent fields from the primary ones. It replaces
// the storage-layer lifecycle hooks of older revisions with an explicit pure
// function so the rules are testable without a database.
//
// For duration entries: clock fields and the active flag are cleared.
// For timed entries: EntryDate is the UTC date of StartTime; a closed entry
// gets TotalHours computed and IsActive cleared; an open entry gets
// TotalHours cleared and IsActive set.
func (e *TimeEntry) Derive() {
	if e.EntryType == EntryTypeDuration {
		e.StartTime = nil
		e.EndTime = nil
		e.IsActive = false
		return
	}

	if e.StartTime != nil {
		e.EntryDate = e.StartTime.UTC().Truncate(24 * time.Hour)
	}

	if e.StartTime != nil && e.EndTime != nil {
		hours := ComputeTotalHours(*e.StartTime, *e.EndTime, e.BreakMinutes)
		e.TotalHours = &hours
		e.IsActive = false
	} else {
		e.TotalHours = nil
		e.IsActive = true
	}
}

// Validate checks the entry's primary fields against the rules for its type.
// It does not consult other entries; overlap and active-timer checks live in
// the lifecycle service.
func (e *TimeEntry) Validate() error {
	var errs []FieldError

	if e.UserID == uuid.Nil {
		errs = append(errs, FieldError{Field: "userId", Message: "required"})
	}
	if e.WorksiteID == uuid.Nil {
		errs = append(errs, FieldError{Field: "worksiteId", Message: "required"})
	}
	if !e.EntryType.IsValid() {
		errs = append(errs, FieldError{Field: "entryType", Message: "must be 'timed' or 'duration'"})
	}
	if !IsValidBreakMinutes(e.BreakMinutes) {
		errs = append(errs, FieldError{Field: "breakMinutes", Message: "must be one of 0, 15, 30, 60"})
	}

	switch e.EntryType {
	case EntryTypeDuration:
		if e.EntryDate.IsZero() {
			errs = append(errs, FieldError{Field: "entryDate", Message: "required for duration entries"})
		}
		if e.TotalHours == nil || *e.TotalHours <= 0 {
			errs = append(errs, FieldError{Field: "totalHours", Message: "must be greater than 0 for duration entries"})
		}
	case EntryTypeTimed:
		if e.StartTime == nil {
			errs = append(errs, FieldError{Field: "startTime", Message: "required for timed entries"})
		}
		if e.StartTime != nil && e.EndTime != nil {
			if !e.EndTime.After(*e.StartTime) {
				errs = append(errs, FieldError{Field: "endTime", Message: "must be after start time"})
			} else if e.EndTime.Sub(*e.StartTime).Minutes() <= float64(e.BreakMinutes) {
				// A break consuming the whole interval would yield zero or
				// negative worked hours.
				errs = append(errs, FieldError{Field: "breakMinutes", Message: "must be shorter than the worked interval"})
			}
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
