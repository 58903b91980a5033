package domain

import (
	"time"

	"github.com/google/uuid"
)

// SystemSettings is the single row of instance-wide configuration editable
// by administrators.
type SystemSettings struct {
	ID          uuid.UUID
	CompanyName string
	LogoPath    *string
	// ReminderDay is the weekday unsubmitted-hours reminders go out on
	// (0 = Sunday .. 6 = Saturday).
	ReminderDay int
	UpdatedAt   time.Time
}
