package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is a named activity that can be attached to time entries (M2M).
type Task struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
