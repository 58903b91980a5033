package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an employee or administrator account.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	FullName     string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
