package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is an append-only log entry describing a mutation.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
