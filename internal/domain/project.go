package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups work at a worksite. Deactivated projects stay referenced by
// old entries but are hidden from new-entry pickers.
type Project struct {
	ID          uuid.UUID
	WorksiteID  uuid.UUID
	Name        string
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectFilter narrows project listings.
type ProjectFilter struct {
	WorksiteID *uuid.UUID
	ActiveOnly bool
}
