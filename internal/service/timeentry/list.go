package timeentry

import (
	"context"
	"fmt"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// List returns entries newest-first. Non-admins only ever see their own
// entries; admins may filter by user or see everyone's.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.TimeEntry, error) {
	requesterID, isAdmin, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.TimeEntryFilter{
		UserID: input.UserID,
		From:   input.From,
		To:     input.To,
	}
	if !isAdmin {
		filter.UserID = &requesterID
	}

	entries, err := s.entries.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}

	return entries, nil
}
