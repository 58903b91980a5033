package timeentry

import (
	"context"
	"errors"
	"fmt"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// ActiveTimer returns the target user's running entry, or nil when no timer
// is active. Admins may inspect other users.
func (s *Service) ActiveTimer(ctx context.Context, input ActiveTimerInput) (*domain.TimeEntry, error) {
	requesterID, isAdmin, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	userID := targetUser(requesterID, isAdmin, input.UserID)

	entry, err := s.entries.GetActiveTimer(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active timer: %w", err)
	}

	return entry, nil
}
