package timeentry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// ClockOut closes a running timer. The end time defaults to now, must land
// after the start, and the resulting interval must not overlap any other
// entry of the same user. Break, notes, and task links may be set in the
// same call.
func (s *Service) ClockOut(ctx context.Context, input ClockOutInput) (*domain.TimeEntry, error) {
	requesterID, isAdmin, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, fmt.Errorf("get time entry: %w", err)
	}

	if err := authorize(entry, requesterID, isAdmin); err != nil {
		return nil, err
	}

	if !entry.IsRunning() {
		return nil, domain.NewValidationError("entryId", "entry is not a running timer")
	}

	end := time.Now().UTC()
	if input.EndTime != nil {
		end = *input.EndTime
	}
	entry.EndTime = &end

	if input.BreakMinutes != nil {
		entry.BreakMinutes = *input.BreakMinutes
	}
	if input.Notes != nil {
		entry.Notes = input.Notes
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.assertNoOverlap(ctx, entry.UserID, *entry.StartTime, end, entry.ID); err != nil {
		return nil, err
	}

	entry.Derive()

	var updated *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.entries.Update(txCtx, entry)
		if updateErr != nil {
			return fmt.Errorf("update time entry: %w", updateErr)
		}

		if input.TaskIDs != nil {
			if err := s.entries.ReplaceTasks(txCtx, updated.ID, input.TaskIDs); err != nil {
				return fmt.Errorf("link tasks: %w", err)
			}
			updated.TaskIDs = input.TaskIDs
		} else {
			updated.TaskIDs = entry.TaskIDs
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeTimeEntry,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"clockOut": end.Format(time.RFC3339),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "timer clocked out",
		slog.String("entry_id", updated.ID.String()),
		slog.String("user_id", updated.UserID.String()),
	)

	return updated, nil
}
