package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// CreateEntry records a new time entry for the requester (or, for admins,
// another user). Timed entries are refused while the target user has a
// running timer, and closed timed entries must not overlap existing ones.
// Duration entries skip both conflict checks.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.TimeEntry, error) {
	requesterID, isAdmin, err := requester(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entryType := input.EntryType
	if entryType == "" {
		entryType = domain.EntryTypeTimed
	}

	entry := &domain.TimeEntry{
		ID:           uuid.New(),
		UserID:       targetUser(requesterID, isAdmin, input.UserID),
		WorksiteID:   input.WorksiteID,
		ProjectID:    input.ProjectID,
		EntryType:    entryType,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		BreakMinutes: input.BreakMinutes,
		TotalHours:   input.TotalHours,
		Notes:        input.Notes,
		PhotoPath:    input.PhotoPath,
		TaskIDs:      input.TaskIDs,
	}
	if input.EntryDate != nil {
		entry.EntryDate = *input.EntryDate
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if entry.EntryType == domain.EntryTypeTimed {
		if err := s.assertNoActiveTimer(ctx, entry.UserID); err != nil {
			return nil, err
		}
		if entry.EndTime != nil {
			if err := s.assertNoOverlap(ctx, entry.UserID, *entry.StartTime, *entry.EndTime, uuid.Nil); err != nil {
				return nil, err
			}
		}
	}

	entry.Derive()

	var created *domain.TimeEntry
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.entries.Create(txCtx, entry)
		if createErr != nil {
			return fmt.Errorf("create time entry: %w", createErr)
		}

		if len(entry.TaskIDs) > 0 {
			if err := s.entries.ReplaceTasks(txCtx, created.ID, entry.TaskIDs); err != nil {
				return fmt.Errorf("link tasks: %w", err)
			}
			created.TaskIDs = entry.TaskIDs
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeTimeEntry,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"entryType":  string(created.EntryType),
				"userId":     created.UserID.String(),
				"worksiteId": created.WorksiteID.String(),
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

	s.log.InfoContext(ctx, "time entry created",
		slog.String("entry_id", created.ID.String()),
		slog.String("user_id", created.UserID.String()),
		slog.String("entry_type", string(created.EntryType)),
		slog.Bool("running", created.IsActive),
	)

	return created, nil
}
