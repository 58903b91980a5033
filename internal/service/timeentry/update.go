package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// UpdateEntry edits an existing entry. Time changes are re-checked for
// overlaps against the user's other entries; replacing the photo deletes the
// previous file after the change is committed.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.TimeEntry, error) {
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

	oldPhoto := entry.PhotoPath
	changes := map[string]any{}

	if input.WorksiteID != nil {
		entry.WorksiteID = *input.WorksiteID
		changes["worksiteId"] = input.WorksiteID.String()
	}
	if input.ProjectID != nil {
		entry.ProjectID = input.ProjectID
		changes["projectId"] = input.ProjectID.String()
	}
	if input.EntryDate != nil {
		entry.EntryDate = *input.EntryDate
		changes["entryDate"] = input.EntryDate.Format("2006-01-02")
	}
	if input.StartTime != nil {
		entry.StartTime = input.StartTime
		changes["startTime"] = true
	}
	if input.EndTime != nil {
		entry.EndTime = input.EndTime
		changes["endTime"] = true
	}
	if input.BreakMinutes != nil {
		entry.BreakMinutes = *input.BreakMinutes
		changes["breakMinutes"] = *input.BreakMinutes
	}
	if input.TotalHours != nil {
		entry.TotalHours = input.TotalHours
		changes["totalHours"] = *input.TotalHours
	}
	if input.Notes != nil {
		entry.Notes = input.Notes
		changes["notes"] = true
	}
	if input.PhotoPath != nil {
		entry.PhotoPath = input.PhotoPath
		changes["photo"] = true
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	timesChanged := input.StartTime != nil || input.EndTime != nil
	if timesChanged && entry.EntryType == domain.EntryTypeTimed && entry.StartTime != nil && entry.EndTime != nil {
		if err := s.assertNoOverlap(ctx, entry.UserID, *entry.StartTime, *entry.EndTime, entry.ID); err != nil {
			return nil, err
		}
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
			changes["tasks"] = len(input.TaskIDs)
		} else {
			updated.TaskIDs = entry.TaskIDs
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeTimeEntry,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// The old photo is orphaned once the new path is committed.
	if input.PhotoPath != nil && oldPhoto != nil && (updated.PhotoPath == nil || *oldPhoto != *updated.PhotoPath) {
		s.deletePhoto(ctx, oldPhoto)
	}

	s.log.InfoContext(ctx, "time entry updated",
		slog.String("entry_id", updated.ID.String()),
		slog.String("user_id", updated.UserID.String()),
	)

	return updated, nil
}
