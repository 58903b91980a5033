package timeentry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// DeleteEntry removes an entry and its task links. The attached photo is
// deleted best-effort after the row is gone.
func (s *Service) DeleteEntry(ctx context.Context, input DeleteEntryInput) error {
	requesterID, isAdmin, err := requester(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	entry, err := s.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return fmt.Errorf("get time entry: %w", err)
	}

	if err := authorize(entry, requesterID, isAdmin); err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.entries.Delete(txCtx, entry.ID); err != nil {
			return fmt.Errorf("delete time entry: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeTimeEntry,
			EntityID:   &entry.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"userId":    entry.UserID.String(),
				"entryDate": entry.EntryDate.Format("2006-01-02"),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.deletePhoto(ctx, entry.PhotoPath)

	s.log.InfoContext(ctx, "time entry deleted",
		slog.String("entry_id", entry.ID.String()),
		slog.String("user_id", entry.UserID.String()),
	)

	return nil
}
