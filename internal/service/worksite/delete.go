package worksite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// DeleteWorksite removes a worksite and, via the schema's cascades, its
// projects. Admin only.
func (s *Service) DeleteWorksite(ctx context.Context, input DeleteWorksiteInput) error {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	site, err := s.worksites.GetByID(ctx, input.WorksiteID)
	if err != nil {
		return fmt.Errorf("get worksite: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.worksites.Delete(txCtx, site.ID); err != nil {
			return fmt.Errorf("delete worksite: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeWorksite,
			EntityID:   &site.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": site.Name,
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

	s.log.InfoContext(ctx, "worksite deleted",
		slog.String("worksite_id", site.ID.String()),
		slog.String("name", site.Name),
	)

	return nil
}
