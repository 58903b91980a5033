package worksite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// UpdateWorksite edits a worksite. A changed address is re-geocoded when a
// geocoder is configured; an unchanged address keeps the stored coordinates.
// Admin only.
func (s *Service) UpdateWorksite(ctx context.Context, input UpdateWorksiteInput) (*domain.Worksite, error) {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	site, err := s.worksites.GetByID(ctx, input.WorksiteID)
	if err != nil {
		return nil, fmt.Errorf("get worksite: %w", err)
	}

	changes := make(map[string]any)
	if input.Name != nil {
		site.Name = strings.TrimSpace(*input.Name)
		changes["name"] = site.Name
	}

	if input.Address != nil {
		address := strings.TrimSpace(*input.Address)
		if address != site.Address {
			lat, lon, err := s.resolveCoordinates(ctx, address, input.Latitude, input.Longitude)
			if err != nil {
				return nil, err
			}
			site.Address = address
			site.Latitude = lat
			site.Longitude = lon
			changes["address"] = address
		}
	}

	if len(changes) == 0 {
		return site, nil
	}

	var updated *domain.Worksite
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.worksites.Update(txCtx, site)
		if updateErr != nil {
			return fmt.Errorf("update worksite: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeWorksite,
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

	s.log.InfoContext(ctx, "worksite updated", slog.String("worksite_id", updated.ID.String()))

	return updated, nil
}
