package worksite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/adapter/provider/geocode"
	"github.com/molcom/timeclock-backend/internal/domain"
)

// CreateWorksite creates a worksite, resolving its address to coordinates.
// With a geocoder configured the address must resolve; without one the caller
// must supply coordinates manually. Admin only.
func (s *Service) CreateWorksite(ctx context.Context, input CreateWorksiteInput) (*domain.Worksite, error) {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	address := strings.TrimSpace(input.Address)

	lat, lon, err := s.resolveCoordinates(ctx, address, input.Latitude, input.Longitude)
	if err != nil {
		return nil, err
	}

	site := &domain.Worksite{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		Address:   address,
		Latitude:  lat,
		Longitude: lon,
		CreatedBy: requesterID,
	}

	var created *domain.Worksite
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.worksites.Create(txCtx, site)
		if createErr != nil {
			return fmt.Errorf("create worksite: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeWorksite,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":    created.Name,
				"address": created.Address,
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

	s.log.InfoContext(ctx, "worksite created",
		slog.String("worksite_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// resolveCoordinates geocodes the address when a geocoder is configured,
// otherwise falls back to manually supplied coordinates.
func (s *Service) resolveCoordinates(ctx context.Context, address string, manualLat, manualLon *float64) (float64, float64, error) {
	if s.geo.Enabled() {
		lat, lon, err := s.geo.Geocode(ctx, address)
		if err != nil {
			if errors.Is(err, geocode.ErrNoResults) {
				return 0, 0, domain.NewValidationError("address", "address not found")
			}
			s.log.ErrorContext(ctx, "geocoding failed", slog.String("error", err.Error()))
			return 0, 0, domain.NewValidationError("address", "failed to geocode address")
		}
		return lat, lon, nil
	}

	if manualLat == nil || manualLon == nil {
		return 0, 0, domain.NewValidationError("latitude", "coordinates required (geocoding not configured)")
	}
	return *manualLat, *manualLon, nil
}
