package worksite

import (
	"context"
	"fmt"
	"sort"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// WorksiteWithDistance is a worksite optionally annotated with the distance
// from the caller's position.
type WorksiteWithDistance struct {
	domain.Worksite
	// DistanceMeters is set only when the caller supplied coordinates.
	DistanceMeters *float64
}

// List returns all worksites with their active projects. When the input
// carries caller coordinates the result is annotated with distances and
// sorted nearest first; otherwise repository order is kept.
func (s *Service) List(ctx context.Context, input ListInput) ([]WorksiteWithDistance, error) {
	if _, err := requester(ctx); err != nil {
		return nil, err
	}

	sites, err := s.worksites.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list worksites: %w", err)
	}

	result := make([]WorksiteWithDistance, len(sites))
	for i := range sites {
		result[i] = WorksiteWithDistance{Worksite: sites[i]}
	}

	if input.Latitude != nil && input.Longitude != nil {
		for i := range result {
			d := result[i].Worksite.DistanceMeters(*input.Latitude, *input.Longitude)
			result[i].DistanceMeters = &d
		}
		sort.Slice(result, func(i, j int) bool {
			return *result[i].DistanceMeters < *result[j].DistanceMeters
		})
	}

	return result, nil
}
