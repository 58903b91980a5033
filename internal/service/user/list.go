package user

import (
	"context"
	"fmt"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// List returns all user accounts. Admin only.
func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}
