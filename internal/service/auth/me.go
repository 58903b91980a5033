package auth

import (
	"context"
	"fmt"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/pkg/ctxutil"
)

// Me returns the authenticated user's profile.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me get user: %w", err)
	}

	return user, nil
}
