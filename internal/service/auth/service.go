// Package auth implements username/password authentication and token issuing.
package auth

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, isAdmin bool) (string, error)
}

// Service provides authentication operations.
type Service struct {
	users userRepo
	jwt   jwtManager
	log   *slog.Logger
}

// NewService creates a new Auth service.
func NewService(log *slog.Logger, users userRepo, jwt jwtManager) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
		log:   log.With("service", "auth"),
	}
}

// AuthResult bundles the issued token with the authenticated user.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
