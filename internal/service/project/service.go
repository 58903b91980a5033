// Package project implements project management. Reads are open to every
// authenticated user; mutations require an admin.
package project

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/pkg/ctxutil"
)

type projectRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type worksiteRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Worksite, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project operations.
type Service struct {
	projects  projectRepo
	worksites worksiteRepo
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Project service.
func NewService(log *slog.Logger, projects projectRepo, worksites worksiteRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		projects:  projects,
		worksites: worksites,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "project"),
	}
}

// requester returns the authenticated user's ID.
func requester(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// requireAdmin returns the requester's ID after checking the admin flag.
func requireAdmin(ctx context.Context) (uuid.UUID, error) {
	userID, err := requester(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return uuid.Nil, domain.ErrForbidden
	}
	return userID, nil
}
