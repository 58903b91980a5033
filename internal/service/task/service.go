// Package task implements task management. Reads are open to every
// authenticated user; mutations require an admin.
package task

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/pkg/ctxutil"
)

type taskRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides task operations.
type Service struct {
	tasks taskRepo
	audit auditLogger
	tx    txManager
	log   *slog.Logger
}

// NewService creates a new Task service.
func NewService(log *slog.Logger, tasks taskRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		tasks: tasks,
		audit: audit,
		tx:    tx,
		log:   log.With("service", "task"),
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
