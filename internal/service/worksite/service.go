// Package worksite implements worksite management. Reads are open to every
// authenticated user; mutations require an admin. Addresses are resolved to
// coordinates through a geocoder when one is configured, with manually
// supplied coordinates as the fallback.
package worksite

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/pkg/ctxutil"
)

type worksiteRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Worksite, error)
	List(ctx context.Context) ([]domain.Worksite, error)
	Create(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error)
	Update(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type geocoder interface {
	Enabled() bool
	Geocode(ctx context.Context, address string) (float64, float64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides worksite operations.
type Service struct {
	worksites worksiteRepo
	geo       geocoder
	audit     auditLogger
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Worksite service.
func NewService(log *slog.Logger, worksites worksiteRepo, geo geocoder, audit auditLogger, tx txManager) *Service {
	return &Service{
		worksites: worksites,
		geo:       geo,
		audit:     audit,
		tx:        tx,
		log:       log.With("service", "worksite"),
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
