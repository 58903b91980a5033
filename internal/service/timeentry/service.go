// Package timeentry implements the time entry lifecycle: clocking in and
// out, retroactive and duration-only entries, and the conflict rules that
// keep one user's timeline consistent.
package timeentry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/pkg/ctxutil"
)

type entryRepo interface {
	Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error)
	Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error)
	GetActiveTimer(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error)
	FindOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*domain.TimeEntry, error)
	ReplaceTasks(ctx context.Context, entryID uuid.UUID, taskIDs []uuid.UUID) error
}

type photoStore interface {
	Delete(relPath string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides time entry lifecycle operations.
type Service struct {
	entries entryRepo
	photos  photoStore
	audit   auditLogger
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new time entry service.
func NewService(
	log *slog.Logger,
	entries entryRepo,
	photos photoStore,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		entries: entries,
		photos:  photos,
		audit:   audit,
		tx:      tx,
		log:     log.With("service", "timeentry"),
	}
}

// requester extracts the authenticated user and admin flag from the context.
func requester(ctx context.Context) (uuid.UUID, bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, false, domain.ErrUnauthorized
	}
	return userID, ctxutil.IsAdminCtx(ctx), nil
}

// targetUser resolves the user an operation applies to. Admins may act on
// behalf of another user; everyone else always acts on themselves.
func targetUser(requesterID uuid.UUID, isAdmin bool, requested *uuid.UUID) uuid.UUID {
	if isAdmin && requested != nil && *requested != uuid.Nil {
		return *requested
	}
	return requesterID
}

// authorize checks that the requester owns the entry or is an admin.
func authorize(e *domain.TimeEntry, requesterID uuid.UUID, isAdmin bool) error {
	if e.UserID != requesterID && !isAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// assertNoActiveTimer fails with ActiveTimerError when the user already has a
// running entry. This check is advisory: two concurrent creates can both pass
// it, so a short race window remains.
func (s *Service) assertNoActiveTimer(ctx context.Context, userID uuid.UUID) error {
	active, err := s.entries.GetActiveTimer(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get active timer: %w", err)
	}
	return &domain.ActiveTimerError{Entry: active}
}

// assertNoOverlap fails with OverlapError when [start, end] touches any of
// the user's timed entries. excludeID skips the entry being edited.
func (s *Service) assertNoOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) error {
	conflict, err := s.entries.FindOverlap(ctx, userID, start, end, excludeID)
	if err != nil {
		return fmt.Errorf("find overlap: %w", err)
	}
	if conflict != nil {
		return &domain.OverlapError{Entry: conflict}
	}
	return nil
}

// deletePhoto removes a stored photo, logging instead of failing: entry
// mutations must not be blocked by a filesystem hiccup.
func (s *Service) deletePhoto(ctx context.Context, relPath *string) {
	if relPath == nil || *relPath == "" {
		return
	}
	if err := s.photos.Delete(*relPath); err != nil {
		s.log.WarnContext(ctx, "failed to delete photo",
			slog.String("path", *relPath),
			slog.String("error", err.Error()),
		)
	}
}
