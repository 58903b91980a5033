// Package settings implements instance-wide configuration. Reads are open to
// every authenticated user (the company name is rendered in the UI header);
// updates require an admin.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
	"github.com/molcom/timeclock-backend/pkg/ctxutil"
)

type settingsRepo interface {
	Get(ctx context.Context) (*domain.SystemSettings, error)
	Update(ctx context.Context, s *domain.SystemSettings) (*domain.SystemSettings, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides settings operations.
type Service struct {
	settings settingsRepo
	audit    auditLogger
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Settings service.
func NewService(log *slog.Logger, settings settingsRepo, audit auditLogger, tx txManager) *Service {
	return &Service{
		settings: settings,
		audit:    audit,
		tx:       tx,
		log:      log.With("service", "settings"),
	}
}

// UpdateSettingsInput holds the parameters for editing the settings row.
// Nil fields are left unchanged.
type UpdateSettingsInput struct {
	CompanyName *string
	LogoPath    *string
	// ReminderDay is the weekday reminders go out on (0 = Sunday .. 6 = Saturday).
	ReminderDay *int
}

// Validate checks all fields and collects all errors.
func (i UpdateSettingsInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyName != nil && strings.TrimSpace(*i.CompanyName) == "" {
		errs = append(errs, domain.FieldError{Field: "companyName", Message: "must not be empty"})
	}
	if i.ReminderDay != nil && (*i.ReminderDay < 0 || *i.ReminderDay > 6) {
		errs = append(errs, domain.FieldError{Field: "reminderDay", Message: "must be between 0 and 6"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Get returns the settings row.
func (s *Service) Get(ctx context.Context) (*domain.SystemSettings, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	return settings, nil
}

// Update edits the settings row. Admin only.
func (s *Service) Update(ctx context.Context, input UpdateSettingsInput) (*domain.SystemSettings, error) {
	requesterID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}

	changes := make(map[string]any)
	if input.CompanyName != nil {
		current.CompanyName = strings.TrimSpace(*input.CompanyName)
		changes["companyName"] = current.CompanyName
	}
	if input.LogoPath != nil {
		current.LogoPath = input.LogoPath
		changes["logoPath"] = *input.LogoPath
	}
	if input.ReminderDay != nil {
		current.ReminderDay = *input.ReminderDay
		changes["reminderDay"] = current.ReminderDay
	}

	if len(changes) == 0 {
		return current, nil
	}

	var updated *domain.SystemSettings
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.settings.Update(txCtx, current)
		if updateErr != nil {
			return fmt.Errorf("update settings: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeSettings,
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

	s.log.InfoContext(ctx, "settings updated", slog.String("settings_id", updated.ID.String()))

	return updated, nil
}
