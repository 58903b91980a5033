package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// ResetPassword replaces an account's password with a new bcrypt hash.
// Admin only. The audit record never contains the password itself.
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	hash, err := hashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.UpdatePassword(txCtx, input.UserID, hash); err != nil {
			return fmt.Errorf("update password: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &input.UserID,
			Action:     domain.AuditActionUpdate,
			Changes: map[string]any{
				"passwordReset": true,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "password reset", slog.String("user_id", input.UserID.String()))

	return nil
}
