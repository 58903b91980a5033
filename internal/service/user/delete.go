package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// DeleteUser removes an account and, via the schema's cascades, its time
// entries. Admin only. Admins cannot delete their own account.
func (s *Service) DeleteUser(ctx context.Context, input DeleteUserInput) error {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	if input.UserID == requesterID {
		return domain.NewValidationError("userId", "cannot delete your own account")
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.Delete(txCtx, user.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &user.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"username": user.Username,
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

	s.log.InfoContext(ctx, "user deleted",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username),
	)

	return nil
}
