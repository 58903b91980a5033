package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// UpdateUser edits an account's username, full name, or admin flag.
// Admin only. An admin cannot revoke their own admin flag, so at least one
// admin always remains.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error) {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	changes := make(map[string]any)
	if input.Username != nil {
		user.Username = strings.TrimSpace(*input.Username)
		changes["username"] = user.Username
	}
	if input.FullName != nil {
		user.FullName = strings.TrimSpace(*input.FullName)
		changes["fullName"] = user.FullName
	}
	if input.IsAdmin != nil {
		if user.ID == requesterID && !*input.IsAdmin {
			return nil, domain.NewValidationError("isAdmin", "cannot revoke your own admin access")
		}
		user.IsAdmin = *input.IsAdmin
		changes["isAdmin"] = user.IsAdmin
	}

	if len(changes) == 0 {
		return user, nil
	}

	var updated *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.users.Update(txCtx, user)
		if updateErr != nil {
			return fmt.Errorf("update user: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeUser,
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

	s.log.InfoContext(ctx, "user updated", slog.String("user_id", updated.ID.String()))

	return updated, nil
}
