package task

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// CreateTaskInput holds the parameters for creating a task.
type CreateTaskInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateTaskInput) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return domain.NewValidationError("name", "required")
	}
	return nil
}

// UpdateTaskInput holds the parameters for editing a task. Nil fields are
// left unchanged.
type UpdateTaskInput struct {
	TaskID uuid.UUID

	Name        *string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i UpdateTaskInput) Validate() error {
	var errs []domain.FieldError

	if i.TaskID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "taskId", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// DeleteTaskInput holds the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i DeleteTaskInput) Validate() error {
	if i.TaskID == uuid.Nil {
		return domain.NewValidationError("taskId", "required")
	}
	return nil
}

// List returns all tasks ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.Task, error) {
	if _, err := requester(ctx); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// CreateTask creates a task. Admin only.
func (s *Service) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	task := &domain.Task{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		CreatedBy:   requesterID,
	}

	var created *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.tasks.Create(txCtx, task)
		if createErr != nil {
			return fmt.Errorf("create task: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeTask,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name": created.Name,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "task created",
		slog.String("task_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}

// UpdateTask edits a task's name or description. Admin only.
func (s *Service) UpdateTask(ctx context.Context, input UpdateTaskInput) (*domain.Task, error) {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}

	changes := make(map[string]any)
	if input.Name != nil {
		task.Name = strings.TrimSpace(*input.Name)
		changes["name"] = task.Name
	}
	if input.Description != nil {
		task.Description = input.Description
		changes["description"] = *input.Description
	}

	if len(changes) == 0 {
		return task, nil
	}

	var updated *domain.Task
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.tasks.Update(txCtx, task)
		if updateErr != nil {
			return fmt.Errorf("update task: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeTask,
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

	s.log.InfoContext(ctx, "task updated", slog.String("task_id", updated.ID.String()))

	return updated, nil
}

// DeleteTask removes a task. Links from time entries disappear with it via
// the junction table's cascade. Admin only.
func (s *Service) DeleteTask(ctx context.Context, input DeleteTaskInput) error {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	task, err := s.tasks.GetByID(ctx, input.TaskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tasks.Delete(txCtx, task.ID); err != nil {
			return fmt.Errorf("delete task: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeTask,
			EntityID:   &task.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": task.Name,
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

	s.log.InfoContext(ctx, "task deleted", slog.String("task_id", task.ID.String()))

	return nil
}
