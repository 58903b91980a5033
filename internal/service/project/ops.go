package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/molcom/timeclock-backend/internal/domain"
)

// List returns projects, newest first, optionally narrowed to a worksite.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Project, error) {
	if _, err := requester(ctx); err != nil {
		return nil, err
	}

	projects, err := s.projects.List(ctx, domain.ProjectFilter{
		WorksiteID: input.WorksiteID,
		ActiveOnly: input.ActiveOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// CreateProject creates a project at an existing worksite. Admin only.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The FK would catch a missing worksite too, but looking it up first
	// turns the failure into a clean not-found.
	if _, err := s.worksites.GetByID(ctx, input.WorksiteID); err != nil {
		return nil, fmt.Errorf("get worksite: %w", err)
	}

	proj := &domain.Project{
		ID:          uuid.New(),
		WorksiteID:  input.WorksiteID,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		IsActive:    true,
	}
	if input.IsActive != nil {
		proj.IsActive = *input.IsActive
	}

	var created *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.projects.Create(txCtx, proj)
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":       created.Name,
				"worksiteId": created.WorksiteID.String(),
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

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", created.ID.String()),
		slog.String("worksite_id", created.WorksiteID.String()),
	)

	return created, nil
}

// UpdateProject edits a project's name, description, or active flag.
// Admin only.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	proj, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	changes := make(map[string]any)
	if input.Name != nil {
		proj.Name = strings.TrimSpace(*input.Name)
		changes["name"] = proj.Name
	}
	if input.Description != nil {
		proj.Description = input.Description
		changes["description"] = *input.Description
	}
	if input.IsActive != nil {
		proj.IsActive = *input.IsActive
		changes["isActive"] = proj.IsActive
	}

	if len(changes) == 0 {
		return proj, nil
	}

	var updated *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.projects.Update(txCtx, proj)
		if updateErr != nil {
			return fmt.Errorf("update project: %w", updateErr)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeProject,
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

	s.log.InfoContext(ctx, "project updated", slog.String("project_id", updated.ID.String()))

	return updated, nil
}

// DeleteProject removes a project. Admin only.
func (s *Service) DeleteProject(ctx context.Context, input DeleteProjectInput) error {
	requesterID, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	if err := input.Validate(); err != nil {
		return err
	}

	proj, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.projects.Delete(txCtx, proj.ID); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     requesterID,
			EntityType: domain.EntityTypeProject,
			EntityID:   &proj.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"name": proj.Name,
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

	s.log.InfoContext(ctx, "project deleted", slog.String("project_id", proj.ID.String()))

	return nil
}
