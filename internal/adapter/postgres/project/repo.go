// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/molcom/timeclock-backend/internal/adapter/postgres"
	"github.com/molcom/timeclock-backend/internal/domain"
)

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const projectColumns = `id, worksite_id, name, description, is_active, created_at, updated_at`

const createProjectSQL = `
INSERT INTO projects (id, worksite_id, name, description, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + projectColumns

const updateProjectSQL = `
UPDATE projects
SET name = $2, description = $3, is_active = $4, updated_at = NOW()
WHERE id = $1
RETURNING ` + projectColumns

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return p, nil
}

// List returns projects, newest first, optionally narrowed to a worksite or
// to active projects only.
func (r *Repo) List(ctx context.Context, filter domain.ProjectFilter) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select(projectColumns).
		From("projects").
		OrderBy("created_at DESC")

	if filter.WorksiteID != nil {
		query = query.Where(squirrel.Eq{"worksite_id": *filter.WorksiteID})
	}
	if filter.ActiveOnly {
		query = query.Where("is_active")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// Create inserts a new project and returns the persisted domain.Project.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanProject(q.QueryRow(ctx, createProjectSQL,
		p.ID, p.WorksiteID, p.Name, p.Description, p.IsActive,
	))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return created, nil
}

// Update modifies name, description, and the active flag.
func (r *Repo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanProject(q.QueryRow(ctx, updateProjectSQL,
		p.ID, p.Name, p.Description, p.IsActive,
	))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.ID)
	}
	return updated, nil
}

// Delete removes a project.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.WorksiteID, &p.Name, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
