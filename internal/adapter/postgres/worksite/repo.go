// Package worksite implements the Worksite repository using PostgreSQL.
package worksite

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/molcom/timeclock-backend/internal/adapter/postgres"
	"github.com/molcom/timeclock-backend/internal/domain"
)

// Repo provides worksite persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new worksite repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const worksiteColumns = `id, name, address, latitude, longitude, created_by, created_at, updated_at`

const createWorksiteSQL = `
INSERT INTO worksites (id, name, address, latitude, longitude, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + worksiteColumns

const updateWorksiteSQL = `
UPDATE worksites
SET name = $2, address = $3, latitude = $4, longitude = $5, updated_at = NOW()
WHERE id = $1
RETURNING ` + worksiteColumns

// GetByID returns a worksite with its projects loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Worksite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	site, err := scanWorksite(q.QueryRow(ctx, `SELECT `+worksiteColumns+` FROM worksites WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "worksite", id)
	}

	site.Projects, err = r.projectsFor(ctx, id)
	if err != nil {
		return nil, err
	}

	return site, nil
}

// List returns all worksites ordered by name, each with its projects loaded.
func (r *Repo) List(ctx context.Context) ([]domain.Worksite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+worksiteColumns+` FROM worksites ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list worksites: %w", err)
	}
	defer rows.Close()

	var sites []domain.Worksite
	for rows.Next() {
		site, err := scanWorksite(rows)
		if err != nil {
			return nil, fmt.Errorf("scan worksite: %w", err)
		}
		sites = append(sites, *site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list worksites: %w", err)
	}

	for i := range sites {
		sites[i].Projects, err = r.projectsFor(ctx, sites[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return sites, nil
}

// Create inserts a new worksite and returns the persisted domain.Worksite.
func (r *Repo) Create(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanWorksite(q.QueryRow(ctx, createWorksiteSQL,
		w.ID, w.Name, w.Address, w.Latitude, w.Longitude, w.CreatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "worksite", w.ID)
	}
	return created, nil
}

// Update modifies name, address, and coordinates.
func (r *Repo) Update(ctx context.Context, w *domain.Worksite) (*domain.Worksite, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanWorksite(q.QueryRow(ctx, updateWorksiteSQL,
		w.ID, w.Name, w.Address, w.Latitude, w.Longitude,
	))
	if err != nil {
		return nil, postgres.MapError(err, "worksite", w.ID)
	}
	return updated, nil
}

// Delete removes a worksite and, by cascade, its projects.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM worksites WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "worksite", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("worksite %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) projectsFor(ctx context.Context, worksiteID uuid.UUID) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT id, worksite_id, name, description, is_active, created_at, updated_at
		 FROM projects WHERE worksite_id = $1 ORDER BY name`,
		worksiteID,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects for worksite %s: %w", worksiteID, err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.WorksiteID, &p.Name, &p.Description, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects for worksite %s: %w", worksiteID, err)
	}

	return projects, nil
}

func scanWorksite(row pgx.Row) (*domain.Worksite, error) {
	var w domain.Worksite
	err := row.Scan(&w.ID, &w.Name, &w.Address, &w.Latitude, &w.Longitude, &w.CreatedBy, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
