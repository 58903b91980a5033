// Package task implements the Task repository using PostgreSQL.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/molcom/timeclock-backend/internal/adapter/postgres"
	"github.com/molcom/timeclock-backend/internal/domain"
)

// Repo provides task persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new task repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const taskColumns = `id, name, description, created_by, created_at, updated_at`

const createTaskSQL = `
INSERT INTO tasks (id, name, description, created_by)
VALUES ($1, $2, $3, $4)
RETURNING ` + taskColumns

const updateTaskSQL = `
UPDATE tasks
SET name = $2, description = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + taskColumns

// GetByID returns a task by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	task, err := scanTask(q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "task", id)
	}
	return task, nil
}

// List returns all tasks ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

// Create inserts a new task and returns the persisted domain.Task.
func (r *Repo) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanTask(q.QueryRow(ctx, createTaskSQL,
		task.ID, task.Name, task.Description, task.CreatedBy,
	))
	if err != nil {
		return nil, postgres.MapError(err, "task", task.ID)
	}
	return created, nil
}

// Update modifies name and description.
func (r *Repo) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanTask(q.QueryRow(ctx, updateTaskSQL,
		task.ID, task.Name, task.Description,
	))
	if err != nil {
		return nil, postgres.MapError(err, "task", task.ID)
	}
	return updated, nil
}

// Delete removes a task; links from time entries are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "task", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(&task.ID, &task.Name, &task.Description, &task.CreatedBy, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
