// Package timeentry implements the TimeEntry repository using PostgreSQL.
package timeentry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/molcom/timeclock-backend/internal/adapter/postgres"
	"github.com/molcom/timeclock-backend/internal/domain"
)

// Repo provides time entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new time entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const entryColumns = `id, user_id, worksite_id, project_id, entry_type, entry_date,
	start_time, end_time, break_minutes, total_hours, notes, photo_path,
	is_active, created_at, updated_at`

const createEntrySQL = `
INSERT INTO time_entries
	(id, user_id, worksite_id, project_id, entry_type, entry_date, start_time,
	 end_time, break_minutes, total_hours, notes, photo_path, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING ` + entryColumns

const getEntrySQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE id = $1`

const deleteEntrySQL = `DELETE FROM time_entries WHERE id = $1`

const activeTimerSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE user_id = $1 AND is_active
LIMIT 1`

// Open entries are treated as running until now, so a still-open timer blocks
// any candidate interval that reaches past its start.
const findOverlapSQL = `
SELECT ` + entryColumns + `
FROM time_entries
WHERE user_id = $1
  AND entry_type = 'timed'
  AND start_time IS NOT NULL
  AND id <> $2
  AND (
       (start_time <= $3 AND COALESCE(end_time, NOW()) >= $3)
    OR (start_time <= $4 AND COALESCE(end_time, NOW()) >= $4)
    OR (start_time >= $3 AND COALESCE(end_time, NOW()) <= $4)
  )
ORDER BY start_time
LIMIT 1`

// Create inserts a new time entry and returns the persisted domain.TimeEntry.
// Task links are managed separately via ReplaceTasks.
func (r *Repo) Create(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, createEntrySQL,
		e.ID, e.UserID, e.WorksiteID, e.ProjectID, string(e.EntryType), e.EntryDate,
		e.StartTime, e.EndTime, e.BreakMinutes, e.TotalHours, e.Notes, e.PhotoPath, e.IsActive,
	)

	entry, err := scanEntry(row)
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", e.ID)
	}

	return entry, nil
}

// GetByID returns a time entry with its task links loaded.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TimeEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(q.QueryRow(ctx, getEntrySQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", id)
	}

	entry.TaskIDs, err = r.GetTaskIDs(ctx, id)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Update overwrites all mutable fields of the entry and returns the stored row.
func (r *Repo) Update(ctx context.Context, e *domain.TimeEntry) (*domain.TimeEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := builder.
		Update("time_entries").
		Set("worksite_id", e.WorksiteID).
		Set("project_id", e.ProjectID).
		Set("entry_type", string(e.EntryType)).
		Set("entry_date", e.EntryDate).
		Set("start_time", e.StartTime).
		Set("end_time", e.EndTime).
		Set("break_minutes", e.BreakMinutes).
		Set("total_hours", e.TotalHours).
		Set("notes", e.Notes).
		Set("photo_path", e.PhotoPath).
		Set("is_active", e.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": e.ID}).
		Suffix("RETURNING " + entryColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update query: %w", err)
	}

	entry, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "time_entry", e.ID)
	}

	return entry, nil
}

// Delete removes a time entry. Task links are removed by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteEntrySQL, id)
	if err != nil {
		return postgres.MapError(err, "time_entry", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("time_entry %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// List returns entries matching the filter, newest start first, with task
// links loaded.
func (r *Repo) List(ctx context.Context, filter domain.TimeEntryFilter) ([]domain.TimeEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := builder.
		Select(entryColumns).
		From("time_entries").
		OrderBy("start_time DESC NULLS LAST", "entry_date DESC")

	if filter.UserID != nil {
		query = query.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.From != nil {
		query = query.Where(squirrel.GtOrEq{"entry_date": *filter.From})
	}
	if filter.To != nil {
		query = query.Where(squirrel.LtOrEq{"entry_date": *filter.To})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list time_entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TimeEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time_entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list time_entries: %w", err)
	}

	for i := range entries {
		entries[i].TaskIDs, err = r.GetTaskIDs(ctx, entries[i].ID)
		if err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// GetActiveTimer returns the user's running entry, or domain.ErrNotFound when
// no timer is active.
func (r *Repo) GetActiveTimer(ctx context.Context, userID uuid.UUID) (*domain.TimeEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(q.QueryRow(ctx, activeTimerSQL, userID))
	if err != nil {
		return nil, postgres.MapError(err, "active_timer", userID)
	}

	entry.TaskIDs, err = r.GetTaskIDs(ctx, entry.ID)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// FindOverlap returns one of the user's timed entries whose interval overlaps
// [start, end], or (nil, nil) when there is none. excludeID skips a specific
// entry (pass uuid.Nil to check against all).
func (r *Repo) FindOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*domain.TimeEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	entry, err := scanEntry(q.QueryRow(ctx, findOverlapSQL, userID, excludeID, start, end))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, postgres.MapError(err, "time_entry_overlap", userID)
	}

	return entry, nil
}

// ReplaceTasks removes all task links for the entry and inserts the given set.
func (r *Repo) ReplaceTasks(ctx context.Context, entryID uuid.UUID, taskIDs []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, `DELETE FROM time_entry_tasks WHERE time_entry_id = $1`, entryID); err != nil {
		return postgres.MapError(err, "time_entry_tasks", entryID)
	}

	if len(taskIDs) == 0 {
		return nil
	}

	insert := builder.
		Insert("time_entry_tasks").
		Columns("time_entry_id", "task_id")
	for _, taskID := range taskIDs {
		insert = insert.Values(entryID, taskID)
	}

	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("build task links query: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "time_entry_tasks", entryID)
	}

	return nil
}

// GetTaskIDs returns the IDs of tasks linked to the entry.
func (r *Repo) GetTaskIDs(ctx context.Context, entryID uuid.UUID) ([]uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT task_id FROM time_entry_tasks WHERE time_entry_id = $1 ORDER BY task_id`, entryID)
	if err != nil {
		return nil, fmt.Errorf("get task links for %s: %w", entryID, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan task link: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get task links for %s: %w", entryID, err)
	}

	return ids, nil
}

// scanEntry reads one time_entries row in entryColumns order.
func scanEntry(row pgx.Row) (*domain.TimeEntry, error) {
	var (
		e         domain.TimeEntry
		entryType string
	)

	err := row.Scan(
		&e.ID, &e.UserID, &e.WorksiteID, &e.ProjectID, &entryType, &e.EntryDate,
		&e.StartTime, &e.EndTime, &e.BreakMinutes, &e.TotalHours, &e.Notes, &e.PhotoPath,
		&e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	e.EntryType = domain.EntryType(entryType)
	return &e, nil
}
