// Package settings implements the SystemSettings repository using PostgreSQL.
// The table holds a single row seeded by the migrations.
package settings

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/molcom/timeclock-backend/internal/adapter/postgres"
	"github.com/molcom/timeclock-backend/internal/domain"
)

// Repo provides system settings persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new settings repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSettingsSQL = `
SELECT id, company_name, logo_path, reminder_day, updated_at
FROM system_settings
LIMIT 1`

const updateSettingsSQL = `
UPDATE system_settings
SET company_name = $2, logo_path = $3, reminder_day = $4, updated_at = NOW()
WHERE id = $1
RETURNING id, company_name, logo_path, reminder_day, updated_at`

// Get returns the settings row.
func (r *Repo) Get(ctx context.Context) (*domain.SystemSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var s domain.SystemSettings
	err := q.QueryRow(ctx, getSettingsSQL).
		Scan(&s.ID, &s.CompanyName, &s.LogoPath, &s.ReminderDay, &s.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "system_settings", uuid.Nil)
	}

	return &s, nil
}

// Update overwrites the settings row and returns the stored values.
func (r *Repo) Update(ctx context.Context, s *domain.SystemSettings) (*domain.SystemSettings, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var updated domain.SystemSettings
	err := q.QueryRow(ctx, updateSettingsSQL, s.ID, s.CompanyName, s.LogoPath, s.ReminderDay).
		Scan(&updated.ID, &updated.CompanyName, &updated.LogoPath, &updated.ReminderDay, &updated.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "system_settings", s.ID)
	}

	return &updated, nil
}
