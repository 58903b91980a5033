// Package audit implements the audit log repository using PostgreSQL.
// It provides append-only operations for audit records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/molcom/timeclock-backend/internal/adapter/postgres"
	"github.com/molcom/timeclock-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createRecordSQL = `
INSERT INTO audit_log (id, user_id, entity_type, entity_id, action, changes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING created_at`

const getByEntitySQL = `
SELECT id, user_id, entity_type, entity_id, action, changes, created_at
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC
LIMIT $3`

// Log appends an audit record. The record's CreatedAt is filled from the
// database clock.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	err = q.QueryRow(ctx, createRecordSQL,
		record.ID, record.UserID, string(record.EntityType), record.EntityID,
		string(record.Action), changesJSON,
	).Scan(&record.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}

	return nil
}

// GetByEntity returns the change history for a specific entity, newest first,
// limited to `limit` records.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, getByEntitySQL, string(entityType), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}
	defer rows.Close()

	var records []domain.AuditRecord
	for rows.Next() {
		var (
			rec         domain.AuditRecord
			entityType  string
			action      string
			changesJSON []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &entityType, &rec.EntityID, &action, &changesJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit_record: %w", err)
		}
		rec.EntityType = domain.EntityType(entityType)
		rec.Action = domain.AuditAction(action)
		if err := json.Unmarshal(changesJSON, &rec.Changes); err != nil {
			return nil, fmt.Errorf("audit_record unmarshal changes: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	return records, nil
}
