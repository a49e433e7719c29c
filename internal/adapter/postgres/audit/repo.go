// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for audit log records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

// Log appends an audit record. Runs inside the caller's transaction when present.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	changes, err := json.Marshal(record.Changes)
	if err != nil {
		return fmt.Errorf("audit_record marshal changes: %w", err)
	}

	query, args, err := postgres.Builder().
		Insert("audit_log").
		Columns("user_id", "entity_type", "entity_id", "action", "changes").
		Values(record.UserID, record.EntityType.String(), record.EntityID, record.Action.String(), changes).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_record", record.UserID)
	}
	return nil
}

// GetByEntity returns the change history for a specific entity, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at").
		From("audit_log").
		Where(sq.Eq{"entity_type": entityType.String(), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("get audit_records by entity: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, rw := range rows {
		var changes map[string]any
		if err := json.Unmarshal(rw.Changes, &changes); err != nil {
			return nil, fmt.Errorf("audit_record unmarshal changes: %w", err)
		}
		records[i] = domain.AuditRecord{
			ID:         rw.ID,
			UserID:     rw.UserID,
			EntityType: domain.EntityType(rw.EntityType),
			EntityID:   rw.EntityID,
			Action:     domain.AuditAction(rw.Action),
			Changes:    changes,
			CreatedAt:  rw.CreatedAt,
		}
	}
	return records, nil
}
