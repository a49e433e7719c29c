// Package entry implements the Entry repository using PostgreSQL.
package entry

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

const returning = "RETURNING id, user_id, category_id, content, entry_date, created_at"

// Repo provides entry persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new entry repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	UserID     uuid.UUID `db:"user_id"`
	CategoryID uuid.UUID `db:"category_id"`
	Content    string    `db:"content"`
	EntryDate  time.Time `db:"entry_date"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Entry {
	return &domain.Entry{
		ID:         r.ID,
		UserID:     r.UserID,
		CategoryID: r.CategoryID,
		Content:    r.Content,
		EntryDate:  domain.TruncateDay(r.EntryDate),
		CreatedAt:  r.CreatedAt,
	}
}

// Create inserts an entry. The category must belong to the same user.
func (r *Repo) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Insert("entries").
		Columns("user_id", "category_id", "content", "entry_date").
		Select(postgres.Builder().
			Select().
			Column("?::uuid, id, ?::text, ?::date", e.UserID, e.Content, e.EntryDate).
			From("categories").
			Where(sq.Eq{"id": e.CategoryID, "user_id": e.UserID})).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "category", e.CategoryID)
	}
	return out.toDomain(), nil
}

// GetByID returns an entry owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Select("id", "user_id", "category_id", "content", "entry_date", "created_at").
		From("entries").
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}
	return out.toDomain(), nil
}

// ListByList returns all entries of a list, newest entry_date first.
func (r *Repo) ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Select("e.id", "e.user_id", "e.category_id", "e.content", "e.entry_date", "e.created_at").
		From("entries e").
		Join("categories c ON c.id = e.category_id").
		Where(sq.Eq{"c.list_id": listID, "e.user_id": userID}).
		OrderBy("e.entry_date DESC", "e.created_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}

	out := make([]*domain.Entry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Move reassigns the entry to categoryID. Both must belong to userID.
func (r *Repo) Move(ctx context.Context, userID, entryID, categoryID uuid.UUID) (*domain.Entry, error) {
	query, args, err := postgres.Builder().
		Update("entries").
		Set("category_id", categoryID).
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		Where(sq.Expr("EXISTS (SELECT 1 FROM categories WHERE id = ? AND user_id = ?)", categoryID, userID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}
	return out.toDomain(), nil
}

// Delete removes an entry.
func (r *Repo) Delete(ctx context.Context, userID, entryID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("entries").
		Where(sq.Eq{"id": entryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "entry", entryID)
	}
	return nil
}
