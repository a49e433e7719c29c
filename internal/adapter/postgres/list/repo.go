// Package list implements the List repository using PostgreSQL.
package list

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/tasktracker-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

var columns = []string{"id", "user_id", "name", "sort_order", "created_at"}

const returning = "RETURNING id, user_id, name, sort_order, created_at"

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new list repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.List {
	return &domain.List{ID: r.ID, UserID: r.UserID, Name: r.Name, SortOrder: r.SortOrder, CreatedAt: r.CreatedAt}
}

// Create inserts a list at the end of the user's lists.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string) (*domain.List, error) {
	query, args, err := postgres.Builder().
		Insert("lists").
		Columns("user_id", "name", "sort_order").
		Values(userID, name, sq.Expr("(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM lists WHERE user_id = ?)", userID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", uuid.Nil)
	}
	return out.toDomain(), nil
}

// GetByID returns a list owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, listID uuid.UUID) (*domain.List, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("lists").
		Where(sq.Eq{"id": listID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}
	return out.toDomain(), nil
}

// List returns the user's lists ordered by sort_order, then creation time.
func (r *Repo) List(ctx context.Context, userID uuid.UUID) ([]*domain.List, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("lists").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("sort_order", "created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", uuid.Nil)
	}

	out := make([]*domain.List, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Count returns how many lists the user owns.
func (r *Repo) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder().
		Select("count(*)").
		From("lists").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "list", uuid.Nil)
	}
	return n, nil
}

// Rename changes the list name.
func (r *Repo) Rename(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.List, error) {
	query, args, err := postgres.Builder().
		Update("lists").
		Set("name", name).
		Where(sq.Eq{"id": listID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "list", listID)
	}
	return out.toDomain(), nil
}

// Delete removes the list; categories and entries cascade.
func (r *Repo) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("lists").
		Where(sq.Eq{"id": listID, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "list", listID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "list", listID)
	}
	return nil
}
