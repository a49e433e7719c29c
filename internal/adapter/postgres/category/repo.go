// Package category implements the Category repository using PostgreSQL.
package category

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

var columns = []string{"id", "user_id", "list_id", "name", "sort_order", "created_at"}

const returning = "RETURNING id, user_id, list_id, name, sort_order, created_at"

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new category repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	ListID    uuid.UUID `db:"list_id"`
	Name      string    `db:"name"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Category {
	return &domain.Category{
		ID:        r.ID,
		UserID:    r.UserID,
		ListID:    r.ListID,
		Name:      r.Name,
		SortOrder: r.SortOrder,
		CreatedAt: r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create appends a category after the last one in its list.
func (r *Repo) Create(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.Category, error) {
	query, args, err := postgres.Builder().
		Insert("categories").
		Columns("user_id", "list_id", "name", "sort_order").
		Values(userID, listID, name,
			sq.Expr("(SELECT COALESCE(MAX(sort_order) + 1, 0) FROM categories WHERE list_id = ?)", listID)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "category", uuid.Nil)
	}
	return out.toDomain(), nil
}

// Rename changes the category name.
func (r *Repo) Rename(ctx context.Context, userID, categoryID uuid.UUID, name string) (*domain.Category, error) {
	query, args, err := postgres.Builder().
		Update("categories").
		Set("name", name).
		Where(sq.Eq{"id": categoryID, "user_id": userID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "category", categoryID)
	}
	return out.toDomain(), nil
}

// Reorder assigns sort_order = index for each id in one batch.
// Every id must belong to listID and userID; otherwise ErrNotFound.
func (r *Repo) Reorder(ctx context.Context, userID, listID uuid.UUID, ids []uuid.UUID) error {
	batch := &pgx.Batch{}
	for i, id := range ids {
		query, args, err := postgres.Builder().
			Update("categories").
			Set("sort_order", i).
			Where(sq.Eq{"id": id, "list_id": listID, "user_id": userID}).
			ToSql()
		if err != nil {
			return err
		}
		batch.Queue(query, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.db).SendBatch(ctx, batch)
	defer br.Close()

	for _, id := range ids {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "category", id)
		}
		if tag.RowsAffected() == 0 {
			return postgres.MapError(pgx.ErrNoRows, "category", id)
		}
	}
	return nil
}

// Delete removes the category; its entries cascade.
func (r *Repo) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	query, args, err := postgres.Builder().
		Delete("categories").
		Where(sq.Eq{"id": categoryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "category", categoryID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "category", categoryID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a category owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, categoryID uuid.UUID) (*domain.Category, error) {
	return r.getOne(ctx, sq.Eq{"id": categoryID, "user_id": userID}, categoryID)
}

// GetByName returns the category named name inside listID.
func (r *Repo) GetByName(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.Category, error) {
	return r.getOne(ctx, sq.Eq{"list_id": listID, "user_id": userID, "name": name}, listID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, id uuid.UUID) (*domain.Category, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("categories").
		Where(where).
		OrderBy("sort_order").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return out.toDomain(), nil
}

// ListByList returns the categories of a list ordered by sort_order.
func (r *Repo) ListByList(ctx context.Context, userID, listID uuid.UUID) ([]*domain.Category, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From("categories").
		Where(sq.Eq{"list_id": listID, "user_id": userID}).
		OrderBy("sort_order", "created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	out := make([]*domain.Category, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
