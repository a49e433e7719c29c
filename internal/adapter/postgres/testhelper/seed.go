package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a display name and a placeholder password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	name := "Test User " + suffix
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		DisplayName:  &name,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.DisplayName, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedList creates a list owned by userID.
func SeedList(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, name string) domain.List {
	t.Helper()

	l := domain.List{ID: uuid.New(), UserID: userID, Name: name}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO lists (id, user_id, name) VALUES ($1, $2, $3) RETURNING sort_order, created_at`,
		l.ID, l.UserID, l.Name,
	).Scan(&l.SortOrder, &l.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedList: %v", err)
	}
	return l
}

// SeedCategory creates a category in listID at the given sort position.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, userID, listID uuid.UUID, name string, sortOrder int) domain.Category {
	t.Helper()

	c := domain.Category{ID: uuid.New(), UserID: userID, ListID: listID, Name: name, SortOrder: sortOrder}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO categories (id, user_id, list_id, name, sort_order) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		c.ID, c.UserID, c.ListID, c.Name, c.SortOrder,
	).Scan(&c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedEntry creates an entry dated day (YYYY-MM-DD).
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID, categoryID uuid.UUID, content, day string) domain.Entry {
	t.Helper()

	date, err := domain.ParseDate(day)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}

	e := domain.Entry{ID: uuid.New(), UserID: userID, CategoryID: categoryID, Content: content, EntryDate: date}
	err = pool.QueryRow(context.Background(),
		`INSERT INTO entries (id, user_id, category_id, content, entry_date) VALUES ($1, $2, $3, $4, $5) RETURNING created_at`,
		e.ID, e.UserID, e.CategoryID, e.Content, e.EntryDate,
	).Scan(&e.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry: %v", err)
	}
	return e
}
