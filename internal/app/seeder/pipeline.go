// Package seeder bulk-loads accomplishments for one user from a YAML file.
// It is an offline tool and talks to the database directly.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tasktracker-backend/internal/domain"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type listRepo interface {
	List(ctx context.Context, userID uuid.UUID) ([]*domain.List, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*domain.List, error)
}

type categoryRepo interface {
	GetByName(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.Category, error)
	Create(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.Category, error)
}

type entryRepo interface {
	Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result summarizes one run.
type Result struct {
	UserID            uuid.UUID
	ListID            uuid.UUID
	Inserted          int
	CategoriesCreated []string
	DryRun            bool
	Duration          time.Duration
}

// Pipeline inserts a seed document for one user inside a single transaction.
type Pipeline struct {
	log        *slog.Logger
	users      userRepo
	lists      listRepo
	categories categoryRepo
	entries    entryRepo
	tx         txManager
	now        func() time.Time
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, users userRepo, lists listRepo, categories categoryRepo, entries entryRepo, tx txManager) *Pipeline {
	return &Pipeline{
		log:        log.With("component", "seeder"),
		users:      users,
		lists:      lists,
		categories: categories,
		entries:    entries,
		tx:         tx,
		now:        time.Now,
	}
}

// Run seeds doc for cfg.UserEmail. In dry-run mode the transaction is rolled
// back after every write has been attempted, so the result reflects what a
// real run would do.
func (p *Pipeline) Run(ctx context.Context, cfg Config, doc *Document) (Result, error) {
	start := p.now()
	res := Result{DryRun: cfg.DryRun}

	email := strings.ToLower(strings.TrimSpace(cfg.UserEmail))
	if email == "" {
		return res, errors.New("seeder: user email is required")
	}

	defaultDate, err := p.defaultDate(cfg, doc)
	if err != nil {
		return res, err
	}

	u, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return res, fmt.Errorf("seeder: find user %s: %w", email, err)
	}
	res.UserID = u.ID

	err = p.tx.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := p.resolveList(txCtx, u.ID, doc.List)
		if err != nil {
			return err
		}
		res.ListID = list.ID

		cats := make(map[string]uuid.UUID)
		for i, it := range doc.Entries {
			name := strings.TrimSpace(it.Category)
			catID, ok := cats[name]
			if !ok {
				c, created, err := p.resolveCategory(txCtx, u.ID, list.ID, name)
				if err != nil {
					return err
				}
				if created {
					res.CategoriesCreated = append(res.CategoriesCreated, name)
				}
				catID = c.ID
				cats[name] = catID
			}

			day := defaultDate
			if it.Date != "" {
				day, _ = domain.ParseDate(it.Date)
			}
			if _, err := p.entries.Create(txCtx, &domain.Entry{
				UserID:     u.ID,
				CategoryID: catID,
				Content:    strings.TrimSpace(it.Content),
				EntryDate:  day,
			}); err != nil {
				return fmt.Errorf("seeder: entry %d: %w", i, err)
			}
			res.Inserted++
		}

		if cfg.DryRun {
			return errDryRun
		}
		return nil
	})
	res.Duration = p.now().Sub(start)
	if err != nil && !errors.Is(err, errDryRun) {
		return res, err
	}

	p.log.InfoContext(ctx, "seed finished",
		slog.String("user_id", res.UserID.String()),
		slog.String("list_id", res.ListID.String()),
		slog.Int("inserted", res.Inserted),
		slog.Int("categories_created", len(res.CategoriesCreated)),
		slog.Bool("dry_run", res.DryRun),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// errDryRun rolls back the seed transaction.
var errDryRun = errors.New("dry run")

func (p *Pipeline) defaultDate(cfg Config, doc *Document) (time.Time, error) {
	switch {
	case cfg.Date != "":
		d, err := domain.ParseDate(cfg.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("seeder: --date: %w", err)
		}
		return d, nil
	case doc.Date != "":
		return domain.ParseDate(doc.Date)
	default:
		return domain.TruncateDay(p.now().UTC()), nil
	}
}

func (p *Pipeline) resolveList(ctx context.Context, userID uuid.UUID, name string) (*domain.List, error) {
	lists, err := p.lists.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("seeder: lists: %w", err)
	}

	name = strings.TrimSpace(name)
	for _, l := range lists {
		if name == "" || strings.EqualFold(l.Name, name) {
			return l, nil
		}
	}

	if name == "" {
		name = domain.DefaultListName
	}
	p.log.InfoContext(ctx, "creating list", slog.String("name", name))
	l, err := p.lists.Create(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("seeder: create list %q: %w", name, err)
	}
	return l, nil
}

func (p *Pipeline) resolveCategory(ctx context.Context, userID, listID uuid.UUID, name string) (*domain.Category, bool, error) {
	c, err := p.categories.GetByName(ctx, userID, listID, name)
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("seeder: category %q: %w", name, err)
	}

	p.log.InfoContext(ctx, "creating category", slog.String("name", name))
	c, err = p.categories.Create(ctx, userID, listID, name)
	if err != nil {
		return nil, false, fmt.Errorf("seeder: create category %q: %w", name, err)
	}
	return c, true, nil
}
