package client

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tasktracker-backend/pkg/optimistic"
)

// ErrUnknownEntry is returned for an entry that is not on the board.
var ErrUnknownEntry = errors.New("entry is not on the board")

// ErrUnknownCategory is returned for a category that is not on the board.
var ErrUnknownCategory = errors.New("category is not on the board")

// BoardState is an immutable snapshot of one list. Mutations replace the
// slices rather than writing into them.
type BoardState struct {
	Categories []Category
	Entries    []Entry
}

// EntriesIn returns the entries of a category in board order.
func (s BoardState) EntriesIn(categoryID uuid.UUID) []Entry {
	var out []Entry
	for _, e := range s.Entries {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}

// Entry looks up an entry by id.
func (s BoardState) Entry(id uuid.UUID) (Entry, bool) {
	i := s.entryIndex(id)
	if i < 0 {
		return Entry{}, false
	}
	return s.Entries[i], true
}

func (s BoardState) entryIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.Entries, func(e Entry) bool { return e.ID == id })
}

func (s BoardState) hasCategory(id uuid.UUID) bool {
	return slices.ContainsFunc(s.Categories, func(c Category) bool { return c.ID == id })
}

// Board keeps the categories and entries of one list locally and applies
// edits optimistically, rolling them back when the server rejects them.
type Board struct {
	api    *Client
	listID uuid.UUID
	store  *optimistic.Store[BoardState]
}

// NewBoard creates an empty board for listID. Call Load to fill it.
func NewBoard(api *Client, listID uuid.UUID) *Board {
	return &Board{api: api, listID: listID, store: optimistic.NewStore(BoardState{})}
}

// State returns the current snapshot.
func (b *Board) State() BoardState { return b.store.Get() }

// Subscribe registers fn for every state change.
func (b *Board) Subscribe(fn func(optimistic.Event[BoardState])) (unsubscribe func()) {
	return b.store.Subscribe(fn)
}

// Load replaces local state with the server's view of the list.
func (b *Board) Load(ctx context.Context) error {
	var next BoardState

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		cats, err := b.api.Categories(gctx, b.listID)
		next.Categories = cats
		return err
	})
	g.Go(func() error {
		entries, err := b.api.Entries(gctx, b.listID)
		next.Entries = entries
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load board: %w", err)
	}

	b.store.Set(next)
	return nil
}

// AddEntry creates an entry on the server and prepends it locally once
// the server has assigned its id.
func (b *Board) AddEntry(ctx context.Context, e NewEntry) (Entry, error) {
	if !b.State().hasCategory(e.CategoryID) {
		return Entry{}, ErrUnknownCategory
	}

	created, err := b.api.CreateEntry(ctx, b.listID, e)
	if err != nil {
		return Entry{}, err
	}

	b.store.Update(func(s BoardState) BoardState {
		s.Entries = append([]Entry{created}, s.Entries...)
		return s
	})
	return created, nil
}

// DeleteEntry removes the entry locally, then on the server. A server
// failure puts the entry back at its old position.
func (b *Board) DeleteEntry(ctx context.Context, entryID uuid.UUID) error {
	if _, ok := b.State().Entry(entryID); !ok {
		return ErrUnknownEntry
	}

	return optimistic.Run(ctx, b.store, removeEntry(entryID), func(ctx context.Context) error {
		return b.api.DeleteEntry(ctx, entryID)
	})
}

// MoveEntry re-parents the entry locally and confirms with the server in the
// background. Moving to the current category is a no-op. Wait on the
// returned handle for the server outcome.
func (b *Board) MoveEntry(ctx context.Context, entryID, categoryID uuid.UUID) (*optimistic.Pending, error) {
	state := b.State()
	if _, ok := state.Entry(entryID); !ok {
		return nil, ErrUnknownEntry
	}
	if !state.hasCategory(categoryID) {
		return nil, ErrUnknownCategory
	}

	return optimistic.Do(ctx, b.store, moveEntry(entryID, categoryID), func(ctx context.Context) error {
		_, err := b.api.MoveEntry(ctx, entryID, categoryID)
		return err
	}), nil
}

func moveEntry(entryID, to uuid.UUID) optimistic.Mutation[BoardState] {
	setCategory := func(s BoardState, cat uuid.UUID) BoardState {
		i := s.entryIndex(entryID)
		entries := slices.Clone(s.Entries)
		entries[i].CategoryID = cat
		s.Entries = entries
		return s
	}

	return optimistic.Mutation[BoardState]{
		Changed: func(s BoardState) bool {
			e, ok := s.Entry(entryID)
			return ok && e.CategoryID != to
		},
		Apply: func(s BoardState) BoardState { return setCategory(s, to) },
		Revert: func(current, snapshot BoardState) (BoardState, error) {
			before, _ := snapshot.Entry(entryID)
			if current.entryIndex(entryID) < 0 {
				return current, fmt.Errorf("revert move: %w", ErrUnknownEntry)
			}
			return setCategory(current, before.CategoryID), nil
		},
	}
}

func removeEntry(entryID uuid.UUID) optimistic.Mutation[BoardState] {
	return optimistic.Mutation[BoardState]{
		Changed: func(s BoardState) bool { return s.entryIndex(entryID) >= 0 },
		Apply: func(s BoardState) BoardState {
			i := s.entryIndex(entryID)
			s.Entries = slices.Delete(slices.Clone(s.Entries), i, i+1)
			return s
		},
		Revert: func(current, snapshot BoardState) (BoardState, error) {
			if current.entryIndex(entryID) >= 0 {
				return current, nil
			}
			i := snapshot.entryIndex(entryID)
			pos := min(i, len(current.Entries))
			current.Entries = slices.Insert(slices.Clone(current.Entries), pos, snapshot.Entries[i])
			return current, nil
		},
	}
}
