// Package optimistic applies local state changes before the remote store
// confirms them and reverts them when the remote operation fails.
//
// A mutation is applied to a Store synchronously, the remote call runs in its
// own goroutine, and the returned Pending reports the outcome. Overlapping
// mutations on the same entity are not coordinated: the last local apply wins
// locally and the last remote write wins remotely.
package optimistic

import (
	"context"
	"errors"
	"fmt"
)

// ErrReverted wraps the remote error of a mutation that was rolled back.
var ErrReverted = errors.New("optimistic: remote update failed, local change reverted")

// ErrRevertFailed is reported when the inverse could not be applied; local
// and remote state may have diverged until the next full reload.
var ErrRevertFailed = errors.New("optimistic: revert failed")

// Mutation is a local change together with its inverse.
type Mutation[S any] struct {
	// Changed reports whether Apply would alter s. When it returns false the
	// mutation is skipped entirely: no local change, no event, no remote call.
	// A nil Changed always applies.
	Changed func(s S) bool
	// Apply returns the new state. It must not modify s in place.
	Apply func(s S) S
	// Revert undoes Apply on current using the snapshot taken before Apply.
	Revert func(current, snapshot S) (S, error)
}

// Remote is the remote operation that confirms a mutation.
type Remote func(ctx context.Context) error

// Pending is the outcome handle of one mutation.
type Pending struct {
	done    chan struct{}
	applied bool
	err     error
}

// Applied reports whether the mutation changed local state.
func (p *Pending) Applied() bool { return p.applied }

// Done is closed once the remote result is known.
func (p *Pending) Done() <-chan struct{} { return p.done }

// Wait blocks until the remote result is known or ctx is done. A nil return
// means the remote store confirmed the change (or nothing was applied).
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return p.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func resolved(err error) *Pending {
	p := &Pending{done: make(chan struct{}), err: err}
	close(p.done)
	return p
}

// Do applies m to store, then runs remote in a new goroutine. On remote
// failure the inverse is applied and Pending reports an error wrapping both
// ErrReverted and the remote error.
//
// The remote call receives ctx; cancelling it is the only way to abandon a
// hung remote call.
func Do[S any](ctx context.Context, store *Store[S], m Mutation[S], remote Remote) *Pending {
	snapshot, ok := store.apply(m)
	if !ok {
		return resolved(nil)
	}

	p := &Pending{done: make(chan struct{}), applied: true}
	go func() {
		defer close(p.done)

		remoteErr := remote(ctx)
		if remoteErr == nil {
			return
		}

		if err := store.revert(m, snapshot); err != nil {
			p.err = errors.Join(fmt.Errorf("%w: %w", ErrReverted, remoteErr), fmt.Errorf("%w: %w", ErrRevertFailed, err))
			return
		}
		p.err = fmt.Errorf("%w: %w", ErrReverted, remoteErr)
	}()
	return p
}

// Run is Do followed by Wait.
func Run[S any](ctx context.Context, store *Store[S], m Mutation[S], remote Remote) error {
	return Do(ctx, store, m, remote).Wait(ctx)
}
