package optimistic

import "sync"

// EventKind classifies a state change.
type EventKind int

const (
	EventApplied EventKind = iota + 1
	EventReverted
	EventSet
)

func (k EventKind) String() string {
	switch k {
	case EventApplied:
		return "applied"
	case EventReverted:
		return "reverted"
	case EventSet:
		return "set"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after every state change.
type Event[S any] struct {
	Kind  EventKind
	State S
}

// Store holds local state. S should be treated as immutable: every change
// produces a new value.
type Store[S any] struct {
	mu     sync.Mutex
	state  S
	subs   map[int]func(Event[S])
	nextID int
}

// NewStore creates a store holding initial.
func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{state: initial, subs: make(map[int]func(Event[S]))}
}

// Get returns the current state.
func (s *Store[S]) Get() S {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set replaces the state without any remote interaction, e.g. after a reload.
func (s *Store[S]) Set(state S) {
	s.mu.Lock()
	s.state = state
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, Event[S]{Kind: EventSet, State: state})
}

// Update applies fn to the state without any remote interaction.
func (s *Store[S]) Update(fn func(S) S) S {
	s.mu.Lock()
	s.state = fn(s.state)
	state := s.state
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, Event[S]{Kind: EventSet, State: state})
	return state
}

// Subscribe registers fn for state change events. Callbacks run on the
// goroutine that made the change, outside the store lock.
func (s *Store[S]) Subscribe(fn func(Event[S])) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// apply captures a snapshot and applies m atomically. It returns false when
// m reports no change.
func (s *Store[S]) apply(m Mutation[S]) (snapshot S, ok bool) {
	s.mu.Lock()
	snapshot = s.state
	if m.Changed != nil && !m.Changed(snapshot) {
		s.mu.Unlock()
		return snapshot, false
	}
	s.state = m.Apply(snapshot)
	state := s.state
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, Event[S]{Kind: EventApplied, State: state})
	return snapshot, true
}

func (s *Store[S]) revert(m Mutation[S], snapshot S) error {
	s.mu.Lock()
	next, err := m.Revert(s.state, snapshot)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.state = next
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, Event[S]{Kind: EventReverted, State: next})
	return nil
}

func (s *Store[S]) snapshotSubs() []func(Event[S]) {
	out := make([]func(Event[S]), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify[S any](subs []func(Event[S]), ev Event[S]) {
	for _, fn := range subs {
		fn(ev)
	}
}
