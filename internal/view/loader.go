package view

import (
	"context"
	"sync"
)

// Loader drives one controller's async lifecycle. Each Load call is one
// mount (or one user retry): it enters loading exactly once, runs the fetch,
// and reconciles the outcome. A generation counter plus the context guard
// ensures a result that arrives after the mount was cancelled or superseded
// is discarded instead of mutating state that nobody renders anymore.
type Loader[T any] struct {
	mu    sync.Mutex
	state State
	gen   uint64

	// OnTransition, when set, observes every state change. Used by tests
	// and the access log; must not block.
	OnTransition func(State)
}

func NewLoader[T any]() *Loader[T] {
	return &Loader[T]{state: StateIdle}
}

func (l *Loader[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader[T]) transition(s State) {
	l.state = s
	if l.OnTransition != nil {
		l.OnTransition(s)
	}
}

// Load runs fetch under a fresh generation and returns the reconciled page.
// The second return value is false when the result was discarded because the
// context was cancelled or a newer Load superseded this one; the caller must
// not render a discarded page.
func (l *Loader[T]) Load(ctx context.Context, fetch func(context.Context) (T, error), isEmpty func(T) bool) (Page[T], bool) {
	l.mu.Lock()
	l.gen++
	gen := l.gen
	l.transition(StateLoading)
	l.mu.Unlock()

	data, err := fetch(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()

	if ctx.Err() != nil || gen != l.gen {
		// The mount is gone or a retry already took over.
		return Page[T]{State: StateIdle}, false
	}

	switch {
	case err != nil:
		l.transition(StateError)
		return Errored[T](err.Error()), true
	case isEmpty != nil && isEmpty(data):
		l.transition(StateEmpty)
		return Empty[T](), true
	default:
		l.transition(StateReady)
		return Ready(data), true
	}
}
