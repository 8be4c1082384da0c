// Package latest runs at most one call per key and lets the newest call win.
//
// When Do is called for a key that already has a call in flight, the older
// call's context is cancelled and its result is replaced by ErrSuperseded.
// This is the opposite of singleflight, which shares the first call's result:
// here a newer request carries newer input (another country, another draft
// field) and the older answer must never be used.
package latest

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is returned to a caller whose call was replaced by a newer one
// for the same key.
var ErrSuperseded = errors.New("superseded by a newer call")

type call struct {
	cancel context.CancelFunc
}

// Group tracks the newest call per key. The zero value is ready to use.
type Group[T any] struct {
	mu    sync.Mutex
	calls map[string]*call
}

// Do runs fn for key. An older call still running for key is cancelled and
// returns ErrSuperseded. An empty key is never superseded.
func (g *Group[T]) Do(ctx context.Context, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	if key == "" {
		return fn(ctx)
	}

	callCtx, cancel := context.WithCancel(ctx)
	c := &call{cancel: cancel}

	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}
	if previous, ok := g.calls[key]; ok {
		previous.cancel()
	}
	g.calls[key] = c
	g.mu.Unlock()

	v, err := fn(callCtx)

	g.mu.Lock()
	current := g.calls[key] == c
	if current {
		delete(g.calls, key)
	}
	g.mu.Unlock()
	cancel()

	if !current {
		var zero T
		return zero, ErrSuperseded
	}
	return v, err
}

// InFlight reports how many keys have a call running.
func (g *Group[T]) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.calls)
}
