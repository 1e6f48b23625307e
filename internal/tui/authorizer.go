package tui

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/permissionkit/pkg/permission"
)

// Authorizer answers permission queries for the interactive prompt. Status
// reports the current state without asking; Request asks and returns the
// outcome.
type Authorizer interface {
	Status(ctx context.Context, kind permission.Kind) (permission.State, error)
	Request(ctx context.Context, kind permission.Kind) (permission.State, error)
}

// StaticAuthorizer is an in-memory Authorizer used for previews and tests.
// Requests resolve to StateAllowed unless a different response is set.
type StaticAuthorizer struct {
	mu        sync.Mutex
	states    map[permission.Kind]permission.State
	responses map[permission.Kind]permission.State
	delay     time.Duration
}

// NewStaticAuthorizer starts from the given states; missing kinds are idle.
func NewStaticAuthorizer(initial map[permission.Kind]permission.State) *StaticAuthorizer {
	states := make(map[permission.Kind]permission.State, len(initial))
	for kind, state := range initial {
		states[kind] = state
	}
	return &StaticAuthorizer{
		states:    states,
		responses: make(map[permission.Kind]permission.State),
	}
}

// Respond sets the outcome of future requests for kind.
func (a *StaticAuthorizer) Respond(kind permission.Kind, state permission.State) *StaticAuthorizer {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.responses[kind] = state
	return a
}

// WithDelay makes every request take d, so a preview shows the pending
// spinner.
func (a *StaticAuthorizer) WithDelay(d time.Duration) *StaticAuthorizer {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delay = d
	return a
}

// Status implements Authorizer.
func (a *StaticAuthorizer) Status(ctx context.Context, kind permission.Kind) (permission.State, error) {
	if err := ctx.Err(); err != nil {
		return permission.StateIdle, err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.states[kind], nil
}

// Request implements Authorizer.
func (a *StaticAuthorizer) Request(ctx context.Context, kind permission.Kind) (permission.State, error) {
	a.mu.Lock()
	delay := a.delay
	a.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return permission.StateIdle, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return permission.StateIdle, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	state, ok := a.responses[kind]
	if !ok {
		state = permission.StateAllowed
	}
	a.states[kind] = state
	return state, nil
}
