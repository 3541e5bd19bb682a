// Package flow implements the per-concern request lifecycle shared by the
// hazard fetch, route calculation and image classification flows. Each flow
// owns one Store; stores never reference each other. The view layer
// subscribes to all of them and re-derives overlays on any change.
package flow

import (
	"errors"
	"sync"
	"time"
)

// ErrBusy is returned by Start while a request for the same flow is still
// in flight. The guard lives here, not in the rendering layer, so a caller
// that forgets to disable its trigger cannot double-dispatch.
var ErrBusy = errors.New("request already in flight")

// State is the externally visible snapshot of one flow.
// Invariant: Loading and a non-empty Err are never true at the same time.
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Err     string
}

// ErrorRecord tags a flow error with its source and settlement time so the
// single shared error slot can pick the most recent one across flows.
type ErrorRecord struct {
	Flow    string
	Message string
	At      time.Time
}

// Store holds the state of one async flow and notifies subscribers on
// every transition.
type Store[T any] struct {
	mu      sync.Mutex
	name    string
	state   State[T]
	lastErr *ErrorRecord
	subs    []func()

	now func() time.Time
}

func NewStore[T any](name string) *Store[T] {
	return &Store[T]{name: name, now: time.Now}
}

// Subscribe registers fn to run after every state change. Callbacks run
// outside the store lock.
func (s *Store[T]) Subscribe(fn func()) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *Store[T]) notify() {
	s.mu.Lock()
	subs := make([]func(), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// State returns a snapshot of the flow.
func (s *Store[T]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the most recent error record for this flow, if any.
// Records survive a later Start so the shared slot keeps showing the
// message until another flow errors more recently.
func (s *Store[T]) LastError() (ErrorRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr == nil {
		return ErrorRecord{}, false
	}
	return *s.lastErr, true
}

// Clear drops the flow's data. Used by callers with eager-clear semantics:
// the route planner empties the displayed route the moment a new
// calculation starts, and staging a new image discards the old prediction.
func (s *Store[T]) Clear() {
	s.mu.Lock()
	var zero T
	s.state.Data = zero
	s.state.HasData = false
	s.mu.Unlock()
	s.notify()
}

// Fail records a local validation error without a request cycle: no
// loading transition, data untouched. Used for errors caught before the
// network boundary, like analyzing with no staged image.
func (s *Store[T]) Fail(message string) error {
	s.mu.Lock()
	s.state.Err = message
	s.lastErr = &ErrorRecord{Flow: s.name, Message: message, At: s.now()}
	s.mu.Unlock()
	s.notify()
	return errors.New(message)
}

// Start runs fn synchronously and applies its result. While the request is
// in flight the store reports Loading with a cleared error; Data keeps its
// previous value until settlement. A concurrent Start returns ErrBusy and
// leaves everything untouched.
func (s *Store[T]) Start(fn func() (T, error)) error {
	s.mu.Lock()
	if s.state.Loading {
		s.mu.Unlock()
		return ErrBusy
	}
	s.state.Loading = true
	s.state.Err = ""
	s.mu.Unlock()
	s.notify()

	data, err := fn()
	s.settle(data, err)
	return err
}

// settle applies one response in settlement order. If callers ever bypass
// the busy guard, whichever response settles last wins; nothing here
// reorders or cancels.
func (s *Store[T]) settle(data T, err error) {
	s.mu.Lock()
	s.state.Loading = false
	if err != nil {
		s.state.Err = err.Error()
		s.lastErr = &ErrorRecord{Flow: s.name, Message: err.Error(), At: s.now()}
	} else {
		s.state.Data = data
		s.state.HasData = true
		s.state.Err = ""
	}
	s.mu.Unlock()
	s.notify()
}

// MostRecentError picks the latest error across any number of flows. An
// empty string means no flow has errored yet.
func MostRecentError(records ...func() (ErrorRecord, bool)) string {
	var best ErrorRecord
	found := false
	for _, get := range records {
		rec, ok := get()
		if !ok {
			continue
		}
		if !found || rec.At.After(best.At) {
			best = rec
			found = true
		}
	}
	if !found {
		return ""
	}
	return best.Message
}
