package sync

import (
	"context"
	"sync"
)

// flight tracks one reconciliation key's in-progress state
type flight struct {
	running bool
	next    func(context.Context)
}

// Scheduler serializes reconciliation runs per key. A key is one
// entityType:scopeID pair, so syncs for different sessions or entity
// types may overlap while a single key never runs concurrently with
// itself. Triggers arriving mid-flight coalesce into exactly one
// follow-up run of the most recently supplied fn.
type Scheduler struct {
	mu      sync.Mutex
	flights map[string]*flight
}

// NewScheduler creates an idle scheduler
func NewScheduler() *Scheduler {
	return &Scheduler{
		flights: make(map[string]*flight),
	}
}

// Trigger schedules fn to run for key and returns immediately. The run
// happens on its own goroutine; fn is expected to swallow its own
// failures, since a degraded sync leaves the local view untouched and
// is not an error for the caller.
func (s *Scheduler) Trigger(ctx context.Context, key string, fn func(context.Context)) {
	s.mu.Lock()
	f, ok := s.flights[key]
	if !ok {
		f = &flight{}
		s.flights[key] = f
	}
	if f.running {
		f.next = fn
		s.mu.Unlock()
		return
	}
	f.running = true
	s.mu.Unlock()

	go s.run(ctx, f, fn)
}

func (s *Scheduler) run(ctx context.Context, f *flight, fn func(context.Context)) {
	for {
		fn(ctx)

		s.mu.Lock()
		if f.next != nil {
			fn, f.next = f.next, nil
			s.mu.Unlock()
			continue
		}
		f.running = false
		s.mu.Unlock()
		return
	}
}

// Idle reports whether no run is in flight for key, for callers that
// need to observe quiescence.
func (s *Scheduler) Idle(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.flights[key]
	return !ok || !f.running
}
