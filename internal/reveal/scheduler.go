// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package reveal

import (
	"context"
	"sync"
	"time"
)

// Scheduler is a cancellable list of delayed tasks. Stop cancels every
// pending task and is called automatically when the bound context ends.
// No task starts after Stop, and Stop waits for tasks already running.
// Tasks must not call Stop themselves.
type Scheduler struct {
	mu      sync.Mutex
	timers  map[uint64]*time.Timer
	next    uint64
	stopped bool
	running sync.WaitGroup
	done    chan struct{}
}

// NewScheduler returns a Scheduler whose lifetime ends with ctx.
func NewScheduler(ctx context.Context) *Scheduler {
	s := &Scheduler{
		timers: make(map[uint64]*time.Timer),
		done:   make(chan struct{}),
	}

	go func() {
		select {
		case <-ctx.Done():
			s.Stop()
		case <-s.done:
		}
	}()

	return s
}

// Schedule runs fn after delay. It reports false if the scheduler has
// already been stopped.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}

	id := s.next
	s.next++
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.stopped {
			s.mu.Unlock()
			return
		}
		delete(s.timers, id)
		s.running.Add(1)
		s.mu.Unlock()

		defer s.running.Done()
		fn()
	})
	return true
}

// Pending returns the number of tasks that have not fired yet.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop cancels all pending tasks. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	close(s.done)
	s.mu.Unlock()

	s.running.Wait()
}
