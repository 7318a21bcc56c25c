// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package reveal schedules the staggered appearance of list items. Every
// pending timer belongs to a Scheduler bound to a context, so tearing down
// the owner (a finished request, a closed stream) cancels the whole cascade.
package reveal

import (
	"context"
	"time"
)

// Per-page cascade timing.
const (
	HomeStep       = 200 * time.Millisecond
	ProductsStep   = 150 * time.Millisecond
	AboutBarsDelay = 500 * time.Millisecond
)

// AboutBarsID is the single step that animates the skill bars.
const AboutBarsID = "skill-bars"

// Step marks one item as visible after Delay.
type Step struct {
	ID    string        `json:"id"`
	Delay time.Duration `json:"delay"`
}

// Plan staggers ids so the i-th item appears at i*step.
func Plan(ids []string, step time.Duration) []Step {
	steps := make([]Step, len(ids))
	for i, id := range ids {
		steps[i] = Step{ID: id, Delay: time.Duration(i) * step}
	}
	return steps
}

// Cascade fires each step through a Scheduler bound to ctx and calls emit
// for it on the calling goroutine, in firing order. It returns nil once
// every step has been emitted, ctx.Err() if the context ends first, or
// the first emit error. Pending timers are cancelled on return.
func Cascade(ctx context.Context, steps []Step, emit func(Step) error) error {
	if len(steps) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sched := NewScheduler(ctx)
	defer sched.Stop()

	fired := make(chan Step, len(steps))
	for _, s := range steps {
		sched.Schedule(s.Delay, func() { fired <- s })
	}

	for range steps {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s := <-fired:
			if err := emit(s); err != nil {
				return err
			}
		}
	}
	return nil
}
