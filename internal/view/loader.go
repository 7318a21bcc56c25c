// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package view builds the per-page view models: it loads a page's content
// concurrently, applies the display transforms and plans the reveal
// cascade. Templates render these values without further logic.
package view

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"folio/internal/models"
)

// Source is the read side of the content store. Every accessor swallows
// its own failure and returns an empty value.
type Source interface {
	Achievements(ctx context.Context) []models.Achievement
	Experiences(ctx context.Context) []models.Experience
	Skills(ctx context.Context) []models.Skill
	Education(ctx context.Context) []models.Education
	Products(ctx context.Context) []models.Product
	AboutContent(ctx context.Context) []models.AboutContent
	PersonalDetails(ctx context.Context) *models.PersonalDetails
}

// Phase is a page's load state.
type Phase int

const (
	Idle Phase = iota
	Loading
	Loaded
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	}
	return "unknown"
}

// ErrAlreadyLoaded is returned when a Loader is run twice.
var ErrAlreadyLoaded = errors.New("view: load already started")

// Loader drives the one-shot Idle -> Loading -> Loaded transition of a
// page. Its fetches run concurrently and the load only completes once
// every fetch has settled.
type Loader struct {
	mu    sync.Mutex
	phase Phase
}

// Phase returns the current load state.
func (l *Loader) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Run starts every fetch and waits for all of them. Each fetch writes its
// own result; callers read results only after Run returns.
func (l *Loader) Run(ctx context.Context, fetches ...func(context.Context)) error {
	l.mu.Lock()
	if l.phase != Idle {
		l.mu.Unlock()
		return ErrAlreadyLoaded
	}
	l.phase = Loading
	l.mu.Unlock()

	g, gCtx := errgroup.WithContext(ctx)
	for _, fetch := range fetches {
		g.Go(func() error {
			fetch(gCtx)
			return nil
		})
	}
	err := g.Wait()

	l.mu.Lock()
	l.phase = Loaded
	l.mu.Unlock()
	return err
}

// Load runs fetches through a fresh Loader.
func Load(ctx context.Context, fetches ...func(context.Context)) {
	var l Loader
	_ = l.Run(ctx, fetches...)
}
