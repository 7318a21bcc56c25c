// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"context"

	"folio/internal/models"
	"folio/internal/reveal"
	"folio/internal/transform"
)

// PageSize is how many achievements each "Load More" click reveals.
const PageSize = 2

// Cursor is the number of achievements shown out of Total.
type Cursor struct {
	Shown int
	Total int
}

// NewCursor starts with the first page visible.
func NewCursor(total int) Cursor {
	return Cursor{Shown: min(PageSize, total), Total: total}
}

// At returns a cursor for a client-reported count, clamped to [0, Total].
func At(shown, total int) Cursor {
	return Cursor{Shown: max(0, min(shown, total)), Total: total}
}

// LoadMore advances by one page without passing Total.
func (c Cursor) LoadMore() Cursor {
	return Cursor{Shown: min(c.Shown+PageSize, c.Total), Total: c.Total}
}

// HasMore reports whether items remain hidden.
func (c Cursor) HasMore() bool {
	return c.Shown < c.Total
}

// AchievementCard is one timeline entry ready for display.
type AchievementCard struct {
	models.Achievement
	BadgeClass string
}

// HomeView is the home page timeline.
type HomeView struct {
	Phase  Phase
	Items  []AchievementCard // every achievement, newest first
	Cursor Cursor
}

// LoadHome fetches achievements and sorts them chronologically.
func LoadHome(ctx context.Context, src Source) HomeView {
	var (
		l     Loader
		items []models.Achievement
	)
	_ = l.Run(ctx, func(ctx context.Context) { items = src.Achievements(ctx) })
	return newHomeView(items, l.Phase())
}

func newHomeView(items []models.Achievement, phase Phase) HomeView {
	sorted := transform.SortAchievements(items)
	cards := make([]AchievementCard, len(sorted))
	for i, a := range sorted {
		cards[i] = AchievementCard{Achievement: a, BadgeClass: transform.CategoryClass(a.Category)}
	}
	return HomeView{Phase: phase, Items: cards, Cursor: NewCursor(len(cards))}
}

// Visible returns the achievements currently shown.
func (h HomeView) Visible() []AchievementCard {
	return h.Items[:h.Cursor.Shown]
}

// Reveal staggers the visible achievements.
func (h HomeView) Reveal() []reveal.Step {
	return reveal.Plan(achievementIDs(h.Visible()), reveal.HomeStep)
}

// AchievementBatch is the slice revealed by one "Load More" click.
type AchievementBatch struct {
	Items  []AchievementCard
	Cursor Cursor
	Reveal []reveal.Step
}

// More returns the next page after shown items. The reveal plan covers
// only the new slice, so earlier items never re-animate.
func (h HomeView) More(shown int) AchievementBatch {
	from := At(shown, len(h.Items))
	to := from.LoadMore()
	items := h.Items[from.Shown:to.Shown]
	return AchievementBatch{
		Items:  items,
		Cursor: to,
		Reveal: reveal.Plan(achievementIDs(items), reveal.HomeStep),
	}
}

func achievementIDs(cards []AchievementCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
