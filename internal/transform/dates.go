// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package transform holds the pure display logic applied to fetched
// portfolio records at render time: chronological sorting, grouping,
// proficiency banding, truncation and partitioning.
package transform

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"folio/internal/models"
)

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseAchievementDate parses "<MonthName>, <Year>" (full English month
// name, exactly ", " between the parts) into the first day of that month.
// Any other shape reports false.
func ParseAchievementDate(s string) (time.Time, bool) {
	parts := strings.Split(s, ", ")
	if len(parts) != 2 {
		return time.Time{}, false
	}

	month := -1
	for i, name := range months {
		if parts[0] == name {
			month = i
			break
		}
	}
	if month < 0 {
		return time.Time{}, false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC), true
}

// SortAchievements returns achievements newest first. Entries whose date
// does not parse are placed after every well-formed entry, keeping their
// relative order.
func SortAchievements(in []models.Achievement) []models.Achievement {
	type keyed struct {
		a  models.Achievement
		at time.Time
		ok bool
	}
	ks := make([]keyed, len(in))
	for i, a := range in {
		at, ok := ParseAchievementDate(a.Date)
		ks[i] = keyed{a: a, at: at, ok: ok}
	}

	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].ok != ks[j].ok {
			return ks[i].ok
		}
		return ks[i].ok && ks[i].at.After(ks[j].at)
	})

	out := make([]models.Achievement, len(ks))
	for i, k := range ks {
		out[i] = k.a
	}
	return out
}

// startDateLayouts are the start-date shapes accepted for education,
// experience and products.
var startDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"January 2006",
	"January, 2006",
	"Jan 2006",
	"2006",
}

// ParseStartDate parses a stored start date in any of the accepted layouts.
func ParseStartDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthYear formats a stored date as "January 2021". Unparseable input is
// returned unchanged.
func MonthYear(s string) string {
	t, ok := ParseStartDate(s)
	if !ok {
		return s
	}
	return t.Format("January 2006")
}
