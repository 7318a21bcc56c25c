// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package transform

import (
	"strings"
	"unicode/utf8"

	"folio/internal/models"
)

// Truncation budgets, in characters.
const (
	WideBudget   = 120
	NarrowBudget = 80
)

const ellipsis = "..."

// Truncate cuts s to budget characters, trims trailing whitespace and
// appends an ellipsis. It reports whether anything was cut; text within
// the budget is returned unchanged.
func Truncate(s string, budget int) (string, bool) {
	if budget < 0 {
		budget = 0
	}
	if utf8.RuneCountInString(s) <= budget {
		return s, false
	}

	cut := 0
	for i := range s {
		if cut == budget {
			return strings.TrimRightFunc(s[:i], isSpace) + ellipsis, true
		}
		cut++
	}
	return s, false
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// CategoryClass returns the badge colors for an achievement category.
func CategoryClass(category string) string {
	switch category {
	case models.CategoryBlog:
		return "bg-blue-100 text-blue-800 border-blue-200"
	case models.CategoryCareer:
		return "bg-green-100 text-green-800 border-green-200"
	default:
		return "bg-gray-100 text-gray-800 border-gray-200"
	}
}

// ExperienceRange renders "January 2021 - Present" style ranges. A current
// role, or one without an end date, ends at "Present".
func ExperienceRange(e models.Experience) string {
	start := ""
	if e.StartDate != "" {
		start = MonthYear(e.StartDate)
	}
	end := "Present"
	if !e.Current && e.EndDate != nil && *e.EndDate != "" {
		end = MonthYear(*e.EndDate)
	}
	return start + " - " + end
}
