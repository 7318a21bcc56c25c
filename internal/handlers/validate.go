// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"folio/internal/view"
)

// Request input limits.
const (
	maxUsernameLen = 100
	maxPasswordLen = 200
	maxRevealIDs   = 200
	maxRevealIDLen = 128
)

// validateLogin checks login form inputs and returns the first error found.
// Oversized fields are rejected before any credential comparison.
func validateLogin(username, password string) string {
	if strings.TrimSpace(username) == "" || password == "" {
		return view.MsgInvalidCredentials
	}
	if utf8.RuneCountInString(username) > maxUsernameLen || utf8.RuneCountInString(password) > maxPasswordLen {
		return view.MsgInvalidCredentials
	}
	return ""
}

// parseShown reads a client-reported achievement count. Garbage and
// negative values count as zero; the cursor clamps the upper end.
func parseShown(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseBudget accepts the two known budget names and defaults to wide.
func parseBudget(raw string) string {
	if raw == view.BudgetNarrow {
		return view.BudgetNarrow
	}
	return view.BudgetWide
}

// parseExpandedFlag treats anything but an explicit true as collapsed.
func parseExpandedFlag(raw string) bool {
	b, err := strconv.ParseBool(raw)
	return err == nil && b
}

// parseRevealIDs splits the comma separated id list of a reveal stream.
// Empty and oversized ids are dropped and the list is capped.
func parseRevealIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		id = strings.TrimSpace(id)
		if id == "" || len(id) > maxRevealIDLen {
			continue
		}
		ids = append(ids, id)
		if len(ids) == maxRevealIDs {
			break
		}
	}
	return ids
}
