// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package transform

import (
	"sort"
	"strings"
	"time"

	"folio/internal/models"
)

// PartitionProducts splits products into featured and other. Every input
// lands in exactly one partition; each partition is sorted by start date,
// newest first. Products without a usable start date compare as equal to
// everything and keep their relative order.
func PartitionProducts(products []models.Product) (featured, other []models.Product) {
	featured = []models.Product{}
	other = []models.Product{}
	for _, p := range products {
		if p.Featured {
			featured = append(featured, p)
		} else {
			other = append(other, p)
		}
	}
	sortProducts(featured)
	sortProducts(other)
	return featured, other
}

func sortProducts(ps []models.Product) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, aok := productStart(ps[i])
		b, bok := productStart(ps[j])
		if !aok || !bok {
			return false
		}
		return a.After(b)
	})
}

func productStart(p models.Product) (time.Time, bool) {
	if p.StartDate == nil {
		return time.Time{}, false
	}
	return ParseStartDate(*p.StartDate)
}

// SortEducation orders degrees by start date, newest first. Entries with
// an unparseable start date go last.
func SortEducation(in []models.Education) []models.Education {
	out := append([]models.Education(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		a, aok := ParseStartDate(out[i].StartDate)
		b, bok := ParseStartDate(out[j].StartDate)
		if aok != bok {
			return aok
		}
		return aok && a.After(b)
	})
	return out
}

// SortAboutContent orders about sections by ascending display order.
func SortAboutContent(in []models.AboutContent) []models.AboutContent {
	out := append([]models.AboutContent(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// ExpandedSet tracks which product descriptions are expanded. It travels
// in the query string as a comma-separated id list.
type ExpandedSet map[string]struct{}

// ParseExpanded decodes a comma-separated id list. Blank entries are
// ignored.
func ParseExpanded(raw string) ExpandedSet {
	set := ExpandedSet{}
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// Has reports whether id is expanded.
func (s ExpandedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Toggle flips id between expanded and collapsed.
func (s ExpandedSet) Toggle(id string) {
	if s.Has(id) {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Encode returns the ids sorted and comma-separated, suitable for a query
// value.
func (s ExpandedSet) Encode() string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return strings.Join(ids, ",")
}
