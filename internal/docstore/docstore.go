// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package docstore provides read access to a hosted document database.
// Documents are schemaless JSON objects grouped into named collections.
// Queries select a whole collection, optionally ordered by one field,
// filtered by field equality and limited to a number of results.
package docstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Collection names used by the portfolio.
const (
	CollectionAchievements    = "achievements"
	CollectionExperiences     = "experiences"
	CollectionSkills          = "skills"
	CollectionEducation       = "education"
	CollectionProducts        = "products"
	CollectionAboutContent    = "aboutContent"
	CollectionPersonalDetails = "personal_details"
)

// ErrInvalidQuery is returned when a query cannot be constructed, before
// any request reaches the database.
var ErrInvalidQuery = errors.New("docstore: invalid query")

// Direction is the sort direction of an ordered query.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Document is a single record as stored: a store-assigned ID plus the raw
// field data.
type Document struct {
	ID   string
	Data map[string]any
}

// Filter matches documents whose Field equals Value.
type Filter struct {
	Field string
	Value any
}

// Query describes one read against a collection.
type Query struct {
	Collection string
	OrderBy    string // empty = store order
	Direction  Direction
	Where      []Filter
	Limit      int // 0 = no limit
}

// Store is implemented by every document database backend.
type Store interface {
	// Find runs a single read query and returns the matching documents.
	Find(ctx context.Context, q Query) ([]Document, error)
	// Insert adds a document and returns the store-assigned ID. Only the
	// development seeder writes.
	Insert(ctx context.Context, collection string, data map[string]any) (string, error)
	Close() error
}

var fieldPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Validate checks that a query can be sent to a backend. Field names end
// up inside generated SQL, so they are restricted to identifier characters.
func (q Query) Validate() error {
	if q.Collection == "" {
		return fmt.Errorf("%w: empty collection", ErrInvalidQuery)
	}
	if q.OrderBy != "" && !fieldPattern.MatchString(q.OrderBy) {
		return fmt.Errorf("%w: order field %q", ErrInvalidQuery, q.OrderBy)
	}
	for _, f := range q.Where {
		if !fieldPattern.MatchString(f.Field) {
			return fmt.Errorf("%w: filter field %q", ErrInvalidQuery, f.Field)
		}
	}
	if q.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidQuery, q.Limit)
	}
	return nil
}

// Collection starts a query over the named collection.
func Collection(name string) Query {
	return Query{Collection: name}
}

// OrderedBy returns a copy of q sorted by field in the given direction.
func (q Query) OrderedBy(field string, dir Direction) Query {
	q.OrderBy = field
	q.Direction = dir
	return q
}

// WhereEq returns a copy of q with an added equality filter.
func (q Query) WhereEq(field string, value any) Query {
	q.Where = append(append([]Filter(nil), q.Where...), Filter{Field: field, Value: value})
	return q
}

// Limited returns a copy of q capped at n results.
func (q Query) Limited(n int) Query {
	q.Limit = n
	return q
}
