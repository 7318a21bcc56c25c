// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"log/slog"

	"folio/internal/docstore"
	"folio/internal/models"
)

// ContentStore reads portfolio content from the document store. Every
// accessor issues a single read and never returns an error: failures are
// logged and replaced by an empty result, so callers cannot tell "no data"
// from "fetch failed".
type ContentStore struct {
	docs docstore.Store

	// productsOrder is the field products are ordered by.
	productsOrder string
}

// NewContentStore creates a new ContentStore over the given document store.
func NewContentStore(docs docstore.Store) *ContentStore {
	return &ContentStore{docs: docs, productsOrder: "startDate"}
}

// fetch runs q and decodes every document. A single malformed document
// fails the whole read.
func fetch[T any](ctx context.Context, s *ContentStore, q docstore.Query, decode func(docstore.Document) (T, error)) []T {
	docs, err := s.docs.Find(ctx, q)
	if err != nil {
		slog.Error("content fetch failed", "collection", q.Collection, "error", err)
		return []T{}
	}

	items := make([]T, 0, len(docs))
	for _, d := range docs {
		item, err := decode(d)
		if err != nil {
			slog.Error("content decode failed", "collection", q.Collection, "error", err)
			return []T{}
		}
		items = append(items, item)
	}
	return items
}

// Achievements returns timeline entries ordered by their stored date text.
// Pages re-sort them chronologically.
func (s *ContentStore) Achievements(ctx context.Context) []models.Achievement {
	q := docstore.Collection(docstore.CollectionAchievements).OrderedBy("date", docstore.Desc)
	return fetch(ctx, s, q, models.DecodeAchievement)
}

// Experiences returns roles, most recent start first.
func (s *ContentStore) Experiences(ctx context.Context) []models.Experience {
	q := docstore.Collection(docstore.CollectionExperiences).OrderedBy("startDate", docstore.Desc)
	return fetch(ctx, s, q, models.DecodeExperience)
}

// Skills returns skills, highest proficiency first.
func (s *ContentStore) Skills(ctx context.Context) []models.Skill {
	q := docstore.Collection(docstore.CollectionSkills).OrderedBy("proficiency", docstore.Desc)
	return fetch(ctx, s, q, models.DecodeSkill)
}

// Education returns degrees, most recent start first.
func (s *ContentStore) Education(ctx context.Context) []models.Education {
	q := docstore.Collection(docstore.CollectionEducation).OrderedBy("startDate", docstore.Desc)
	return fetch(ctx, s, q, models.DecodeEducation)
}

// Products returns every product ordered by start date. If the ordered
// query cannot be constructed it falls back to an unordered read; this is
// not a retry, only one query is sent.
func (s *ContentStore) Products(ctx context.Context) []models.Product {
	q := docstore.Collection(docstore.CollectionProducts).OrderedBy(s.productsOrder, docstore.Desc)
	if err := q.Validate(); err != nil {
		slog.Warn("ordered products query rejected, fetching without order", "error", err)
		q = docstore.Collection(docstore.CollectionProducts)
	}
	return fetch(ctx, s, q, models.DecodeProduct)
}

// FeaturedProducts returns only featured products, ordered by title.
func (s *ContentStore) FeaturedProducts(ctx context.Context) []models.Product {
	q := docstore.Collection(docstore.CollectionProducts).
		WhereEq("featured", true).
		OrderedBy("title", docstore.Asc)
	return fetch(ctx, s, q, models.DecodeProduct)
}

// AboutContent returns about-page sections in ascending display order.
func (s *ContentStore) AboutContent(ctx context.Context) []models.AboutContent {
	q := docstore.Collection(docstore.CollectionAboutContent).OrderedBy("order", docstore.Asc)
	return fetch(ctx, s, q, models.DecodeAboutContent)
}

// PersonalDetails returns the singleton details record, or nil if it is
// missing or the read failed.
func (s *ContentStore) PersonalDetails(ctx context.Context) *models.PersonalDetails {
	q := docstore.Collection(docstore.CollectionPersonalDetails).Limited(1)
	items := fetch(ctx, s, q, models.DecodePersonalDetails)
	if len(items) == 0 {
		return nil
	}
	return &items[0]
}
