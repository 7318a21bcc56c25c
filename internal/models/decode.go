// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"math"

	"folio/internal/docstore"
)

// fieldReader pulls typed values out of a raw document, remembering the
// first type mismatch. Missing fields yield zero values.
type fieldReader struct {
	data map[string]any
	err  error
}

func (r *fieldReader) fail(key string, want string, got any) {
	if r.err == nil {
		r.err = fmt.Errorf("field %q: want %s, got %T", key, want, got)
	}
}

func (r *fieldReader) str(key string) string {
	v, ok := r.data[key]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "string", v)
	}
	return s
}

func (r *fieldReader) optStr(key string) *string {
	v, ok := r.data[key]
	if !ok || v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		r.fail(key, "string", v)
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

func (r *fieldReader) integer(key string) int {
	v, ok := r.data[key]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return int(math.Round(n))
	case float32:
		return int(math.Round(float64(n)))
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	}
	r.fail(key, "number", v)
	return 0
}

func (r *fieldReader) boolean(key string) bool {
	v, ok := r.data[key]
	if !ok || v == nil {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		r.fail(key, "bool", v)
	}
	return b
}

func (r *fieldReader) strings(key string) []string {
	v, ok := r.data[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return append([]string(nil), list...)
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				r.fail(key, "list of strings", item)
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	r.fail(key, "list", v)
	return nil
}

func decodeErr(kind string, doc docstore.Document, err error) error {
	return fmt.Errorf("decode %s %s: %w", kind, doc.ID, err)
}

// DecodeAchievement maps a raw document to an Achievement.
func DecodeAchievement(doc docstore.Document) (Achievement, error) {
	r := fieldReader{data: doc.Data}
	a := Achievement{
		ID:          doc.ID,
		Date:        r.str("date"),
		Title:       r.str("title"),
		Description: r.str("description"),
		Category:    r.str("category"),
		Link:        r.optStr("link"),
	}
	if r.err != nil {
		return Achievement{}, decodeErr("achievement", doc, r.err)
	}
	return a, nil
}

// DecodeExperience maps a raw document to an Experience.
func DecodeExperience(doc docstore.Document) (Experience, error) {
	r := fieldReader{data: doc.Data}
	e := Experience{
		ID:          doc.ID,
		Company:     r.str("company"),
		Role:        r.str("role"),
		Period:      r.str("period"),
		Description: r.strings("description"),
		StartDate:   r.str("startDate"),
		EndDate:     r.optStr("endDate"),
		Current:     r.boolean("current"),
	}
	if r.err != nil {
		return Experience{}, decodeErr("experience", doc, r.err)
	}
	return e, nil
}

// DecodeSkill maps a raw document to a Skill. Out-of-range proficiency is
// kept as-is.
func DecodeSkill(doc docstore.Document) (Skill, error) {
	r := fieldReader{data: doc.Data}
	s := Skill{
		ID:          doc.ID,
		Name:        r.str("name"),
		Category:    r.str("category"),
		Proficiency: r.integer("proficiency"),
		Icon:        r.optStr("icon"),
	}
	if r.err != nil {
		return Skill{}, decodeErr("skill", doc, r.err)
	}
	return s, nil
}

// DecodeEducation maps a raw document to an Education entry.
func DecodeEducation(doc docstore.Document) (Education, error) {
	r := fieldReader{data: doc.Data}
	e := Education{
		ID:          doc.ID,
		Institution: r.str("institution"),
		Degree:      r.str("degree"),
		Field:       r.str("field"),
		Period:      r.str("period"),
		Description: r.optStr("description"),
		GPA:         r.optStr("gpa"),
		StartDate:   r.str("startDate"),
	}
	if r.err != nil {
		return Education{}, decodeErr("education", doc, r.err)
	}
	return e, nil
}

// DecodeProduct maps a raw document to a Product.
func DecodeProduct(doc docstore.Document) (Product, error) {
	r := fieldReader{data: doc.Data}
	p := Product{
		ID:           doc.ID,
		Title:        r.str("title"),
		Description:  r.str("description"),
		Image:        r.str("image"),
		Technologies: r.strings("technologies"),
		ProjectURL:   r.optStr("project_url"),
		Featured:     r.boolean("featured"),
		Category:     r.str("category"),
		StartDate:    r.optStr("startDate"),
	}
	if r.err != nil {
		return Product{}, decodeErr("product", doc, r.err)
	}
	return p, nil
}

// DecodeAboutContent maps a raw document to an AboutContent section.
func DecodeAboutContent(doc docstore.Document) (AboutContent, error) {
	r := fieldReader{data: doc.Data}
	a := AboutContent{
		ID:          doc.ID,
		Section:     r.str("section"),
		Content:     r.str("content"),
		Format:      r.str("format"),
		LastUpdated: r.str("lastUpdated"),
		Order:       r.integer("order"),
	}
	if r.err != nil {
		return AboutContent{}, decodeErr("about content", doc, r.err)
	}
	return a, nil
}

// DecodePersonalDetails maps a raw document to PersonalDetails.
func DecodePersonalDetails(doc docstore.Document) (PersonalDetails, error) {
	r := fieldReader{data: doc.Data}
	p := PersonalDetails{
		ID:                doc.ID,
		Email:             r.str("email"),
		Location:          r.str("location"),
		ProfilePictureURL: r.optStr("profile_picture_url"),
		LogoPictureURL:    r.optStr("logo_picture_url"),
		GitHub:            r.optStr("github"),
		Twitter:           r.optStr("twitter"),
		Facebook:          r.optStr("facebook"),
		LinkedIn:          r.optStr("linkedin"),
		Instagram:         r.optStr("instagram"),
		StackOverflow:     r.optStr("stackoverflow"),
	}
	if r.err != nil {
		return PersonalDetails{}, decodeErr("personal details", doc, r.err)
	}
	return p, nil
}
