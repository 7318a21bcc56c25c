// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package transform

import "folio/internal/models"

// SkillGroup is one category of skills in first-seen order.
type SkillGroup struct {
	Category string
	Skills   []models.Skill
}

// GroupSkills partitions skills by category. Categories appear in the
// order they are first seen; members keep their input order.
func GroupSkills(skills []models.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// Tier is a display band for a proficiency score.
type Tier struct {
	Label string
	Class string // CSS gradient for the badge and bar
}

var tiers = []struct {
	min  int
	tier Tier
}{
	{90, Tier{Label: "Expert", Class: "bg-gradient-to-r from-green-500 to-emerald-600"}},
	{80, Tier{Label: "Advanced", Class: "bg-gradient-to-r from-blue-500 to-cyan-600"}},
	{70, Tier{Label: "Intermediate", Class: "bg-gradient-to-r from-yellow-500 to-orange-600"}},
	{60, Tier{Label: "Beginner", Class: "bg-gradient-to-r from-orange-500 to-red-600"}},
}

var noviceTier = Tier{Label: "Novice", Class: "bg-gradient-to-r from-gray-400 to-gray-500"}

// ProficiencyTier maps a score to one of five bands. Lower bounds are
// inclusive; anything under 60, including negatives, is Novice.
func ProficiencyTier(proficiency int) Tier {
	for _, t := range tiers {
		if proficiency >= t.min {
			return t.tier
		}
	}
	return noviceTier
}

// BarWidth clamps a score to a 0-100 percentage for the progress bar.
func BarWidth(proficiency int) int {
	switch {
	case proficiency < 0:
		return 0
	case proficiency > 100:
		return 100
	}
	return proficiency
}

const skillIconBase = "https://skillicons.dev/icons?i="

// SkillIconURL returns the hosted icon for a skill, or "" when none is set.
func SkillIconURL(s models.Skill) string {
	if !s.HasIcon() {
		return ""
	}
	return skillIconBase + *s.Icon
}

const (
	behaviouralCategory = "Behavioural"
	behaviouralIconURL  = "https://cdn-icons-png.flaticon.com/512/4616/4616734.png"
)

// CategoryIcon returns the heading icon for a skill group. Behavioural
// skills get a dedicated image; every other group uses the bolt glyph,
// reported as "".
func CategoryIcon(category string) string {
	if category == behaviouralCategory {
		return behaviouralIconURL
	}
	return ""
}
