// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"context"
	"html/template"

	"folio/internal/markdown"
	"folio/internal/models"
	"folio/internal/reveal"
	"folio/internal/transform"
)

// DefaultProfilePicture is shown when no profile picture is configured.
const DefaultProfilePicture = "/static/img/headshot.svg"

// SkillCard is a skill with its derived display values.
type SkillCard struct {
	models.Skill
	IconURL string
	Tier    transform.Tier
	Width   int
}

// SkillGroupView is one category heading and its skills.
type SkillGroupView struct {
	Category string
	IconURL  string // empty means the default bolt glyph
	Skills   []SkillCard
}

// ExperienceView is a role with its formatted date range.
type ExperienceView struct {
	models.Experience
	Range string
}

// SectionView is an about section with its rendered body.
type SectionView struct {
	models.AboutContent
	HTML template.HTML
}

// AboutView is the about page.
type AboutView struct {
	Phase          Phase
	ProfilePicture string
	SkillGroups    []SkillGroupView
	Experiences    []ExperienceView
	Education      []models.Education
	Sections       []SectionView
	Bars           reveal.Step
}

// LoadAbout fetches the five about-page collections concurrently.
func LoadAbout(ctx context.Context, src Source) AboutView {
	var (
		l         Loader
		skills    []models.Skill
		exps      []models.Experience
		education []models.Education
		sections  []models.AboutContent
		details   *models.PersonalDetails
	)
	_ = l.Run(ctx,
		func(ctx context.Context) { skills = src.Skills(ctx) },
		func(ctx context.Context) { exps = src.Experiences(ctx) },
		func(ctx context.Context) { education = src.Education(ctx) },
		func(ctx context.Context) { sections = src.AboutContent(ctx) },
		func(ctx context.Context) { details = src.PersonalDetails(ctx) },
	)

	v := AboutView{
		Phase:          l.Phase(),
		ProfilePicture: DefaultProfilePicture,
		Education:      transform.SortEducation(education),
		Bars:           reveal.Step{ID: reveal.AboutBarsID, Delay: reveal.AboutBarsDelay},
	}
	if details != nil && details.ProfilePictureURL != nil && *details.ProfilePictureURL != "" {
		v.ProfilePicture = *details.ProfilePictureURL
	}

	for _, g := range transform.GroupSkills(skills) {
		gv := SkillGroupView{Category: g.Category, IconURL: transform.CategoryIcon(g.Category)}
		for _, s := range g.Skills {
			gv.Skills = append(gv.Skills, SkillCard{
				Skill:   s,
				IconURL: transform.SkillIconURL(s),
				Tier:    transform.ProficiencyTier(s.Proficiency),
				Width:   transform.BarWidth(s.Proficiency),
			})
		}
		v.SkillGroups = append(v.SkillGroups, gv)
	}

	for _, e := range exps {
		v.Experiences = append(v.Experiences, ExperienceView{Experience: e, Range: transform.ExperienceRange(e)})
	}

	for _, s := range transform.SortAboutContent(sections) {
		v.Sections = append(v.Sections, SectionView{AboutContent: s, HTML: sectionHTML(s)})
	}

	return v
}

// sectionHTML returns the body to insert for an about section. Raw markup
// is inserted byte for byte; only sections marked as Markdown are converted.
func sectionHTML(s models.AboutContent) template.HTML {
	if s.IsMarkdown() {
		return markdown.ToHTML(s.Content)
	}
	return template.HTML(s.Content)
}
