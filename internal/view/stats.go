// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package view

import (
	"strconv"
	"strings"
)

// OverviewStat is a headline figure.
type OverviewStat struct {
	Label string
	Value string
	Icon  string
	Color string
}

// KeyAchievement is a counted result. Counts under 100 are percentages.
type KeyAchievement struct {
	Title       string
	Count       int
	Description string
}

// Display formats the count with thousands separators and its suffix.
func (k KeyAchievement) Display() string {
	suffix := "+"
	if k.Count < 100 {
		suffix = "%"
	}
	return groupThousands(k.Count) + suffix
}

func groupThousands(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TechCategory is a named group of technologies.
type TechCategory struct {
	Name  string
	Techs []string
}

// Milestone is a career timeline entry.
type Milestone struct {
	Years     string
	Milestone string
}

// StatsView is the static career statistics page.
type StatsView struct {
	Overview     []OverviewStat
	Achievements []KeyAchievement
	Technologies []TechCategory
	Timeline     []Milestone
}

// Stats returns the fixed statistics content. It is not backed by the
// content store.
func Stats() StatsView {
	return StatsView{
		Overview: []OverviewStat{
			{Label: "Years of Experience", Value: "5+", Icon: "calendar", Color: "text-blue-600"},
			{Label: "Projects Completed", Value: "50+", Icon: "target", Color: "text-green-600"},
			{Label: "Team Members Led", Value: "25+", Icon: "users", Color: "text-purple-600"},
			{Label: "Technologies Mastered", Value: "20+", Icon: "code", Color: "text-orange-600"},
		},
		Achievements: []KeyAchievement{
			{Title: "Digital Transformation Projects", Count: 20, Description: "Successfully delivered enterprise solutions"},
			{Title: "Cost Optimization", Count: 40, Description: "Percentage reduction in cloud infrastructure costs"},
			{Title: "Deployment Speed", Count: 60, Description: "Percentage improvement in deployment time"},
			{Title: "Platform Users", Count: 10000, Description: "Users served by Spotmentor platform"},
		},
		Technologies: []TechCategory{
			{Name: "Cloud Platforms", Techs: []string{"AWS", "Azure", "GCP"}},
			{Name: "Programming", Techs: []string{"Python", "JavaScript", "Go", "SQL"}},
			{Name: "DevOps Tools", Techs: []string{"Docker", "Kubernetes", "Jenkins", "Terraform"}},
			{Name: "Frameworks", Techs: []string{"Django", "React", "FastAPI", "Next.js"}},
		},
		Timeline: []Milestone{
			{Years: "2024-2025", Milestone: "Leading Digital Innovation at Calance"},
			{Years: "2021-2024", Milestone: "Scaling Emerging Technologies Practice"},
			{Years: "2020-2021", Milestone: "Building Spotmentor at Ernst & Young"},
			{Years: "2016-2020", Milestone: "Engineering Studies at IIT Kharagpur"},
		},
	}
}
