// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Achievement is a timeline entry on the home page. Date is free text of
// the form "June, 2024".
type Achievement struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Link        *string `json:"link,omitempty"`
}

// Achievement categories with dedicated badge colors.
const (
	CategoryBlog   = "Blog"
	CategoryCareer = "Career"
)

// Experience is a role held at a company.
type Experience struct {
	ID          string   `json:"id"`
	Company     string   `json:"company"`
	Role        string   `json:"role"`
	Period      string   `json:"period"`
	Description []string `json:"description"`
	StartDate   string   `json:"startDate"`
	EndDate     *string  `json:"endDate,omitempty"`
	Current     bool     `json:"current"`
}

// Skill is a named ability with a 0-100 proficiency score.
type Skill struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Proficiency int     `json:"proficiency"`
	Icon        *string `json:"icon,omitempty"`
}

// Education is a degree entry. Period is a display string.
type Education struct {
	ID          string  `json:"id"`
	Institution string  `json:"institution"`
	Degree      string  `json:"degree"`
	Field       string  `json:"field"`
	Period      string  `json:"period"`
	Description *string `json:"description,omitempty"`
	GPA         *string `json:"gpa,omitempty"`
	StartDate   string  `json:"startDate"`
}

// Product is a showcased project.
type Product struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	ProjectURL   *string  `json:"project_url,omitempty"`
	Featured     bool     `json:"featured"`
	Category     string   `json:"category"`
	StartDate    *string  `json:"startDate,omitempty"`
}

// FormatMarkdown marks an about section whose content is Markdown source.
const FormatMarkdown = "markdown"

// AboutContent is one section of the about page. Content is trusted
// markup written by the site owner and is inserted without sanitization.
// Format is empty for raw markup.
type AboutContent struct {
	ID          string `json:"id"`
	Section     string `json:"section"`
	Content     string `json:"content"`
	Format      string `json:"format,omitempty"`
	LastUpdated string `json:"lastUpdated"`
	Order       int    `json:"order"`
}

// IsMarkdown reports whether Content must be converted before insertion.
func (a AboutContent) IsMarkdown() bool {
	return a.Format == FormatMarkdown
}

// PersonalDetails is the singleton contact and branding record.
type PersonalDetails struct {
	ID                string  `json:"id"`
	Email             string  `json:"email"`
	Location          string  `json:"location"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	LogoPictureURL    *string `json:"logo_picture_url,omitempty"`
	GitHub            *string `json:"github,omitempty"`
	Twitter           *string `json:"twitter,omitempty"`
	Facebook          *string `json:"facebook,omitempty"`
	LinkedIn          *string `json:"linkedin,omitempty"`
	Instagram         *string `json:"instagram,omitempty"`
	StackOverflow     *string `json:"stackoverflow,omitempty"`
}

// HasLink reports whether the achievement carries an external link.
func (a *Achievement) HasLink() bool {
	return a.Link != nil && *a.Link != ""
}

// HasIcon reports whether the skill names an icon.
func (s *Skill) HasIcon() bool {
	return s.Icon != nil && *s.Icon != ""
}

// HasProjectURL reports whether the product links to a live project.
func (p *Product) HasProjectURL() bool {
	return p.ProjectURL != nil && *p.ProjectURL != ""
}
