package database

import (
	"context"
	"fmt"
	"log/slog"

	"folio/internal/docstore"
)

// seedDocuments is the development content set. It mirrors the shape the
// administrative tooling writes to the hosted store.
var seedDocuments = map[string][]map[string]any{
	docstore.CollectionPersonalDetails: {
		{
			"email":               "arpitgoyal.iitkgp@gmail.com",
			"location":            "Gurugram, India",
			"profile_picture_url": "/static/img/headshot.svg",
			"logo_picture_url":    "/static/img/headshot.svg",
			"github":              "https://github.com/argoyal",
			"linkedin":            "https://www.linkedin.com/in/arpitgoyaliitkgp/",
			"facebook":            "https://facebook.com/arpitgoyal.iitkgp/",
			"instagram":           "https://www.instagram.com/_._appy_._/",
			"stackoverflow":       "https://stackoverflow.com/users/4719293/arpit-goyal",
			"twitter":             "https://twitter.com/_arpitgoyal_",
		},
	},
	docstore.CollectionAchievements: {
		{"date": "June, 2024", "title": "Head of Digital Innovation", "description": "Took over the digital innovation practice, running cloud and platform engineering engagements.", "category": "Career"},
		{"date": "March, 2024", "title": "Scaling platform teams", "description": "Notes on growing a platform team from three engineers to twenty.", "category": "Blog", "link": "https://arpitgoyalkgp.medium.com/"},
		{"date": "January, 2023", "title": "Cloud cost review", "description": "Cut cloud infrastructure spend by forty percent across client workloads.", "category": "Career"},
		{"date": "August, 2021", "title": "Emerging technologies practice", "description": "Started the emerging technologies practice focused on DevOps and data platforms.", "category": "Career"},
		{"date": "July, 2020", "title": "Graduated from IIT Kharagpur", "description": "Completed engineering studies.", "category": "Education"},
	},
	docstore.CollectionExperiences: {
		{"company": "Calance", "role": "Head of Digital Innovation", "period": "2024 - Present", "description": []any{"Lead cloud and DevOps delivery", "Mentor engineering leads"}, "startDate": "2024-06-01", "current": true},
		{"company": "Calance", "role": "Practice Lead, Emerging Technologies", "period": "2021 - 2024", "description": []any{"Built the practice from scratch", "Reduced deployment time by sixty percent"}, "startDate": "2021-08-01", "endDate": "2024-05-31", "current": false},
		{"company": "Ernst & Young", "role": "Software Engineer", "period": "2020 - 2021", "description": []any{"Built the Spotmentor platform"}, "startDate": "2020-07-01", "endDate": "2021-07-31", "current": false},
	},
	docstore.CollectionSkills: {
		{"name": "Python", "category": "Programming", "proficiency": 95, "icon": "python"},
		{"name": "Go", "category": "Programming", "proficiency": 82, "icon": "go"},
		{"name": "AWS", "category": "Cloud Platforms", "proficiency": 90, "icon": "aws"},
		{"name": "Kubernetes", "category": "DevOps Tools", "proficiency": 85, "icon": "kubernetes"},
		{"name": "Terraform", "category": "DevOps Tools", "proficiency": 74, "icon": "terraform"},
		{"name": "Mentoring", "category": "Behavioural", "proficiency": 88},
	},
	docstore.CollectionEducation: {
		{"institution": "IIT Kharagpur", "degree": "B.Tech", "field": "Engineering", "period": "2016 - 2020", "startDate": "2016-07-01", "gpa": "8.5"},
	},
	docstore.CollectionProducts: {
		{"title": "Spotmentor", "description": "Skill intelligence platform serving ten thousand users across enterprise customers, built on Django and React with a recommendation engine for learning paths.", "image": "/static/img/product.svg", "technologies": []any{"Django", "React", "PostgreSQL"}, "featured": true, "category": "Platform", "startDate": "2020-07-01"},
		{"title": "Infra Blueprints", "description": "Terraform modules and pipelines for standing up secure multi-account AWS landing zones.", "image": "/static/img/product.svg", "technologies": []any{"Terraform", "AWS"}, "project_url": "https://github.com/argoyal", "featured": true, "category": "DevOps", "startDate": "2022-03-01"},
		{"title": "Deploy Bot", "description": "Chat-driven deployment assistant that wraps the release pipeline for on-call engineers.", "image": "/static/img/product.svg", "technologies": []any{"Python", "Slack"}, "featured": false, "category": "Tooling", "startDate": "2023-01-01"},
	},
	docstore.CollectionAboutContent: {
		{"section": "background", "content": "<p>I am a tech leader with expertise in DevOps, cloud and Python.</p>", "lastUpdated": "2024-06-01", "order": 1},
		{"section": "approach", "content": "I design **scalable** solutions and mentor teams.", "format": "markdown", "lastUpdated": "2024-06-01", "order": 2},
	},
}

// seedOrder fixes insertion order so the unordered store order is stable.
var seedOrder = []string{
	docstore.CollectionPersonalDetails,
	docstore.CollectionAchievements,
	docstore.CollectionExperiences,
	docstore.CollectionSkills,
	docstore.CollectionEducation,
	docstore.CollectionProducts,
	docstore.CollectionAboutContent,
}

// Seed populates an empty document store with development content. It is a
// no-op when personal details already exist.
func Seed(ctx context.Context, s docstore.Store) error {
	existing, err := s.Find(ctx, docstore.Collection(docstore.CollectionPersonalDetails).Limited(1))
	if err != nil {
		return fmt.Errorf("seed check personal details: %w", err)
	}
	if len(existing) > 0 {
		slog.Info("document store already seeded, skipping")
		return nil
	}

	var total int
	for _, collection := range seedOrder {
		for _, doc := range seedDocuments[collection] {
			if _, err := s.Insert(ctx, collection, doc); err != nil {
				return fmt.Errorf("seed %s: %w", collection, err)
			}
			total++
		}
	}

	slog.Info("document store seeded", "documents", total)
	return nil
}
