package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is a portfolio entry shown in the public gallery and managed from
// the dashboard. The id and created_at are assigned by the record store on
// insert and never change afterwards. Category is free text used for ad-hoc
// grouping on the public page.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=2000"`
	ImageURL    string    `json:"image_url" validate:"omitempty,url"`
	Category    string    `json:"category" validate:"required,max=100"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Project) Validate() error {
	return ValidateStruct(p)
}

// BeforeSave trims and sanitizes the free-text fields before a write.
func (p *Project) BeforeSave() {
	sanitizer := NewSecuritySanitizer()
	p.Title = sanitizer.SanitizeString(strings.TrimSpace(p.Title))
	p.Description = sanitizer.SanitizeString(strings.TrimSpace(p.Description))
	p.Category = sanitizer.SanitizeString(strings.TrimSpace(p.Category))
	p.ImageURL = strings.TrimSpace(p.ImageURL)
}

// ProjectCategories extracts the distinct categories in first-seen order,
// feeding the public page's filter bar.
func ProjectCategories(projects []Project) []string {
	seen := make(map[string]bool, len(projects))
	categories := make([]string, 0, len(projects))
	for _, p := range projects {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}
