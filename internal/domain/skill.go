package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Skill is a named proficiency shown as a progress bar, 0–100. Category is
// free text; the public page groups by it client-side.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Level     int       `json:"level" validate:"min=0,max=100"`
	Category  string    `json:"category" validate:"required,max=100"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Skill) Validate() error {
	return ValidateStruct(s)
}

func (s *Skill) BeforeSave() {
	sanitizer := NewSecuritySanitizer()
	s.Name = sanitizer.SanitizeString(strings.TrimSpace(s.Name))
	s.Category = sanitizer.SanitizeString(strings.TrimSpace(s.Category))
}

// GroupSkillsByCategory buckets skills by category, preserving the category
// order of the input slice so the store's ordering survives grouping.
func GroupSkillsByCategory(skills []Skill) ([]string, map[string][]Skill) {
	var categories []string
	grouped := make(map[string][]Skill, len(skills))
	for _, skill := range skills {
		if _, ok := grouped[skill.Category]; !ok {
			categories = append(categories, skill.Category)
		}
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return categories, grouped
}
