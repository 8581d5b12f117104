package dto

import (
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// SkillSaveRequest backs the dashboard's add/edit skill form. Level is the
// progress-bar value, 0–100.
type SkillSaveRequest struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Name     string     `json:"name" binding:"required,max=100"`
	Level    int        `json:"level" binding:"min=0,max=100"`
	Category string     `json:"category" binding:"required,max=100"`
}

func (req *SkillSaveRequest) ToSkill() *domain.Skill {
	return &domain.Skill{
		Name:     req.Name,
		Level:    req.Level,
		Category: req.Category,
	}
}

func (req *SkillSaveRequest) Patch(s *domain.Skill) map[string]any {
	return map[string]any{
		"name":     s.Name,
		"level":    s.Level,
		"category": s.Category,
	}
}

func InsertSkillRow(s *domain.Skill) map[string]any {
	return map[string]any{
		"name":     s.Name,
		"level":    s.Level,
		"category": s.Category,
	}
}
