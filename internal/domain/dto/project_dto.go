package dto

import (
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// ProjectSaveRequest backs the dashboard's add/edit project form. A present
// ID means the form was opened on an existing record and Save updates it;
// otherwise Save inserts a new row.
type ProjectSaveRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"required,max=2000"`
	ImageURL    string     `json:"image_url" binding:"omitempty,url"`
	Category    string     `json:"category" binding:"required,max=100"`
}

func (req *ProjectSaveRequest) ToProject() *domain.Project {
	return &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    req.Category,
	}
}

// Patch returns the mutable columns only; id and created_at stay with the
// store.
func (req *ProjectSaveRequest) Patch(p *domain.Project) map[string]any {
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"category":    p.Category,
	}
}

// InsertRow is the row shape sent to the store; id and created_at are
// assigned there.
func InsertProjectRow(p *domain.Project) map[string]any {
	return map[string]any{
		"title":       p.Title,
		"description": p.Description,
		"image_url":   p.ImageURL,
		"category":    p.Category,
	}
}
