package dto

import (
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// ServiceSaveRequest backs the dashboard's add/edit service form.
type ServiceSaveRequest struct {
	ID          *uuid.UUID `json:"id,omitempty"`
	Title       string     `json:"title" binding:"required,max=200"`
	Description string     `json:"description" binding:"required,max=2000"`
	Icon        string     `json:"icon" binding:"required,oneof=Code PenTool Server Database"`
}

func (req *ServiceSaveRequest) ToService() *domain.Service {
	return &domain.Service{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	}
}

func (req *ServiceSaveRequest) Patch(s *domain.Service) map[string]any {
	return map[string]any{
		"title":       s.Title,
		"description": s.Description,
		"icon":        s.Icon,
	}
}

func InsertServiceRow(s *domain.Service) map[string]any {
	return map[string]any{
		"title":       s.Title,
		"description": s.Description,
		"icon":        s.Icon,
	}
}
