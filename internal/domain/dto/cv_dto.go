package dto

import (
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// CVSectionSaveRequest backs the dashboard's add/edit CV-section form.
// The section type is fixed when the form is opened and never patched on
// update; user_id always comes from the authenticated session.
type CVSectionSaveRequest struct {
	ID           *uuid.UUID `json:"id,omitempty"`
	Type         string     `json:"type" binding:"required,oneof=education experience certification"`
	Title        string     `json:"title" binding:"required,max=200"`
	Organization string     `json:"organization" binding:"required,max=200"`
	Location     string     `json:"location" binding:"omitempty,max=200"`
	StartDate    string     `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      *string    `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Description  string     `json:"description" binding:"omitempty,max=2000"`
}

func (req *CVSectionSaveRequest) ToSection(userID uuid.UUID) *domain.CVSection {
	return &domain.CVSection{
		Type:         req.Type,
		Title:        req.Title,
		Organization: req.Organization,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Description:  req.Description,
		UserID:       userID,
	}
}

func (req *CVSectionSaveRequest) Patch(s *domain.CVSection) map[string]any {
	return map[string]any{
		"title":        s.Title,
		"organization": s.Organization,
		"location":     s.Location,
		"start_date":   s.StartDate,
		"end_date":     s.EndDate,
		"description":  s.Description,
	}
}

func InsertCVSectionRow(s *domain.CVSection) map[string]any {
	return map[string]any{
		"type":         s.Type,
		"title":        s.Title,
		"organization": s.Organization,
		"location":     s.Location,
		"start_date":   s.StartDate,
		"end_date":     s.EndDate,
		"description":  s.Description,
		"user_id":      s.UserID,
	}
}

// PersonalInfoSaveRequest backs the profile form on the CV manager.
type PersonalInfoSaveRequest struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	FullName string     `json:"full_name" binding:"required,max=200"`
	Title    string     `json:"title" binding:"required,max=200"`
	Email    string     `json:"email" binding:"required,email"`
	Phone    string     `json:"phone" binding:"omitempty,max=30"`
	Address  string     `json:"address" binding:"omitempty,max=200"`
	Summary  string     `json:"summary" binding:"omitempty,max=2000"`
}

func (req *PersonalInfoSaveRequest) ToPersonalInfo(userID uuid.UUID) *domain.PersonalInfo {
	return &domain.PersonalInfo{
		FullName: req.FullName,
		Title:    req.Title,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Summary:  req.Summary,
		UserID:   userID,
	}
}

func (req *PersonalInfoSaveRequest) Patch(p *domain.PersonalInfo) map[string]any {
	return map[string]any{
		"full_name": p.FullName,
		"title":     p.Title,
		"email":     p.Email,
		"phone":     p.Phone,
		"address":   p.Address,
		"summary":   p.Summary,
	}
}

func InsertPersonalInfoRow(p *domain.PersonalInfo) map[string]any {
	return map[string]any{
		"full_name": p.FullName,
		"title":     p.Title,
		"email":     p.Email,
		"phone":     p.Phone,
		"address":   p.Address,
		"summary":   p.Summary,
		"user_id":   p.UserID,
	}
}
