package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Section types for cv_sections rows.
const (
	SectionEducation     = "education"
	SectionExperience    = "experience"
	SectionCertification = "certification"
)

var validSectionTypes = map[string]bool{
	SectionEducation:     true,
	SectionExperience:    true,
	SectionCertification: true,
}

func IsValidSectionType(sectionType string) bool {
	return validSectionTypes[sectionType]
}

// CVSection is one CV entry. Dates are stored as YYYY-MM-DD; a nil EndDate
// means the entry is ongoing. UserID scopes the row to the owning session
// and is always supplied from the authenticated session on insert.
//
// end_date >= start_date is deliberately not enforced, matching the data
// the store already holds.
type CVSection struct {
	ID           uuid.UUID `json:"id"`
	Type         string    `json:"type" validate:"required,oneof=education experience certification"`
	Title        string    `json:"title" validate:"required,max=200"`
	Organization string    `json:"organization" validate:"required,max=200"`
	Location     string    `json:"location" validate:"omitempty,max=200"`
	StartDate    string    `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      *string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Description  string    `json:"description" validate:"omitempty,max=2000"`
	UserID       uuid.UUID `json:"user_id"`
}

func (s *CVSection) Validate() error {
	return ValidateStruct(s)
}

func (s *CVSection) BeforeSave() {
	sanitizer := NewSecuritySanitizer()
	s.Title = sanitizer.SanitizeString(strings.TrimSpace(s.Title))
	s.Organization = sanitizer.SanitizeString(strings.TrimSpace(s.Organization))
	s.Location = sanitizer.SanitizeString(strings.TrimSpace(s.Location))
	s.Description = sanitizer.SanitizeString(strings.TrimSpace(s.Description))
	if s.EndDate != nil && strings.TrimSpace(*s.EndDate) == "" {
		s.EndDate = nil
	}
}

// NewCVSection seeds the add-section form: empty fields, today's date as the
// start and the current user attached.
func NewCVSection(sectionType string, userID uuid.UUID) *CVSection {
	return &CVSection{
		Type:      sectionType,
		StartDate: time.Now().Format("2006-01-02"),
		UserID:    userID,
	}
}

// SectionsOfType filters a fetched list down to one section type.
func SectionsOfType(sections []CVSection, sectionType string) []CVSection {
	var out []CVSection
	for _, s := range sections {
		if s.Type == sectionType {
			out = append(out, s)
		}
	}
	return out
}

// PersonalInfo is the single profile row heading the CV. At most one row
// exists per user; when the store has none the fixed default profile below
// is rendered instead.
type PersonalInfo struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name" validate:"required,max=200"`
	Title    string    `json:"title" validate:"required,max=200"`
	Email    string    `json:"email" validate:"required,email"`
	Phone    string    `json:"phone" validate:"omitempty,max=30"`
	Address  string    `json:"address" validate:"omitempty,max=200"`
	Summary  string    `json:"summary" validate:"omitempty,max=2000"`
	UserID   uuid.UUID `json:"user_id"`
}

func (p *PersonalInfo) Validate() error {
	return ValidateStruct(p)
}

func (p *PersonalInfo) BeforeSave() {
	sanitizer := NewSecuritySanitizer()
	p.FullName = sanitizer.SanitizeString(strings.TrimSpace(p.FullName))
	p.Title = sanitizer.SanitizeString(strings.TrimSpace(p.Title))
	p.Address = sanitizer.SanitizeString(strings.TrimSpace(p.Address))
	p.Summary = sanitizer.SanitizeString(strings.TrimSpace(p.Summary))
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
}

// DefaultPersonalInfo is the profile substituted when the store holds no
// personal_info row for the user.
func DefaultPersonalInfo(userID uuid.UUID) PersonalInfo {
	return PersonalInfo{
		FullName: "مبارك سعيد محمد سيف",
		Title:    "مطور برمجيات",
		Email:    "eng.mubarakai@gmail.com",
		Phone:    "779032862",
		Address:  "اليمن",
		Summary:  "متخصص في تطوير البرمجيات وتكنولوجيا المعلومات مع خبرة واسعة في مختلف التقنيات والمنصات.",
		UserID:   userID,
	}
}
