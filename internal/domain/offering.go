package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceIcon is the closed set of icon names a service offering may carry.
// Stored rows may hold arbitrary text; unknown values fall back to IconCode
// instead of passing through an untyped lookup.
type ServiceIcon string

const (
	IconCode     ServiceIcon = "Code"
	IconPenTool  ServiceIcon = "PenTool"
	IconServer   ServiceIcon = "Server"
	IconDatabase ServiceIcon = "Database"
)

var validServiceIcons = map[ServiceIcon]bool{
	IconCode:     true,
	IconPenTool:  true,
	IconServer:   true,
	IconDatabase: true,
}

func IsValidServiceIcon(icon string) bool {
	return validServiceIcons[ServiceIcon(icon)]
}

// NormalizeServiceIcon maps an arbitrary stored value onto the closed icon
// set, defaulting unknown names to IconCode.
func NormalizeServiceIcon(icon string) ServiceIcon {
	if validServiceIcons[ServiceIcon(icon)] {
		return ServiceIcon(icon)
	}
	return IconCode
}

func ServiceIconNames() []string {
	return []string{string(IconCode), string(IconPenTool), string(IconServer), string(IconDatabase)}
}

// Service is one offering on the public services page.
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=2000"`
	Icon        string    `json:"icon" validate:"required,oneof=Code PenTool Server Database"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Service) Validate() error {
	return ValidateStruct(s)
}

func (s *Service) BeforeSave() {
	sanitizer := NewSecuritySanitizer()
	s.Title = sanitizer.SanitizeString(strings.TrimSpace(s.Title))
	s.Description = sanitizer.SanitizeString(strings.TrimSpace(s.Description))
	s.Icon = strings.TrimSpace(s.Icon)
}
