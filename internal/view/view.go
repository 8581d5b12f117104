// Package view builds the rendered shapes the public pages and the PDF
// template consume: formatted date ranges, clamped progress bars, grouped
// skills and icon glyphs.
package view

import (
	"fmt"
	"time"

	"github.com/mubarakmsm/myweb/internal/domain"
)

// OngoingMarker replaces the end date when a CV entry has none.
const OngoingMarker = "حتى الآن"

const dateLayout = "2006-01-02"

// FormatDate renders a stored YYYY-MM-DD date as month/year. Values that
// fail to parse render as-is rather than breaking the page.
func FormatDate(date string) string {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return date
	}
	return parsed.Format("01/2006")
}

// FormatDateRange renders "start - end", ending with the ongoing marker
// when end is nil.
func FormatDateRange(start string, end *string) string {
	if end == nil {
		return FormatDate(start) + " - " + OngoingMarker
	}
	return FormatDate(start) + " - " + FormatDate(*end)
}

// SkillBar is one rendered progress row. Width is the level clamped to
// [0,100], expressed as a CSS percentage.
type SkillBar struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Width string `json:"width"`
}

func NewSkillBar(skill domain.Skill) SkillBar {
	level := skill.Level
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	return SkillBar{
		Name:  skill.Name,
		Level: level,
		Width: fmt.Sprintf("%d%%", level),
	}
}

// SkillGroup is one public-page category block.
type SkillGroup struct {
	Category string     `json:"category"`
	Skills   []SkillBar `json:"skills"`
}

// GroupSkills buckets skills into rendered groups, keeping the input's
// category order.
func GroupSkills(skills []domain.Skill) []SkillGroup {
	categories, grouped := domain.GroupSkillsByCategory(skills)

	groups := make([]SkillGroup, 0, len(categories))
	for _, category := range categories {
		bars := make([]SkillBar, 0, len(grouped[category]))
		for _, skill := range grouped[category] {
			bars = append(bars, NewSkillBar(skill))
		}
		groups = append(groups, SkillGroup{Category: category, Skills: bars})
	}
	return groups
}

// ServiceCard is one rendered offering with its icon resolved through the
// closed enumeration.
type ServiceCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func NewServiceCard(offering domain.Service) ServiceCard {
	return ServiceCard{
		ID:          offering.ID.String(),
		Title:       offering.Title,
		Description: offering.Description,
		Icon:        string(domain.NormalizeServiceIcon(offering.Icon)),
	}
}

func ServiceCards(offerings []domain.Service) []ServiceCard {
	cards := make([]ServiceCard, 0, len(offerings))
	for _, offering := range offerings {
		cards = append(cards, NewServiceCard(offering))
	}
	return cards
}

// CVEntry is one rendered CV section row.
type CVEntry struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Location     string `json:"location"`
	DateRange    string `json:"date_range"`
	Description  string `json:"description"`
}

func NewCVEntry(section domain.CVSection) CVEntry {
	return CVEntry{
		ID:           section.ID.String(),
		Title:        section.Title,
		Organization: section.Organization,
		Location:     section.Location,
		DateRange:    FormatDateRange(section.StartDate, section.EndDate),
		Description:  section.Description,
	}
}

func CVEntries(sections []domain.CVSection) []CVEntry {
	entries := make([]CVEntry, 0, len(sections))
	for _, section := range sections {
		entries = append(entries, NewCVEntry(section))
	}
	return entries
}

// CV is the full rendered CV: the profile heading plus entries for each
// section type, with fallback content already substituted for empty groups.
type CV struct {
	PersonalInfo   domain.PersonalInfo `json:"personal_info"`
	Experience     []CVEntry           `json:"experience"`
	Education      []CVEntry           `json:"education"`
	Certifications []CVEntry           `json:"certifications"`
	Skills         []SkillGroup        `json:"skills"`
}

// BuildCV assembles the rendered CV. Each section group falls back to its
// fixed default set when the store has no rows of that type; the skills
// block falls back likewise.
func BuildCV(info domain.PersonalInfo, sections []domain.CVSection, skills []domain.Skill) CV {
	experience := domain.SectionsOfType(sections, domain.SectionExperience)
	if len(experience) == 0 {
		experience = domain.FallbackExperience()
	}
	education := domain.SectionsOfType(sections, domain.SectionEducation)
	if len(education) == 0 {
		education = domain.FallbackEducation()
	}
	certifications := domain.SectionsOfType(sections, domain.SectionCertification)
	if len(certifications) == 0 {
		certifications = domain.FallbackCertifications()
	}
	if len(skills) == 0 {
		skills = domain.FallbackSkills()
	}

	return CV{
		PersonalInfo:   info,
		Experience:     CVEntries(experience),
		Education:      CVEntries(education),
		Certifications: CVEntries(certifications),
		Skills:         GroupSkills(skills),
	}
}
