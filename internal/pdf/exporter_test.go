package pdf

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/view"
)

func TestRenderHTML_FullCV(t *testing.T) {
	exporter, err := NewExporter()
	require.NoError(t, err)

	info := domain.DefaultPersonalInfo(uuid.New())
	cv := view.BuildCV(info, nil, nil)

	html, err := exporter.RenderHTML(cv)
	require.NoError(t, err)

	assert.Contains(t, html, `dir="rtl"`)
	assert.Contains(t, html, info.FullName)
	assert.Contains(t, html, info.Email)
	// Fallback ongoing experience renders with the marker.
	assert.Contains(t, html, view.OngoingMarker)
	// Skill bars carry their CSS width.
	assert.Contains(t, html, `style="width: 95%"`)
	// Each skill group renders under its category heading.
	assert.Contains(t, html, "تطوير الواجهة الأمامية")
	assert.Contains(t, html, "قواعد البيانات")
}

func TestRenderHTML_EscapesStoredText(t *testing.T) {
	exporter, err := NewExporter()
	require.NoError(t, err)

	info := domain.PersonalInfo{
		FullName: "<script>alert(1)</script>",
		Title:    "مطور",
		Email:    "a@b.com",
	}
	sections := []domain.CVSection{
		{Type: domain.SectionExperience, Title: "Dev", Organization: "Co", StartDate: "2024-01-01"},
	}
	skills := []domain.Skill{{Name: "Go", Category: "Backend", Level: 90}}

	html, err := exporter.RenderHTML(view.BuildCV(info, sections, skills))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "Backend")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "CV-Mubarak-Saeed.pdf", Filename)
}
