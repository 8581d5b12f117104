package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/pdf"
	"github.com/mubarakmsm/myweb/internal/service"
	"github.com/mubarakmsm/myweb/internal/view"
)

// User-facing messages. Store-originated failures are logged server-side
// and reduced to these generic Arabic texts.
const (
	msgLoadFailed     = "حدث خطأ أثناء تحميل البيانات"
	msgSaveFailed     = "حدث خطأ أثناء الحفظ"
	msgDeleteFailed   = "حدث خطأ أثناء الحذف"
	msgExportFailed   = "حدث خطأ أثناء إنشاء ملف PDF"
	msgNoProjects     = "لا توجد مشاريع"
	msgConfirmDelete  = "هذا الإجراء يتطلب تأكيدًا"
	msgLoginFailed    = "حدث خطأ أثناء تسجيل الدخول"
	msgRegisterFailed = "حدث خطأ أثناء إنشاء الحساب"
)

// PublicHandler serves the read-only public pages: the same entity lists
// the dashboard manages, with fallback content substituted when the store
// is empty, plus the static home and contact pages.
type PublicHandler struct {
	projects  service.ProjectService
	offerings service.OfferingService
	skills    service.SkillService
	cv        service.CVService
	exporter  *pdf.Exporter
}

func NewPublicHandler(
	projects service.ProjectService,
	offerings service.OfferingService,
	skills service.SkillService,
	cv service.CVService,
	exporter *pdf.Exporter,
) *PublicHandler {
	return &PublicHandler{
		projects:  projects,
		offerings: offerings,
		skills:    skills,
		cv:        cv,
		exporter:  exporter,
	}
}

// Home serves the landing page content: static copy plus the three latest
// projects.
func (h *PublicHandler) Home(c *gin.Context) {
	payload := gin.H{
		"name":     "Eng Mubarak Saeed",
		"headline": "مطور برمجيات",
		"intro":    "أقوم بتطوير مواقع وتطبيقات ويب عصرية باستخدام أحدث التقنيات",
	}

	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("home: loading latest projects")
		// The landing page still renders without the projects strip.
		payload["latest_projects"] = []domain.Project{}
		c.JSON(http.StatusOK, payload)
		return
	}

	if len(projects) > 3 {
		projects = projects[:3]
	}
	payload["latest_projects"] = projects
	c.JSON(http.StatusOK, payload)
}

// Projects serves the public gallery. An empty list renders the documented
// empty-state message, not fallback rows.
func (h *PublicHandler) Projects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}

	payload := gin.H{
		"projects":   projects,
		"categories": domain.ProjectCategories(projects),
		"total":      len(projects),
	}
	if len(projects) == 0 {
		payload["empty_message"] = msgNoProjects
	}
	c.JSON(http.StatusOK, payload)
}

// Services serves the offerings page, substituting the fixed fallback set
// when the store is empty.
func (h *PublicHandler) Services(c *gin.Context) {
	offerings, err := h.offerings.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}

	if len(offerings) == 0 {
		offerings = domain.FallbackServices()
	}
	c.JSON(http.StatusOK, gin.H{"services": view.ServiceCards(offerings)})
}

// Skills serves the public skills page grouped by category, substituting
// the fixed fallback set when the store is empty.
func (h *PublicHandler) Skills(c *gin.Context) {
	skills, err := h.skills.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}

	if len(skills) == 0 {
		skills = domain.FallbackSkills()
	}
	c.JSON(http.StatusOK, gin.H{"groups": view.GroupSkills(skills)})
}

// CV serves the public CV page: the profile (or the default one when the
// store has no row) plus section groups with fallback substitution.
func (h *PublicHandler) CV(c *gin.Context) {
	rendered, err := h.buildCV(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}
	c.JSON(http.StatusOK, rendered)
}

// CVDownload exports the rendered CV as the fixed-name PDF attachment.
func (h *PublicHandler) CVDownload(c *gin.Context) {
	rendered, err := h.buildCV(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}

	pdfBytes, err := h.exporter.Export(c.Request.Context(), rendered)
	if err != nil {
		log.Error().Err(err).Msg("cv: pdf export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgExportFailed})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (h *PublicHandler) buildCV(c *gin.Context) (view.CV, error) {
	ctx := c.Request.Context()

	info, err := h.cv.PublicPersonalInfo(ctx)
	if err != nil {
		return view.CV{}, err
	}
	sections, err := h.cv.PublicSections(ctx)
	if err != nil {
		return view.CV{}, err
	}
	skills, err := h.skills.List(ctx)
	if err != nil {
		return view.CV{}, err
	}

	return view.BuildCV(info, sections, skills), nil
}

// Contact serves the static contact page content; no store state involved.
func (h *PublicHandler) Contact(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   "تواصل معي",
		"email":   "eng.mubarakai@gmail.com",
		"phone":   "779032862",
		"address": "اليمن",
	})
}
