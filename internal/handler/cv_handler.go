package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/service"
)

// CVHandler is the dashboard CV manager: section CRUD plus the single
// personal-info row, all scoped to the authenticated user.
type CVHandler struct {
	cv service.CVService
}

func NewCVHandler(cv service.CVService) *CVHandler {
	return &CVHandler{cv: cv}
}

// List serves the manager's working set: the user's sections and profile
// (defaults substituted when no profile row exists).
func (h *CVHandler) List(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	sections, err := h.cv.ListSections(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}
	info, err := h.cv.PersonalInfo(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sections":      sections,
		"personal_info": info,
		"total":         len(sections),
	})
}

// NewSection seeds the add-section form: empty fields, today's start date
// and the session's user id. Nothing is written until Save.
func (h *CVHandler) NewSection(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)

	section, err := h.cv.NewSection(c.Query("type"), userID)
	if err != nil {
		failMutation(c, err, msgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": section})
}

func (h *CVHandler) SaveSection(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	accessToken := c.MustGet("access_token").(string)

	var req dto.CVSectionSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSaveFailed, "details": err.Error()})
		return
	}

	sections, err := h.cv.SaveSection(c.Request.Context(), accessToken, userID, &req)
	if err != nil {
		failMutation(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections, "total": len(sections)})
}

func (h *CVHandler) RemoveSection(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	accessToken := c.MustGet("access_token").(string)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid section id"})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgConfirmDelete})
		return
	}

	sections, err := h.cv.RemoveSection(c.Request.Context(), accessToken, userID, id)
	if err != nil {
		failMutation(c, err, msgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections, "total": len(sections)})
}

func (h *CVHandler) SavePersonalInfo(c *gin.Context) {
	userID := c.MustGet("user_id").(uuid.UUID)
	accessToken := c.MustGet("access_token").(string)

	var req dto.PersonalInfoSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSaveFailed, "details": err.Error()})
		return
	}

	info, err := h.cv.SavePersonalInfo(c.Request.Context(), accessToken, userID, &req)
	if err != nil {
		failMutation(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"personal_info": info})
}
