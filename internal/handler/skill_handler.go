package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/service"
)

// SkillHandler is the dashboard skills manager.
type SkillHandler struct {
	skills service.SkillService
}

func NewSkillHandler(skills service.SkillService) *SkillHandler {
	return &SkillHandler{skills: skills}
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skills.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "total": len(skills)})
}

func (h *SkillHandler) Save(c *gin.Context) {
	var req dto.SkillSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSaveFailed, "details": err.Error()})
		return
	}

	skills, err := h.skills.Save(c.Request.Context(), &req)
	if err != nil {
		failMutation(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "total": len(skills)})
}

func (h *SkillHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill id"})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgConfirmDelete})
		return
	}

	skills, err := h.skills.Remove(c.Request.Context(), id)
	if err != nil {
		failMutation(c, err, msgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": skills, "total": len(skills)})
}
