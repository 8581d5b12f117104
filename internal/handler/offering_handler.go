package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/service"
)

// OfferingHandler is the dashboard services manager.
type OfferingHandler struct {
	offerings service.OfferingService
}

func NewOfferingHandler(offerings service.OfferingService) *OfferingHandler {
	return &OfferingHandler{offerings: offerings}
}

func (h *OfferingHandler) List(c *gin.Context) {
	offerings, err := h.offerings.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": offerings, "total": len(offerings)})
}

// Icons exposes the closed icon set for the form's picker.
func (h *OfferingHandler) Icons(c *gin.Context) {
	icons := h.offerings.IconNames()
	c.JSON(http.StatusOK, gin.H{"icons": icons, "total": len(icons)})
}

func (h *OfferingHandler) Save(c *gin.Context) {
	var req dto.ServiceSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSaveFailed, "details": err.Error()})
		return
	}

	offerings, err := h.offerings.Save(c.Request.Context(), &req)
	if err != nil {
		failMutation(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": offerings, "total": len(offerings)})
}

func (h *OfferingHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgConfirmDelete})
		return
	}

	offerings, err := h.offerings.Remove(c.Request.Context(), id)
	if err != nil {
		failMutation(c, err, msgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": offerings, "total": len(offerings)})
}
