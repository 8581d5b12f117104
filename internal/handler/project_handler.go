package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mubarakmsm/myweb/internal/domain"
	"github.com/mubarakmsm/myweb/internal/domain/dto"
	"github.com/mubarakmsm/myweb/internal/service"
)

// ProjectHandler is the dashboard projects manager: list, save (insert or
// update by id presence) and confirmed delete, each answering with the
// freshly re-fetched list.
type ProjectHandler struct {
	projects service.ProjectService
}

func NewProjectHandler(projects service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgLoadFailed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

func (h *ProjectHandler) Save(c *gin.Context) {
	var req dto.ProjectSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgSaveFailed, "details": err.Error()})
		return
	}

	projects, err := h.projects.Save(c.Request.Context(), &req)
	if err != nil {
		failMutation(c, err, msgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

func (h *ProjectHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgConfirmDelete})
		return
	}

	projects, err := h.projects.Remove(c.Request.Context(), id)
	if err != nil {
		failMutation(c, err, msgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects, "total": len(projects)})
}

// failMutation maps a failed write to the inline form error: validation
// details when the input was bad, the generic Arabic message otherwise.
// Local state is untouched either way; the caller's list is only replaced
// on success.
func failMutation(c *gin.Context, err error, message string) {
	if validationErrs, ok := err.(domain.ValidationErrors); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": message, "details": validationErrs})
		return
	}
	if validationErr, ok := err.(*domain.ValidationError); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   message,
			"field":   validationErr.Field,
			"message": validationErr.Message,
		})
		return
	}

	log.Error().Err(err).Msg("dashboard mutation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
