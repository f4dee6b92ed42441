package handlers

import (
	"errors"
	"net/http"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects godoc
// @Summary List all projects with total logged hours
// @Tags projects
// @Produce json
// @Success 200 {array} project.ProjectSummary
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	summaries, err := h.svc.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// GetProject godoc
// @Summary Project detail with completion status and members by role
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	p, err := h.svc.GetProject(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	completion, err := h.svc.Completion(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	members, err := h.svc.MembersByRole(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"project":    p,
		"completion": completion,
		"members":    members,
	})
}

// CreateProject godoc
// @Summary Create a project
// @Tags projects
// @Accept json
// @Produce json
// @Param input body project.CreateProjectDTO true "Project info"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid input or payroll exceeds revenue"
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var input project.CreateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	p, err := h.svc.CreateProject(c, input, uid)
	if err != nil {
		if errors.Is(err, application.ErrPayrollExceedsRevenue) || errors.Is(err, application.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProject godoc
// @Summary Update a project's descriptive fields
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	var input project.UpdateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	p, err := h.svc.UpdateProject(c, id, input)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// CompleteProject godoc
// @Summary Mark a project completed, releasing its revenue for attribution
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Failure 409 {object} response.ErrorResponse "Project is already completed"
// @Router /projects/{id}/complete [post]
func (h *ProjectHandler) CompleteProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	p, err := h.svc.CompleteProject(c, id)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrProjectAlreadyComplete):
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete a project and its stored footage
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	if err := h.svc.DeleteProject(c, id); err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Project deleted"})
}
