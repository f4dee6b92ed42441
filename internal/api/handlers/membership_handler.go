package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	svc   *application.MembershipService
	users *application.UserService
}

func NewMembershipHandler(svc *application.MembershipService, users *application.UserService) *MembershipHandler {
	return &MembershipHandler{svc: svc, users: users}
}

// MyProjects godoc
// @Summary Current employee's projects with personal progress
// @Tags memberships
// @Produce json
// @Success 200 {object} map[string]any
// @Router /me/projects [get]
func (h *MembershipHandler) MyProjects(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	emp, err := h.users.GetEmployee(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	views, canJoinMore, err := h.svc.MyProjects(&emp, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"projects":      views,
		"can_join_more": canJoinMore,
	})
}

// EligibleProjects godoc
// @Summary Projects the current employee can join
// @Tags memberships
// @Produce json
// @Success 200 {array} project.Project
// @Router /me/projects/eligible [get]
func (h *MembershipHandler) EligibleProjects(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	emp, err := h.users.GetEmployee(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	projects, err := h.svc.EligibleProjects(&emp, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, projects)
}

// JoinProject godoc
// @Summary Join a project
// @Tags memberships
// @Produce json
// @Param id path int true "Project ID"
// @Success 201 {object} project.Membership
// @Failure 403 {object} response.ErrorResponse "Role mismatch, capacity, schedule conflict or active limit"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id}/join [post]
func (h *MembershipHandler) JoinProject(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	emp, err := h.users.GetEmployee(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	m, err := h.svc.JoinProject(&emp, pid, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrBossCannotJoin),
			errors.Is(err, application.ErrRoleMismatch),
			errors.Is(err, application.ErrProjectClosed),
			errors.Is(err, application.ErrCapacityExceeded),
			errors.Is(err, application.ErrScheduleConflict),
			errors.Is(err, application.ErrTooManyActive):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, m)
}
