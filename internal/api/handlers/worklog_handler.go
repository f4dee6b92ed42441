package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
)

type WorkLogHandler struct {
	svc   *application.WorkLogService
	users *application.UserService
}

func NewWorkLogHandler(svc *application.WorkLogService, users *application.UserService) *WorkLogHandler {
	return &WorkLogHandler{svc: svc, users: users}
}

// CreateLog godoc
// @Summary Log hours on a project with role-specific progress updates
// @Tags worklogs
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param input body worklog.CreateLogDTO true "Log entry"
// @Success 201 {object} worklog.WorkLog
// @Failure 403 {object} response.ErrorResponse "Not a member or project closed"
// @Router /projects/{id}/logs [post]
func (h *WorkLogHandler) CreateLog(c *gin.Context) {
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
	var input worklog.CreateLogDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	emp, err := h.users.GetEmployee(uid)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	log, err := h.svc.CreateLog(&emp, pid, input, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, application.ErrProjectNotFound):
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrInvalidHours):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrNotMember), errors.Is(err, application.ErrProjectClosed):
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, log)
}

// ListLogs godoc
// @Summary Current employee's logs on a project with running total
// @Tags worklogs
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} map[string]any
// @Router /projects/{id}/logs [get]
func (h *WorkLogHandler) ListLogs(c *gin.Context) {
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
	logs, total, err := h.svc.ListLogs(uid, pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logs":        logs,
		"total_hours": total.StringFixed(1),
	})
}

// GetLog godoc
// @Summary One log entry with its title actions and photo checklist
// @Tags worklogs
// @Produce json
// @Param id path int true "Project ID"
// @Param log_id path int true "Log ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} response.ErrorResponse "Work log not found"
// @Router /projects/{id}/logs/{log_id} [get]
func (h *WorkLogHandler) GetLog(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	pid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	lid, err := utils.ParseIDParam(c, "log_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid log id"})
		return
	}
	// Bosses may read any log; employees only their own.
	ownerID := claims.UserID
	if claims.IsBoss {
		ownerID = 0
	}
	log, total, err := h.svc.GetLog(ownerID, pid, lid)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"log":         log,
		"total_hours": total.StringFixed(1),
	})
}

// EmployeeProjectLogs godoc
// @Summary One employee's logs on a project with running total
// @Tags worklogs
// @Produce json
// @Param id path int true "Employee ID"
// @Param pid path int true "Project ID"
// @Success 200 {object} map[string]any
// @Router /employees/{id}/projects/{pid}/logs [get]
func (h *WorkLogHandler) EmployeeProjectLogs(c *gin.Context) {
	eid, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}
	pid, err := utils.ParseIDParam(c, "pid")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid project id"})
		return
	}
	logs, total, err := h.svc.ListLogs(eid, pid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"logs":        logs,
		"total_hours": total.StringFixed(1),
	})
}

// PendingTitles godoc
// @Summary Titles the current employee's role can act on
// @Tags worklogs
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} worklog.VideoTitle
// @Router /projects/{id}/titles [get]
func (h *WorkLogHandler) PendingTitles(c *gin.Context) {
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
	titles, err := h.svc.PendingTitlesFor(pid, emp.Role())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, titles)
}
