package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/config"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc      *application.UserService
	progress *application.ProgressService
}

func NewUserHandler(svc *application.UserService, progress *application.ProgressService) *UserHandler {
	return &UserHandler{svc: svc, progress: progress}
}

// Register godoc
// @Summary Register a new employee
// @Tags employees
// @Accept json
// @Produce json
// @Param input body user.CreateEmployeeInput true "Employee info"
// @Success 201 {object} user.Employee
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Router /employees [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateEmployeeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	emp, err := h.svc.RegisterEmployee(c, input)
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, emp)
}

// Login godoc
// @Summary Employee login
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginInput
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	emp, token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid username or password"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", token, 3600, "/", "", config.IsProduction, true)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    token,
		EID:      emp.EID,
		Username: emp.Username,
		JobRole:  string(emp.Role()),
		IsBoss:   emp.IsBoss,
	})
}

// Logout godoc
// @Summary Employee logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// ChangePassword godoc
// @Summary Change own password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 401 {object} response.ErrorResponse "Old password is incorrect"
// @Router /me/password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	var input user.ChangePasswordInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	if err := h.svc.ChangePassword(uid, input); err != nil {
		if errors.Is(err, application.ErrIncorrectPassword) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Password changed"})
}

// ListEmployees godoc
// @Summary List active employees with monthly hours and revenue
// @Tags employees
// @Produce json
// @Param q query string false "Name or username filter"
// @Success 200 {array} user.EmployeeSummary
// @Router /employees [get]
func (h *UserHandler) ListEmployees(c *gin.Context) {
	summaries, err := h.svc.ListEmployees(c.Query("q"), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summaries)
}

// SearchEmployees godoc
// @Summary Quick employee name search
// @Tags employees
// @Produce json
// @Param q query string true "Search text"
// @Success 200 {array} user.SearchResult
// @Router /employees/search [get]
func (h *UserHandler) SearchEmployees(c *gin.Context) {
	results, err := h.svc.Search(c.Query("q"), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetEmployee godoc
// @Summary Employee detail with per-project hours, revenue and progress
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} response.ErrorResponse "Employee not found"
// @Router /employees/{id} [get]
func (h *UserHandler) GetEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}
	emp, err := h.svc.GetEmployee(id)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	projects, err := h.svc.EmployeeProjects(id, h.progress)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"employee": emp,
		"projects": projects,
	})
}

// UpdateEmployee godoc
// @Summary Update employee profile
// @Tags employees
// @Accept json
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} user.Employee
// @Failure 404 {object} response.ErrorResponse "Employee not found"
// @Router /employees/{id} [put]
func (h *UserHandler) UpdateEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}
	var input user.UpdateEmployeeInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	emp, err := h.svc.UpdateEmployee(c, id, input)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, emp)
}

// DeleteEmployee godoc
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Employee not found"
// @Router /employees/{id} [delete]
func (h *UserHandler) DeleteEmployee(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}
	if err := h.svc.DeleteEmployee(c, id); err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Employee deleted"})
}
