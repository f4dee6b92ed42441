package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/domain/expense"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct {
	svc *application.ExpenseService
}

func NewExpenseHandler(svc *application.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{svc: svc}
}

// CreateExpense godoc
// @Summary Record a company expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param input body expense.CreateExpenseDTO true "Expense info"
// @Success 201 {object} expense.Expense
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var input expense.CreateExpenseDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}
	x, err := h.svc.CreateExpense(c, input, uid, time.Now())
	if err != nil {
		if errors.Is(err, application.ErrInvalidAmount) || errors.Is(err, application.ErrInvalidDate) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}
	c.JSON(http.StatusCreated, x)
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Produce json
// @Param id path int true "Expense ID"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Expense not found"
// @Router /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid expense id"})
		return
	}
	if err := h.svc.DeleteExpense(c, id); err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Expense deleted"})
}

// ListExpenses godoc
// @Summary List one month's expenses with their total
// @Tags expenses
// @Produce json
// @Param year query int false "Year, defaults to current"
// @Param month query int false "Month, defaults to current"
// @Success 200 {object} map[string]any
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	year, month, err := utils.ParseYearMonthQuery(c, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	items, total, err := h.svc.ListMonthExpenses(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"expenses": items,
		"total":    total.Round(0).IntPart(),
	})
}
