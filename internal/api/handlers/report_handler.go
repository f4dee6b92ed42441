package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	svc *application.ReportService
}

func NewReportHandler(svc *application.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// MonthlySummary godoc
// @Summary Twelve-month profit summary for one year
// @Tags reports
// @Produce json
// @Param year query int false "Year, defaults to current"
// @Success 200 {array} application.MonthProfit
// @Router /reports/monthly [get]
func (h *ReportHandler) MonthlySummary(c *gin.Context) {
	now := time.Now()
	year := now.Year()
	if s := c.Query("year"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid year"})
			return
		}
		year = v
	}
	summary, err := h.svc.MonthlyProfitSummary(year, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DailyChart godoc
// @Summary Per-day revenue, expenses and profit for one month
// @Tags reports
// @Produce json
// @Param year query int false "Year, defaults to current"
// @Param month query int false "Month, defaults to current"
// @Success 200 {array} application.DayProfit
// @Router /reports/daily [get]
func (h *ReportHandler) DailyChart(c *gin.Context) {
	year, month, err := utils.ParseYearMonthQuery(c, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	chart, err := h.svc.DailyProfitChart(year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}

// EmployeeHoursChart godoc
// @Summary Per-day logged hours for one employee in one month
// @Tags reports
// @Produce json
// @Param id path int true "Employee ID"
// @Param year query int false "Year, defaults to current"
// @Param month query int false "Month, defaults to current"
// @Success 200 {array} application.DayHours
// @Router /employees/{id}/hours [get]
func (h *ReportHandler) EmployeeHoursChart(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid employee id"})
		return
	}
	year, month, err := utils.ParseYearMonthQuery(c, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}
	chart, err := h.svc.EmployeeDailyHours(id, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, chart)
}
