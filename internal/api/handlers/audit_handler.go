package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// ListAuditLogs godoc
// @Summary Query the audit trail
// @Tags audit
// @Produce json
// @Param user_id query int false "Filter by acting user"
// @Param resource_type query string false "Filter by resource type"
// @Param action query string false "Filter by action"
// @Param start query string false "RFC3339 lower bound"
// @Param end query string false "RFC3339 upper bound"
// @Param limit query int false "Page size, default 50"
// @Param offset query int false "Page offset"
// @Success 200 {array} audit.AuditLog
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	var q repository.AuditQuery

	if s := c.Query("user_id"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user_id"})
			return
		}
		uid := uint(v)
		q.UserID = &uid
	}
	if s := c.Query("resource_type"); s != "" {
		q.ResourceType = &s
	}
	if s := c.Query("action"); s != "" {
		q.Action = &s
	}
	if s := c.Query("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid start time"})
			return
		}
		q.StartTime = &t
	}
	if s := c.Query("end"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid end time"})
			return
		}
		q.EndTime = &t
	}
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	q.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.svc.ListLogs(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
