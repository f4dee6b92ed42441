package handlers

import (
	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/storage"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	User       *UserHandler
	Project    *ProjectHandler
	Membership *MembershipHandler
	WorkLog    *WorkLogHandler
	Report     *ReportHandler
	Expense    *ExpenseHandler
	Audit      *AuditHandler
	Footage    *FootageHandler
	Router     *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, store *storage.FootageStore, router *gin.Engine) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User, svc.Progress),
		Project:    NewProjectHandler(svc.Project),
		Membership: NewMembershipHandler(svc.Membership, svc.User),
		WorkLog:    NewWorkLogHandler(svc.WorkLog, svc.User),
		Report:     NewReportHandler(svc.Report),
		Expense:    NewExpenseHandler(svc.Expense),
		Audit:      NewAuditHandler(svc.Audit),
		Footage:    NewFootageHandler(store, repos),
		Router:     router,
	}
}

// AuthStatusHandler reports whether the presented token is still valid.
func AuthStatusHandler(c *gin.Context) {
	claims, exists := c.Get("claims")
	if !exists {
		c.JSON(401, gin.H{"error": "unauthorized"})
		return
	}
	c.JSON(200, gin.H{"status": "ok", "claims": claims})
}
