package routes

import (
	"github.com/Hernadil/tracker/internal/api/handlers"
	"github.com/Hernadil/tracker/internal/api/middleware"
	"github.com/Hernadil/tracker/internal/application"
	"github.com/Hernadil/tracker/internal/cron"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires repositories, services and handlers onto the engine.
// A nil store disables the footage endpoints' backing storage but keeps the
// routes registered so clients get a clear error instead of a 404.
func RegisterRoutes(r *gin.Engine, store *storage.FootageStore) *handlers.Handlers {
	repos := repository.New()
	h := RegisterRoutesWith(r, repos, store)

	cron.StartCleanupTask(application.NewAuditService(repos))
	return h
}

// RegisterRoutesWith is the injectable variant used by tests.
func RegisterRoutesWith(r *gin.Engine, repos *repository.Repos, store *storage.FootageStore) *handlers.Handlers {
	var footage application.FootageCleaner
	if store != nil {
		footage = store
	}
	services := application.New(repos, footage)
	h := handlers.New(services, repos, store, r)
	auth := middleware.NewAuth(repos)

	r.GET("/auth/status", middleware.JWTAuthMiddleware(), handlers.AuthStatusHandler)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	authed := r.Group("/")
	authed.Use(middleware.JWTAuthMiddleware())
	{
		me := authed.Group("/me")
		{
			me.PUT("/password", h.User.ChangePassword)
			me.GET("/projects", h.Membership.MyProjects)
			me.GET("/projects/eligible", h.Membership.EligibleProjects)
		}

		projects := authed.Group("/projects")
		{
			projects.POST("/:id/join", h.Membership.JoinProject)
			projects.GET("/:id/logs", h.WorkLog.ListLogs)
			projects.POST("/:id/logs", h.WorkLog.CreateLog)
			projects.GET("/:id/logs/:log_id", h.WorkLog.GetLog)
			projects.GET("/:id/titles", h.WorkLog.PendingTitles)
			projects.POST("/:id/titles/:title_id/footage", h.Footage.UploadFootage)
			projects.GET("/:id/titles/:title_id/footage", h.Footage.DownloadFootage)

			projects.GET("", auth.Boss(), h.Project.ListProjects)
			projects.POST("", auth.Boss(), h.Project.CreateProject)
			projects.GET("/:id", auth.Boss(), h.Project.GetProject)
			projects.PUT("/:id", auth.Boss(), h.Project.UpdateProject)
			projects.DELETE("/:id", auth.Boss(), h.Project.DeleteProject)
			projects.POST("/:id/complete", auth.Boss(), h.Project.CompleteProject)
		}

		employees := authed.Group("/employees")
		{
			employees.GET("", auth.Boss(), h.User.ListEmployees)
			employees.POST("", auth.Boss(), h.User.Register)
			employees.GET("/search", auth.Boss(), h.User.SearchEmployees)
			employees.GET("/:id", auth.SelfOrBoss(), h.User.GetEmployee)
			employees.GET("/:id/hours", auth.SelfOrBoss(), h.Report.EmployeeHoursChart)
			employees.GET("/:id/projects/:pid/logs", auth.SelfOrBoss(), h.WorkLog.EmployeeProjectLogs)
			employees.PUT("/:id", auth.Boss(), h.User.UpdateEmployee)
			employees.DELETE("/:id", auth.Boss(), h.User.DeleteEmployee)
		}

		reports := authed.Group("/reports", auth.Boss())
		{
			reports.GET("/monthly", h.Report.MonthlySummary)
			reports.GET("/daily", h.Report.DailyChart)
		}

		expenses := authed.Group("/expenses", auth.Boss())
		{
			expenses.GET("", h.Expense.ListExpenses)
			expenses.POST("", h.Expense.CreateExpense)
			expenses.DELETE("/:id", h.Expense.DeleteExpense)
		}

		authed.GET("/audit-logs", auth.Boss(), h.Audit.ListAuditLogs)
	}

	return h
}
