package application

import (
	"github.com/Hernadil/tracker/internal/repository"
)

type Services struct {
	User       *UserService
	Project    *ProjectService
	Membership *MembershipService
	Progress   *ProgressService
	WorkLog    *WorkLogService
	Revenue    *RevenueService
	Report     *ReportService
	Expense    *ExpenseService
	Audit      *AuditService
}

func New(repos *repository.Repos, footage FootageCleaner) *Services {
	progress := NewProgressService(repos)
	revenue := NewRevenueService(repos)
	project := NewProjectService(repos)
	project.Footage = footage
	return &Services{
		User:       NewUserService(repos, revenue),
		Project:    project,
		Membership: NewMembershipService(repos, progress),
		Progress:   progress,
		WorkLog:    NewWorkLogService(repos),
		Revenue:    revenue,
		Report:     NewReportService(repos, revenue),
		Expense:    NewExpenseService(repos),
		Audit:      NewAuditService(repos),
	}
}
