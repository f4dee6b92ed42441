package repository

import (
	"github.com/Hernadil/tracker/internal/config/db"
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Project    ProjectRepo
	Membership MembershipRepo
	WorkLog    WorkLogRepo
	VideoTitle VideoTitleRepo
	Expense    ExpenseRepo
	Audit      AuditRepo

	db *gorm.DB
}

// New builds the container over the process-wide connection.
func New() *Repos {
	return NewRepositories(db.DB)
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		Membership: NewMembershipRepo(db),
		WorkLog:    NewWorkLogRepo(db),
		VideoTitle: NewVideoTitleRepo(db),
		Expense:    NewExpenseRepo(db),
		Audit:      NewAuditRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Project:    r.Project.WithTx(tx),
		Membership: r.Membership.WithTx(tx),
		WorkLog:    r.WorkLog.WithTx(tx),
		VideoTitle: r.VideoTitle.WithTx(tx),
		Expense:    r.Expense.WithTx(tx),
		Audit:      r.Audit.WithTx(tx),
		db:         tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	// No connection means injected fakes; run inline.
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
