package repository

import (
	"time"

	"github.com/Hernadil/tracker/internal/domain/expense"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ExpenseRepo interface {
	CreateExpense(x *expense.Expense) error
	DeleteExpense(id uint) error
	ListBetween(start, end time.Time) ([]expense.Expense, error)
	SumBetween(start, end time.Time) (decimal.Decimal, error)
	WithTx(tx *gorm.DB) ExpenseRepo
}

type DBExpenseRepo struct {
	db *gorm.DB
}

func NewExpenseRepo(db *gorm.DB) *DBExpenseRepo {
	return &DBExpenseRepo{db: db}
}

func (r *DBExpenseRepo) CreateExpense(x *expense.Expense) error {
	return r.db.Create(x).Error
}

func (r *DBExpenseRepo) DeleteExpense(id uint) error {
	return r.db.Delete(&expense.Expense{}, id).Error
}

func (r *DBExpenseRepo) ListBetween(start, end time.Time) ([]expense.Expense, error) {
	var expenses []expense.Expense
	err := r.db.Where("spent_on >= ? AND spent_on < ?", start, end).
		Order("spent_on DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *DBExpenseRepo) SumBetween(start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&expense.Expense{}).
		Where("spent_on >= ? AND spent_on < ?", start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *DBExpenseRepo) WithTx(tx *gorm.DB) ExpenseRepo {
	if tx == nil {
		return r
	}
	return &DBExpenseRepo{db: tx}
}
