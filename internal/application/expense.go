package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hernadil/tracker/internal/domain/expense"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrExpenseNotFound = errors.New("expense not found")
)

type ExpenseService struct {
	Repos *repository.Repos
}

func NewExpenseService(repos *repository.Repos) *ExpenseService {
	return &ExpenseService{Repos: repos}
}

func (s *ExpenseService) CreateExpense(c *gin.Context, input expense.CreateExpenseDTO, creatorID uint, now time.Time) (*expense.Expense, error) {
	amount := decimal.NewFromInt(input.Amount)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	spentOn := startOfDay(now)
	if input.SpentOn != nil {
		parsed, err := time.Parse("2006-01-02", *input.SpentOn)
		if err != nil {
			return nil, ErrInvalidDate
		}
		spentOn = parsed
	}

	x := &expense.Expense{
		Amount:      amount,
		Description: input.Description,
		SpentOn:     spentOn,
		CreatedBy:   &creatorID,
	}
	if err := s.Repos.Expense.CreateExpense(x); err != nil {
		return nil, err
	}
	utils.LogAuditWithConsole(c, "create", "expense", fmt.Sprintf("x_id=%d", x.XID), nil, x, "", s.Repos.Audit)
	return x, nil
}

func (s *ExpenseService) DeleteExpense(c *gin.Context, id uint) error {
	if err := s.Repos.Expense.DeleteExpense(id); err != nil {
		return ErrExpenseNotFound
	}
	utils.LogAuditWithConsole(c, "delete", "expense", fmt.Sprintf("x_id=%d", id), nil, nil, "", s.Repos.Audit)
	return nil
}

// ListMonthExpenses returns the month's expenses with their total.
func (s *ExpenseService) ListMonthExpenses(year int, month time.Month) ([]expense.Expense, decimal.Decimal, error) {
	start, end := monthRange(year, month)
	items, err := s.Repos.Expense.ListBetween(start, end)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total, err := s.Repos.Expense.SumBetween(start, end)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return items, total, nil
}
