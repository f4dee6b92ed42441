package application

import (
	"testing"
	"time"

	"github.com/Hernadil/tracker/internal/domain/expense"
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupReportMocks(t *testing.T) (*ReportService, *mock.MockWorkLogRepo, *mock.MockExpenseRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockLog := mock.NewMockWorkLogRepo(ctrl)
	mockExpense := mock.NewMockExpenseRepo(ctrl)
	repos := &repository.Repos{
		WorkLog: mockLog,
		Expense: mockExpense,
	}
	return NewReportService(repos, NewRevenueService(repos)), mockLog, mockExpense
}

func TestMonthlyProfitSummary_TwelveEntries(t *testing.T) {
	svc, mockLog, mockExpense := setupReportMocks(t)

	completed := project.Project{PID: 1, Revenue: dec(12000), IsCompleted: true}
	marchLog := []worklog.WorkLog{
		{LID: 1, ProjectID: 1, Project: completed, Hours: dec(2), LoggedAt: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)},
	}
	marchStart, marchEnd := monthRange(2026, time.March)

	mockLog.EXPECT().ListBetween(marchStart, marchEnd).Return(marchLog, nil)
	mockLog.EXPECT().ListBetween(gomock.Any(), gomock.Any()).Return([]worklog.WorkLog{}, nil).AnyTimes()
	mockLog.EXPECT().SumHoursByProject(uint(1)).Return(dec(2), nil)
	mockExpense.EXPECT().SumBetween(marchStart, marchEnd).Return(dec(4500), nil)
	mockExpense.EXPECT().SumBetween(gomock.Any(), gomock.Any()).Return(decimal.Zero, nil).AnyTimes()

	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	summary, err := svc.MonthlyProfitSummary(2026, now)
	assert.NoError(t, err)
	assert.Len(t, summary, 12)

	march := summary[2]
	assert.Equal(t, time.March, march.Month)
	assert.Equal(t, int64(12000), march.Revenue)
	assert.Equal(t, int64(4500), march.Expenses)
	assert.Equal(t, int64(7500), march.Profit)
	assert.True(t, march.IsCurrent)

	for i, m := range summary {
		if i != 2 {
			assert.False(t, m.IsCurrent)
			assert.Equal(t, int64(0), m.Revenue)
		}
	}
}

func TestDailyProfitChart_ZeroFilled(t *testing.T) {
	svc, mockLog, mockExpense := setupReportMocks(t)

	start, end := monthRange(2026, time.April)
	mockLog.EXPECT().ListBetween(start, end).Return([]worklog.WorkLog{}, nil)
	mockExpense.EXPECT().ListBetween(start, end).Return([]expense.Expense{
		{XID: 1, Amount: dec(800), SpentOn: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)},
	}, nil)

	chart, err := svc.DailyProfitChart(2026, time.April)
	assert.NoError(t, err)
	assert.Len(t, chart, 30)

	assert.Equal(t, 10, chart[9].Day)
	assert.Equal(t, int64(800), chart[9].Expenses)
	assert.Equal(t, int64(-800), chart[9].Profit)
	assert.Equal(t, int64(0), chart[0].Expenses)
}

func TestEmployeeDailyHours_FixedLength(t *testing.T) {
	svc, mockLog, _ := setupReportMocks(t)

	start, end := monthRange(2026, time.February)
	mockLog.EXPECT().ListByEmployeeBetween(uint(4), start, end).Return([]worklog.WorkLog{
		{LID: 1, Hours: decimal.NewFromFloat(2.5), LoggedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)},
		{LID: 2, Hours: decimal.NewFromFloat(1.5), LoggedAt: time.Date(2026, 2, 1, 16, 0, 0, 0, time.UTC)},
	}, nil)

	chart, err := svc.EmployeeDailyHours(4, 2026, time.February)
	assert.NoError(t, err)
	assert.Len(t, chart, 28)
	assert.Equal(t, "4.0", chart[0].Hours)
	assert.Equal(t, "0.0", chart[27].Hours)
}
