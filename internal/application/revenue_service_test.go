package application

import (
	"testing"
	"time"

	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupRevenueMocks(t *testing.T) (*RevenueService, *mock.MockProjectRepo, *mock.MockWorkLogRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockLog := mock.NewMockWorkLogRepo(ctrl)
	repos := &repository.Repos{
		Project: mockProject,
		WorkLog: mockLog,
	}
	return NewRevenueService(repos), mockProject, mockLog
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestDailyRevenueSeries_SharesSumToRevenue(t *testing.T) {
	svc, _, mockLog := setupRevenueMocks(t)

	completed := project.Project{PID: 1, Revenue: dec(40000), IsCompleted: true}
	day3 := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	day20 := time.Date(2026, 2, 20, 15, 0, 0, 0, time.UTC)

	logs := []worklog.WorkLog{
		{LID: 1, ProjectID: 1, Project: completed, Hours: decimal.NewFromFloat(3), LoggedAt: day3},
		{LID: 2, ProjectID: 1, Project: completed, Hours: decimal.NewFromFloat(1), LoggedAt: day20},
	}
	start, end := monthRange(2026, time.February)
	mockLog.EXPECT().ListBetween(start, end).Return(logs, nil)
	mockLog.EXPECT().SumHoursByProject(uint(1)).Return(dec(4), nil)

	series, err := svc.DailyRevenueSeries(2026, time.February)
	assert.NoError(t, err)
	assert.Len(t, series, 28)

	// 3h of 4h lifetime -> 30000; 1h -> 10000; everything else zero.
	assert.True(t, series[2].Equal(dec(30000)), "day 3 got %s", series[2])
	assert.True(t, series[19].Equal(dec(10000)), "day 20 got %s", series[19])

	total := decimal.Zero
	for _, amount := range series {
		total = total.Add(amount)
	}
	assert.True(t, total.Equal(dec(40000)), "shares must conserve revenue, got %s", total)
}

func TestDailyRevenueSeries_IncompleteProjectEarnsNothing(t *testing.T) {
	svc, _, mockLog := setupRevenueMocks(t)

	open := project.Project{PID: 2, Revenue: dec(50000), IsCompleted: false}
	logs := []worklog.WorkLog{
		{LID: 1, ProjectID: 2, Project: open, Hours: dec(8), LoggedAt: time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)},
	}
	start, end := monthRange(2026, time.February)
	mockLog.EXPECT().ListBetween(start, end).Return(logs, nil)

	series, err := svc.DailyRevenueSeries(2026, time.February)
	assert.NoError(t, err)
	for _, amount := range series {
		assert.True(t, amount.IsZero())
	}
}

func TestDailyRevenueSeries_ZeroHourProjectIsZero(t *testing.T) {
	svc, _, mockLog := setupRevenueMocks(t)

	// Lifetime total of zero hours: defined-zero share, no division.
	completed := project.Project{PID: 3, Revenue: dec(10000), IsCompleted: true}
	logs := []worklog.WorkLog{
		{LID: 1, ProjectID: 3, Project: completed, Hours: decimal.Zero, LoggedAt: time.Date(2026, 2, 7, 9, 0, 0, 0, time.UTC)},
	}
	start, end := monthRange(2026, time.February)
	mockLog.EXPECT().ListBetween(start, end).Return(logs, nil)
	mockLog.EXPECT().SumHoursByProject(uint(3)).Return(decimal.Zero, nil)

	series, err := svc.DailyRevenueSeries(2026, time.February)
	assert.NoError(t, err)
	for _, amount := range series {
		assert.True(t, amount.IsZero())
	}
}

func TestEmployeeMonthlyRevenue(t *testing.T) {
	svc, _, mockLog := setupRevenueMocks(t)

	completed := project.Project{PID: 1, Revenue: dec(40000), IsCompleted: true}
	open := project.Project{PID: 2, Revenue: dec(99999), IsCompleted: false}
	logs := []worklog.WorkLog{
		{LID: 1, ProjectID: 1, Project: completed, Hours: dec(1), LoggedAt: time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)},
		{LID: 2, ProjectID: 2, Project: open, Hours: dec(6), LoggedAt: time.Date(2026, 2, 4, 9, 0, 0, 0, time.UTC)},
	}
	start, end := monthRange(2026, time.February)
	mockLog.EXPECT().ListByEmployeeBetween(uint(9), start, end).Return(logs, nil)
	mockLog.EXPECT().SumHoursByProject(uint(1)).Return(dec(4), nil)

	sum, err := svc.EmployeeMonthlyRevenue(9, 2026, time.February)
	assert.NoError(t, err)
	assert.True(t, sum.Equal(dec(10000)), "got %s", sum)
}

func TestEmployeeProjectRevenue_IncompleteIsZero(t *testing.T) {
	svc, mockProject, _ := setupRevenueMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(2)).Return(project.Project{PID: 2, Revenue: dec(50000)}, nil)

	share, err := svc.EmployeeProjectRevenue(9, 2)
	assert.NoError(t, err)
	assert.True(t, share.IsZero())
}

func TestEmployeeProjectRevenue_ProportionalShare(t *testing.T) {
	svc, mockProject, mockLog := setupRevenueMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(1)).Return(project.Project{PID: 1, Revenue: dec(40000), IsCompleted: true}, nil)
	mockLog.EXPECT().SumHoursByProject(uint(1)).Return(dec(4), nil)
	mockLog.EXPECT().SumHoursByEmployeeAndProject(uint(9), uint(1)).Return(dec(3), nil)

	share, err := svc.EmployeeProjectRevenue(9, 1)
	assert.NoError(t, err)
	assert.True(t, share.Equal(dec(30000)), "got %s", share)
}
