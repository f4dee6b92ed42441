package application

import (
	"time"

	"github.com/Hernadil/tracker/internal/repository"
	"github.com/shopspring/decimal"
)

// RevenueService attributes project revenue to days and employees in
// proportion to hours logged. Only completed projects earn: until the boss
// closes a project its revenue stays unattributed, so totals never shrink
// when more hours arrive later. The denominator is the project's lifetime
// hours, which keeps the shares of one project summing to exactly its
// revenue regardless of when the hours were logged.
type RevenueService struct {
	Repos *repository.Repos
}

func NewRevenueService(repos *repository.Repos) *RevenueService {
	return &RevenueService{Repos: repos}
}

// projectShare is revenue × hours ÷ totalHours, zero when the project has no
// hours at all.
func projectShare(revenue, hours, totalHours decimal.Decimal) decimal.Decimal {
	if totalHours.IsZero() {
		return decimal.Zero
	}
	return revenue.Mul(hours).Div(totalHours)
}

// DailyRevenueSeries returns one amount per day of the given month: the
// summed shares of every log entry dated that day. Days without earning
// logs are zero.
func (s *RevenueService) DailyRevenueSeries(year int, month time.Month) ([]decimal.Decimal, error) {
	start, end := monthRange(year, month)
	logs, err := s.Repos.WorkLog.ListBetween(start, end)
	if err != nil {
		return nil, err
	}

	series := make([]decimal.Decimal, daysInMonth(year, month))
	for i := range series {
		series[i] = decimal.Zero
	}
	totals := map[uint]decimal.Decimal{}
	for _, log := range logs {
		if !log.Project.IsCompleted {
			continue
		}
		total, ok := totals[log.ProjectID]
		if !ok {
			total, err = s.Repos.WorkLog.SumHoursByProject(log.ProjectID)
			if err != nil {
				return nil, err
			}
			totals[log.ProjectID] = total
		}
		day := log.LoggedAt.Day() - 1
		series[day] = series[day].Add(projectShare(log.Project.Revenue, log.Hours, total))
	}
	return series, nil
}

// EmployeeMonthlyRevenue sums one employee's shares across all completed
// projects they logged on during the month.
func (s *RevenueService) EmployeeMonthlyRevenue(employeeID uint, year int, month time.Month) (decimal.Decimal, error) {
	start, end := monthRange(year, month)
	logs, err := s.Repos.WorkLog.ListByEmployeeBetween(employeeID, start, end)
	if err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	totals := map[uint]decimal.Decimal{}
	for _, log := range logs {
		if !log.Project.IsCompleted {
			continue
		}
		total, ok := totals[log.ProjectID]
		if !ok {
			total, err = s.Repos.WorkLog.SumHoursByProject(log.ProjectID)
			if err != nil {
				return decimal.Zero, err
			}
			totals[log.ProjectID] = total
		}
		sum = sum.Add(projectShare(log.Project.Revenue, log.Hours, total))
	}
	return sum, nil
}

// EmployeeProjectRevenue is one employee's full share of one project.
// Incomplete projects attribute nothing.
func (s *RevenueService) EmployeeProjectRevenue(employeeID, projectID uint) (decimal.Decimal, error) {
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		return decimal.Zero, ErrProjectNotFound
	}
	if !p.IsCompleted {
		return decimal.Zero, nil
	}
	total, err := s.Repos.WorkLog.SumHoursByProject(projectID)
	if err != nil {
		return decimal.Zero, err
	}
	mine, err := s.Repos.WorkLog.SumHoursByEmployeeAndProject(employeeID, projectID)
	if err != nil {
		return decimal.Zero, err
	}
	return projectShare(p.Revenue, mine, total), nil
}
