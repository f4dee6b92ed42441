package application

import (
	"time"

	"github.com/Hernadil/tracker/internal/repository"
	"github.com/shopspring/decimal"
)

// MonthProfit is one row of the yearly summary. Amounts are whole currency
// units, rounded half-up from the attributed shares.
type MonthProfit struct {
	Month     time.Month `json:"month"`
	Revenue   int64      `json:"revenue"`
	Expenses  int64      `json:"expenses"`
	Profit    int64      `json:"profit"`
	IsCurrent bool       `json:"is_current"`
}

// DayProfit is one day of the monthly chart.
type DayProfit struct {
	Day      int   `json:"day"`
	Revenue  int64 `json:"revenue"`
	Expenses int64 `json:"expenses"`
	Profit   int64 `json:"profit"`
}

// DayHours is one day of an employee's hours chart.
type DayHours struct {
	Day   int    `json:"day"`
	Hours string `json:"hours"`
}

// ReportService builds the boss dashboards: profit per month across a year,
// profit per day within a month, and per-employee hours charts. Every series
// has a fixed length with explicit zeros so charts never have gaps.
type ReportService struct {
	Repos   *repository.Repos
	Revenue *RevenueService
}

func NewReportService(repos *repository.Repos, revenue *RevenueService) *ReportService {
	return &ReportService{Repos: repos, Revenue: revenue}
}

// MonthlyProfitSummary returns exactly twelve entries for the given year.
func (s *ReportService) MonthlyProfitSummary(year int, now time.Time) ([]MonthProfit, error) {
	summary := make([]MonthProfit, 0, 12)
	for m := time.January; m <= time.December; m++ {
		series, err := s.Revenue.DailyRevenueSeries(year, m)
		if err != nil {
			return nil, err
		}
		revenue := decimal.Zero
		for _, amount := range series {
			revenue = revenue.Add(amount)
		}
		start, end := monthRange(year, m)
		expenses, err := s.Repos.Expense.SumBetween(start, end)
		if err != nil {
			return nil, err
		}
		summary = append(summary, MonthProfit{
			Month:     m,
			Revenue:   revenue.Round(0).IntPart(),
			Expenses:  expenses.Round(0).IntPart(),
			Profit:    revenue.Sub(expenses).Round(0).IntPart(),
			IsCurrent: now.Year() == year && now.Month() == m,
		})
	}
	return summary, nil
}

// DailyProfitChart returns one entry per day of the month, pairing attributed
// revenue with the expenses booked on that day.
func (s *ReportService) DailyProfitChart(year int, month time.Month) ([]DayProfit, error) {
	series, err := s.Revenue.DailyRevenueSeries(year, month)
	if err != nil {
		return nil, err
	}
	start, end := monthRange(year, month)
	expenses, err := s.Repos.Expense.ListBetween(start, end)
	if err != nil {
		return nil, err
	}
	spent := make([]decimal.Decimal, len(series))
	for i := range spent {
		spent[i] = decimal.Zero
	}
	for _, x := range expenses {
		day := x.SpentOn.Day() - 1
		spent[day] = spent[day].Add(x.Amount)
	}

	chart := make([]DayProfit, len(series))
	for i, revenue := range series {
		chart[i] = DayProfit{
			Day:      i + 1,
			Revenue:  revenue.Round(0).IntPart(),
			Expenses: spent[i].Round(0).IntPart(),
			Profit:   revenue.Sub(spent[i]).Round(0).IntPart(),
		}
	}
	return chart, nil
}

// EmployeeDailyHours returns one entry per day of the month with the hours
// the employee logged that day, zero-filled.
func (s *ReportService) EmployeeDailyHours(employeeID uint, year int, month time.Month) ([]DayHours, error) {
	start, end := monthRange(year, month)
	logs, err := s.Repos.WorkLog.ListByEmployeeBetween(employeeID, start, end)
	if err != nil {
		return nil, err
	}
	hours := make([]decimal.Decimal, daysInMonth(year, month))
	for i := range hours {
		hours[i] = decimal.Zero
	}
	for _, log := range logs {
		day := log.LoggedAt.Day() - 1
		hours[day] = hours[day].Add(log.Hours)
	}
	chart := make([]DayHours, len(hours))
	for i, h := range hours {
		chart[i] = DayHours{Day: i + 1, Hours: h.StringFixed(1)}
	}
	return chart, nil
}
