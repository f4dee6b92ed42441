package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hernadil/tracker/internal/api/middleware"
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound        = errors.New("employee not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrIncorrectPassword   = errors.New("old password is incorrect")
	ErrPasswordHashFailure = errors.New("failed to hash new password")
	ErrUsernameTaken       = errors.New("username already taken")
)

type UserService struct {
	Repos   *repository.Repos
	Revenue *RevenueService
}

func NewUserService(repos *repository.Repos, revenue *RevenueService) *UserService {
	return &UserService{Repos: repos, Revenue: revenue}
}

func roleFromString(s *string) *user.JobRole {
	if s == nil {
		return nil
	}
	r := user.JobRole(*s)
	return &r
}

func (s *UserService) RegisterEmployee(c *gin.Context, input user.CreateEmployeeInput) (*user.Employee, error) {
	_, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err == nil {
		return nil, ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrPasswordHashFailure
	}

	emp := user.Employee{
		Username: input.Username,
		Password: string(hashed),
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		JobRole:  roleFromString(input.JobRole),
		IsBoss:   input.IsBoss,
		IsActive: true,
	}
	if err := s.Repos.User.SaveUser(&emp); err != nil {
		return nil, err
	}
	utils.LogAuditWithConsole(c, "create", "employee", fmt.Sprintf("e_id=%d", emp.EID), nil, emp, "", s.Repos.Audit)
	return &emp, nil
}

func (s *UserService) Login(username, password string) (user.Employee, string, error) {
	emp, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return user.Employee{}, "", ErrInvalidCredentials
	}
	if !emp.IsActive {
		return user.Employee{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(password)); err != nil {
		return user.Employee{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(&emp, 24*time.Hour)
	if err != nil {
		return user.Employee{}, "", err
	}
	return emp, token, nil
}

func (s *UserService) ChangePassword(id uint, input user.ChangePasswordInput) error {
	emp, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(input.OldPassword)); err != nil {
		return ErrIncorrectPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return ErrPasswordHashFailure
	}
	emp.Password = string(hashed)
	return s.Repos.User.UpdateUser(&emp)
}

func (s *UserService) GetEmployee(id uint) (user.Employee, error) {
	emp, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.Employee{}, ErrUserNotFound
	}
	return emp, nil
}

func (s *UserService) UpdateEmployee(c *gin.Context, id uint, input user.UpdateEmployeeInput) (user.Employee, error) {
	emp, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return user.Employee{}, ErrUserNotFound
	}
	old := emp

	if input.FullName != nil {
		emp.FullName = input.FullName
	}
	if input.Email != nil {
		emp.Email = input.Email
	}
	if input.Phone != nil {
		emp.Phone = input.Phone
	}
	if input.JobRole != nil {
		emp.JobRole = roleFromString(input.JobRole)
	}
	if input.IsActive != nil {
		emp.IsActive = *input.IsActive
	}
	if err := s.Repos.User.UpdateUser(&emp); err != nil {
		return user.Employee{}, err
	}
	utils.LogAuditWithConsole(c, "update", "employee", fmt.Sprintf("e_id=%d", emp.EID), old, emp, "", s.Repos.Audit)
	return emp, nil
}

func (s *UserService) DeleteEmployee(c *gin.Context, id uint) error {
	emp, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		return ErrUserNotFound
	}
	if err := s.Repos.User.DeleteUser(id); err != nil {
		return err
	}
	utils.LogAuditWithConsole(c, "delete", "employee", fmt.Sprintf("e_id=%d", id), emp, nil, "", s.Repos.Audit)
	return nil
}

// ListEmployees returns active employees matching the query plus their
// current-month hours and attributed revenue for the boss roster page.
func (s *UserService) ListEmployees(query string, now time.Time) ([]user.EmployeeSummary, error) {
	employees, err := s.Repos.User.ListActive(query)
	if err != nil {
		return nil, err
	}
	start, end := monthRange(now.Year(), now.Month())
	summaries := make([]user.EmployeeSummary, 0, len(employees))
	for _, emp := range employees {
		hours, err := s.Repos.WorkLog.SumHoursByEmployeeBetween(emp.EID, start, end)
		if err != nil {
			return nil, err
		}
		revenue, err := s.Revenue.EmployeeMonthlyRevenue(emp.EID, now.Year(), now.Month())
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, user.EmployeeSummary{
			Employee:       emp,
			MonthlyHours:   hours.StringFixed(1),
			MonthlyRevenue: revenue.Round(0).IntPart(),
		})
	}
	return summaries, nil
}

func (s *UserService) Search(query string, limit int) ([]user.SearchResult, error) {
	employees, err := s.Repos.User.Search(query, limit)
	if err != nil {
		return nil, err
	}
	results := make([]user.SearchResult, 0, len(employees))
	for _, emp := range employees {
		results = append(results, user.SearchResult{
			EID:  emp.EID,
			Name: emp.DisplayName(),
			Role: string(emp.Role()),
		})
	}
	return results, nil
}

// EmployeeProjectDetail is one project row of an employee's detail page.
type EmployeeProjectDetail struct {
	Project    project.Project `json:"project"`
	Hours      string          `json:"hours"`
	Revenue    int64           `json:"revenue"`
	Completion int             `json:"completion"`
}

// EmployeeProjects lists every project the employee belongs to with their
// hours, attributed revenue, and personal progress on each.
func (s *UserService) EmployeeProjects(employeeID uint, progress *ProgressService) ([]EmployeeProjectDetail, error) {
	emp, err := s.Repos.User.GetUserByID(employeeID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	memberships, err := s.Repos.Membership.ListByEmployee(employeeID)
	if err != nil {
		return nil, err
	}
	details := make([]EmployeeProjectDetail, 0, len(memberships))
	for _, m := range memberships {
		hours, err := s.Repos.WorkLog.SumHoursByEmployeeAndProject(employeeID, m.ProjectID)
		if err != nil {
			return nil, err
		}
		revenue, err := s.Revenue.EmployeeProjectRevenue(employeeID, m.ProjectID)
		if err != nil {
			return nil, err
		}
		pct, err := progress.Progress(&m.Project, &emp)
		if err != nil {
			return nil, err
		}
		details = append(details, EmployeeProjectDetail{
			Project:    m.Project,
			Hours:      hours.StringFixed(1),
			Revenue:    revenue.Round(0).IntPart(),
			Completion: pct,
		})
	}
	return details, nil
}
