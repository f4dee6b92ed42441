package repository

import (
	"time"

	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WorkLogRepo interface {
	CreateLog(l *worklog.WorkLog) error
	GetLogByID(id uint) (worklog.WorkLog, error)
	ListByEmployeeAndProject(employeeID, projectID uint) ([]worklog.WorkLog, error)
	ListByProjectAndRole(projectID uint, role user.JobRole) ([]worklog.WorkLog, error)
	ListBetween(start, end time.Time) ([]worklog.WorkLog, error)
	ListByEmployeeBetween(employeeID uint, start, end time.Time) ([]worklog.WorkLog, error)
	SumHoursByProject(projectID uint) (decimal.Decimal, error)
	SumHoursByEmployeeAndProject(employeeID, projectID uint) (decimal.Decimal, error)
	SumHoursByEmployeeBetween(employeeID uint, start, end time.Time) (decimal.Decimal, error)
	SumHoursByEmployeeAndProjectBetween(employeeID, projectID uint, start, end time.Time) (decimal.Decimal, error)
	CountByEmployeeAndProject(employeeID, projectID uint) (int64, error)
	CreatePhotoProgress(p *worklog.PhotoProgress) error
	WithTx(tx *gorm.DB) WorkLogRepo
}

type DBWorkLogRepo struct {
	db *gorm.DB
}

func NewWorkLogRepo(db *gorm.DB) *DBWorkLogRepo {
	return &DBWorkLogRepo{db: db}
}

func (r *DBWorkLogRepo) CreateLog(l *worklog.WorkLog) error {
	return r.db.Create(l).Error
}

func (r *DBWorkLogRepo) GetLogByID(id uint) (worklog.WorkLog, error) {
	var l worklog.WorkLog
	err := r.db.
		Preload("TitleActions.VideoTitle").
		Preload("PhotoProgress").
		First(&l, id).Error
	return l, err
}

func (r *DBWorkLogRepo) ListByEmployeeAndProject(employeeID, projectID uint) ([]worklog.WorkLog, error) {
	var logs []worklog.WorkLog
	err := r.db.
		Preload("PhotoProgress").
		Where("employee_id = ? AND project_id = ?", employeeID, projectID).
		Order("logged_at DESC").
		Find(&logs).Error
	return logs, err
}

func (r *DBWorkLogRepo) ListByProjectAndRole(projectID uint, role user.JobRole) ([]worklog.WorkLog, error) {
	var logs []worklog.WorkLog
	err := r.db.
		Preload("PhotoProgress").
		Joins("JOIN employees e ON e.e_id = work_logs.employee_id").
		Where("work_logs.project_id = ? AND e.job_role = ?", projectID, role).
		Order("work_logs.logged_at").
		Find(&logs).Error
	return logs, err
}

func (r *DBWorkLogRepo) ListBetween(start, end time.Time) ([]worklog.WorkLog, error) {
	var logs []worklog.WorkLog
	err := r.db.
		Preload("Project").
		Where("logged_at >= ? AND logged_at < ?", start, end).
		Find(&logs).Error
	return logs, err
}

func (r *DBWorkLogRepo) ListByEmployeeBetween(employeeID uint, start, end time.Time) ([]worklog.WorkLog, error) {
	var logs []worklog.WorkLog
	err := r.db.
		Preload("Project").
		Where("employee_id = ? AND logged_at >= ? AND logged_at < ?", employeeID, start, end).
		Find(&logs).Error
	return logs, err
}

func (r *DBWorkLogRepo) sumHours(q *gorm.DB) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := q.Select("COALESCE(SUM(hours), 0)").Scan(&total).Error
	return total, err
}

func (r *DBWorkLogRepo) SumHoursByProject(projectID uint) (decimal.Decimal, error) {
	return r.sumHours(r.db.Model(&worklog.WorkLog{}).Where("project_id = ?", projectID))
}

func (r *DBWorkLogRepo) SumHoursByEmployeeAndProject(employeeID, projectID uint) (decimal.Decimal, error) {
	return r.sumHours(r.db.Model(&worklog.WorkLog{}).
		Where("employee_id = ? AND project_id = ?", employeeID, projectID))
}

func (r *DBWorkLogRepo) SumHoursByEmployeeBetween(employeeID uint, start, end time.Time) (decimal.Decimal, error) {
	return r.sumHours(r.db.Model(&worklog.WorkLog{}).
		Where("employee_id = ? AND logged_at >= ? AND logged_at < ?", employeeID, start, end))
}

func (r *DBWorkLogRepo) SumHoursByEmployeeAndProjectBetween(employeeID, projectID uint, start, end time.Time) (decimal.Decimal, error) {
	return r.sumHours(r.db.Model(&worklog.WorkLog{}).
		Where("employee_id = ? AND project_id = ? AND logged_at >= ? AND logged_at < ?",
			employeeID, projectID, start, end))
}

func (r *DBWorkLogRepo) CountByEmployeeAndProject(employeeID, projectID uint) (int64, error) {
	var count int64
	err := r.db.Model(&worklog.WorkLog{}).
		Where("employee_id = ? AND project_id = ?", employeeID, projectID).
		Count(&count).Error
	return count, err
}

func (r *DBWorkLogRepo) CreatePhotoProgress(p *worklog.PhotoProgress) error {
	return r.db.Create(p).Error
}

func (r *DBWorkLogRepo) WithTx(tx *gorm.DB) WorkLogRepo {
	if tx == nil {
		return r
	}
	return &DBWorkLogRepo{db: tx}
}
