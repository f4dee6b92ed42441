package repository

import (
	"errors"

	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"gorm.io/gorm"
)

type MembershipRepo interface {
	// GetOrCreate is the idempotent join: the unique (employee, project)
	// index makes concurrent confirms converge on one row.
	GetOrCreate(employeeID, projectID uint) (project.Membership, error)
	ListByEmployee(employeeID uint) ([]project.Membership, error)
	ListByProject(projectID uint) ([]project.Membership, error)
	CountByProjectAndRole(projectID uint, role user.JobRole) (int64, error)
	Exists(employeeID, projectID uint) (bool, error)
	WithTx(tx *gorm.DB) MembershipRepo
}

type DBMembershipRepo struct {
	db *gorm.DB
}

func NewMembershipRepo(db *gorm.DB) *DBMembershipRepo {
	return &DBMembershipRepo{db: db}
}

func (r *DBMembershipRepo) GetOrCreate(employeeID, projectID uint) (project.Membership, error) {
	var m project.Membership
	err := r.db.
		Where(project.Membership{EmployeeID: employeeID, ProjectID: projectID}).
		FirstOrCreate(&m).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost a race against another confirm; the row exists now.
		err = r.db.
			Where("employee_id = ? AND project_id = ?", employeeID, projectID).
			First(&m).Error
	}
	return m, err
}

func (r *DBMembershipRepo) ListByEmployee(employeeID uint) ([]project.Membership, error) {
	var memberships []project.Membership
	err := r.db.Preload("Project").
		Where("employee_id = ?", employeeID).
		Order("joined_at DESC").
		Find(&memberships).Error
	return memberships, err
}

func (r *DBMembershipRepo) ListByProject(projectID uint) ([]project.Membership, error) {
	var memberships []project.Membership
	err := r.db.Preload("Employee").
		Where("project_id = ?", projectID).
		Order("joined_at").
		Find(&memberships).Error
	return memberships, err
}

func (r *DBMembershipRepo) CountByProjectAndRole(projectID uint, role user.JobRole) (int64, error) {
	var count int64
	err := r.db.Model(&project.Membership{}).
		Joins("JOIN employees e ON e.e_id = project_memberships.employee_id").
		Where("project_memberships.project_id = ? AND e.job_role = ?", projectID, role).
		Count(&count).Error
	return count, err
}

func (r *DBMembershipRepo) Exists(employeeID, projectID uint) (bool, error) {
	var count int64
	err := r.db.Model(&project.Membership{}).
		Where("employee_id = ? AND project_id = ?", employeeID, projectID).
		Count(&count).Error
	return count > 0, err
}

func (r *DBMembershipRepo) WithTx(tx *gorm.DB) MembershipRepo {
	if tx == nil {
		return r
	}
	return &DBMembershipRepo{db: tx}
}
