package repository

import (
	"github.com/Hernadil/tracker/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	CreateProject(p *project.Project) error
	GetProjectByID(id uint) (project.Project, error)
	UpdateProject(p *project.Project) error
	DeleteProject(id uint) error
	ListProjects() ([]project.Project, error)
	ListProjectsByTypes(types []project.ProjectType) ([]project.Project, error)
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Select("Memberships").Delete(&project.Project{PID: id}).Error
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Order("create_at DESC").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByTypes(types []project.ProjectType) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("project_type IN ?", types).Order("create_at DESC").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
