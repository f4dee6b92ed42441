package repository

import (
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VideoTitleRepo interface {
	CreateTitle(t *worklog.VideoTitle) error
	GetProjectTitle(projectID, titleID uint) (worklog.VideoTitle, error)
	UpdateTitle(t *worklog.VideoTitle) error
	ListByProject(projectID uint) ([]worklog.VideoTitle, error)
	ListPendingFilm(projectID uint) ([]worklog.VideoTitle, error)
	ListPendingEdit(projectID uint) ([]worklog.VideoTitle, error)
	CountByProject(projectID uint) (int64, error)
	CountRawUploaded(projectID uint) (int64, error)
	CountEdited(projectID uint) (int64, error)
	CountUnedited(projectID uint) (int64, error)
	CountByCreator(projectID, employeeID uint) (int64, error)
	// RecordAction credits a title transition to a log. Duplicate
	// (log, title, action) triples are dropped by the unique index.
	RecordAction(a *worklog.TitleAction) error
	WithTx(tx *gorm.DB) VideoTitleRepo
}

type DBVideoTitleRepo struct {
	db *gorm.DB
}

func NewVideoTitleRepo(db *gorm.DB) *DBVideoTitleRepo {
	return &DBVideoTitleRepo{db: db}
}

func (r *DBVideoTitleRepo) CreateTitle(t *worklog.VideoTitle) error {
	return r.db.Create(t).Error
}

func (r *DBVideoTitleRepo) GetProjectTitle(projectID, titleID uint) (worklog.VideoTitle, error) {
	var t worklog.VideoTitle
	err := r.db.Where("project_id = ?", projectID).First(&t, titleID).Error
	return t, err
}

func (r *DBVideoTitleRepo) UpdateTitle(t *worklog.VideoTitle) error {
	return r.db.Save(t).Error
}

func (r *DBVideoTitleRepo) ListByProject(projectID uint) ([]worklog.VideoTitle, error) {
	var titles []worklog.VideoTitle
	err := r.db.Where("project_id = ?", projectID).Order("create_at").Find(&titles).Error
	return titles, err
}

func (r *DBVideoTitleRepo) ListPendingFilm(projectID uint) ([]worklog.VideoTitle, error) {
	var titles []worklog.VideoTitle
	err := r.db.Where("project_id = ? AND raw_uploaded = ?", projectID, false).
		Order("create_at").Find(&titles).Error
	return titles, err
}

func (r *DBVideoTitleRepo) ListPendingEdit(projectID uint) ([]worklog.VideoTitle, error) {
	var titles []worklog.VideoTitle
	err := r.db.Where("project_id = ? AND raw_uploaded = ? AND editing_done = ?",
		projectID, true, false).
		Order("create_at").Find(&titles).Error
	return titles, err
}

func (r *DBVideoTitleRepo) countWhere(query string, args ...interface{}) (int64, error) {
	var count int64
	err := r.db.Model(&worklog.VideoTitle{}).Where(query, args...).Count(&count).Error
	return count, err
}

func (r *DBVideoTitleRepo) CountByProject(projectID uint) (int64, error) {
	return r.countWhere("project_id = ?", projectID)
}

func (r *DBVideoTitleRepo) CountRawUploaded(projectID uint) (int64, error) {
	return r.countWhere("project_id = ? AND raw_uploaded = ?", projectID, true)
}

func (r *DBVideoTitleRepo) CountEdited(projectID uint) (int64, error) {
	return r.countWhere("project_id = ? AND editing_done = ?", projectID, true)
}

func (r *DBVideoTitleRepo) CountUnedited(projectID uint) (int64, error) {
	return r.countWhere("project_id = ? AND editing_done = ?", projectID, false)
}

func (r *DBVideoTitleRepo) CountByCreator(projectID, employeeID uint) (int64, error) {
	return r.countWhere("project_id = ? AND created_by = ?", projectID, employeeID)
}

func (r *DBVideoTitleRepo) RecordAction(a *worklog.TitleAction) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(a).Error
}

func (r *DBVideoTitleRepo) WithTx(tx *gorm.DB) VideoTitleRepo {
	if tx == nil {
		return r
	}
	return &DBVideoTitleRepo{db: tx}
}
