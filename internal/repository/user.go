package repository

import (
	"github.com/Hernadil/tracker/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	GetUserByID(id uint) (user.Employee, error)
	GetUserByUsername(username string) (user.Employee, error)
	SaveUser(u *user.Employee) error
	UpdateUser(u *user.Employee) error
	DeleteUser(id uint) error
	ListActive(query string) ([]user.Employee, error)
	Search(query string, limit int) ([]user.Employee, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) GetUserByID(id uint) (user.Employee, error) {
	var emp user.Employee
	err := r.db.First(&emp, id).Error
	return emp, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.Employee, error) {
	var emp user.Employee
	err := r.db.Where("username = ?", username).First(&emp).Error
	return emp, err
}

func (r *DBUserRepo) SaveUser(u *user.Employee) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) UpdateUser(u *user.Employee) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) DeleteUser(id uint) error {
	return r.db.Delete(&user.Employee{}, id).Error
}

func (r *DBUserRepo) ListActive(query string) ([]user.Employee, error) {
	var emps []user.Employee
	q := r.db.Where("is_active = ?", true)
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("username ILIKE ? OR full_name ILIKE ?", like, like)
	}
	err := q.Order("username").Find(&emps).Error
	return emps, err
}

func (r *DBUserRepo) Search(query string, limit int) ([]user.Employee, error) {
	var emps []user.Employee
	like := "%" + query + "%"
	err := r.db.Where("is_active = ?", true).
		Where("username ILIKE ? OR full_name ILIKE ?", like, like).
		Limit(limit).
		Find(&emps).Error
	return emps, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
