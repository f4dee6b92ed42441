package user

import "time"

// JobRole is the production role an employee fills on projects.
type JobRole string

const (
	RoleWriter       JobRole = "writer"
	RoleVideographer JobRole = "videographer"
	RoleEditor       JobRole = "editor"
	RolePhotographer JobRole = "photographer"
)

// VideoRoles are the roles working the video stream of a project.
var VideoRoles = []JobRole{RoleWriter, RoleVideographer, RoleEditor}

// Valid reports whether r is one of the recognized production roles.
func (r JobRole) Valid() bool {
	switch r {
	case RoleWriter, RoleVideographer, RoleEditor, RolePhotographer:
		return true
	}
	return false
}

// WorksVideoStream reports whether the role belongs to the video pipeline.
func (r JobRole) WorksVideoStream() bool {
	return r == RoleWriter || r == RoleVideographer || r == RoleEditor
}

// Employee is a staff account. Boss accounts have IsBoss set and no JobRole;
// they manage projects and payroll but never join projects as workers.
type Employee struct {
	EID       uint      `gorm:"primaryKey;column:e_id;autoIncrement" json:"e_id"`
	Username  string    `gorm:"size:50;not null;unique" json:"username"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	FullName  *string   `gorm:"size:100" json:"full_name,omitempty"`
	Email     *string   `gorm:"size:100" json:"email,omitempty"`
	Phone     *string   `gorm:"size:20" json:"phone,omitempty"`
	JobRole   *JobRole  `gorm:"size:20" json:"job_role,omitempty"`
	IsBoss    bool      `gorm:"default:false" json:"is_boss"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// Role returns the employee's job role, or "" for boss/roleless accounts.
func (e *Employee) Role() JobRole {
	if e.JobRole == nil {
		return ""
	}
	return *e.JobRole
}

// DisplayName prefers the full name and falls back to the username.
func (e *Employee) DisplayName() string {
	if e.FullName != nil && *e.FullName != "" {
		return *e.FullName
	}
	return e.Username
}
