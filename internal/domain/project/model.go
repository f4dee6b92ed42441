package project

import (
	"time"

	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/shopspring/decimal"
)

// ProjectType selects which work-streams a project runs.
type ProjectType string

const (
	TypeVideo ProjectType = "video"
	TypePhoto ProjectType = "photo"
	TypeBoth  ProjectType = "both"
)

// HasVideoStream reports whether the video pipeline applies.
func (t ProjectType) HasVideoStream() bool {
	return t == TypeVideo || t == TypeBoth
}

// HasPhotoStream reports whether the photo pipeline applies.
func (t ProjectType) HasPhotoStream() bool {
	return t == TypePhoto || t == TypeBoth
}

// Project is a client engagement with a fixed revenue, per-role staffing
// limits and flat pay, and stream-specific deadlines.
type Project struct {
	PID         uint            `gorm:"primaryKey;column:p_id;autoIncrement" json:"p_id"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	Company     string          `gorm:"size:255;not null" json:"company"`
	Revenue     decimal.Decimal `gorm:"type:numeric(12,0);not null" json:"revenue"`
	ProjectType ProjectType     `gorm:"size:10;not null;default:'video'" json:"project_type"`
	Location    *string         `gorm:"size:255" json:"location,omitempty"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`

	RequiredVideoCount int `gorm:"default:0" json:"required_video_count"`

	MaxWriterCount       int `gorm:"default:0" json:"max_writer_count"`
	MaxVideographerCount int `gorm:"default:0" json:"max_videographer_count"`
	MaxEditorCount       int `gorm:"default:0" json:"max_editor_count"`
	MaxPhotographerCount int `gorm:"default:0" json:"max_photographer_count"`

	PayWriter       decimal.Decimal `gorm:"type:numeric(12,0);default:0" json:"pay_writer"`
	PayVideographer decimal.Decimal `gorm:"type:numeric(12,0);default:0" json:"pay_videographer"`
	PayEditor       decimal.Decimal `gorm:"type:numeric(12,0);default:0" json:"pay_editor"`
	PayPhotographer decimal.Decimal `gorm:"type:numeric(12,0);default:0" json:"pay_photographer"`

	WriterDeadline       *time.Time `gorm:"type:date" json:"writer_deadline,omitempty"`
	EditorDeadline       *time.Time `gorm:"type:date" json:"editor_deadline,omitempty"`
	VideographerDate     *time.Time `gorm:"type:date" json:"videographer_date,omitempty"`
	PhotoOnsiteDate      *time.Time `gorm:"type:date" json:"photo_onsite_date,omitempty"`
	PhotoEditingDeadline *time.Time `gorm:"type:date" json:"photo_editing_deadline,omitempty"`

	OnsiteHours        int  `gorm:"default:0" json:"onsite_hours"`
	TotalHoursExpected int  `gorm:"default:0" json:"total_hours_expected"`
	IsCompleted        bool `gorm:"default:false" json:"is_completed"`

	CreatedBy *uint     `json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`

	Memberships []Membership `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"memberships,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// IsExpired reports whether every relevant stream deadline has passed.
// Projects without deadlines never expire.
func (p *Project) IsExpired(today time.Time) bool {
	var deadlines []time.Time
	if p.ProjectType.HasVideoStream() {
		if p.WriterDeadline != nil {
			deadlines = append(deadlines, *p.WriterDeadline)
		}
		if p.EditorDeadline != nil {
			deadlines = append(deadlines, *p.EditorDeadline)
		}
	}
	if p.ProjectType.HasPhotoStream() {
		if p.PhotoEditingDeadline != nil {
			deadlines = append(deadlines, *p.PhotoEditingDeadline)
		}
	}
	if len(deadlines) == 0 {
		return false
	}
	latest := deadlines[0]
	for _, d := range deadlines[1:] {
		if d.After(latest) {
			latest = d
		}
	}
	day := today.Truncate(24 * time.Hour)
	return day.After(latest)
}

// IsActive means the project still accepts logs and signups.
func (p *Project) IsActive(today time.Time) bool {
	return !p.IsExpired(today) && !p.IsCompleted
}

// MainDeadline is the latest configured deadline across both streams.
func (p *Project) MainDeadline() *time.Time {
	var latest *time.Time
	for _, d := range []*time.Time{p.EditorDeadline, p.WriterDeadline, p.PhotoEditingDeadline} {
		if d == nil {
			continue
		}
		if latest == nil || d.After(*latest) {
			latest = d
		}
	}
	return latest
}

// RoleMax returns the configured headcount limit for a role.
func (p *Project) RoleMax(role user.JobRole) int {
	switch role {
	case user.RoleWriter:
		return p.MaxWriterCount
	case user.RoleVideographer:
		return p.MaxVideographerCount
	case user.RoleEditor:
		return p.MaxEditorCount
	case user.RolePhotographer:
		return p.MaxPhotographerCount
	}
	return 0
}

// RolePay returns the flat pay for a role.
func (p *Project) RolePay(role user.JobRole) decimal.Decimal {
	switch role {
	case user.RoleWriter:
		return p.PayWriter
	case user.RoleVideographer:
		return p.PayVideographer
	case user.RoleEditor:
		return p.PayEditor
	case user.RolePhotographer:
		return p.PayPhotographer
	}
	return decimal.Zero
}

// OnsiteDateFor returns the calendar day an employee of the given role must
// be on location, used for schedule-conflict checks. Writers and editors work
// remotely and have no on-site day.
func (p *Project) OnsiteDateFor(role user.JobRole) *time.Time {
	switch role {
	case user.RoleVideographer:
		return p.VideographerDate
	case user.RolePhotographer:
		return p.PhotoOnsiteDate
	}
	return nil
}

// PayrollCommitment is the worst-case payroll: every role slot filled at its
// flat pay. Project creation requires it not to exceed Revenue.
func (p *Project) PayrollCommitment() decimal.Decimal {
	total := decimal.Zero
	for _, role := range []user.JobRole{user.RoleWriter, user.RoleVideographer, user.RoleEditor, user.RolePhotographer} {
		total = total.Add(p.RolePay(role).Mul(decimal.NewFromInt(int64(p.RoleMax(role)))))
	}
	return total
}

// MatchesRole reports whether the project's type has work for the role.
func (p *Project) MatchesRole(role user.JobRole) bool {
	if role.WorksVideoStream() {
		return p.ProjectType.HasVideoStream()
	}
	if role == user.RolePhotographer {
		return p.ProjectType.HasPhotoStream()
	}
	return false
}

// Membership ties an employee to a project. The (employee, project) pair is
// unique; joins go through FirstOrCreate so re-confirming is a no-op.
type Membership struct {
	MID        uint      `gorm:"primaryKey;column:m_id;autoIncrement" json:"m_id"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:uq_membership_employee_project" json:"employee_id"`
	ProjectID  uint      `gorm:"not null;uniqueIndex:uq_membership_employee_project" json:"project_id"`
	JoinedAt   time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`

	Employee user.Employee `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"employee,omitempty"`
	Project  Project       `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Membership) TableName() string {
	return "project_memberships"
}
