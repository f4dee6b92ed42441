package worklog

import (
	"time"

	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/shopspring/decimal"
)

// WorkLog is one immutable hours entry by an employee on a project. Role
// side effects (titles filmed/edited, photo progress) hang off the log.
type WorkLog struct {
	LID        uint            `gorm:"primaryKey;column:l_id;autoIncrement" json:"l_id"`
	EmployeeID uint            `gorm:"not null;index" json:"employee_id"`
	ProjectID  uint            `gorm:"not null;index" json:"project_id"`
	LoggedAt   time.Time       `gorm:"column:logged_at;autoCreateTime;index" json:"logged_at"`
	Hours      decimal.Decimal `gorm:"type:numeric(5,1);not null" json:"hours"`
	Comment    *string         `gorm:"type:text" json:"comment,omitempty"`

	Employee user.Employee   `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE" json:"-"`
	Project  project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`

	TitleActions  []TitleAction  `gorm:"foreignKey:WorkLogID;constraint:OnDelete:CASCADE" json:"title_actions,omitempty"`
	PhotoProgress *PhotoProgress `gorm:"foreignKey:WorkLogID;constraint:OnDelete:CASCADE" json:"photo_progress,omitempty"`
}

func (WorkLog) TableName() string {
	return "work_logs"
}

// VideoTitle is one deliverable video on a project. Writers create titles,
// videographers mark them filmed, editors mark them edited. A title may only
// be edited once filmed.
type VideoTitle struct {
	TID       uint      `gorm:"primaryKey;column:t_id;autoIncrement" json:"t_id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	Title     string    `gorm:"size:500;not null" json:"title"`
	CreatedBy *uint     `json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`

	RawUploaded   bool       `gorm:"default:false" json:"raw_uploaded"`
	RawUploadedBy *uint      `json:"raw_uploaded_by,omitempty"`
	RawUploadedAt *time.Time `json:"raw_uploaded_at,omitempty"`

	EditingDone   bool       `gorm:"default:false" json:"editing_done"`
	EditingDoneBy *uint      `json:"editing_done_by,omitempty"`
	EditingDoneAt *time.Time `json:"editing_done_at,omitempty"`

	// FootageKey is the object-store key of the raw footage, if uploaded.
	FootageKey *string `gorm:"size:300" json:"footage_key,omitempty"`

	Project project.Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}

func (VideoTitle) TableName() string {
	return "video_titles"
}

// ActionType tags what a log did to a title.
type ActionType string

const (
	ActionFilmed ActionType = "filmed"
	ActionEdited ActionType = "edited"
)

// TitleAction links a work log to a title transition it performed. The
// (log, title, action) triple is unique so the same transition cannot be
// credited twice to one log.
type TitleAction struct {
	AID          uint       `gorm:"primaryKey;column:a_id;autoIncrement" json:"a_id"`
	WorkLogID    uint       `gorm:"not null;uniqueIndex:uq_title_action" json:"work_log_id"`
	VideoTitleID uint       `gorm:"not null;uniqueIndex:uq_title_action" json:"video_title_id"`
	ActionType   ActionType `gorm:"size:20;not null;uniqueIndex:uq_title_action" json:"action_type"`

	VideoTitle VideoTitle `gorm:"foreignKey:VideoTitleID;constraint:OnDelete:CASCADE" json:"video_title,omitempty"`
}

func (TitleAction) TableName() string {
	return "title_actions"
}

// PhotoProgress is the photographer's two-step checklist for one work log.
// Both flags must be set for the unit to count as complete.
type PhotoProgress struct {
	PPID          uint `gorm:"primaryKey;column:pp_id;autoIncrement" json:"pp_id"`
	WorkLogID     uint `gorm:"not null;uniqueIndex" json:"work_log_id"`
	FieldworkDone bool `gorm:"default:false" json:"fieldwork_done"`
	EditingDone   bool `gorm:"default:false" json:"editing_done"`
}

func (PhotoProgress) TableName() string {
	return "photo_progress"
}
