package project

import "github.com/shopspring/decimal"

type CreateProjectDTO struct {
	Title       string  `json:"title" form:"title" binding:"required,max=255"`
	Company     string  `json:"company" form:"company" binding:"required,max=255"`
	Revenue     int64   `json:"revenue" form:"revenue" binding:"min=0"`
	ProjectType string  `json:"project_type" form:"project_type" binding:"required,oneof=video photo both"`
	Location    *string `json:"location,omitempty" form:"location"`
	Description *string `json:"description,omitempty" form:"description"`

	RequiredVideoCount int `json:"required_video_count" form:"required_video_count" binding:"min=0"`

	MaxWriterCount       int `json:"max_writer_count" form:"max_writer_count" binding:"min=0"`
	MaxVideographerCount int `json:"max_videographer_count" form:"max_videographer_count" binding:"min=0"`
	MaxEditorCount       int `json:"max_editor_count" form:"max_editor_count" binding:"min=0"`
	MaxPhotographerCount int `json:"max_photographer_count" form:"max_photographer_count" binding:"min=0"`

	PayWriter       int64 `json:"pay_writer" form:"pay_writer" binding:"min=0"`
	PayVideographer int64 `json:"pay_videographer" form:"pay_videographer" binding:"min=0"`
	PayEditor       int64 `json:"pay_editor" form:"pay_editor" binding:"min=0"`
	PayPhotographer int64 `json:"pay_photographer" form:"pay_photographer" binding:"min=0"`

	WriterDeadline       *string `json:"writer_deadline,omitempty" form:"writer_deadline"`
	EditorDeadline       *string `json:"editor_deadline,omitempty" form:"editor_deadline"`
	VideographerDate     *string `json:"videographer_date,omitempty" form:"videographer_date"`
	PhotoOnsiteDate      *string `json:"photo_onsite_date,omitempty" form:"photo_onsite_date"`
	PhotoEditingDeadline *string `json:"photo_editing_deadline,omitempty" form:"photo_editing_deadline"`

	OnsiteHours        int `json:"onsite_hours" form:"onsite_hours" binding:"min=0"`
	TotalHoursExpected int `json:"total_hours_expected" form:"total_hours_expected" binding:"min=0"`
}

type UpdateProjectDTO struct {
	Title       *string `json:"title,omitempty" form:"title"`
	Company     *string `json:"company,omitempty" form:"company"`
	Revenue     *int64  `json:"revenue,omitempty" form:"revenue"`
	Location    *string `json:"location,omitempty" form:"location"`
	Description *string `json:"description,omitempty" form:"description"`
}

// CompletionStatus is the boss-facing "is it done" signal per work-stream.
// A stream that a project type does not run counts as done; a stream with no
// work recorded yet is explicitly not done.
type CompletionStatus struct {
	VideoStreamDone bool `json:"video_stream_done"`
	PhotoStreamDone bool `json:"photo_stream_done"`
	OverallDone     bool `json:"overall_done"`
}

// ProjectSummary is the boss list row.
type ProjectSummary struct {
	Project    Project         `json:"project"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// MemberProjectView is the employee "my projects" row.
type MemberProjectView struct {
	Project    Project `json:"project"`
	Completion int     `json:"completion"`
}
