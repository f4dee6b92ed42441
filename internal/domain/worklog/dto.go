package worklog

type CreateLogDTO struct {
	Hours   string  `json:"hours" form:"hours" binding:"required"`
	Comment *string `json:"comment,omitempty" form:"comment"`

	// Writer: new title names to register against the project.
	NewTitles []string `json:"new_titles,omitempty" form:"new_titles"`
	// Videographer: IDs of titles filmed during this log.
	FilmedTitleIDs []uint `json:"filmed_title_ids,omitempty" form:"filmed_title_ids"`
	// Editor: IDs of titles finished during this log.
	EditedTitleIDs []uint `json:"edited_title_ids,omitempty" form:"edited_title_ids"`
	// Photographer: checklist for this work unit.
	FieldworkDone *bool `json:"fieldwork_done,omitempty" form:"fieldwork_done"`
	EditingDone   *bool `json:"editing_done,omitempty" form:"editing_done"`
}

// LogDetail is a work log with its side effects and the employee's running
// total on the project.
type LogDetail struct {
	Log        WorkLog `json:"log"`
	TotalHours string  `json:"total_hours"`
}
