package application

import (
	"errors"
	"strings"
	"time"

	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/shopspring/decimal"
)

var (
	ErrNotMember    = errors.New("employee is not a member of this project")
	ErrInvalidHours = errors.New("hours must be a positive number")
	ErrLogNotFound  = errors.New("work log not found")
)

// WorkLogService records hours entries and applies role-specific side
// effects in the same transaction. Title transitions are idempotent:
// re-marking a filmed title or editing an unfilmed one is silently skipped
// so resubmitted forms and racing writers converge instead of failing.
type WorkLogService struct {
	Repos *repository.Repos
}

func NewWorkLogService(repos *repository.Repos) *WorkLogService {
	return &WorkLogService{Repos: repos}
}

func (s *WorkLogService) CreateLog(emp *user.Employee, projectID uint, input worklog.CreateLogDTO, now time.Time) (*worklog.WorkLog, error) {
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if !p.IsActive(now) {
		return nil, ErrProjectClosed
	}
	member, err := s.Repos.Membership.Exists(emp.EID, projectID)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, ErrNotMember
	}

	hours, err := decimal.NewFromString(input.Hours)
	if err != nil || !hours.IsPositive() {
		return nil, ErrInvalidHours
	}

	log := &worklog.WorkLog{
		EmployeeID: emp.EID,
		ProjectID:  projectID,
		Hours:      hours,
		Comment:    input.Comment,
	}

	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.WorkLog.CreateLog(log); err != nil {
			return err
		}
		switch emp.Role() {
		case user.RoleWriter:
			return s.registerTitles(tx, &p, emp, input.NewTitles)
		case user.RoleVideographer:
			return s.markFilmed(tx, log, emp, input.FilmedTitleIDs, now)
		case user.RoleEditor:
			return s.markEdited(tx, log, emp, input.EditedTitleIDs, now)
		case user.RolePhotographer:
			return s.attachPhotoProgress(tx, log, input)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

// registerTitles adds new deliverables, capped at the project's required
// count. The cap is project-wide: titles are a shared goal, not per-writer.
func (s *WorkLogService) registerTitles(tx *repository.Repos, p *project.Project, emp *user.Employee, names []string) error {
	existing, err := tx.VideoTitle.CountByProject(p.PID)
	if err != nil {
		return err
	}
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if existing >= int64(p.RequiredVideoCount) {
			break
		}
		t := &worklog.VideoTitle{
			ProjectID: p.PID,
			Title:     name,
			CreatedBy: &emp.EID,
		}
		if err := tx.VideoTitle.CreateTitle(t); err != nil {
			return err
		}
		existing++
	}
	return nil
}

// markFilmed flips raw_uploaded on each referenced title. Unknown titles and
// titles already filmed are skipped, and the action record's unique index
// drops duplicate credits.
func (s *WorkLogService) markFilmed(tx *repository.Repos, log *worklog.WorkLog, emp *user.Employee, titleIDs []uint, now time.Time) error {
	for _, tid := range titleIDs {
		t, err := tx.VideoTitle.GetProjectTitle(log.ProjectID, tid)
		if err != nil {
			continue
		}
		if t.RawUploaded {
			continue
		}
		t.RawUploaded = true
		t.RawUploadedBy = &emp.EID
		at := now
		t.RawUploadedAt = &at
		if err := tx.VideoTitle.UpdateTitle(&t); err != nil {
			return err
		}
		action := &worklog.TitleAction{
			WorkLogID:    log.LID,
			VideoTitleID: t.TID,
			ActionType:   worklog.ActionFilmed,
		}
		if err := tx.VideoTitle.RecordAction(action); err != nil {
			return err
		}
	}
	return nil
}

// markEdited flips editing_done, but only on titles already filmed; editing
// an unfilmed title is a silent no-op, never an error.
func (s *WorkLogService) markEdited(tx *repository.Repos, log *worklog.WorkLog, emp *user.Employee, titleIDs []uint, now time.Time) error {
	for _, tid := range titleIDs {
		t, err := tx.VideoTitle.GetProjectTitle(log.ProjectID, tid)
		if err != nil {
			continue
		}
		if !t.RawUploaded || t.EditingDone {
			continue
		}
		t.EditingDone = true
		t.EditingDoneBy = &emp.EID
		at := now
		t.EditingDoneAt = &at
		if err := tx.VideoTitle.UpdateTitle(&t); err != nil {
			return err
		}
		action := &worklog.TitleAction{
			WorkLogID:    log.LID,
			VideoTitleID: t.TID,
			ActionType:   worklog.ActionEdited,
		}
		if err := tx.VideoTitle.RecordAction(action); err != nil {
			return err
		}
	}
	return nil
}

func (s *WorkLogService) attachPhotoProgress(tx *repository.Repos, log *worklog.WorkLog, input worklog.CreateLogDTO) error {
	progress := &worklog.PhotoProgress{
		WorkLogID: log.LID,
	}
	if input.FieldworkDone != nil {
		progress.FieldworkDone = *input.FieldworkDone
	}
	if input.EditingDone != nil {
		progress.EditingDone = *input.EditingDone
	}
	return tx.WorkLog.CreatePhotoProgress(progress)
}

// ListLogs returns an employee's logs on a project with the running total.
func (s *WorkLogService) ListLogs(employeeID, projectID uint) ([]worklog.WorkLog, decimal.Decimal, error) {
	logs, err := s.Repos.WorkLog.ListByEmployeeAndProject(employeeID, projectID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total, err := s.Repos.WorkLog.SumHoursByEmployeeAndProject(employeeID, projectID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return logs, total, nil
}

// GetLog fetches one log with its title actions and photo progress. When
// ownerID is non-zero the log must belong to that employee.
func (s *WorkLogService) GetLog(ownerID, projectID, logID uint) (*worklog.WorkLog, decimal.Decimal, error) {
	log, err := s.Repos.WorkLog.GetLogByID(logID)
	if err != nil {
		return nil, decimal.Zero, ErrLogNotFound
	}
	if log.ProjectID != projectID {
		return nil, decimal.Zero, ErrLogNotFound
	}
	if ownerID != 0 && log.EmployeeID != ownerID {
		return nil, decimal.Zero, ErrLogNotFound
	}
	total, err := s.Repos.WorkLog.SumHoursByEmployeeAndProject(log.EmployeeID, projectID)
	if err != nil {
		return nil, decimal.Zero, err
	}
	return &log, total, nil
}

// PendingTitlesFor lists the titles a role can act on when logging work:
// unfilmed titles for videographers, filmed-but-unedited for editors, and
// everything for writers.
func (s *WorkLogService) PendingTitlesFor(projectID uint, role user.JobRole) ([]worklog.VideoTitle, error) {
	switch role {
	case user.RoleVideographer:
		return s.Repos.VideoTitle.ListPendingFilm(projectID)
	case user.RoleEditor:
		return s.Repos.VideoTitle.ListPendingEdit(projectID)
	case user.RoleWriter:
		return s.Repos.VideoTitle.ListByProject(projectID)
	}
	return []worklog.VideoTitle{}, nil
}
