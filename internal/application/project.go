package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

var (
	ErrProjectNotFound        = errors.New("project not found")
	ErrPayrollExceedsRevenue  = errors.New("role payroll commitment exceeds project revenue")
	ErrInvalidDate            = errors.New("invalid date, expected YYYY-MM-DD")
	ErrProjectAlreadyComplete = errors.New("project is already completed")
)

// FootageCleaner removes stored raw footage when a project goes away.
// Nil disables cleanup (tests, storage-less deployments).
type FootageCleaner interface {
	RemoveProjectFootage(projectID uint) error
}

type ProjectService struct {
	Repos   *repository.Repos
	Footage FootageCleaner
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &d, nil
}

func (s *ProjectService) CreateProject(c *gin.Context, input project.CreateProjectDTO, creatorID uint) (*project.Project, error) {
	p := &project.Project{
		Title:                input.Title,
		Company:              input.Company,
		Revenue:              decimal.NewFromInt(input.Revenue),
		ProjectType:          project.ProjectType(input.ProjectType),
		Location:             input.Location,
		Description:          input.Description,
		RequiredVideoCount:   input.RequiredVideoCount,
		MaxWriterCount:       input.MaxWriterCount,
		MaxVideographerCount: input.MaxVideographerCount,
		MaxEditorCount:       input.MaxEditorCount,
		MaxPhotographerCount: input.MaxPhotographerCount,
		PayWriter:            decimal.NewFromInt(input.PayWriter),
		PayVideographer:      decimal.NewFromInt(input.PayVideographer),
		PayEditor:            decimal.NewFromInt(input.PayEditor),
		PayPhotographer:      decimal.NewFromInt(input.PayPhotographer),
		OnsiteHours:          input.OnsiteHours,
		TotalHoursExpected:   input.TotalHoursExpected,
		CreatedBy:            &creatorID,
	}

	var err error
	if p.WriterDeadline, err = parseDate(input.WriterDeadline); err != nil {
		return nil, err
	}
	if p.EditorDeadline, err = parseDate(input.EditorDeadline); err != nil {
		return nil, err
	}
	if p.VideographerDate, err = parseDate(input.VideographerDate); err != nil {
		return nil, err
	}
	if p.PhotoOnsiteDate, err = parseDate(input.PhotoOnsiteDate); err != nil {
		return nil, err
	}
	if p.PhotoEditingDeadline, err = parseDate(input.PhotoEditingDeadline); err != nil {
		return nil, err
	}

	// Validated once, at creation; later revenue edits are boss overrides.
	if p.PayrollCommitment().GreaterThan(p.Revenue) {
		return nil, ErrPayrollExceedsRevenue
	}

	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "project", fmt.Sprintf("p_id=%d", p.PID), nil, p, "", s.Repos.Audit)
	return p, nil
}

func (s *ProjectService) GetProject(id uint) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	return &p, nil
}

func (s *ProjectService) UpdateProject(c *gin.Context, id uint, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	oldProject := p

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Company != nil {
		p.Company = *input.Company
	}
	if input.Revenue != nil {
		p.Revenue = decimal.NewFromInt(*input.Revenue)
	}
	if input.Location != nil {
		p.Location = input.Location
	}
	if input.Description != nil {
		p.Description = input.Description
	}

	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "project", fmt.Sprintf("p_id=%d", p.PID), oldProject, p, "", s.Repos.Audit)
	return &p, nil
}

// CompleteProject closes the project and releases its revenue pot to the
// attribution engine.
func (s *ProjectService) CompleteProject(c *gin.Context, id uint) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, ErrProjectNotFound
	}
	if p.IsCompleted {
		return nil, ErrProjectAlreadyComplete
	}

	oldProject := p
	p.IsCompleted = true
	if err := s.Repos.Project.UpdateProject(&p); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "complete", "project", fmt.Sprintf("p_id=%d", p.PID), oldProject, p, "", s.Repos.Audit)
	return &p, nil
}

func (s *ProjectService) DeleteProject(c *gin.Context, id uint) error {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return ErrProjectNotFound
	}

	if s.Footage != nil {
		if err := s.Footage.RemoveProjectFootage(id); err != nil {
			return fmt.Errorf("failed to remove project footage: %w", err)
		}
	}

	if err := s.Repos.Project.DeleteProject(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "project", fmt.Sprintf("p_id=%d", p.PID), p, nil, "", s.Repos.Audit)
	return nil
}

// ListProjects returns every project with its total logged hours, newest
// first (boss overview).
func (s *ProjectService) ListProjects() ([]project.ProjectSummary, error) {
	projects, err := s.Repos.Project.ListProjects()
	if err != nil {
		return nil, err
	}
	summaries := make([]project.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		hours, err := s.Repos.WorkLog.SumHoursByProject(p.PID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, project.ProjectSummary{Project: p, TotalHours: hours})
	}
	return summaries, nil
}

// Completion derives the boss-facing done flags. A stream the project type
// does not run counts as done; a stream with no recorded work is explicitly
// not done, so fresh projects never read as complete.
func (s *ProjectService) Completion(p *project.Project) (project.CompletionStatus, error) {
	videoDone, err := s.videoStreamDone(p)
	if err != nil {
		return project.CompletionStatus{}, err
	}
	photoDone, err := s.photoStreamDone(p)
	if err != nil {
		return project.CompletionStatus{}, err
	}
	return project.CompletionStatus{
		VideoStreamDone: videoDone,
		PhotoStreamDone: photoDone,
		OverallDone:     videoDone && photoDone,
	}, nil
}

func (s *ProjectService) videoStreamDone(p *project.Project) (bool, error) {
	if !p.ProjectType.HasVideoStream() {
		return true, nil
	}
	total, err := s.Repos.VideoTitle.CountByProject(p.PID)
	if err != nil {
		return false, err
	}
	if total == 0 {
		return false, nil
	}
	unedited, err := s.Repos.VideoTitle.CountUnedited(p.PID)
	if err != nil {
		return false, err
	}
	return unedited == 0, nil
}

func (s *ProjectService) photoStreamDone(p *project.Project) (bool, error) {
	if !p.ProjectType.HasPhotoStream() {
		return true, nil
	}
	logs, err := s.Repos.WorkLog.ListByProjectAndRole(p.PID, user.RolePhotographer)
	if err != nil {
		return false, err
	}
	if len(logs) == 0 {
		return false, nil
	}
	for _, l := range logs {
		// A missing checklist forces not-done; the unit was never signed off.
		if l.PhotoProgress == nil || !l.PhotoProgress.FieldworkDone || !l.PhotoProgress.EditingDone {
			return false, nil
		}
	}
	return true, nil
}

// MemberLogs groups a project's members by role with their logs and totals
// (boss project page).
type MemberLogs struct {
	Employee   user.Employee     `json:"employee"`
	Logs       []worklog.WorkLog `json:"logs"`
	TotalHours decimal.Decimal   `json:"total_hours"`
}

func (s *ProjectService) MembersByRole(projectID uint) (map[user.JobRole][]MemberLogs, error) {
	memberships, err := s.Repos.Membership.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	byRole := make(map[user.JobRole][]MemberLogs)
	for _, m := range memberships {
		logs, err := s.Repos.WorkLog.ListByEmployeeAndProject(m.EmployeeID, projectID)
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, l := range logs {
			total = total.Add(l.Hours)
		}
		role := m.Employee.Role()
		byRole[role] = append(byRole[role], MemberLogs{
			Employee:   m.Employee,
			Logs:       logs,
			TotalHours: total,
		})
	}
	return byRole, nil
}
