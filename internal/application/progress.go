package application

import (
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/repository"
)

// ProgressService computes an employee's personal completion percentage on a
// project for their job role. Results are floored integers in [0,100]; roles
// with nothing to measure yet score 0, never an error.
type ProgressService struct {
	Repos *repository.Repos
}

func NewProgressService(repos *repository.Repos) *ProgressService {
	return &ProgressService{Repos: repos}
}

type progressFunc func(s *ProgressService, p *project.Project, emp *user.Employee) (int, error)

// One evaluator per role keeps the branching in a single table instead of
// role-string switches scattered across services.
var progressByRole = map[user.JobRole]progressFunc{
	user.RoleWriter:       writerProgress,
	user.RoleVideographer: videographerProgress,
	user.RoleEditor:       editorProgress,
	user.RolePhotographer: photographerProgress,
}

// Progress dispatches on the employee's role. Unknown or absent roles
// (boss accounts included) score 0.
func (s *ProgressService) Progress(p *project.Project, emp *user.Employee) (int, error) {
	fn, ok := progressByRole[emp.Role()]
	if !ok {
		return 0, nil
	}
	return fn(s, p, emp)
}

// percent floors and caps at 100 so over-counted inputs never exceed it.
func percent(done, total int64) int {
	if total <= 0 {
		return 0
	}
	pct := int(done * 100 / total)
	if pct > 100 {
		pct = 100
	}
	return pct
}

// Writing is a shared goal: every title on the project counts toward the
// required total, whoever registered it.
func writerProgress(s *ProgressService, p *project.Project, _ *user.Employee) (int, error) {
	if p.RequiredVideoCount == 0 {
		return 0, nil
	}
	created, err := s.Repos.VideoTitle.CountByProject(p.PID)
	if err != nil {
		return 0, err
	}
	return percent(created, int64(p.RequiredVideoCount)), nil
}

func videographerProgress(s *ProgressService, p *project.Project, _ *user.Employee) (int, error) {
	total, err := s.Repos.VideoTitle.CountByProject(p.PID)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}
	filmed, err := s.Repos.VideoTitle.CountRawUploaded(p.PID)
	if err != nil {
		return 0, err
	}
	return percent(filmed, total), nil
}

// Editors are measured against filmed titles only; unfilmed titles are not
// theirs to finish yet.
func editorProgress(s *ProgressService, p *project.Project, _ *user.Employee) (int, error) {
	filmed, err := s.Repos.VideoTitle.CountRawUploaded(p.PID)
	if err != nil {
		return 0, err
	}
	if filmed == 0 {
		return 0, nil
	}
	edited, err := s.Repos.VideoTitle.CountEdited(p.PID)
	if err != nil {
		return 0, err
	}
	return percent(edited, filmed), nil
}

// Each photographer work unit is worth two points: fieldwork and editing.
// A log without its checklist contributes zero points, not an error.
func photographerProgress(s *ProgressService, p *project.Project, emp *user.Employee) (int, error) {
	logs, err := s.Repos.WorkLog.ListByEmployeeAndProject(emp.EID, p.PID)
	if err != nil {
		return 0, err
	}
	if len(logs) == 0 {
		return 0, nil
	}
	var points int64
	for _, l := range logs {
		if l.PhotoProgress == nil {
			continue
		}
		if l.PhotoProgress.FieldworkDone {
			points++
		}
		if l.PhotoProgress.EditingDone {
			points++
		}
	}
	return percent(points, 2*int64(len(logs))), nil
}
