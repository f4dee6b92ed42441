package application

import (
	"errors"
	"time"

	"github.com/Hernadil/tracker/internal/config"
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/repository"
)

var (
	ErrBossCannotJoin   = errors.New("boss accounts cannot join projects")
	ErrRoleMismatch     = errors.New("project has no work for this role")
	ErrProjectClosed    = errors.New("project is expired or completed")
	ErrCapacityExceeded = errors.New("no open slots for this role")
	ErrScheduleConflict = errors.New("on-site date conflicts with another project")
	ErrTooManyActive    = errors.New("active project limit reached")
)

// MembershipService gates project signups: role capacity, schedule
// conflicts, project state and membership uniqueness.
type MembershipService struct {
	Repos    *repository.Repos
	Progress *ProgressService
}

func NewMembershipService(repos *repository.Repos, progress *ProgressService) *MembershipService {
	return &MembershipService{Repos: repos, Progress: progress}
}

// RoleHasCapacity reports whether the configured max for the role still
// exceeds the members currently holding it.
func (s *MembershipService) RoleHasCapacity(p *project.Project, role user.JobRole) (bool, error) {
	taken, err := s.Repos.Membership.CountByProjectAndRole(p.PID, role)
	if err != nil {
		return false, err
	}
	return int64(p.RoleMax(role)) > taken, nil
}

// occupiedOnsiteDates collects the role-relevant on-site days of the
// employee's current projects.
func (s *MembershipService) occupiedOnsiteDates(emp *user.Employee) (map[time.Time]bool, error) {
	memberships, err := s.Repos.Membership.ListByEmployee(emp.EID)
	if err != nil {
		return nil, err
	}
	occupied := make(map[time.Time]bool)
	for _, m := range memberships {
		if d := m.Project.OnsiteDateFor(emp.Role()); d != nil {
			occupied[startOfDay(*d)] = true
		}
	}
	return occupied, nil
}

func (s *MembershipService) hasScheduleConflict(p *project.Project, role user.JobRole, occupied map[time.Time]bool) bool {
	d := p.OnsiteDateFor(role)
	if d == nil {
		return false
	}
	return occupied[startOfDay(*d)]
}

// EligibleProjects lists the projects an employee may still join today.
// Boss accounts get nothing; they manage, they don't sign up.
func (s *MembershipService) EligibleProjects(emp *user.Employee, today time.Time) ([]project.Project, error) {
	if emp.IsBoss {
		return []project.Project{}, nil
	}
	role := emp.Role()
	if !role.Valid() {
		return []project.Project{}, nil
	}

	var types []project.ProjectType
	if role.WorksVideoStream() {
		types = []project.ProjectType{project.TypeVideo, project.TypeBoth}
	} else {
		types = []project.ProjectType{project.TypePhoto, project.TypeBoth}
	}

	candidates, err := s.Repos.Project.ListProjectsByTypes(types)
	if err != nil {
		return nil, err
	}

	occupied, err := s.occupiedOnsiteDates(emp)
	if err != nil {
		return nil, err
	}

	eligible := make([]project.Project, 0, len(candidates))
	for _, p := range candidates {
		p := p
		if !p.IsActive(today) {
			continue
		}
		if ok, err := s.RoleHasCapacity(&p, role); err != nil {
			return nil, err
		} else if !ok {
			continue
		}
		if s.hasScheduleConflict(&p, role, occupied) {
			continue
		}
		member, err := s.Repos.Membership.Exists(emp.EID, p.PID)
		if err != nil {
			return nil, err
		}
		if member {
			continue
		}
		eligible = append(eligible, p)
	}
	return eligible, nil
}

// JoinProject confirms a signup. Re-confirming an existing membership is a
// no-op success; the unique (employee, project) index backs that up under
// concurrent confirms.
func (s *MembershipService) JoinProject(emp *user.Employee, projectID uint, today time.Time) (*project.Membership, error) {
	if emp.IsBoss {
		return nil, ErrBossCannotJoin
	}
	role := emp.Role()
	if !role.Valid() {
		return nil, ErrRoleMismatch
	}

	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		return nil, ErrProjectNotFound
	}

	// Already a member: idempotent confirm, skip the gate.
	member, err := s.Repos.Membership.Exists(emp.EID, p.PID)
	if err != nil {
		return nil, err
	}
	if !member {
		if !p.MatchesRole(role) {
			return nil, ErrRoleMismatch
		}
		if !p.IsActive(today) {
			return nil, ErrProjectClosed
		}
		ok, err := s.RoleHasCapacity(&p, role)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCapacityExceeded
		}
		occupied, err := s.occupiedOnsiteDates(emp)
		if err != nil {
			return nil, err
		}
		if s.hasScheduleConflict(&p, role, occupied) {
			return nil, ErrScheduleConflict
		}
		active, err := s.countActiveMemberships(emp, today)
		if err != nil {
			return nil, err
		}
		if active >= config.MaxActiveProjects {
			return nil, ErrTooManyActive
		}
	}

	m, err := s.Repos.Membership.GetOrCreate(emp.EID, p.PID)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *MembershipService) countActiveMemberships(emp *user.Employee, today time.Time) (int, error) {
	memberships, err := s.Repos.Membership.ListByEmployee(emp.EID)
	if err != nil {
		return 0, err
	}
	active := 0
	for _, m := range memberships {
		if m.Project.IsActive(today) {
			active++
		}
	}
	return active, nil
}

// MyProjects returns the employee's memberships with their personal role
// progress, plus whether they may still sign up for more.
func (s *MembershipService) MyProjects(emp *user.Employee, today time.Time) ([]project.MemberProjectView, bool, error) {
	memberships, err := s.Repos.Membership.ListByEmployee(emp.EID)
	if err != nil {
		return nil, false, err
	}

	views := make([]project.MemberProjectView, 0, len(memberships))
	active := 0
	for _, m := range memberships {
		m := m
		if m.Project.IsActive(today) {
			active++
		}
		completion, err := s.Progress.Progress(&m.Project, emp)
		if err != nil {
			return nil, false, err
		}
		views = append(views, project.MemberProjectView{
			Project:    m.Project,
			Completion: completion,
		})
	}
	return views, active < config.MaxActiveProjects, nil
}

// IsMember exposes the membership check to other services and handlers.
func (s *MembershipService) IsMember(employeeID, projectID uint) (bool, error) {
	return s.Repos.Membership.Exists(employeeID, projectID)
}
