package application

import (
	"testing"
	"time"

	"github.com/Hernadil/tracker/internal/config"
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

var testToday = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func setupMembershipMocks(t *testing.T) (*MembershipService, *mock.MockProjectRepo, *mock.MockMembershipRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	config.MaxActiveProjects = 3

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockMembership := mock.NewMockMembershipRepo(ctrl)
	repos := &repository.Repos{
		Project:    mockProject,
		Membership: mockMembership,
	}
	return NewMembershipService(repos, NewProgressService(repos)), mockProject, mockMembership
}

func activeVideoProject(pid uint) project.Project {
	deadline := testToday.AddDate(0, 1, 0)
	return project.Project{
		PID:            pid,
		ProjectType:    project.TypeVideo,
		MaxEditorCount: 2,
		EditorDeadline: &deadline,
	}
}

func TestJoinProject_BossRejected(t *testing.T) {
	svc, _, _ := setupMembershipMocks(t)

	boss := &user.Employee{EID: 1, IsBoss: true}
	_, err := svc.JoinProject(boss, 1, testToday)
	assert.Equal(t, ErrBossCannotJoin, err)
}

func TestJoinProject_RoleMismatch(t *testing.T) {
	svc, mockProject, mockMembership := setupMembershipMocks(t)

	photographer := &user.Employee{EID: 2, JobRole: ptrRole(user.RolePhotographer)}
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(activeVideoProject(1), nil)
	mockMembership.EXPECT().Exists(uint(2), uint(1)).Return(false, nil)

	_, err := svc.JoinProject(photographer, 1, testToday)
	assert.Equal(t, ErrRoleMismatch, err)
}

func TestJoinProject_CapacityExceeded(t *testing.T) {
	svc, mockProject, mockMembership := setupMembershipMocks(t)

	editor := &user.Employee{EID: 3, JobRole: ptrRole(user.RoleEditor)}
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(activeVideoProject(1), nil)
	mockMembership.EXPECT().Exists(uint(3), uint(1)).Return(false, nil)
	mockMembership.EXPECT().CountByProjectAndRole(uint(1), user.RoleEditor).Return(int64(2), nil)

	_, err := svc.JoinProject(editor, 1, testToday)
	assert.Equal(t, ErrCapacityExceeded, err)
}

func TestJoinProject_ScheduleConflict(t *testing.T) {
	svc, mockProject, mockMembership := setupMembershipMocks(t)

	videographer := &user.Employee{EID: 4, JobRole: ptrRole(user.RoleVideographer)}
	shootDay := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	target := activeVideoProject(1)
	target.MaxVideographerCount = 1
	target.VideographerDate = &shootDay

	current := activeVideoProject(2)
	current.VideographerDate = &shootDay

	mockProject.EXPECT().GetProjectByID(uint(1)).Return(target, nil)
	mockMembership.EXPECT().Exists(uint(4), uint(1)).Return(false, nil)
	mockMembership.EXPECT().CountByProjectAndRole(uint(1), user.RoleVideographer).Return(int64(0), nil)
	mockMembership.EXPECT().ListByEmployee(uint(4)).Return([]project.Membership{
		{EmployeeID: 4, ProjectID: 2, Project: current},
	}, nil)

	_, err := svc.JoinProject(videographer, 1, testToday)
	assert.Equal(t, ErrScheduleConflict, err)
}

func TestJoinProject_ActiveLimit(t *testing.T) {
	svc, mockProject, mockMembership := setupMembershipMocks(t)

	editor := &user.Employee{EID: 5, JobRole: ptrRole(user.RoleEditor)}
	current := []project.Membership{
		{ProjectID: 2, Project: activeVideoProject(2)},
		{ProjectID: 3, Project: activeVideoProject(3)},
		{ProjectID: 4, Project: activeVideoProject(4)},
	}

	mockProject.EXPECT().GetProjectByID(uint(1)).Return(activeVideoProject(1), nil)
	mockMembership.EXPECT().Exists(uint(5), uint(1)).Return(false, nil)
	mockMembership.EXPECT().CountByProjectAndRole(uint(1), user.RoleEditor).Return(int64(0), nil)
	mockMembership.EXPECT().ListByEmployee(uint(5)).Return(current, nil).Times(2)

	_, err := svc.JoinProject(editor, 1, testToday)
	assert.Equal(t, ErrTooManyActive, err)
}

func TestJoinProject_RejoinIsIdempotent(t *testing.T) {
	svc, mockProject, mockMembership := setupMembershipMocks(t)

	editor := &user.Employee{EID: 6, JobRole: ptrRole(user.RoleEditor)}
	existing := project.Membership{MID: 42, EmployeeID: 6, ProjectID: 1}

	// Full project, but the member already holds a seat: the gate is skipped.
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(activeVideoProject(1), nil)
	mockMembership.EXPECT().Exists(uint(6), uint(1)).Return(true, nil)
	mockMembership.EXPECT().GetOrCreate(uint(6), uint(1)).Return(existing, nil)

	m, err := svc.JoinProject(editor, 1, testToday)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), m.MID)
}

func TestEligibleProjects_BossGetsNothing(t *testing.T) {
	svc, _, _ := setupMembershipMocks(t)

	boss := &user.Employee{EID: 1, IsBoss: true}
	eligible, err := svc.EligibleProjects(boss, testToday)
	assert.NoError(t, err)
	assert.Empty(t, eligible)
}

func TestEligibleProjects_FiltersFullAndJoined(t *testing.T) {
	svc, mockProject, mockMembership := setupMembershipMocks(t)

	editor := &user.Employee{EID: 7, JobRole: ptrRole(user.RoleEditor)}

	open := activeVideoProject(1)
	full := activeVideoProject(2)
	joined := activeVideoProject(3)
	completed := activeVideoProject(4)
	completed.IsCompleted = true

	mockProject.EXPECT().ListProjectsByTypes([]project.ProjectType{project.TypeVideo, project.TypeBoth}).
		Return([]project.Project{open, full, joined, completed}, nil)
	mockMembership.EXPECT().ListByEmployee(uint(7)).Return([]project.Membership{}, nil)
	mockMembership.EXPECT().CountByProjectAndRole(uint(1), user.RoleEditor).Return(int64(0), nil)
	mockMembership.EXPECT().CountByProjectAndRole(uint(2), user.RoleEditor).Return(int64(2), nil)
	mockMembership.EXPECT().CountByProjectAndRole(uint(3), user.RoleEditor).Return(int64(1), nil)
	mockMembership.EXPECT().Exists(uint(7), uint(1)).Return(false, nil)
	mockMembership.EXPECT().Exists(uint(7), uint(3)).Return(true, nil)

	eligible, err := svc.EligibleProjects(editor, testToday)
	assert.NoError(t, err)
	assert.Len(t, eligible, 1)
	assert.Equal(t, uint(1), eligible[0].PID)
}
