package application

import (
	"testing"

	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func ptrRole(r user.JobRole) *user.JobRole { return &r }

func setupProgressMocks(t *testing.T) (*ProgressService, *mock.MockVideoTitleRepo, *mock.MockWorkLogRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTitle := mock.NewMockVideoTitleRepo(ctrl)
	mockLog := mock.NewMockWorkLogRepo(ctrl)
	repos := &repository.Repos{
		VideoTitle: mockTitle,
		WorkLog:    mockLog,
	}
	return NewProgressService(repos), mockTitle, mockLog
}

func TestWriterProgress_SharedGoal(t *testing.T) {
	svc, mockTitle, _ := setupProgressMocks(t)

	p := &project.Project{PID: 1, RequiredVideoCount: 4}
	emp := &user.Employee{EID: 7, JobRole: ptrRole(user.RoleWriter)}

	mockTitle.EXPECT().CountByProject(uint(1)).Return(int64(2), nil)

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 50, pct)
}

func TestWriterProgress_NoRequiredTitles(t *testing.T) {
	svc, _, _ := setupProgressMocks(t)

	p := &project.Project{PID: 1, RequiredVideoCount: 0}
	emp := &user.Employee{EID: 7, JobRole: ptrRole(user.RoleWriter)}

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 0, pct)
}

func TestVideographerProgress(t *testing.T) {
	svc, mockTitle, _ := setupProgressMocks(t)

	p := &project.Project{PID: 2}
	emp := &user.Employee{EID: 8, JobRole: ptrRole(user.RoleVideographer)}

	mockTitle.EXPECT().CountByProject(uint(2)).Return(int64(3), nil)
	mockTitle.EXPECT().CountRawUploaded(uint(2)).Return(int64(1), nil)

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 33, pct)
}

func TestVideographerProgress_NoTitlesYet(t *testing.T) {
	svc, mockTitle, _ := setupProgressMocks(t)

	p := &project.Project{PID: 2}
	emp := &user.Employee{EID: 8, JobRole: ptrRole(user.RoleVideographer)}

	mockTitle.EXPECT().CountByProject(uint(2)).Return(int64(0), nil)

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 0, pct)
}

func TestEditorProgress_AgainstFilmedOnly(t *testing.T) {
	svc, mockTitle, _ := setupProgressMocks(t)

	p := &project.Project{PID: 3}
	emp := &user.Employee{EID: 9, JobRole: ptrRole(user.RoleEditor)}

	mockTitle.EXPECT().CountRawUploaded(uint(3)).Return(int64(4), nil)
	mockTitle.EXPECT().CountEdited(uint(3)).Return(int64(3), nil)

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 75, pct)
}

func TestEditorProgress_NothingFilmed(t *testing.T) {
	svc, mockTitle, _ := setupProgressMocks(t)

	p := &project.Project{PID: 3}
	emp := &user.Employee{EID: 9, JobRole: ptrRole(user.RoleEditor)}

	mockTitle.EXPECT().CountRawUploaded(uint(3)).Return(int64(0), nil)

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 0, pct)
}

func TestPhotographerProgress_TwoPointUnits(t *testing.T) {
	svc, _, mockLog := setupProgressMocks(t)

	p := &project.Project{PID: 4}
	emp := &user.Employee{EID: 10, JobRole: ptrRole(user.RolePhotographer)}

	logs := []worklog.WorkLog{
		{LID: 1, PhotoProgress: &worklog.PhotoProgress{FieldworkDone: true, EditingDone: true}},
		{LID: 2, PhotoProgress: &worklog.PhotoProgress{FieldworkDone: true, EditingDone: false}},
	}
	mockLog.EXPECT().ListByEmployeeAndProject(uint(10), uint(4)).Return(logs, nil)

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 75, pct)
}

func TestPhotographerProgress_MissingChecklistScoresZero(t *testing.T) {
	svc, _, mockLog := setupProgressMocks(t)

	p := &project.Project{PID: 4}
	emp := &user.Employee{EID: 10, JobRole: ptrRole(user.RolePhotographer)}

	logs := []worklog.WorkLog{{LID: 1}, {LID: 2}}
	mockLog.EXPECT().ListByEmployeeAndProject(uint(10), uint(4)).Return(logs, nil)

	pct, err := svc.Progress(p, emp)
	assert.NoError(t, err)
	assert.Equal(t, 0, pct)
}

func TestProgress_BossScoresZero(t *testing.T) {
	svc, _, _ := setupProgressMocks(t)

	p := &project.Project{PID: 5}
	boss := &user.Employee{EID: 1, IsBoss: true}

	pct, err := svc.Progress(p, boss)
	assert.NoError(t, err)
	assert.Equal(t, 0, pct)
}

func TestPercent_FloorsAndCaps(t *testing.T) {
	assert.Equal(t, 0, percent(1, 0))
	assert.Equal(t, 33, percent(1, 3))
	assert.Equal(t, 66, percent(2, 3))
	assert.Equal(t, 100, percent(7, 3))
}
