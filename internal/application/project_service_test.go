package application

import (
	"testing"

	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/repository/mock"
	"github.com/Hernadil/tracker/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func silenceAudit(t *testing.T) {
	old := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = old })
}

func setupProjectMocks(t *testing.T) (*ProjectService, *mock.MockProjectRepo, *mock.MockVideoTitleRepo, *mock.MockWorkLogRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	silenceAudit(t)

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockTitle := mock.NewMockVideoTitleRepo(ctrl)
	mockLog := mock.NewMockWorkLogRepo(ctrl)
	repos := &repository.Repos{
		Project:    mockProject,
		VideoTitle: mockTitle,
		WorkLog:    mockLog,
	}
	return NewProjectService(repos), mockProject, mockTitle, mockLog
}

func TestCreateProject_Success(t *testing.T) {
	svc, mockProject, _, _ := setupProjectMocks(t)

	input := project.CreateProjectDTO{
		Title:          "Spring campaign",
		Company:        "Acme",
		Revenue:        100000,
		ProjectType:    "video",
		MaxWriterCount: 1,
		PayWriter:      20000,
		MaxEditorCount: 2,
		PayEditor:      30000,
	}
	mockProject.EXPECT().CreateProject(gomock.Any()).Return(nil)

	p, err := svc.CreateProject(nil, input, 1)
	assert.NoError(t, err)
	assert.True(t, p.Revenue.Equal(decimal.NewFromInt(100000)))
}

func TestCreateProject_PayrollExceedsRevenue(t *testing.T) {
	svc, _, _, _ := setupProjectMocks(t)

	// 2 editors x 30000 + 1 writer x 50000 = 110000 > 100000
	input := project.CreateProjectDTO{
		Title:          "Overcommitted",
		Company:        "Acme",
		Revenue:        100000,
		ProjectType:    "video",
		MaxWriterCount: 1,
		PayWriter:      50000,
		MaxEditorCount: 2,
		PayEditor:      30000,
	}

	_, err := svc.CreateProject(nil, input, 1)
	assert.Equal(t, ErrPayrollExceedsRevenue, err)
}

func TestCreateProject_BadDate(t *testing.T) {
	svc, _, _, _ := setupProjectMocks(t)

	bad := "not-a-date"
	input := project.CreateProjectDTO{
		Title:          "Bad date",
		Company:        "Acme",
		ProjectType:    "video",
		WriterDeadline: &bad,
	}

	_, err := svc.CreateProject(nil, input, 1)
	assert.Equal(t, ErrInvalidDate, err)
}

func TestCompleteProject_AlreadyComplete(t *testing.T) {
	svc, mockProject, _, _ := setupProjectMocks(t)

	mockProject.EXPECT().GetProjectByID(uint(5)).Return(project.Project{PID: 5, IsCompleted: true}, nil)

	_, err := svc.CompleteProject(nil, 5)
	assert.Equal(t, ErrProjectAlreadyComplete, err)
}

func TestCompletion_FreshProjectNotDone(t *testing.T) {
	svc, _, mockTitle, mockLog := setupProjectMocks(t)

	p := &project.Project{PID: 6, ProjectType: project.TypeBoth}
	mockTitle.EXPECT().CountByProject(uint(6)).Return(int64(0), nil)
	mockLog.EXPECT().ListByProjectAndRole(uint(6), user.RolePhotographer).Return([]worklog.WorkLog{}, nil)

	status, err := svc.Completion(p)
	assert.NoError(t, err)
	assert.False(t, status.VideoStreamDone)
	assert.False(t, status.PhotoStreamDone)
	assert.False(t, status.OverallDone)
}

func TestCompletion_VideoOnlyIgnoresPhotoStream(t *testing.T) {
	svc, _, mockTitle, _ := setupProjectMocks(t)

	p := &project.Project{PID: 7, ProjectType: project.TypeVideo}
	mockTitle.EXPECT().CountByProject(uint(7)).Return(int64(3), nil)
	mockTitle.EXPECT().CountUnedited(uint(7)).Return(int64(0), nil)

	status, err := svc.Completion(p)
	assert.NoError(t, err)
	assert.True(t, status.VideoStreamDone)
	assert.True(t, status.PhotoStreamDone)
	assert.True(t, status.OverallDone)
}

func TestCompletion_PhotoChecklistMustBeFull(t *testing.T) {
	svc, _, _, mockLog := setupProjectMocks(t)

	p := &project.Project{PID: 8, ProjectType: project.TypePhoto}
	logs := []worklog.WorkLog{
		{LID: 1, PhotoProgress: &worklog.PhotoProgress{FieldworkDone: true, EditingDone: true}},
		{LID: 2, PhotoProgress: &worklog.PhotoProgress{FieldworkDone: true, EditingDone: false}},
	}
	mockLog.EXPECT().ListByProjectAndRole(uint(8), user.RolePhotographer).Return(logs, nil)

	status, err := svc.Completion(p)
	assert.NoError(t, err)
	assert.True(t, status.VideoStreamDone)
	assert.False(t, status.PhotoStreamDone)
}
