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

func setupWorkLogMocks(t *testing.T) (*WorkLogService, *mock.MockProjectRepo, *mock.MockMembershipRepo, *mock.MockWorkLogRepo, *mock.MockVideoTitleRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	mockMembership := mock.NewMockMembershipRepo(ctrl)
	mockLog := mock.NewMockWorkLogRepo(ctrl)
	mockTitle := mock.NewMockVideoTitleRepo(ctrl)
	repos := &repository.Repos{
		Project:    mockProject,
		Membership: mockMembership,
		WorkLog:    mockLog,
		VideoTitle: mockTitle,
	}
	return NewWorkLogService(repos), mockProject, mockMembership, mockLog, mockTitle
}

func openProject(pid uint) project.Project {
	deadline := testToday.AddDate(0, 1, 0)
	return project.Project{
		PID:                pid,
		ProjectType:        project.TypeVideo,
		RequiredVideoCount: 3,
		EditorDeadline:     &deadline,
	}
}

func TestCreateLog_NotMember(t *testing.T) {
	svc, mockProject, mockMembership, _, _ := setupWorkLogMocks(t)

	editor := &user.Employee{EID: 2, JobRole: ptrRole(user.RoleEditor)}
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(openProject(1), nil)
	mockMembership.EXPECT().Exists(uint(2), uint(1)).Return(false, nil)

	_, err := svc.CreateLog(editor, 1, worklog.CreateLogDTO{Hours: "2"}, testToday)
	assert.Equal(t, ErrNotMember, err)
}

func TestCreateLog_InvalidHours(t *testing.T) {
	svc, mockProject, mockMembership, _, _ := setupWorkLogMocks(t)

	editor := &user.Employee{EID: 2, JobRole: ptrRole(user.RoleEditor)}
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(openProject(1), nil).Times(2)
	mockMembership.EXPECT().Exists(uint(2), uint(1)).Return(true, nil).Times(2)

	_, err := svc.CreateLog(editor, 1, worklog.CreateLogDTO{Hours: "-1"}, testToday)
	assert.Equal(t, ErrInvalidHours, err)

	_, err = svc.CreateLog(editor, 1, worklog.CreateLogDTO{Hours: "abc"}, testToday)
	assert.Equal(t, ErrInvalidHours, err)
}

func TestCreateLog_ClosedProject(t *testing.T) {
	svc, mockProject, _, _, _ := setupWorkLogMocks(t)

	editor := &user.Employee{EID: 2, JobRole: ptrRole(user.RoleEditor)}
	p := openProject(1)
	p.IsCompleted = true
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(p, nil)

	_, err := svc.CreateLog(editor, 1, worklog.CreateLogDTO{Hours: "2"}, testToday)
	assert.Equal(t, ErrProjectClosed, err)
}

func TestCreateLog_WriterTitlesCappedAtRequired(t *testing.T) {
	svc, mockProject, mockMembership, mockLog, mockTitle := setupWorkLogMocks(t)

	writer := &user.Employee{EID: 3, JobRole: ptrRole(user.RoleWriter)}
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(openProject(1), nil)
	mockMembership.EXPECT().Exists(uint(3), uint(1)).Return(true, nil)
	mockLog.EXPECT().CreateLog(gomock.Any()).Return(nil)

	// 2 of 3 already exist: only one of the two new names fits.
	mockTitle.EXPECT().CountByProject(uint(1)).Return(int64(2), nil)
	mockTitle.EXPECT().CreateTitle(gomock.Any()).DoAndReturn(func(vt *worklog.VideoTitle) error {
		assert.Equal(t, "Opening sequence", vt.Title)
		return nil
	})

	input := worklog.CreateLogDTO{Hours: "2.5", NewTitles: []string{"Opening sequence", "Extra title"}}
	log, err := svc.CreateLog(writer, 1, input, testToday)
	assert.NoError(t, err)
	assert.Equal(t, "2.5", log.Hours.String())
}

func TestCreateLog_VideographerMarksFilmed(t *testing.T) {
	svc, mockProject, mockMembership, mockLog, mockTitle := setupWorkLogMocks(t)

	shooter := &user.Employee{EID: 4, JobRole: ptrRole(user.RoleVideographer)}
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(openProject(1), nil)
	mockMembership.EXPECT().Exists(uint(4), uint(1)).Return(true, nil)
	mockLog.EXPECT().CreateLog(gomock.Any()).Return(nil)

	mockTitle.EXPECT().GetProjectTitle(uint(1), uint(10)).Return(worklog.VideoTitle{TID: 10, ProjectID: 1}, nil)
	mockTitle.EXPECT().UpdateTitle(gomock.Any()).DoAndReturn(func(vt *worklog.VideoTitle) error {
		assert.True(t, vt.RawUploaded)
		assert.Equal(t, uint(4), *vt.RawUploadedBy)
		return nil
	})
	mockTitle.EXPECT().RecordAction(gomock.Any()).DoAndReturn(func(a *worklog.TitleAction) error {
		assert.Equal(t, worklog.ActionFilmed, a.ActionType)
		return nil
	})

	input := worklog.CreateLogDTO{Hours: "4", FilmedTitleIDs: []uint{10}}
	_, err := svc.CreateLog(shooter, 1, input, testToday)
	assert.NoError(t, err)
}

func TestCreateLog_EditorSkipsUnfilmedTitle(t *testing.T) {
	svc, mockProject, mockMembership, mockLog, mockTitle := setupWorkLogMocks(t)

	editor := &user.Employee{EID: 5, JobRole: ptrRole(user.RoleEditor)}
	mockProject.EXPECT().GetProjectByID(uint(1)).Return(openProject(1), nil)
	mockMembership.EXPECT().Exists(uint(5), uint(1)).Return(true, nil)
	mockLog.EXPECT().CreateLog(gomock.Any()).Return(nil)

	// The title was never filmed: no update, no action, no error.
	mockTitle.EXPECT().GetProjectTitle(uint(1), uint(10)).Return(worklog.VideoTitle{TID: 10, ProjectID: 1, RawUploaded: false}, nil)

	input := worklog.CreateLogDTO{Hours: "3", EditedTitleIDs: []uint{10}}
	_, err := svc.CreateLog(editor, 1, input, testToday)
	assert.NoError(t, err)
}

func TestCreateLog_PhotographerChecklist(t *testing.T) {
	svc, mockProject, mockMembership, mockLog, _ := setupWorkLogMocks(t)

	photographer := &user.Employee{EID: 6, JobRole: ptrRole(user.RolePhotographer)}
	p := openProject(1)
	p.ProjectType = project.TypePhoto
	deadline := testToday.AddDate(0, 1, 0)
	p.PhotoEditingDeadline = &deadline

	mockProject.EXPECT().GetProjectByID(uint(1)).Return(p, nil)
	mockMembership.EXPECT().Exists(uint(6), uint(1)).Return(true, nil)
	mockLog.EXPECT().CreateLog(gomock.Any()).DoAndReturn(func(l *worklog.WorkLog) error {
		l.LID = 77
		return nil
	})
	mockLog.EXPECT().CreatePhotoProgress(gomock.Any()).DoAndReturn(func(pp *worklog.PhotoProgress) error {
		assert.Equal(t, uint(77), pp.WorkLogID)
		assert.True(t, pp.FieldworkDone)
		assert.False(t, pp.EditingDone)
		return nil
	})

	fieldwork := true
	input := worklog.CreateLogDTO{Hours: "5", FieldworkDone: &fieldwork}
	_, err := svc.CreateLog(photographer, 1, input, testToday)
	assert.NoError(t, err)
}

func TestGetLog_OwnershipEnforced(t *testing.T) {
	svc, _, _, mockLog, _ := setupWorkLogMocks(t)

	stored := worklog.WorkLog{LID: 9, EmployeeID: 2, ProjectID: 1, Hours: dec(2)}
	mockLog.EXPECT().GetLogByID(uint(9)).Return(stored, nil).Times(2)
	mockLog.EXPECT().SumHoursByEmployeeAndProject(uint(2), uint(1)).Return(dec(2), nil)

	// Owner reads fine.
	log, total, err := svc.GetLog(2, 1, 9)
	assert.NoError(t, err)
	assert.Equal(t, uint(9), log.LID)
	assert.True(t, total.Equal(dec(2)))

	// Someone else gets not-found, not forbidden, to avoid leaking existence.
	_, _, err = svc.GetLog(3, 1, 9)
	assert.Equal(t, ErrLogNotFound, err)
}
