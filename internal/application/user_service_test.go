package application

import (
	"testing"
	"time"

	"github.com/Hernadil/tracker/internal/api/middleware"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserMocks(t *testing.T) (*UserService, *mock.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUser := mock.NewMockUserRepo(ctrl)
	repos := &repository.Repos{User: mockUser}
	return NewUserService(repos, NewRevenueService(repos)), mockUser
}

func stubToken(t *testing.T, token string) {
	orig := middleware.GenerateToken
	middleware.GenerateToken = func(emp *user.Employee, expire time.Duration) (string, error) {
		return token, nil
	}
	t.Cleanup(func() { middleware.GenerateToken = orig })
}

func hashOf(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestRegisterEmployee_Success(t *testing.T) {
	svc, mockUser := setupUserMocks(t)
	silenceAudit(t)

	mockUser.EXPECT().GetUserByUsername("annak").Return(user.Employee{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().SaveUser(gomock.Any()).DoAndReturn(func(emp *user.Employee) error {
		emp.EID = 7
		return nil
	})

	role := string(user.RoleEditor)
	emp, err := svc.RegisterEmployee(nil, user.CreateEmployeeInput{
		Username: "annak",
		Password: "password123",
		JobRole:  &role,
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(7), emp.EID)
	assert.True(t, emp.IsActive)
	assert.Equal(t, user.RoleEditor, emp.Role())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte("password123")))
}

func TestRegisterEmployee_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	mockUser.EXPECT().GetUserByUsername("annak").Return(user.Employee{EID: 1, Username: "annak"}, nil)

	_, err := svc.RegisterEmployee(nil, user.CreateEmployeeInput{Username: "annak", Password: "password123"})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserMocks(t)
	stubToken(t, "signed-token")

	mockUser.EXPECT().GetUserByUsername("annak").Return(user.Employee{
		EID:      7,
		Username: "annak",
		Password: hashOf(t, "password123"),
		IsActive: true,
	}, nil)

	emp, token, err := svc.Login("annak", "password123")
	assert.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, uint(7), emp.EID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	mockUser.EXPECT().GetUserByUsername("annak").Return(user.Employee{
		Username: "annak",
		Password: hashOf(t, "password123"),
		IsActive: true,
	}, nil)

	_, _, err := svc.Login("annak", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	mockUser.EXPECT().GetUserByUsername("annak").Return(user.Employee{
		Username: "annak",
		Password: hashOf(t, "password123"),
		IsActive: false,
	}, nil)

	_, _, err := svc.Login("annak", "password123")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, mockUser := setupUserMocks(t)

	mockUser.EXPECT().GetUserByID(uint(7)).Return(user.Employee{
		EID:      7,
		Password: hashOf(t, "password123"),
	}, nil)

	err := svc.ChangePassword(7, user.ChangePasswordInput{OldPassword: "wrong", NewPassword: "newpass1"})
	assert.Equal(t, ErrIncorrectPassword, err)
}
