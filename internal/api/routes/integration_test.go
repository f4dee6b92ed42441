//go:build integration
// +build integration

package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"

	"github.com/Hernadil/tracker/internal/api/middleware"
	"github.com/Hernadil/tracker/internal/config"
	"github.com/Hernadil/tracker/internal/config/db"
	"github.com/Hernadil/tracker/internal/domain/audit"
	"github.com/Hernadil/tracker/internal/domain/expense"
	"github.com/Hernadil/tracker/internal/domain/project"
	"github.com/Hernadil/tracker/internal/domain/user"
	"github.com/Hernadil/tracker/internal/domain/worklog"
	"github.com/Hernadil/tracker/internal/repository"
	"github.com/Hernadil/tracker/internal/testutils"
	"github.com/Hernadil/tracker/pkg/response"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}

	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	if err := db.DB.AutoMigrate(
		&user.Employee{},
		&project.Project{},
		&project.Membership{},
		&worklog.WorkLog{},
		&worklog.VideoTitle{},
		&worklog.TitleAction{},
		&worklog.PhotoProgress{},
		&expense.Expense{},
		&audit.AuditLog{},
	); err != nil {
		log.Fatal(err)
	}

	gin.SetMode(gin.TestMode)
	router = gin.New()
	RegisterRoutesWith(router, repository.NewRepositories(db.DB), nil)

	seedBoss("boss", "bosspass1")

	os.Exit(m.Run())
}

func seedBoss(username, password string) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	emp := &user.Employee{
		Username: username,
		Password: string(hashed),
		IsBoss:   true,
		IsActive: true,
	}
	if err := db.DB.Create(emp).Error; err != nil {
		log.Fatal(err)
	}
}

// doRequest sends a JSON request through the router and checks the status.
func doRequest(t *testing.T, method, path, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}
	return w
}

func login(t *testing.T, username, password string) string {
	w := doRequest(t, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	}, http.StatusOK)

	var resp response.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func dateIn(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestLoginFlow(t *testing.T) {
	token := login(t, "boss", "bosspass1")

	doRequest(t, "GET", "/auth/status", token, nil, http.StatusOK)
	doRequest(t, "GET", "/auth/status", "", nil, http.StatusUnauthorized)

	doRequest(t, "POST", "/login", "", map[string]string{
		"username": "boss",
		"password": "wrong",
	}, http.StatusUnauthorized)
}

func TestProjectLifecycle(t *testing.T) {
	bossToken := login(t, "boss", "bosspass1")

	// Boss registers a writer; the username is then taken.
	w := doRequest(t, "POST", "/employees", bossToken, map[string]interface{}{
		"username": "writer1",
		"password": "password123",
		"job_role": "writer",
	}, http.StatusCreated)
	var writer user.Employee
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &writer))

	doRequest(t, "POST", "/employees", bossToken, map[string]interface{}{
		"username": "writer1",
		"password": "other12345",
		"job_role": "writer",
	}, http.StatusConflict)

	// Payroll commitments above revenue are rejected.
	doRequest(t, "POST", "/projects", bossToken, map[string]interface{}{
		"title":            "Overbooked",
		"company":          "Acme",
		"revenue":          1000,
		"project_type":     "video",
		"max_writer_count": 2,
		"pay_writer":       5000,
	}, http.StatusBadRequest)

	w = doRequest(t, "POST", "/projects", bossToken, map[string]interface{}{
		"title":                "Spring campaign",
		"company":              "Acme",
		"revenue":              40000,
		"project_type":         "video",
		"required_video_count": 2,
		"max_writer_count":     2,
		"max_editor_count":     1,
		"pay_writer":           10000,
		"pay_editor":           10000,
		"writer_deadline":      dateIn(30),
		"editor_deadline":      dateIn(60),
	}, http.StatusCreated)
	var p project.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	require.NotZero(t, p.PID)

	writerToken := login(t, "writer1", "password123")
	base := fmt.Sprintf("/projects/%d", p.PID)

	// Project management is boss-only.
	doRequest(t, "GET", "/projects", writerToken, nil, http.StatusForbidden)

	// Joining twice settles on the same membership.
	doRequest(t, "POST", base+"/join", writerToken, nil, http.StatusCreated)
	doRequest(t, "POST", base+"/join", writerToken, nil, http.StatusCreated)

	var count int64
	db.DB.Model(&project.Membership{}).
		Where("employee_id = ? AND project_id = ?", writer.EID, p.PID).
		Count(&count)
	require.Equal(t, int64(1), count)

	// A writer's log can register new titles as it records hours.
	doRequest(t, "POST", base+"/logs", writerToken, map[string]interface{}{
		"hours":      "3",
		"new_titles": []string{"Teaser", "Main cut", "One too many"},
	}, http.StatusCreated)

	w = doRequest(t, "GET", base+"/logs", writerToken, nil, http.StatusOK)
	var logsResp struct {
		Logs       []worklog.WorkLog `json:"logs"`
		TotalHours string            `json:"total_hours"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logsResp))
	require.Len(t, logsResp.Logs, 1)
	require.Equal(t, "3.0", logsResp.TotalHours)

	// The title cap held even though three names were submitted.
	var titles int64
	db.DB.Model(&worklog.VideoTitle{}).Where("project_id = ?", p.PID).Count(&titles)
	require.Equal(t, int64(2), titles)

	// Completion releases revenue for attribution, once.
	doRequest(t, "POST", base+"/complete", bossToken, nil, http.StatusOK)
	doRequest(t, "POST", base+"/complete", bossToken, nil, http.StatusConflict)

	// Logging on a completed project is refused.
	doRequest(t, "POST", base+"/logs", writerToken, map[string]interface{}{
		"hours": "1",
	}, http.StatusForbidden)

	// The sole contributor gets the whole revenue in the monthly report.
	now := time.Now()
	w = doRequest(t, "GET", fmt.Sprintf("/reports/monthly?year=%d", now.Year()), bossToken, nil, http.StatusOK)
	var months []struct {
		Month     int   `json:"month"`
		Revenue   int64 `json:"revenue"`
		Profit    int64 `json:"profit"`
		IsCurrent bool  `json:"is_current"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &months))
	require.Len(t, months, 12)
	current := months[int(now.Month())-1]
	require.True(t, current.IsCurrent)
	require.Equal(t, int64(40000), current.Revenue)
}

func TestExpenseFlow(t *testing.T) {
	bossToken := login(t, "boss", "bosspass1")

	w := doRequest(t, "POST", "/expenses", bossToken, map[string]interface{}{
		"amount":      2500,
		"description": "Camera rental",
	}, http.StatusCreated)
	var exp expense.Expense
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exp))
	require.NotZero(t, exp.XID)

	doRequest(t, "POST", "/expenses", bossToken, map[string]interface{}{
		"amount":      -5,
		"description": "Bogus",
	}, http.StatusBadRequest)

	now := time.Now()
	w = doRequest(t, "GET", fmt.Sprintf("/expenses?year=%d&month=%d", now.Year(), int(now.Month())), bossToken, nil, http.StatusOK)
	var listResp struct {
		Expenses []expense.Expense `json:"expenses"`
		Total    int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listResp))
	require.NotEmpty(t, listResp.Expenses)
	require.GreaterOrEqual(t, listResp.Total, int64(2500))

	doRequest(t, "DELETE", fmt.Sprintf("/expenses/%d", exp.XID), bossToken, nil, http.StatusOK)
}
