package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/database"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/repository"
	"github.com/yukikurage/shift-schedule-api/internal/services"
)

const testRegistrationCode = "1517"

type recordingNotifier struct {
	mu      sync.Mutex
	chatIDs []string
	fail    bool
}

func (n *recordingNotifier) Send(_ context.Context, chatID, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("telegram unavailable")
	}
	n.chatIDs = append(n.chatIDs, chatID)
	return nil
}

type handlerTestEnv struct {
	db       *gorm.DB
	router   *gin.Engine
	notifier *recordingNotifier
}

func setupHandlerTestEnv(t *testing.T) handlerTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := database.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	n := &recordingNotifier{}
	log := zap.NewNop()

	now := func() time.Time { return time.Date(2026, 10, 21, 12, 0, 0, 0, time.UTC) }
	userService := services.NewUserService(userRepo, n, testRegistrationCode, log)
	scheduleService := services.NewScheduleService(scheduleRepo, userRepo, n, time.UTC, log)
	weekService := services.NewWeekService(scheduleRepo, time.UTC, now)

	r := gin.New()
	RegisterRoutes(r, db,
		NewUserHandler(userService),
		NewScheduleHandler(scheduleService, weekService, time.UTC),
	)

	return handlerTestEnv{db: db, router: r, notifier: n}
}

func (env handlerTestEnv) do(t *testing.T, method, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env handlerTestEnv) createUser(t *testing.T, telegramID, lastName, position string) *models.User {
	t.Helper()
	user := &models.User{
		TelegramID: telegramID,
		FirstName:  "Test",
		LastName:   lastName,
		Position:   position,
		Department: models.DepartmentStaff,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
