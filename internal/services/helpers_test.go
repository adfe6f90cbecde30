package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/yukikurage/shift-schedule-api/internal/database"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/repository"
	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

var errSendFailed = errors.New("send failed")

type sentMessage struct {
	chatID string
	text   string
}

// fakeNotifier records messages and fails for chat ids listed in failFor.
type fakeNotifier struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[string]bool
	failAll bool
}

func (n *fakeNotifier) Send(_ context.Context, chatID, text string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failAll || n.failFor[chatID] {
		return errSendFailed
	}
	n.sent = append(n.sent, sentMessage{chatID: chatID, text: text})
	return nil
}

type serviceTestEnv struct {
	db        *gorm.DB
	notifier  *fakeNotifier
	users     *UserService
	schedules *ScheduleService
}

func setupServiceTestEnv(t *testing.T) serviceTestEnv {
	t.Helper()

	db := database.NewTestDB(t)
	userRepo := repository.NewUserRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	n := &fakeNotifier{failFor: map[string]bool{}}

	return serviceTestEnv{
		db:        db,
		notifier:  n,
		users:     NewUserService(userRepo, n, "1517", zap.NewNop()),
		schedules: NewScheduleService(scheduleRepo, userRepo, n, time.UTC, zap.NewNop()),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, telegramID, lastName string) *models.User {
	t.Helper()
	user := &models.User{
		TelegramID: telegramID,
		FirstName:  "Test",
		LastName:   lastName,
		Position:   "courier",
		Department: models.DepartmentStaff,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func countSchedules(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Schedule{}).Count(&n).Error)
	return n
}

func ptr(s string) *string { return &s }

// thisWeek is the Monday-to-Sunday week of 2026-10-19 in UTC.
var thisWeek = utils.WeekContaining(time.Date(2026, 10, 21, 10, 0, 0, 0, time.UTC), time.UTC)
