package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/xuri/excelize/v2"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
	"github.com/yukikurage/shift-schedule-api/internal/dto"
	"github.com/yukikurage/shift-schedule-api/internal/models"
)

// ScheduleHandlerTestSuite defines the test suite for ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	env handlerTestEnv
}

// SetupTest runs before each test
func (suite *ScheduleHandlerTestSuite) SetupTest() {
	suite.env = setupHandlerTestEnv(suite.T())
}

func (suite *ScheduleHandlerTestSuite) saveSchedule(userID, weekStart, weekEnd string, days map[string]any) dto.ScheduleDTO {
	payload := map[string]any{
		"user_id":    userID,
		"week_start": weekStart,
		"week_end":   weekEnd,
	}
	for k, v := range days {
		payload[k] = v
	}

	w := suite.env.do(suite.T(), http.MethodPost, "/api/schedules", payload)
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Success  bool            `json:"success"`
		Schedule dto.ScheduleDTO `json:"schedule"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().True(response.Success)
	return response.Schedule
}

func (suite *ScheduleHandlerTestSuite) TestSaveSchedule() {
	user := suite.env.createUser(suite.T(), "1", "Lee", "cook")

	schedule := suite.saveSchedule(user.ID, "2026-10-19", "2026-10-25", map[string]any{
		"monday":  "9-18",
		"tuesday": "22-6",
		"friday":  "off",
	})

	suite.Equal(17, schedule.TotalHours)
	suite.False(schedule.IsConfirmed)
	suite.Require().NotNil(schedule.User)
	suite.Equal("Lee", schedule.User.LastName)
	suite.Equal(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC), schedule.WeekStart.UTC())

	again := suite.saveSchedule(user.ID, "2026-10-19", "2026-10-25", map[string]any{"sunday": "10-24"})
	suite.Equal(schedule.ID, again.ID)
	suite.Nil(again.Monday)
	suite.Equal(14, again.TotalHours)
}

func (suite *ScheduleHandlerTestSuite) TestSaveSchedule_Errors() {
	user := suite.env.createUser(suite.T(), "1", "Lee", "cook")

	w := suite.env.do(suite.T(), http.MethodPost, "/api/schedules", map[string]any{"user_id": user.ID})
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.env.do(suite.T(), http.MethodPost, "/api/schedules", map[string]any{
		"user_id": user.ID, "week_start": "19/10/2026", "week_end": "2026-10-25",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("INVALID_FORMAT", decode(suite.T(), w)["code"])

	w = suite.env.do(suite.T(), http.MethodPost, "/api/schedules", map[string]any{
		"user_id": "ghost", "week_start": "2026-10-19", "week_end": "2026-10-25",
	})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestPatchSchedule() {
	user := suite.env.createUser(suite.T(), "1", "Lee", "cook")
	created := suite.saveSchedule(user.ID, "2026-10-19", "2026-10-25", map[string]any{
		"monday":  "9-18",
		"tuesday": "9-18",
	})

	w := suite.env.do(suite.T(), http.MethodPatch, "/api/schedules/"+created.ID, map[string]any{
		"tuesday":  nil,
		"saturday": "22-6",
		"user_id":  "ignored",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Schedule dto.ScheduleDTO `json:"schedule"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("9-18", *response.Schedule.Monday)
	suite.Nil(response.Schedule.Tuesday)
	suite.Equal("22-6", *response.Schedule.Saturday)
	suite.Equal(17, response.Schedule.TotalHours)
	suite.Equal(user.ID, response.Schedule.UserID)
}

func (suite *ScheduleHandlerTestSuite) TestPatchSchedule_Errors() {
	w := suite.env.do(suite.T(), http.MethodPatch, "/api/schedules/missing", map[string]any{"monday": "9-18"})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.do(suite.T(), http.MethodPatch, "/api/schedules/missing", map[string]any{"monday": 9})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestPatchSchedule_IgnoresNonDayFields() {
	user := suite.env.createUser(suite.T(), "1", "Lee", "cook")
	created := suite.saveSchedule(user.ID, "2026-10-19", "2026-10-25", map[string]any{"monday": "9-18"})

	w := suite.env.do(suite.T(), http.MethodPatch, "/api/schedules/"+created.ID, map[string]any{
		"tuesday":      "9-18",
		"total_hours":  99,
		"is_confirmed": true,
		"user":         map[string]any{"id": "someone-else", "last_name": "Other"},
	})
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Schedule dto.ScheduleDTO `json:"schedule"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("9-18", *response.Schedule.Tuesday)
	suite.Equal(18, response.Schedule.TotalHours)
	suite.False(response.Schedule.IsConfirmed)
	suite.Equal("Lee", response.Schedule.User.LastName)

	w = suite.env.do(suite.T(), http.MethodPatch, "/api/schedules/"+created.ID, map[string]any{
		"wednesday": map[string]any{"from": 9},
		"notes":     "ignored",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestListSchedules() {
	alice := suite.env.createUser(suite.T(), "1", "Alpha", "waiter")
	bob := suite.env.createUser(suite.T(), "2", "Beta", "barista")
	suite.saveSchedule(alice.ID, "2026-10-19", "2026-10-25", nil)
	suite.saveSchedule(bob.ID, "2026-10-19", "2026-10-25", nil)
	suite.saveSchedule(bob.ID, "2026-10-12", "2026-10-18", nil)

	w := suite.env.do(suite.T(), http.MethodGet, "/api/schedules", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var all struct {
		Schedules []dto.ScheduleDTO `json:"schedules"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &all))
	suite.Len(all.Schedules, 3)

	w = suite.env.do(suite.T(), http.MethodGet, "/api/schedules?week_start=2026-10-19&week_end=2026-10-25", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	var week struct {
		Schedules []dto.ScheduleDTO `json:"schedules"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &week))
	suite.Require().Len(week.Schedules, 2)
	suite.Equal("Beta", week.Schedules[0].User.LastName)
	suite.Equal("Alpha", week.Schedules[1].User.LastName)
}

func (suite *ScheduleHandlerTestSuite) TestDuplicateWeek() {
	user := suite.env.createUser(suite.T(), "1", "Lee", "cook")
	suite.saveSchedule(user.ID, "2026-10-19", "2026-10-25", map[string]any{"monday": "9-18"})

	w := suite.env.do(suite.T(), http.MethodPost, "/api/schedules/duplicate", map[string]string{
		"from_week_start": "2026-10-19",
		"from_week_end":   "2026-10-25",
		"to_week_start":   "2026-10-26",
		"to_week_end":     "2026-11-01",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.EqualValues(1, decode(suite.T(), w)["count"])

	var copies []models.Schedule
	suite.Require().NoError(suite.env.db.Where("user_id = ?", user.ID).Find(&copies).Error)
	suite.Len(copies, 2)

	w = suite.env.do(suite.T(), http.MethodPost, "/api/schedules/duplicate", map[string]string{
		"from_week_start": "2026-01-05",
		"from_week_end":   "2026-01-11",
		"to_week_start":   "2026-10-26",
		"to_week_end":     "2026-11-01",
	})
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.env.do(suite.T(), http.MethodPost, "/api/schedules/duplicate", map[string]string{
		"from_week_start": "2026-10-19",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestConfirmWeek() {
	alice := suite.env.createUser(suite.T(), "100", "Alpha", "cook")
	bob := suite.env.createUser(suite.T(), "not-a-number", "Beta", "cook")
	suite.saveSchedule(alice.ID, "2026-10-19", "2026-10-25", map[string]any{"monday": "9-18"})
	suite.saveSchedule(bob.ID, "2026-10-19", "2026-10-25", map[string]any{"monday": "9-18"})

	w := suite.env.do(suite.T(), http.MethodPost, "/api/schedules/confirm", map[string]string{
		"week_start": "2026-10-19",
		"week_end":   "2026-10-25",
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Success           bool              `json:"success"`
		Schedules         []dto.ScheduleDTO `json:"schedules"`
		NotificationsSent int               `json:"notifications_sent"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response.Success)
	suite.Equal(2, response.NotificationsSent)
	for _, s := range response.Schedules {
		suite.True(s.IsConfirmed)
	}
	suite.ElementsMatch([]string{"100", "not-a-number"}, suite.env.notifier.chatIDs)
}

func (suite *ScheduleHandlerTestSuite) TestConfirmWeek_NotifierDown() {
	user := suite.env.createUser(suite.T(), "100", "Lee", "cook")
	suite.saveSchedule(user.ID, "2026-10-19", "2026-10-25", nil)
	suite.env.notifier.fail = true

	w := suite.env.do(suite.T(), http.MethodPost, "/api/schedules/confirm", map[string]string{
		"week_start": "2026-10-19",
		"week_end":   "2026-10-25",
	})
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.EqualValues(0, decode(suite.T(), w)["notifications_sent"])

	var stored models.Schedule
	suite.Require().NoError(suite.env.db.First(&stored, "user_id = ?", user.ID).Error)
	suite.True(stored.IsConfirmed)
}

func (suite *ScheduleHandlerTestSuite) TestListWeeks() {
	user := suite.env.createUser(suite.T(), "1", "Lee", "cook")
	suite.saveSchedule(user.ID, "2026-10-05", "2026-10-11", nil)

	w := suite.env.do(suite.T(), http.MethodGet, "/api/schedules/weeks", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Weeks []dto.WeekDTO `json:"weeks"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Require().Len(response.Weeks, 3)
	suite.Equal("26.10.2026-1.11.2026 (next)", response.Weeks[0].Label)
	suite.Equal("19.10.2026-25.10.2026 (current)", response.Weeks[1].Label)
	suite.Equal("5.10.2026-11.10.2026", response.Weeks[2].Label)
}

func (suite *ScheduleHandlerTestSuite) TestExportSchedule() {
	user := suite.env.createUser(suite.T(), "1", "Lee", "cook")
	suite.saveSchedule(user.ID, "2026-10-19", "2026-10-25", map[string]any{"monday": "9-18"})

	w := suite.env.do(suite.T(), http.MethodGet, "/api/export/schedule?week_start=2026-10-19&week_end=2026-10-25", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal(constants.ExportContentType, w.Header().Get("Content-Type"))
	suite.True(strings.Contains(w.Header().Get("Content-Disposition"), "schedule_19-10_25-10.xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows(constants.ExportSheetName)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 4)
	suite.Equal("Lee Test", rows[3][0])
	suite.Equal("9-18", rows[3][2])

	w = suite.env.do(suite.T(), http.MethodGet, "/api/export/schedule", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// Run the test suite
func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
