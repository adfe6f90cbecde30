package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
	"github.com/yukikurage/shift-schedule-api/internal/dto"
	apierrors "github.com/yukikurage/shift-schedule-api/internal/errors"
	"github.com/yukikurage/shift-schedule-api/internal/models"
	"github.com/yukikurage/shift-schedule-api/internal/services"
	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

var dayFields = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// ScheduleHandler serves weekly schedules, week listing and export.
type ScheduleHandler struct {
	scheduleService *services.ScheduleService
	weekService     *services.WeekService
	loc             *time.Location
}

// NewScheduleHandler creates a new ScheduleHandler. loc is used to read plain dates.
func NewScheduleHandler(scheduleService *services.ScheduleService, weekService *services.WeekService, loc *time.Location) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
		weekService:     weekService,
		loc:             loc,
	}
}

// ListSchedules returns all schedules, or those of one week when week_start and week_end are given.
func (h *ScheduleHandler) ListSchedules(c *gin.Context) {
	bounds, err := utils.ParseWeekBounds(c.Query("week_start"), c.Query("week_end"), h.loc)
	if err != nil {
		apierrors.InvalidFormat(c, "Invalid week bounds", err.Error())
		return
	}

	var week *utils.WeekBounds
	if !bounds.IsZero() {
		week = &bounds
	}

	schedules, err := h.scheduleService.ListSchedules(week)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"schedules": dto.ToScheduleDTOs(schedules),
	})
}

// SaveSchedule creates or fully overwrites a user's schedule for a week.
func (h *ScheduleHandler) SaveSchedule(c *gin.Context) {
	type SaveScheduleRequest struct {
		UserID    string  `json:"user_id"`
		WeekStart string  `json:"week_start"`
		WeekEnd   string  `json:"week_end"`
		Monday    *string `json:"monday"`
		Tuesday   *string `json:"tuesday"`
		Wednesday *string `json:"wednesday"`
		Thursday  *string `json:"thursday"`
		Friday    *string `json:"friday"`
		Saturday  *string `json:"saturday"`
		Sunday    *string `json:"sunday"`
	}

	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	week, err := utils.ParseWeekBounds(req.WeekStart, req.WeekEnd, h.loc)
	if err != nil {
		apierrors.InvalidFormat(c, "Invalid week bounds", err.Error())
		return
	}

	schedule, err := h.scheduleService.SaveSchedule(services.SaveScheduleInput{
		UserID: req.UserID,
		Week:   week,
		Days: models.WeekDays{
			Monday:    req.Monday,
			Tuesday:   req.Tuesday,
			Wednesday: req.Wednesday,
			Thursday:  req.Thursday,
			Friday:    req.Friday,
			Saturday:  req.Saturday,
			Sunday:    req.Sunday,
		},
	})
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"schedule": dto.ToScheduleDTO(*schedule),
	})
}

// PatchSchedule changes only the days present in the body. A null value clears the day.
func (h *ScheduleHandler) PatchSchedule(c *gin.Context) {
	// Parse raw JSON to detect which days were sent; other keys are ignored
	var rawReq map[string]json.RawMessage
	if err := c.ShouldBindJSON(&rawReq); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	patch := make(models.WeekPatch, len(dayFields))
	for field, raw := range rawReq {
		day, ok := dayFields[strings.ToLower(field)]
		if !ok {
			continue
		}
		var shift *string
		if err := json.Unmarshal(raw, &shift); err != nil {
			apierrors.BadRequest(c, fmt.Sprintf("%s must be a string or null", field))
			return
		}
		patch[day] = shift
	}

	schedule, err := h.scheduleService.PatchSchedule(c.Param("id"), patch)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"schedule": dto.ToScheduleDTO(*schedule),
	})
}

// DuplicateWeek copies one week's schedules into another week.
func (h *ScheduleHandler) DuplicateWeek(c *gin.Context) {
	type DuplicateWeekRequest struct {
		FromWeekStart string `json:"from_week_start"`
		FromWeekEnd   string `json:"from_week_end"`
		ToWeekStart   string `json:"to_week_start"`
		ToWeekEnd     string `json:"to_week_end"`
	}

	var req DuplicateWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	from, err := utils.ParseWeekBounds(req.FromWeekStart, req.FromWeekEnd, h.loc)
	if err != nil {
		apierrors.InvalidFormat(c, "Invalid source week bounds", err.Error())
		return
	}
	to, err := utils.ParseWeekBounds(req.ToWeekStart, req.ToWeekEnd, h.loc)
	if err != nil {
		apierrors.InvalidFormat(c, "Invalid target week bounds", err.Error())
		return
	}

	count, err := h.scheduleService.DuplicateWeek(services.DuplicateWeekInput{From: from, To: to})
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("%d schedules duplicated", count),
		"count":   count,
	})
}

// ConfirmWeek confirms a week and notifies every scheduled user.
func (h *ScheduleHandler) ConfirmWeek(c *gin.Context) {
	type ConfirmWeekRequest struct {
		WeekStart string `json:"week_start"`
		WeekEnd   string `json:"week_end"`
	}

	var req ConfirmWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	week, err := utils.ParseWeekBounds(req.WeekStart, req.WeekEnd, h.loc)
	if err != nil {
		apierrors.InvalidFormat(c, "Invalid week bounds", err.Error())
		return
	}

	result, err := h.scheduleService.ConfirmWeek(c.Request.Context(), week)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"message":            fmt.Sprintf("Schedules confirmed, %d notifications sent", result.NotificationsSent),
		"schedules":          dto.ToScheduleDTOs(result.Schedules),
		"notifications_sent": result.NotificationsSent,
	})
}

// ListWeeks returns the selectable weeks, next and current first.
func (h *ScheduleHandler) ListWeeks(c *gin.Context) {
	weeks, err := h.weekService.ListWeeks()
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"weeks":   dto.ToWeekDTOs(weeks),
	})
}

// ExportSchedule streams the week's schedules as an xlsx attachment.
func (h *ScheduleHandler) ExportSchedule(c *gin.Context) {
	week, err := utils.ParseWeekBounds(c.Query("week_start"), c.Query("week_end"), h.loc)
	if err != nil {
		apierrors.InvalidFormat(c, "Invalid week bounds", err.Error())
		return
	}

	data, filename, err := h.scheduleService.ExportWeek(week)
	if err != nil {
		respondScheduleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, constants.ExportContentType, data)
}

func respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingScheduleFields),
		errors.Is(err, services.ErrMissingWeekBounds),
		errors.Is(err, services.ErrMissingDuplicateWeeks):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrScheduleNotFound),
		errors.Is(err, services.ErrSourceWeekEmpty):
		apierrors.NotFound(c, err.Error())
	default:
		_ = c.Error(err)
		apierrors.InternalError(c, err.Error())
	}
}
