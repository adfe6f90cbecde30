package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
	"github.com/yukikurage/shift-schedule-api/internal/repository"
	"github.com/yukikurage/shift-schedule-api/internal/utils"
)

// WeekKind marks the synthetic weeks that are always listed.
type WeekKind string

const (
	WeekKindNext    WeekKind = "next"
	WeekKindCurrent WeekKind = "current"
	WeekKindPast    WeekKind = ""
)

// Week describes one selectable scheduling period.
type Week struct {
	Bounds utils.WeekBounds
	Label  string
	Kind   WeekKind
}

// WeekService lists the weeks that have schedules plus the current and next week.
type WeekService struct {
	scheduleRepo repository.ScheduleRepository
	loc          *time.Location
	now          func() time.Time
}

// NewWeekService creates a new WeekService. now defaults to time.Now.
func NewWeekService(scheduleRepo repository.ScheduleRepository, loc *time.Location, now func() time.Time) *WeekService {
	if now == nil {
		now = time.Now
	}
	return &WeekService{
		scheduleRepo: scheduleRepo,
		loc:          loc,
		now:          now,
	}
}

// ListWeeks returns the next week, the current week and then every other week
// with schedules, newest first. Weeks are deduplicated by the calendar date of
// their start.
func (s *WeekService) ListWeeks() ([]Week, error) {
	stored, err := s.scheduleRepo.ListWeeks()
	if err != nil {
		return nil, fmt.Errorf("failed to list weeks: %w", err)
	}

	current := utils.WeekContaining(s.now(), s.loc)
	next := current.Shift(7)
	currentKey, nextKey := current.DateKey(s.loc), next.DateKey(s.loc)

	seen := make(map[string]struct{}, len(stored))
	weeks := make([]Week, 0, len(stored)+2)
	for _, bounds := range stored {
		key := bounds.DateKey(s.loc)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		week := Week{Bounds: bounds}
		switch key {
		case currentKey:
			week.Kind = WeekKindCurrent
		case nextKey:
			week.Kind = WeekKindNext
		}
		weeks = append(weeks, week)
	}

	if _, ok := seen[currentKey]; !ok {
		weeks = append(weeks, Week{Bounds: current, Kind: WeekKindCurrent})
	}
	if _, ok := seen[nextKey]; !ok {
		weeks = append([]Week{{Bounds: next, Kind: WeekKindNext}}, weeks...)
	}

	for i := range weeks {
		weeks[i].Label = s.label(weeks[i])
	}

	sort.SliceStable(weeks, func(i, j int) bool {
		ri, rj := kindRank(weeks[i].Kind), kindRank(weeks[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return weeks[i].Bounds.Start.After(weeks[j].Bounds.Start)
	})

	return weeks, nil
}

func (s *WeekService) label(week Week) string {
	label := week.Bounds.Label(s.loc)
	switch week.Kind {
	case WeekKindCurrent:
		label += constants.CurrentWeekSuffix
	case WeekKindNext:
		label += constants.NextWeekSuffix
	}
	return label
}

func kindRank(kind WeekKind) int {
	switch kind {
	case WeekKindNext:
		return 0
	case WeekKindCurrent:
		return 1
	default:
		return 2
	}
}
