package utils

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
)

var shiftPattern = regexp.MustCompile(`(\d{1,2})-(\d{1,2})`)

// ShiftHours returns the number of hours covered by a "HH-HH" shift string.
// Empty, day-off and unparseable values count as zero. An end hour of 24 means
// midnight, and an end hour below the start hour crosses midnight.
func ShiftHours(shift *string) int {
	if shift == nil {
		return 0
	}
	value := strings.TrimSpace(*shift)
	if value == "" || IsDayOff(value) {
		return 0
	}

	match := shiftPattern.FindStringSubmatch(value)
	if match == nil {
		return 0
	}

	start, _ := strconv.Atoi(match[1])
	end, _ := strconv.Atoi(match[2])

	if end == 24 {
		return 24 - start
	}
	if end < start {
		end += 24
	}
	return end - start
}

// IsDayOff reports whether value is one of the day-off markers.
func IsDayOff(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, marker := range constants.OffMarkers {
		if value == marker {
			return true
		}
	}
	return false
}
