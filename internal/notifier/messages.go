package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/yukikurage/shift-schedule-api/internal/constants"
	"github.com/yukikurage/shift-schedule-api/internal/models"
)

var dayNames = map[time.Weekday]string{
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
	time.Sunday:    "Sunday",
}

// ScheduleMessage summarises a confirmed week for its owner.
func ScheduleMessage(schedule models.Schedule) string {
	var b strings.Builder
	b.WriteString("📅 Your schedule for the week:\n\n")
	for _, day := range models.WeekOrder {
		shift := constants.DayOffMessage
		if v := schedule.Day(day); v != nil && *v != "" {
			shift = *v
		}
		fmt.Fprintf(&b, "%s: %s\n", dayNames[day], shift)
	}
	fmt.Fprintf(&b, "\nTotal hours: %d", schedule.TotalHours)
	return b.String()
}

// FarewellMessage is sent to a user whose account was removed.
func FarewellMessage(user models.User) string {
	return fmt.Sprintf("👋 Hello, %s %s!\n\n"+
		"Unfortunately, your account has been removed from the scheduling system.\n\n"+
		"Thank you for your work and good luck!", user.FirstName, user.LastName)
}
