package constants

const (
	// RecentSchedulesLimit is how many schedules are returned with a single user.
	RecentSchedulesLimit = 10

	// Shift markers
	DayOffMarker        = "off"
	DayOffMessage       = "day off"
	PlaceholderBotToken = "YOUR_BOT_TOKEN_HERE"

	// Week label annotations
	CurrentWeekSuffix = " (current)"
	NextWeekSuffix    = " (next)"

	// Date formats
	DateLayout = "2006-01-02"

	// Export
	ExportSheetName   = "Schedule"
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// OffMarkers are shift strings that mean "not working", compared case-insensitively.
var OffMarkers = []string{"off", "day-off", "day off", "в", "выходной"}
