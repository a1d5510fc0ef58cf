package domain

import "time"

// Calendar defaults.
const (
	DefaultCalendarDays = 14
	DefaultHorizonDays  = 30

	DefaultTopColor    = "#237f7e"
	DefaultBottomColor = "#2b9b9a"
)

// CalendarRequest describes a calendar strip to build. A zero Start means today.
type CalendarRequest struct {
	UpExpression   string
	DownExpression string
	Start          time.Time
	Days           int
	ExemptionsPath string
	OutputPath     string
}

// Calendar is a resolved run of consecutive days.
type Calendar struct {
	Up         CronRule
	Down       CronRule
	Exemptions *ExemptionSet
	Days       []DayEntry
}

// OpenDays counts the days with uptime.
func (c Calendar) OpenDays() int {
	n := 0
	for _, d := range c.Days {
		if d.Result.Open {
			n++
		}
	}
	return n
}

// NextRequest asks for the next open day.
type NextRequest struct {
	UpExpression   string
	DownExpression string
	Start          time.Time
	Horizon        int
	ExemptionsPath string
}

// NextWindow is the first open day found within a horizon.
type NextWindow struct {
	Found  bool
	Day    time.Time
	Result DayResult

	// UpFire and DownFire are the standard-cron next fire times of each
	// expression, nil when the expression is not valid standard cron.
	UpFire   *time.Time
	DownFire *time.Time
}

// BadgeRequest describes a badge to render.
type BadgeRequest struct {
	Badge
	OutputPath string
}
