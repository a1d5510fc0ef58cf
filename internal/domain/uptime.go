package domain

import "time"

const (
	fullDayStart = "00:00"
	fullDayEnd   = "23:59"
)

// DayResult is the resolved uptime for one day. A zero value is Closed.
type DayResult struct {
	Open      bool
	StartTime string
	EndTime   string
}

// Closed is the result for a day without uptime.
var Closed = DayResult{}

// OpenWindow returns an Open result spanning start..end.
func OpenWindow(start, end string) DayResult {
	return DayResult{Open: true, StartTime: start, EndTime: end}
}

// FullDay is the result forced by an uptime exemption.
func FullDay() DayResult { return OpenWindow(fullDayStart, fullDayEnd) }

func (r DayResult) String() string {
	if !r.Open {
		return "closed"
	}
	return r.StartTime + "-" + r.EndTime
}

// DayEntry pairs a calendar day with its resolved uptime.
type DayEntry struct {
	Date   time.Time
	Result DayResult
}

// ResolveDay decides whether day is up. First match wins:
// a downtime exemption closes the day, an uptime exemption opens it for the
// whole day, otherwise the weekday must be valid in both rules.
func ResolveDay(up, down CronRule, day time.Time, exemptions *ExemptionSet) DayResult {
	if exemptions != nil {
		if exemptions.IsDowntime(day) {
			return Closed
		}
		if exemptions.IsUptime(day) {
			return FullDay()
		}
	}

	weekday := WeekdayOf(day)
	if up.Weekdays.Has(weekday) && down.Weekdays.Has(weekday) {
		return OpenWindow(up.Clock(), down.Clock())
	}
	return Closed
}
