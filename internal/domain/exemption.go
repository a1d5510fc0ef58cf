package domain

import "time"

// DateLayout is the on-disk format of exemption dates.
const DateLayout = "2006-01-02"

// DateInterval is a closed range of calendar days.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// ExemptionSet overrides the cron schedule for whole days.
// Downtimes take precedence over Uptimes.
type ExemptionSet struct {
	Uptimes   []DateInterval
	Downtimes []DateInterval
}

// ParseDate parses a YYYY-MM-DD string into a UTC calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &FormatError{Field: "date", Value: value, Reason: "expected YYYY-MM-DD", Err: err}
	}
	return t, nil
}

// NewDateInterval parses both bounds and rejects start > end.
func NewDateInterval(start, end string) (DateInterval, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateInterval{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateInterval{}, err
	}
	if s.After(e) {
		return DateInterval{}, NewFormatError("date interval", start+".."+end, "start is after end")
	}
	return DateInterval{Start: s, End: e}, nil
}

// Contains reports whether day falls within the interval, bounds included.
// Only the calendar date of day is considered.
func (i DateInterval) Contains(day time.Time) bool {
	d := DateOf(day)
	return !d.Before(DateOf(i.Start)) && !d.After(DateOf(i.End))
}

// InRange reports whether day falls inside any of the intervals.
func InRange(day time.Time, ranges []DateInterval) bool {
	for _, r := range ranges {
		if r.Contains(day) {
			return true
		}
	}
	return false
}

// IsDowntime reports whether day is forced closed.
func (s *ExemptionSet) IsDowntime(day time.Time) bool {
	return s != nil && InRange(day, s.Downtimes)
}

// IsUptime reports whether day is forced open.
func (s *ExemptionSet) IsUptime(day time.Time) bool {
	return s != nil && InRange(day, s.Uptimes)
}

// Len returns the total number of intervals.
func (s *ExemptionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Uptimes) + len(s.Downtimes)
}

// DateOf returns the wall-clock date of t as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
