package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is a Monday-based day index: Monday = 0 ... Sunday = 6.
type Weekday int

// Monday-based weekday indexes.
const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayAbbr = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// String returns the three-letter English abbreviation.
func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayAbbr[w]
}

// WeekdayOf returns the Monday-based weekday of t.
func WeekdayOf(t time.Time) Weekday {
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// WeekdaySet is a compact set of Monday-based weekdays.
type WeekdaySet uint8

// AllWeekdays contains every day of the week.
const AllWeekdays WeekdaySet = 1<<7 - 1

// Has reports whether d is in the set.
func (s WeekdaySet) Has(d Weekday) bool {
	if d < Monday || d > Sunday {
		return false
	}
	return s&(1<<uint(d)) != 0
}

// Add returns s with d included.
func (s WeekdaySet) Add(d Weekday) WeekdaySet { return s | 1<<uint(d) }

// Days lists the members in Monday-first order.
func (s WeekdaySet) Days() []Weekday {
	days := make([]Weekday, 0, 7)
	for d := Monday; d <= Sunday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

func (s WeekdaySet) String() string {
	names := make([]string, 0, 7)
	for _, d := range s.Days() {
		names = append(names, d.String())
	}
	return "{" + strings.Join(names, ",") + "}"
}

// CronRule is the subset of a cron expression the calendar understands:
// a single fixed time of day repeated on a set of weekdays.
type CronRule struct {
	Minute   int
	Hour     int
	Weekdays WeekdaySet

	// DayOfMonth and Month are kept verbatim; they never affect resolution.
	DayOfMonth string
	Month      string
}

// Clock formats the rule's time of day as zero-padded HH:MM.
func (r CronRule) Clock() string {
	return fmt.Sprintf("%02d:%02d", r.Hour, r.Minute)
}

// RestrictsCalendar reports whether the day-of-month or month fields hold
// anything other than a wildcard. Such restrictions are ignored by ResolveDay.
func (r CronRule) RestrictsCalendar() bool {
	return r.DayOfMonth != "*" || r.Month != "*"
}

// ParseCronRule parses a 5-field "minute hour day-of-month month weekday"
// expression. Minute and hour must be single integers. The weekday field is
// "*" or a comma list of values and inclusive a-b ranges, written with
// 1 = Monday ... 7 = Sunday (0 is also Sunday).
func ParseCronRule(expression string) (CronRule, error) {
	fields := strings.Fields(expression)
	if len(fields) != 5 {
		return CronRule{}, NewFormatError("cron expression", expression,
			fmt.Sprintf("expected 5 fields, got %d", len(fields)))
	}

	minute, err := parseFixed("minute", fields[0], 0, 59)
	if err != nil {
		return CronRule{}, err
	}
	hour, err := parseFixed("hour", fields[1], 0, 23)
	if err != nil {
		return CronRule{}, err
	}
	weekdays, err := parseWeekdays(fields[4])
	if err != nil {
		return CronRule{}, err
	}

	return CronRule{
		Minute:     minute,
		Hour:       hour,
		Weekdays:   weekdays,
		DayOfMonth: fields[2],
		Month:      fields[3],
	}, nil
}

func parseFixed(field, value string, min, max int) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &FormatError{Field: field, Value: value, Reason: "not an integer", Err: err}
	}
	if n < min || n > max {
		return 0, NewFormatError(field, value, fmt.Sprintf("out of range [%d,%d]", min, max))
	}
	return n, nil
}

func parseWeekdays(field string) (WeekdaySet, error) {
	if field == "*" {
		return AllWeekdays, nil
	}

	var set WeekdaySet
	for _, item := range strings.Split(field, ",") {
		bounds := strings.Split(item, "-")
		switch len(bounds) {
		case 1:
			v, err := weekdayValue(item)
			if err != nil {
				return 0, err
			}
			set = set.Add(cronToWeekday(v))
		case 2:
			start, err := weekdayValue(bounds[0])
			if err != nil {
				return 0, err
			}
			end, err := weekdayValue(bounds[1])
			if err != nil {
				return 0, err
			}
			// A reversed range such as 5-1 contributes no days.
			for v := start; v <= end; v++ {
				set = set.Add(cronToWeekday(v))
			}
		default:
			return 0, NewFormatError("weekday", item, "malformed range")
		}
	}
	return set, nil
}

func weekdayValue(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &FormatError{Field: "weekday", Value: s, Reason: "not an integer", Err: err}
	}
	return v, nil
}

// cronToWeekday maps a cron weekday (1 = Monday) onto the Monday-based index.
func cronToWeekday(v int) Weekday {
	return Weekday(((v-1)%7 + 7) % 7)
}
