package calendar

import (
	"time"

	"github.com/robfig/cron/v3"
)

// nextFire returns the next standard-cron fire time of expr after from, or
// nil when expr is outside standard cron (e.g. weekday 7).
func nextFire(expr string, from time.Time) *time.Time {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil
	}
	next := sched.Next(from)
	if next.IsZero() {
		return nil
	}
	return &next
}

func isStandardCron(expr string) bool {
	_, err := cron.ParseStandard(expr)
	return err == nil
}
