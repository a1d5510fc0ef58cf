package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), got)

	for _, bad := range []string{"", "2026/02/28", "28-02-2026", "2026-02-30", "2026-2-3"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrFormat, bad)
	}
}

func TestNewDateInterval(t *testing.T) {
	single, err := NewDateInterval("2026-10-01", "2026-10-01")
	require.NoError(t, err)
	assert.True(t, single.Start.Equal(single.End))

	_, err = NewDateInterval("2026-10-02", "2026-10-01")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrFormat)
	assert.Contains(t, err.Error(), "start is after end")

	_, err = NewDateInterval("2026-10-01", "tomorrow")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestInRange(t *testing.T) {
	ranges := []DateInterval{
		mustInterval(t, "2026-01-10", "2026-01-12"),
		mustInterval(t, "2026-01-11", "2026-01-20"),
	}

	tests := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"before all", time.Date(2026, 1, 9, 23, 59, 0, 0, time.UTC), false},
		{"start bound", time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), true},
		{"start bound late in the day", time.Date(2026, 1, 10, 23, 59, 59, 0, time.UTC), true},
		{"overlap", time.Date(2026, 1, 11, 12, 0, 0, 0, time.UTC), true},
		{"end bound of second", time.Date(2026, 1, 20, 18, 0, 0, 0, time.UTC), true},
		{"after all", time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.day, ranges))
		})
	}

	assert.False(t, InRange(time.Now(), nil))
}

func TestInRangeUsesWallClockDate(t *testing.T) {
	ranges := []DateInterval{mustInterval(t, "2026-03-01", "2026-03-01")}
	loc := time.FixedZone("UTC+10", 10*60*60)

	// 2026-03-01 08:00 in UTC+10 is still 2026-02-28 in UTC; the local date wins.
	assert.True(t, InRange(time.Date(2026, 3, 1, 8, 0, 0, 0, loc), ranges))
}

func TestExemptionSetNil(t *testing.T) {
	var s *ExemptionSet
	assert.False(t, s.IsDowntime(time.Now()))
	assert.False(t, s.IsUptime(time.Now()))
	assert.Equal(t, 0, s.Len())
}
