package svg

import (
	"context"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/uptimecal/internal/domain"
)

func newRenderer(t *testing.T, opts ...Option) *Renderer {
	t.Helper()
	r, err := NewRenderer(opts...)
	require.NoError(t, err)
	return r
}

// assertWellFormed decodes every token so malformed markup fails the test.
func assertWellFormed(t *testing.T, data []byte) {
	t.Helper()
	dec := xml.NewDecoder(strings.NewReader(string(data)))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			return
		}
	}
}

func TestRenderBadge(t *testing.T) {
	r := newRenderer(t)

	out, err := r.RenderBadge(context.Background(), domain.Badge{
		LeftText:   "build",
		RightText:  "passing",
		LeftColor:  "#555",
		RightColor: "#4c1",
	})
	require.NoError(t, err)

	svg := string(out)
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, `width="99"`)
	assert.Contains(t, svg, `fill="#555"`)
	assert.Contains(t, svg, `fill="#4c1"`)
	assert.Contains(t, svg, `x="21.5"`)
	assert.Contains(t, svg, `x="71"`)
	assert.Contains(t, svg, `aria-label="build: passing"`)
	assert.Equal(t, 2, strings.Count(svg, ">build</text>"))
	assert.Equal(t, 2, strings.Count(svg, ">passing</text>"))
	assertWellFormed(t, out)
}

func TestRenderBadgeEscapesText(t *testing.T) {
	r := newRenderer(t)

	out, err := r.RenderBadge(context.Background(), domain.Badge{
		LeftText:   "a<b & c",
		RightText:  `"quoted"`,
		LeftColor:  `#555" onload="x`,
		RightColor: "#4c1",
	})
	require.NoError(t, err)

	svg := string(out)
	assert.NotContains(t, svg, "a<b")
	assert.Contains(t, svg, "a&lt;b &amp; c")
	assert.NotContains(t, svg, `" onload="`)
	assertWellFormed(t, out)
}

func TestRenderCalendar(t *testing.T) {
	r := newRenderer(t)
	start := time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) // Wednesday

	days := []domain.DayEntry{
		{Date: start, Result: domain.OpenWindow("09:00", "17:00")},
		{Date: start.AddDate(0, 0, 1), Result: domain.OpenWindow("09:00", "17:00")},
		{Date: start.AddDate(0, 0, 2), Result: domain.OpenWindow("09:00", "17:00")},
		{Date: start.AddDate(0, 0, 3), Result: domain.Closed},
		{Date: start.AddDate(0, 0, 4), Result: domain.Closed},
	}

	out, err := r.RenderCalendar(context.Background(), days)
	require.NoError(t, err)

	svg := string(out)
	assert.Contains(t, svg, `<svg width="640" height="200"`)
	assert.Equal(t, 2, strings.Count(svg, ">No uptime</text>"))
	assert.Equal(t, 3, strings.Count(svg, ">09:00</text>"))
	assert.Equal(t, 3, strings.Count(svg, ">17:00</text>"))
	assert.Contains(t, svg, ">14.10</text>")
	assert.Contains(t, svg, ">Wed</text>")
	assert.Contains(t, svg, ">Sun</text>")
	assert.Equal(t, 5, strings.Count(svg, `fill="#237f7e"`))
	assert.Equal(t, 5, strings.Count(svg, `fill="#2b9b9a"`))

	// Last column starts at margin + 4*120.
	assert.Contains(t, svg, `<rect x="500" y="20" width="120" height="80"`)
	assert.Contains(t, svg, `<rect x="500" y="100" width="120" height="80"`)
	assertWellFormed(t, out)
}

func TestRenderCalendarCustomColors(t *testing.T) {
	r := newRenderer(t, WithCalendarColors("#111111", ""))

	out, err := r.RenderCalendar(context.Background(), []domain.DayEntry{
		{Date: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), Result: domain.Closed},
	})
	require.NoError(t, err)
	assert.Contains(t, string(out), `fill="#111111"`)
	assert.Contains(t, string(out), `fill="#2b9b9a"`)
}

func TestRenderCalendarEmpty(t *testing.T) {
	r := newRenderer(t)

	out, err := r.RenderCalendar(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<svg width="40" height="200"`)
	assertWellFormed(t, out)
}

func TestDateLabel(t *testing.T) {
	assert.Equal(t, "1.2", DateLabel(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "31.12", DateLabel(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestCalendarDimensions(t *testing.T) {
	assert.Equal(t, 1720, CalendarWidth(14))
	assert.Equal(t, 200, CalendarHeight())
}
