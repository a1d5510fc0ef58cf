// Package svg renders badges and uptime calendars from embedded templates.
package svg

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/uptimecal/internal/domain"
	"github.com/bnema/uptimecal/internal/logging"
)

//go:embed templates/*.svg.tmpl
var templateFS embed.FS

// Calendar layout, in pixels.
const (
	DayWidth  = 120
	DayHeight = 80
	Margin    = 20
)

// Renderer implements out.Renderer.
type Renderer struct {
	templates   *template.Template
	topColor    string
	bottomColor string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCalendarColors overrides the top and bottom row fills. Empty values keep the defaults.
func WithCalendarColors(top, bottom string) Option {
	return func(r *Renderer) {
		if top != "" {
			r.topColor = top
		}
		if bottom != "" {
			r.bottomColor = bottom
		}
	}
}

// NewRenderer parses the embedded templates.
func NewRenderer(opts ...Option) (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.svg.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg templates: %w", err)
	}

	r := &Renderer{
		templates:   tmpl,
		topColor:    domain.DefaultTopColor,
		bottomColor: domain.DefaultBottomColor,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type badgeView struct {
	Width      int
	Height     int
	LeftWidth  int
	RightWidth int
	LeftX      string
	RightX     string
	LeftText   string
	RightText  string
	LeftColor  string
	RightColor string
}

// RenderBadge renders a flat two-segment badge.
func (r *Renderer) RenderBadge(ctx context.Context, badge domain.Badge) ([]byte, error) {
	view := badgeView{
		Width:      badge.Width(),
		Height:     domain.BadgeHeight,
		LeftWidth:  badge.LeftWidth(),
		RightWidth: badge.RightWidth(),
		LeftX:      formatCoord(badge.LeftCenter()),
		RightX:     formatCoord(badge.RightCenter()),
		LeftText:   badge.LeftText,
		RightText:  badge.RightText,
		LeftColor:  badge.LeftColor,
		RightColor: badge.RightColor,
	}
	return r.execute(ctx, "badge.svg.tmpl", view)
}

type calendarView struct {
	Width       int
	Height      int
	TopColor    string
	BottomColor string
	Cells       []cellView
}

type cellView struct {
	X          int
	CenterX    int
	CellWidth  int
	CellHeight int
	TopY       int
	DateY      int
	WeekdayY   int
	BottomY    int
	StartY     int
	MiddleY    int
	EndY       int
	DateLabel  string
	Weekday    string
	Open       bool
	StartTime  string
	EndTime    string
}

// RenderCalendar renders one column per day: date and weekday on top,
// the uptime window (or "No uptime") below.
func (r *Renderer) RenderCalendar(ctx context.Context, days []domain.DayEntry) ([]byte, error) {
	view := calendarView{
		Width:       CalendarWidth(len(days)),
		Height:      CalendarHeight(),
		TopColor:    r.topColor,
		BottomColor: r.bottomColor,
		Cells:       make([]cellView, 0, len(days)),
	}

	for i, d := range days {
		x := Margin + i*DayWidth
		bottom := Margin + DayHeight
		view.Cells = append(view.Cells, cellView{
			X:          x,
			CenterX:    x + DayWidth/2,
			CellWidth:  DayWidth,
			CellHeight: DayHeight,
			TopY:       Margin,
			DateY:      Margin + 30,
			WeekdayY:   Margin + 50,
			BottomY:    bottom,
			StartY:     bottom + 20,
			MiddleY:    bottom + 40,
			EndY:       bottom + 60,
			DateLabel:  DateLabel(d.Date),
			Weekday:    domain.WeekdayOf(d.Date).String(),
			Open:       d.Result.Open,
			StartTime:  d.Result.StartTime,
			EndTime:    d.Result.EndTime,
		})
	}

	return r.execute(ctx, "calendar.svg.tmpl", view)
}

func (r *Renderer) execute(ctx context.Context, name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, name, data); err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "svg").
			Str("template", name).
			Msg("render error")
		return nil, fmt.Errorf("failed to render %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// CalendarWidth is the image width for n days.
func CalendarWidth(n int) int { return DayWidth*n + Margin*2 }

// CalendarHeight is the image height: two stacked rows plus margins.
func CalendarHeight() int { return DayHeight*2 + Margin*2 }

// DateLabel formats a day as "D.M" without zero padding.
func DateLabel(t time.Time) string {
	return strconv.Itoa(t.Day()) + "." + strconv.Itoa(int(t.Month()))
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
