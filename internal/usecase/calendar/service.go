// Package calendar implements the uptime calendar and next-window use cases.
package calendar

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/uptimecal/internal/boundaries/out"
	"github.com/bnema/uptimecal/internal/domain"
	"github.com/bnema/uptimecal/internal/logging"
)

// Service implements the CalendarService interface.
type Service struct {
	loader   out.ExemptionLoader
	renderer out.Renderer
	writer   out.ArtifactWriter
	nowFn    func() time.Time
}

// NewService creates a new calendar service.
func NewService(loader out.ExemptionLoader, renderer out.Renderer, writer out.ArtifactWriter) *Service {
	return &Service{
		loader:   loader,
		renderer: renderer,
		writer:   writer,
		nowFn:    time.Now,
	}
}

// Build resolves req.Days consecutive days starting at req.Start.
func (s *Service) Build(ctx context.Context, req domain.CalendarRequest) (domain.Calendar, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "BuildCalendar",
	})
	log := zerolog.Ctx(ctx)

	if req.Days < 1 {
		return domain.Calendar{}, domain.NewFormatError("days", strconv.Itoa(req.Days), "must be at least 1")
	}

	up, down, err := parseRules(req.UpExpression, req.DownExpression)
	if err != nil {
		return domain.Calendar{}, err
	}

	exemptions, err := s.loadExemptions(ctx, req.ExemptionsPath)
	if err != nil {
		return domain.Calendar{}, err
	}

	s.warnIgnoredFields(ctx, req.UpExpression, req.DownExpression, up, down)

	start := s.startDay(req.Start)
	cal := domain.Calendar{
		Up:         up,
		Down:       down,
		Exemptions: exemptions,
		Days:       make([]domain.DayEntry, 0, req.Days),
	}
	for i := 0; i < req.Days; i++ {
		day := start.AddDate(0, 0, i)
		cal.Days = append(cal.Days, domain.DayEntry{
			Date:   day,
			Result: domain.ResolveDay(up, down, day, exemptions),
		})
	}

	open := cal.OpenDays()
	log.Debug().
		Str("start", start.Format(domain.DateLayout)).
		Int("days", len(cal.Days)).
		Int("open", open).
		Int("closed", len(cal.Days)-open).
		Int("exemptions", exemptions.Len()).
		Msg("calendar resolved")

	return cal, nil
}

// Render builds the calendar and writes its SVG to req.OutputPath.
func (s *Service) Render(ctx context.Context, req domain.CalendarRequest) (domain.Calendar, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "RenderCalendar",
		logging.FieldPath:    req.OutputPath,
	})
	log := zerolog.Ctx(ctx)

	if strings.TrimSpace(req.OutputPath) == "" {
		return domain.Calendar{}, domain.NewFormatError("output path", req.OutputPath, "must not be empty")
	}

	cal, err := s.Build(ctx, req)
	if err != nil {
		return domain.Calendar{}, err
	}

	data, err := s.renderer.RenderCalendar(ctx, cal.Days)
	if err != nil {
		return domain.Calendar{}, fmt.Errorf("failed to render calendar: %w", err)
	}

	if err := s.writer.Write(ctx, req.OutputPath, data); err != nil {
		return domain.Calendar{}, fmt.Errorf("failed to write calendar: %w", err)
	}

	log.Info().Int("days", len(cal.Days)).Int("open", cal.OpenDays()).Msg("calendar written")
	return cal, nil
}

// SVG builds the calendar and returns its markup.
func (s *Service) SVG(ctx context.Context, req domain.CalendarRequest) ([]byte, error) {
	cal, err := s.Build(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := s.renderer.RenderCalendar(ctx, cal.Days)
	if err != nil {
		return nil, fmt.Errorf("failed to render calendar: %w", err)
	}
	return data, nil
}

// Next finds the first open day within req.Horizon days of req.Start.
func (s *Service) Next(ctx context.Context, req domain.NextRequest) (domain.NextWindow, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "NextWindow",
	})
	log := zerolog.Ctx(ctx)

	horizon := req.Horizon
	if horizon == 0 {
		horizon = domain.DefaultHorizonDays
	}
	if horizon < 0 {
		return domain.NextWindow{}, domain.NewFormatError("horizon", strconv.Itoa(req.Horizon), "must not be negative")
	}

	up, down, err := parseRules(req.UpExpression, req.DownExpression)
	if err != nil {
		return domain.NextWindow{}, err
	}

	exemptions, err := s.loadExemptions(ctx, req.ExemptionsPath)
	if err != nil {
		return domain.NextWindow{}, err
	}

	from := req.Start
	if from.IsZero() {
		from = s.nowFn()
	}

	window := domain.NextWindow{
		UpFire:   nextFire(req.UpExpression, from),
		DownFire: nextFire(req.DownExpression, from),
	}

	start := domain.DateOf(from)
	for i := 0; i < horizon; i++ {
		day := start.AddDate(0, 0, i)
		result := domain.ResolveDay(up, down, day, exemptions)
		if result.Open {
			window.Found = true
			window.Day = day
			window.Result = result
			break
		}
	}

	if window.Found {
		log.Debug().
			Str("day", window.Day.Format(domain.DateLayout)).
			Str("window", window.Result.String()).
			Msg("next uptime found")
	} else {
		log.Warn().Int("horizon", horizon).Msg("no uptime within horizon")
	}

	return window, nil
}

func (s *Service) startDay(start time.Time) time.Time {
	if start.IsZero() {
		start = s.nowFn()
	}
	return domain.DateOf(start)
}

func (s *Service) loadExemptions(ctx context.Context, path string) (*domain.ExemptionSet, error) {
	if path == "" {
		return nil, nil
	}

	exemptions, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load exemptions: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str(logging.FieldPath, path).
		Int("uptimes", len(exemptions.Uptimes)).
		Int("downtimes", len(exemptions.Downtimes)).
		Msg("exemptions loaded")
	return exemptions, nil
}

func (s *Service) warnIgnoredFields(ctx context.Context, upExpr, downExpr string, up, down domain.CronRule) {
	log := zerolog.Ctx(ctx)

	for _, r := range []struct {
		name string
		expr string
		rule domain.CronRule
	}{
		{"up", upExpr, up},
		{"down", downExpr, down},
	} {
		if r.rule.RestrictsCalendar() {
			log.Warn().
				Str("rule", r.name).
				Str("day_of_month", r.rule.DayOfMonth).
				Str("month", r.rule.Month).
				Msg("day-of-month and month fields are ignored")
		}
		if r.rule.Weekdays == 0 {
			log.Warn().Str("rule", r.name).Str("expression", r.expr).Msg("weekday field matches no day")
		}
		if !isStandardCron(r.expr) {
			log.Debug().Str("rule", r.name).Str("expression", r.expr).Msg("expression is not standard cron")
		}
	}

	if up.Weekdays != down.Weekdays {
		log.Warn().
			Stringer("up_weekdays", up.Weekdays).
			Stringer("down_weekdays", down.Weekdays).
			Msg("weekday sets differ, only days in both are open")
	}
}

func parseRules(upExpr, downExpr string) (domain.CronRule, domain.CronRule, error) {
	up, err := domain.ParseCronRule(upExpr)
	if err != nil {
		return domain.CronRule{}, domain.CronRule{}, err
	}
	down, err := domain.ParseCronRule(downExpr)
	if err != nil {
		return domain.CronRule{}, domain.CronRule{}, err
	}
	return up, down, nil
}
