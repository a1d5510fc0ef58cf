// Package render implements the HTTP adapter serving badges and calendars.
package render

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/uptimecal/internal/boundaries/in"
	"github.com/bnema/uptimecal/internal/domain"
	"github.com/bnema/uptimecal/internal/logging"
)

const svgContentType = "image/svg+xml"

// maxDays caps calendar requests served over HTTP.
const maxDays = 366

// Defaults fills parameters a request leaves out.
type Defaults struct {
	LeftColor      string
	RightColor     string
	Days           int
	ExemptionsPath string
}

// Handler implements the HTTP handler for rendered images.
type Handler struct {
	badges   in.BadgeService
	calendar in.CalendarService
	defaults Defaults
}

// NewHandler creates a new render HTTP handler.
func NewHandler(badges in.BadgeService, calendar in.CalendarService, defaults Defaults) *Handler {
	return &Handler{
		badges:   badges,
		calendar: calendar,
		defaults: defaults,
	}
}

// RegisterRoutes registers the render routes on e.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/badge.svg", h.handleBadge)
	e.GET("/calendar.svg", h.handleCalendar)
	e.GET("/healthz", h.handleHealth)
}

func (h *Handler) handleBadge(c echo.Context) error {
	ctx := logging.CtxWithFields(c.Request().Context(), map[string]any{
		logging.FieldHandler: "badge",
	})

	badge := domain.Badge{
		LeftText:   c.QueryParam("left"),
		RightText:  c.QueryParam("right"),
		LeftColor:  queryOr(c, "left_color", h.defaults.LeftColor),
		RightColor: queryOr(c, "right_color", h.defaults.RightColor),
	}

	data, err := h.badges.SVG(ctx, badge)
	if err != nil {
		return writeError(c, zerolog.Ctx(ctx), err)
	}
	return c.Blob(http.StatusOK, svgContentType, data)
}

func (h *Handler) handleCalendar(c echo.Context) error {
	ctx := logging.CtxWithFields(c.Request().Context(), map[string]any{
		logging.FieldHandler: "calendar",
	})
	log := zerolog.Ctx(ctx)

	req := domain.CalendarRequest{
		UpExpression:   c.QueryParam("up"),
		DownExpression: c.QueryParam("down"),
		Days:           h.defaults.Days,
		ExemptionsPath: h.defaults.ExemptionsPath,
	}

	if raw := c.QueryParam("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(c, log, domain.NewFormatError("days", raw, "not an integer"))
		}
		if days > maxDays {
			return writeError(c, log, domain.NewFormatError("days", raw, "must be at most "+strconv.Itoa(maxDays)))
		}
		req.Days = days
	}

	if raw := c.QueryParam("start"); raw != "" {
		start, err := domain.ParseDate(raw)
		if err != nil {
			return writeError(c, log, err)
		}
		req.Start = start
	}

	data, err := h.calendar.SVG(ctx, req)
	if err != nil {
		return writeError(c, log, err)
	}
	return c.Blob(http.StatusOK, svgContentType, data)
}

func (h *Handler) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// writeError maps err to a status code and writes it as plain text.
func writeError(c echo.Context, log *zerolog.Logger, err error) error {
	if errors.Is(err, domain.ErrFormat) {
		log.Debug().Err(err).Msg("rejected request")
		return c.String(http.StatusBadRequest, err.Error())
	}

	log.Error().Err(err).Msg("render failed")
	return c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

func queryOr(c echo.Context, name, fallback string) string {
	if v := c.QueryParam(name); v != "" {
		return v
	}
	return fallback
}
