package in

import (
	"context"

	"github.com/bnema/uptimecal/internal/domain"
)

// CalendarService defines the contract for uptime calendars.
type CalendarService interface {
	// Build resolves every day of the requested range.
	Build(ctx context.Context, req domain.CalendarRequest) (domain.Calendar, error)

	// Render builds the calendar and writes it to req.OutputPath.
	Render(ctx context.Context, req domain.CalendarRequest) (domain.Calendar, error)

	// SVG builds the calendar and returns its markup.
	SVG(ctx context.Context, req domain.CalendarRequest) ([]byte, error)

	// Next finds the first open day within the request horizon.
	Next(ctx context.Context, req domain.NextRequest) (domain.NextWindow, error)
}
