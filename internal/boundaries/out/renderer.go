package out

import (
	"context"

	"github.com/bnema/uptimecal/internal/domain"
)

// Renderer turns resolved data into vector markup.
type Renderer interface {
	// RenderBadge renders a two-segment badge.
	RenderBadge(ctx context.Context, badge domain.Badge) ([]byte, error)

	// RenderCalendar renders a strip of resolved days.
	RenderCalendar(ctx context.Context, days []domain.DayEntry) ([]byte, error)
}
