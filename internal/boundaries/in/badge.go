package in

import (
	"context"

	"github.com/bnema/uptimecal/internal/domain"
)

// BadgeService defines the contract for badge rendering.
type BadgeService interface {
	// Render renders the badge and writes it to req.OutputPath.
	Render(ctx context.Context, req domain.BadgeRequest) error

	// SVG renders the badge without writing it.
	SVG(ctx context.Context, badge domain.Badge) ([]byte, error)
}
