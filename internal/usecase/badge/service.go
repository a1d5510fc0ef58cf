// Package badge implements the badge rendering use case.
package badge

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/bnema/uptimecal/internal/boundaries/out"
	"github.com/bnema/uptimecal/internal/domain"
	"github.com/bnema/uptimecal/internal/logging"
)

// Service implements the BadgeService interface.
type Service struct {
	renderer out.Renderer
	writer   out.ArtifactWriter
	policy   *bluemonday.Policy
}

// NewService creates a new badge service.
func NewService(renderer out.Renderer, writer out.ArtifactWriter) *Service {
	return &Service{
		renderer: renderer,
		writer:   writer,
		policy:   bluemonday.StrictPolicy(),
	}
}

// Render renders the badge and writes it to req.OutputPath.
func (s *Service) Render(ctx context.Context, req domain.BadgeRequest) error {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "RenderBadge",
		logging.FieldPath:    req.OutputPath,
	})
	log := zerolog.Ctx(ctx)

	if strings.TrimSpace(req.OutputPath) == "" {
		return domain.NewFormatError("output path", req.OutputPath, "must not be empty")
	}

	data, err := s.SVG(ctx, req.Badge)
	if err != nil {
		return err
	}

	if err := s.writer.Write(ctx, req.OutputPath, data); err != nil {
		return fmt.Errorf("failed to write badge: %w", err)
	}

	log.Info().Int("bytes", len(data)).Msg("badge written")
	return nil
}

// SVG validates badge and renders it without writing. Texts are passed to
// the renderer unchanged; markup in them is rejected.
func (s *Service) SVG(ctx context.Context, badge domain.Badge) ([]byte, error) {
	if err := s.checkText("left text", badge.LeftText); err != nil {
		return nil, err
	}
	if err := s.checkText("right text", badge.RightText); err != nil {
		return nil, err
	}

	badge.LeftColor = strings.TrimSpace(badge.LeftColor)
	badge.RightColor = strings.TrimSpace(badge.RightColor)
	if err := badge.Validate(); err != nil {
		return nil, err
	}

	data, err := s.renderer.RenderBadge(ctx, badge)
	if err != nil {
		return nil, fmt.Errorf("failed to render badge: %w", err)
	}
	return data, nil
}

// checkText rejects empty text and text the strict policy would alter.
// Both sides are unescaped so entities such as &amp; compare as the characters they stand for.
func (s *Service) checkText(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.NewFormatError(field, text, "must not be empty")
	}
	if html.UnescapeString(s.policy.Sanitize(text)) != html.UnescapeString(text) {
		return domain.NewFormatError(field, text, "markup is not allowed")
	}
	return nil
}
