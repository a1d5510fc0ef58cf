package out

import (
	"context"

	"github.com/bnema/uptimecal/internal/domain"
)

// ExemptionLoader reads an exemption calendar from a declarative file.
type ExemptionLoader interface {
	// Load decodes the file at path into an ExemptionSet.
	Load(ctx context.Context, path string) (*domain.ExemptionSet, error)
}
