package out

import "context"

// ArtifactWriter persists rendered artifacts.
type ArtifactWriter interface {
	// Write stores data at path. Either the whole artifact is written or
	// nothing is left at path.
	Write(ctx context.Context, path string, data []byte) error
}
