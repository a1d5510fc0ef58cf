// Package filesystem implements artifact persistence on an afero filesystem.
package filesystem

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bnema/uptimecal/internal/domain"
	"github.com/bnema/uptimecal/internal/logging"
)

// ArtifactWriter implements out.ArtifactWriter. Files are written to a
// temporary sibling and renamed into place.
type ArtifactWriter struct {
	fs afero.Fs
}

// NewArtifactWriter creates a writer on fs. Pass afero.NewOsFs() for the real disk.
func NewArtifactWriter(fs afero.Fs) *ArtifactWriter {
	return &ArtifactWriter{fs: fs}
}

// Write stores data at path.
func (w *ArtifactWriter) Write(ctx context.Context, path string, data []byte) error {
	log := zerolog.Ctx(ctx).With().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "filesystem").
		Str(logging.FieldPath, path).
		Logger()

	if path == "" {
		return domain.NewFormatError("output path", path, "must not be empty")
	}

	dir := filepath.Dir(path)
	if ok, err := afero.DirExists(w.fs, dir); err != nil || !ok {
		return fmt.Errorf("%w: output directory %s does not exist", domain.ErrIO, dir)
	}

	tmp, err := afero.TempFile(w.fs, dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", domain.ErrIO, err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := w.fs.Remove(tmpName); rmErr != nil {
			log.Warn().Err(rmErr).Str("tmp", tmpName).Msg("failed to remove temp file")
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: failed to write %s: %w", domain.ErrIO, path, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: failed to close %s: %w", domain.ErrIO, path, err)
	}
	if err := w.fs.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("%w: failed to set permissions on %s: %w", domain.ErrIO, path, err)
	}
	if err := w.fs.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("%w: failed to move artifact into place: %w", domain.ErrIO, err)
	}

	log.Debug().Int("bytes", len(data)).Msg("artifact written")
	return nil
}
