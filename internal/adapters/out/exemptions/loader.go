// Package exemptions loads exemption calendars from TOML or YAML files.
package exemptions

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/bnema/uptimecal/internal/domain"
	"github.com/bnema/uptimecal/internal/logging"
)

// document mirrors the exemption file layout:
//
//	[[exemptions.uptimes]]
//	start_date = "2026-12-24"
//	end_date = "2026-12-26"
type document struct {
	Exemptions section `toml:"exemptions" yaml:"exemptions"`
}

type section struct {
	Uptimes   []interval `toml:"uptimes" yaml:"uptimes"`
	Downtimes []interval `toml:"downtimes" yaml:"downtimes"`
}

type interval struct {
	StartDate dateText `toml:"start_date" yaml:"start_date"`
	EndDate   dateText `toml:"end_date" yaml:"end_date"`
}

// dateText keeps a date field as written, quoted or as a native TOML/YAML
// date. Validation happens in convert so a bad value surfaces as a FormatError.
type dateText string

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *dateText) UnmarshalText(text []byte) error {
	*d = dateText(strings.TrimSpace(string(text)))
	return nil
}

// Loader implements out.ExemptionLoader.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a loader reading from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load reads and decodes the exemption file at path. The format is picked
// from the extension: .yaml/.yml for YAML, anything else is TOML.
func (l *Loader) Load(ctx context.Context, path string) (*domain.ExemptionSet, error) {
	log := zerolog.Ctx(ctx).With().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "exemptions").
		Str(logging.FieldPath, path).
		Logger()

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", domain.ErrIO, domain.ErrExemptionsNotFound, path)
		}
		return nil, fmt.Errorf("%w: failed to read exemptions: %w", domain.ErrIO, err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	default:
		err = toml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse exemptions %s: %w", domain.ErrIO, path, err)
	}

	set, err := doc.toDomain()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Int("uptimes", len(set.Uptimes)).
		Int("downtimes", len(set.Downtimes)).
		Msg("exemptions loaded")

	return set, nil
}

func (d document) toDomain() (*domain.ExemptionSet, error) {
	uptimes, err := convert("uptimes", d.Exemptions.Uptimes)
	if err != nil {
		return nil, err
	}
	downtimes, err := convert("downtimes", d.Exemptions.Downtimes)
	if err != nil {
		return nil, err
	}
	return &domain.ExemptionSet{Uptimes: uptimes, Downtimes: downtimes}, nil
}

func convert(kind string, items []interval) ([]domain.DateInterval, error) {
	out := make([]domain.DateInterval, 0, len(items))
	for i, item := range items {
		iv, err := domain.NewDateInterval(string(item.StartDate), string(item.EndDate))
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		out = append(out, iv)
	}
	return out, nil
}
