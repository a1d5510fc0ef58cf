package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/bnema/uptimecal/internal/domain"
)

// EnvPrefix prefixes every environment override, e.g. UPTIMECAL_CALENDAR_DAYS.
const EnvPrefix = "UPTIMECAL"

type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Badge    BadgeConfig    `mapstructure:"badge"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Server   ServerConfig   `mapstructure:"server"`
}

type LoggingConfig struct {
	Level  string        `mapstructure:"level"`
	Format string        `mapstructure:"format"`
	File   LogFileConfig `mapstructure:"file"`
}

type LogFileConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Path       string `mapstructure:"path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

type BadgeConfig struct {
	LeftColor  string `mapstructure:"left_color"`
	RightColor string `mapstructure:"right_color"`
}

type CalendarConfig struct {
	Days        int    `mapstructure:"days"`
	Exemptions  string `mapstructure:"exemptions"`
	TopColor    string `mapstructure:"top_color"`
	BottomColor string `mapstructure:"bottom_color"`
}

type ServerConfig struct {
	Addr      string  `mapstructure:"addr"`
	RateLimit float64 `mapstructure:"rate_limit"`
}

// Load reads configuration from path, or from uptimecal.toml in the standard
// locations when path is empty. A missing file in the standard locations is
// not an error; defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", domain.ErrConfigLoadFailed, path, err)
		}
	} else {
		v.SetConfigName("uptimecal")
		v.SetConfigType("toml")
		for _, dir := range searchPaths() {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("%w: %w", domain.ErrConfigLoadFailed, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: unable to decode config: %w", domain.ErrConfigLoadFailed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	if c.Calendar.Days < 1 {
		return fmt.Errorf("%w: calendar.days must be at least 1, got %d", domain.ErrInvalidConfig, c.Calendar.Days)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: logging.format must be one of: console, json", domain.ErrInvalidConfig)
	}

	if c.Server.RateLimit < 0 {
		return fmt.Errorf("%w: server.rate_limit must not be negative", domain.ErrInvalidConfig)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file.enabled", false)
	v.SetDefault("logging.file.path", "")
	v.SetDefault("logging.file.max_size", 10)
	v.SetDefault("logging.file.max_backups", 3)
	v.SetDefault("logging.file.max_age", 28)
	v.SetDefault("logging.file.compress", true)

	v.SetDefault("badge.left_color", domain.DefaultLeftColor)
	v.SetDefault("badge.right_color", domain.DefaultRightColor)

	v.SetDefault("calendar.days", domain.DefaultCalendarDays)
	v.SetDefault("calendar.exemptions", "")
	v.SetDefault("calendar.top_color", domain.DefaultTopColor)
	v.SetDefault("calendar.bottom_color", domain.DefaultBottomColor)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.rate_limit", 20)
}

func searchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "uptimecal"))
	}
	return append(paths, "/etc/uptimecal")
}
