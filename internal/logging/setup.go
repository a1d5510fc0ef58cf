package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bnema/uptimecal/internal/config"
)

// Setup builds the application logger from cfg. Console output goes to out;
// when file logging is enabled it is teed into a rotating file. The returned
// cleanup closes the file writer and is never nil.
func Setup(cfg config.LoggingConfig, out io.Writer) (zerolog.Logger, func(), error) {
	noop := func() {}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var console io.Writer = out
	if cfg.Format != "json" {
		console = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	if !cfg.File.Enabled {
		logger := zerolog.New(console).Level(level).With().Timestamp().Logger()
		if err != nil {
			logger.Warn().Str("invalid_level", cfg.Level).Msg("Invalid log level, using info")
		}
		return logger, noop, nil
	}

	logFile := cfg.File.Path
	if logFile == "" {
		logFile = DefaultLogFile()
	}

	// Create logs directory with secure permissions (0700 - owner only)
	if err := os.MkdirAll(filepath.Dir(logFile), 0700); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    cfg.File.MaxSize,
		MaxBackups: cfg.File.MaxBackups,
		MaxAge:     cfg.File.MaxAge,
		Compress:   cfg.File.Compress,
	}

	logger := zerolog.New(io.MultiWriter(console, fileWriter)).Level(level).With().Timestamp().Logger()
	if err != nil {
		logger.Warn().Str("invalid_level", cfg.Level).Msg("Invalid log level, using info")
	}

	logger.Debug().
		Str("log_file", logFile).
		Str("level", level.String()).
		Msg("File logging initialized")

	cleanup := func() {
		if err := fileWriter.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}

// DefaultLogFile is used when file logging is enabled without a path.
func DefaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "uptimecal", "uptimecal.log")
}
