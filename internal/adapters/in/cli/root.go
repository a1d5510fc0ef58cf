// Package cli implements the CLI adapter for uptimecal.
// It provides Cobra commands that delegate to the use case layer.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/uptimecal/internal/adapters/out/exemptions"
	"github.com/bnema/uptimecal/internal/adapters/out/filesystem"
	"github.com/bnema/uptimecal/internal/adapters/out/svg"
	"github.com/bnema/uptimecal/internal/boundaries/in"
	"github.com/bnema/uptimecal/internal/config"
	"github.com/bnema/uptimecal/internal/logging"
	"github.com/bnema/uptimecal/internal/usecase/badge"
	"github.com/bnema/uptimecal/internal/usecase/calendar"
)

// app holds what the subcommands share once global flags are parsed.
type app struct {
	fs       afero.Fs
	cfg      *config.Config
	badges   in.BadgeService
	calendar in.CalendarService
	cleanup  func()
}

// NewRootCmd creates the root command. Exemption files and rendered
// artifacts are read from and written to fs.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, cleanup: func() {}}

	var (
		configPath string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "uptimecal",
		Short: "Render status badges and uptime calendars as SVG",
		Long: `uptimecal renders two-segment status badges and multi-day calendar strips
of scheduled uptime windows derived from two cron expressions plus optional
date-range exemptions.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd, configPath, logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.cleanup()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to uptimecal.toml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newBadgeCmd(a))
	rootCmd.AddCommand(newCalendarCmd(a))
	rootCmd.AddCommand(newNextCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI against the OS filesystem.
func Execute(ctx context.Context) error {
	return NewRootCmd(afero.NewOsFs()).ExecuteContext(ctx)
}

func (a *app) init(cmd *cobra.Command, configPath, logLevel string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, cleanup, err := logging.Setup(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	a.cleanup = cleanup

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithCtx(ctx, log))

	renderer, err := svg.NewRenderer(svg.WithCalendarColors(cfg.Calendar.TopColor, cfg.Calendar.BottomColor))
	if err != nil {
		return err
	}
	writer := filesystem.NewArtifactWriter(a.fs)

	a.cfg = cfg
	a.badges = badge.NewService(renderer, writer)
	a.calendar = calendar.NewService(exemptions.NewLoader(a.fs), renderer, writer)

	log.Debug().
		Str(logging.FieldComponent, "cli").
		Str("command", cmd.Name()).
		Msg("configuration loaded")
	return nil
}
