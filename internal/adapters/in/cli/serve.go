package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/uptimecal/internal/adapters/in/http/render"
	"github.com/bnema/uptimecal/internal/adapters/in/http/server"
)

// newServeCmd creates the serve command.
func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve badges and calendars over HTTP",
		Long: `Start an HTTP server rendering badges and calendars on demand:

  GET /badge.svg?left=&right=&left_color=&right_color=
  GET /calendar.svg?up=&down=&days=&start=
  GET /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := render.NewHandler(a.badges, a.calendar, render.Defaults{
				LeftColor:      a.cfg.Badge.LeftColor,
				RightColor:     a.cfg.Badge.RightColor,
				Days:           a.cfg.Calendar.Days,
				ExemptionsPath: a.cfg.Calendar.Exemptions,
			})
			e := server.New(handler, a.cfg.Server.RateLimit, *zerolog.Ctx(ctx))

			return server.Run(ctx, e, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config, :8080)")

	return cmd
}
