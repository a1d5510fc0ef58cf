package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/uptimecal/internal/domain"
)

func newNextCmd(a *app) *cobra.Command {
	var (
		exemptions string
		start      string
		horizon    int
	)

	cmd := &cobra.Command{
		Use:   "next <cron_up> <cron_down>",
		Short: "Show the next open uptime window",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if exemptions == "" {
				exemptions = a.cfg.Calendar.Exemptions
			}

			from, err := parseStart(start)
			if err != nil {
				return err
			}

			window, err := a.calendar.Next(cmd.Context(), domain.NextRequest{
				UpExpression:   args[0],
				DownExpression: args[1],
				Start:          from,
				Horizon:        horizon,
				ExemptionsPath: exemptions,
			})
			if err != nil {
				return err
			}

			return printNextWindow(cmd.OutOrStdout(), window, horizon)
		},
	}

	cmd.Flags().StringVar(&exemptions, "exemptions_toml", "", "Exemption file (TOML, or YAML by extension)")
	cmd.Flags().StringVar(&start, "start", "", "Search from YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&horizon, "horizon", domain.DefaultHorizonDays, "Number of days to search")

	return cmd
}

func printNextWindow(w io.Writer, window domain.NextWindow, horizon int) error {
	if !window.Found {
		return cliWriteLine(w, cliRenderWarning(fmt.Sprintf("No uptime within %d days", horizon)))
	}

	lines := []string{
		cliRenderTitle("Next uptime"),
		cliRenderMeta("Day:", fmt.Sprintf("%s %s", domain.WeekdayOf(window.Day), window.Day.Format(domain.DateLayout))),
		cliRenderMeta("Window:", window.Result.String()),
		cliRenderMeta("Up fires:", formatFire(window.UpFire)),
		cliRenderMeta("Down fires:", formatFire(window.DownFire)),
	}
	for _, line := range lines {
		if err := cliWriteLine(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatFire(t *time.Time) string {
	if t == nil {
		return "n/a (not standard cron)"
	}
	return t.Format("2006-01-02 15:04 MST")
}
