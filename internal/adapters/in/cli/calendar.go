package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/uptimecal/internal/domain"
)

func newCalendarCmd(a *app) *cobra.Command {
	var (
		days       int
		exemptions string
		start      string
		preview    bool
	)

	cmd := &cobra.Command{
		Use:   "calendar <cron_up> <cron_down> <output_path>",
		Short: "Render an uptime calendar strip",
		Long: `Render a calendar strip of consecutive days, each showing the uptime window
derived from the two cron expressions. Only the minute, hour and weekday fields
are interpreted. Weekdays are 1-indexed from Monday; 0 and 7 both mean Sunday.

Exemption files list date intervals under exemptions.uptimes (open all day)
and exemptions.downtimes (closed, wins over everything else).`,
		Example: `  uptimecal calendar "0 9 * * 1-5" "0 17 * * 1-5" uptime.svg
  uptimecal calendar "0 8 * * *" "0 20 * * *" uptime.svg --days 7 --exemptions_toml holidays.toml --preview`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("days") {
				days = a.cfg.Calendar.Days
			}
			if exemptions == "" {
				exemptions = a.cfg.Calendar.Exemptions
			}

			startDay, err := parseStart(start)
			if err != nil {
				return err
			}

			cal, err := a.calendar.Render(cmd.Context(), domain.CalendarRequest{
				UpExpression:   args[0],
				DownExpression: args[1],
				Start:          startDay,
				Days:           days,
				ExemptionsPath: exemptions,
				OutputPath:     args[2],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if preview {
				if err := cliWriteLine(out, cliRenderDays(cal.Days)); err != nil {
					return err
				}
			}
			return cliWriteLine(out, cliRenderSuccess(fmt.Sprintf(
				"Calendar written to %s (%d of %d days open)", args[2], cal.OpenDays(), len(cal.Days),
			)))
		},
	}

	cmd.Flags().IntVar(&days, "days", domain.DefaultCalendarDays, "Number of days to render")
	cmd.Flags().StringVar(&exemptions, "exemptions_toml", "", "Exemption file (TOML, or YAML by extension)")
	cmd.Flags().StringVar(&start, "start", "", "First day as YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Print the resolved days as a table")

	return cmd
}

// parseStart parses an optional --start value; empty means today.
func parseStart(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return domain.ParseDate(value)
}
