package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/uptimecal/internal/domain"
)

func newBadgeCmd(a *app) *cobra.Command {
	var req domain.BadgeRequest

	cmd := &cobra.Command{
		Use:   "badge",
		Short: "Render a two-segment status badge",
		Example: `  uptimecal badge --left-text build --right-text passing --output-path build.svg
  uptimecal badge --left-text coverage --right-text 71% --right-color "#dfb317" --output-path cov.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("left-color") {
				req.LeftColor = a.cfg.Badge.LeftColor
			}
			if !cmd.Flags().Changed("right-color") {
				req.RightColor = a.cfg.Badge.RightColor
			}

			if err := a.badges.Render(cmd.Context(), req); err != nil {
				return err
			}
			return cliWriteLine(cmd.OutOrStdout(), cliRenderSuccess("Badge written to "+req.OutputPath))
		},
	}

	cmd.Flags().StringVar(&req.LeftText, "left-text", "", "Label shown on the left segment")
	cmd.Flags().StringVar(&req.RightText, "right-text", "", "Value shown on the right segment")
	cmd.Flags().StringVar(&req.LeftColor, "left-color", domain.DefaultLeftColor, "Left segment color")
	cmd.Flags().StringVar(&req.RightColor, "right-color", domain.DefaultRightColor, "Right segment color")
	cmd.Flags().StringVar(&req.OutputPath, "output-path", "", "Where to write the SVG")
	_ = cmd.MarkFlagRequired("left-text")
	_ = cmd.MarkFlagRequired("right-text")
	_ = cmd.MarkFlagRequired("output-path")

	return cmd
}
