package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/uptimecal/pkg/version"
)

// newVersionCmd creates the version command.
func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			info := version.Get()
			if short {
				return cliWriteLine(out, info.Version)
			}
			for _, line := range []string{
				cliRenderMeta("uptimecal", info.Version),
				cliRenderMeta("Commit:", info.Commit),
				cliRenderMeta("Build Date:", info.BuildDate),
				cliRenderMeta("Go:", info.GoVersion),
			} {
				if err := cliWriteLine(out, line); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")

	return cmd
}
