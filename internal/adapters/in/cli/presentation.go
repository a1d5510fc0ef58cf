package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/bnema/uptimecal/internal/adapters/in/cli/ui/components"
	"github.com/bnema/uptimecal/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/uptimecal/internal/domain"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func cliRenderSuccess(msg string) string {
	return successColor.Sprint("✓ ") + msg
}

func cliRenderError(msg string) string {
	return errorColor.Sprint("✗ ") + msg
}

func cliRenderWarning(msg string) string {
	return styles.RenderWarning(msg)
}

func cliRenderMeta(label, value string) string {
	return styles.RenderMeta(label, value)
}

func cliRenderTitle(msg string) string {
	return styles.Theme.Title.Render(msg)
}

// cliRenderDays renders resolved days as a terminal table.
func cliRenderDays(days []domain.DayEntry) string {
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		window := styles.RenderClosed(d.Result.String())
		if d.Result.Open {
			window = styles.RenderOpen(d.Result.String())
		}
		rows = append(rows, []string{
			d.Date.Format(domain.DateLayout),
			domain.WeekdayOf(d.Date).String(),
			window,
		})
	}
	return components.DayTable(rows)
}

// PrintError writes err to w in the CLI error style.
func PrintError(w io.Writer, err error) {
	_ = cliWriteLine(w, cliRenderError(err.Error()))
}
