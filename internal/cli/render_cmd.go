package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/pla2html/internal/cli/formatter"
	"github.com/alexanderramin/pla2html/internal/render"
	"github.com/spf13/cobra"
)

func newRenderCmd(app *App) *cobra.Command {
	var input, output string
	var from, to dateFlag
	var dayWidth int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a PLA file as an HTML calendar",
		Example: `  pla2html render -i brew.pla -o brew.html
  pla2html render -i brew.pla -o - --from 2021-10-01 --to 2021-12-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" || output == "" {
				if !app.interactive() {
					return missingPathError(input, output)
				}
				if err := app.promptPaths(&input, &output); err != nil {
					return err
				}
			}

			width := app.Config.DayWidthPx
			if cmd.Flags().Changed("day-width") {
				width = dayWidth
			}
			if width <= 0 {
				return fmt.Errorf("--day-width must be positive, got %d", width)
			}
			opts := render.Options{
				From:       from.orDefault(app.Config.CalendarStart),
				To:         to.orDefault(app.Config.CalendarEnd),
				DayWidthPx: width,
				Today:      app.now(),
			}

			var buf bytes.Buffer
			res, err := app.Schedule.Render(context.Background(), input, &buf, opts)
			if err != nil {
				return err
			}

			if output == "-" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatRenderSummary(output, res.Calendar, res.EntryCount))
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "PLA file to read")
	cmd.Flags().StringVarP(&output, "output", "o", "", "HTML file to write (- for stdout)")
	cmd.Flags().Var(&from, "from", "First calendar day (YYYY-MM-DD)")
	cmd.Flags().Var(&to, "to", "Last calendar day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&dayWidth, "day-width", 0, "Pixel width of one day column (default from PLA2HTML_DAY_WIDTH_PX or 45)")

	return cmd
}

func missingPathError(input, output string) error {
	var missing []string
	if input == "" {
		missing = append(missing, "--input")
	}
	if output == "" {
		missing = append(missing, "--output")
	}
	return errors.New("required flag(s) " + strings.Join(missing, ", ") + " not set")
}

// defaultOutputPath swaps the input extension for .html.
func defaultOutputPath(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".html"
}
