package formatter

import (
	"fmt"

	"github.com/alexanderramin/pla2html/internal/render"
)

// FormatRenderSummary reports what was written by the render command.
func FormatRenderSummary(out string, cal *render.Calendar, entries int) string {
	bars := 0
	for _, row := range cal.Rows {
		bars += len(row.Bars)
	}
	msg := fmt.Sprintf("%s %s  %s, %s, %s to %s\n",
		StyleGreen.Render("Wrote"),
		out,
		Plural(entries, "entry", "entries"),
		Plural(bars, "bar", "bars"),
		cal.From.Format(dateLayout),
		cal.To.Format(dateLayout))
	if n := len(cal.Unscheduled); n > 0 {
		msg += StyleYellow.Render(fmt.Sprintf("%s not scheduled", Plural(n, "entry", "entries"))) + "\n"
	}
	return msg
}
