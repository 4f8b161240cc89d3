package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

type pageMonth struct {
	Name string
	Days int
}

type pageDay struct {
	Number int
	Class  string
}

type pageBubble struct {
	Label   string
	Title   string
	WidthPx int
}

type pageCell struct {
	Bubble *pageBubble
}

type pageRow struct {
	Label     string
	ShowLabel bool
	Rowspan   int
	Cells     []pageCell
}

type page struct {
	Title       string
	SpacerPx    int
	Months      []pageMonth
	Days        []pageDay
	Rows        []pageRow
	Unscheduled []string
}

var pageTemplate = template.Must(template.New("calendar").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; font-size: 10pt; }
table { border-collapse: collapse; position: relative; border-spacing: 0; }
.monthName { text-align: center; font-size: 32pt; font-family: sans-serif; }
td.emptyCell { background-color: white !important; border: none !important; }
td.beerTitle { font-size: 14pt; font-family: sans-serif; padding-right: 1rem; width: 200px; }
.beerTitle-spacer { padding-top: 1rem; padding-bottom: 1rem; }
td.day { border-spacing: 0; }
td.dayOfMonth { border-bottom: 1px solid black; }
td.lastDayOfMonth:not(:last-child) { border-right: 3px solid black }
td:not(.monthName):not(.headerRow):nth-child(2n) { background-color: lightgray; }
td.headerRow:nth-child(2n+1) { background-color: lightgray; position: relative; overflow: visible; }
div.full-bubble { position: absolute; top: calc(50% - 13px); border-radius: 4px; border: 1px solid darkgray; background-color: lightgreen; padding: .25rem; z-index: 25; white-space: nowrap; overflow: hidden; }
div.spacer { width: {{.SpacerPx}}px; padding: 0; margin: 0; text-align: center; }
</style>
</head>
<body>
<table>
<tr>
<td class="emptyCell"></td><td class="emptyCell"></td>
{{- range .Months}}
<td class="monthName" colspan="{{.Days}}">{{.Name}}</td>
{{- end}}
</tr>
<tr>
<td class="emptyCell"></td><td class="emptyCell"></td>
{{- range .Days}}
<td class="{{.Class}}"><div class="spacer">{{.Number}}</div></td>
{{- end}}
</tr>
{{- range .Rows}}
<tr>
{{- if .ShowLabel}}
<td class="beerTitle" colspan="2" rowspan="{{.Rowspan}}"><div class="beerTitle-spacer">{{.Label}}</div></td>
{{- end}}
{{- range .Cells}}
<td class="day headerRow">{{with .Bubble}}<div class="full-bubble" style="width: {{.WidthPx}}px" title="{{.Title}}">{{.Label}}</div>{{end}}</td>
{{- end}}
</tr>
{{- end}}
</table>
{{- if .Unscheduled}}
<h2>Unscheduled</h2>
<ul>
{{- range .Unscheduled}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
`))

// WriteHTML writes cal as a standalone HTML page.
func WriteHTML(w io.Writer, cal *Calendar) error {
	if err := pageTemplate.Execute(w, buildPage(cal)); err != nil {
		return fmt.Errorf("rendering calendar: %w", err)
	}
	return nil
}

func buildPage(cal *Calendar) page {
	p := page{SpacerPx: cal.DayWidthPx - 2}

	if n := len(cal.Months); n > 0 {
		p.Title = fmt.Sprintf("%s - %s", cal.Months[0].Name, cal.Months[n-1].Name)
	}

	for _, m := range cal.Months {
		p.Months = append(p.Months, pageMonth{Name: m.Name, Days: m.Days})
		for d := 0; d < m.Days; d++ {
			class := "dayOfMonth"
			if d == m.Days-1 {
				class = "day lastDayOfMonth dayOfMonth"
			}
			p.Days = append(p.Days, pageDay{Number: m.FirstDay + d, Class: class})
		}
	}

	total := cal.TotalDays()
	for _, row := range cal.Rows {
		for i, bar := range row.Bars {
			cells := make([]pageCell, total)
			if bar.Offset < total {
				cells[bar.Offset].Bubble = &pageBubble{
					Label:   bar.Label,
					Title:   bubbleTitle(bar),
					WidthPx: bar.Visible*cal.DayWidthPx - 6,
				}
			}
			p.Rows = append(p.Rows, pageRow{
				Label:     row.Label,
				ShowLabel: i == 0,
				Rowspan:   len(row.Bars),
				Cells:     cells,
			})
		}
	}

	for _, e := range cal.Unscheduled {
		p.Unscheduled = append(p.Unscheduled, fmt.Sprintf("[%d] %s", e.ID, e.Description))
	}
	return p
}

func bubbleTitle(bar Bar) string {
	title := fmt.Sprintf("%s, %d day(s) from %s", bar.Label, bar.Days, bar.Start.Format("2006-01-02 15:04"))
	if len(bar.Resources) > 0 {
		title += " using " + strings.Join(bar.Resources, ", ")
	}
	return title
}
