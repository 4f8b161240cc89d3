package render

import (
	"bytes"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDoc(t *testing.T, cal *Calendar) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, cal))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestWriteHTML_Structure(t *testing.T) {
	cal, err := Layout(parseEntries(t, breweSchedule), Options{})
	require.NoError(t, err)
	doc := renderDoc(t, cal)

	assert.Equal(t, "October 2021 - January 2022", doc.Find("title").Text())

	months := doc.Find("td.monthName")
	require.Equal(t, 4, months.Length())
	assert.Equal(t, "November 2021", months.Eq(1).Text())
	colspan, _ := months.Eq(1).Attr("colspan")
	assert.Equal(t, "30", colspan)

	assert.Equal(t, 123, doc.Find("td.dayOfMonth").Length())
	assert.Equal(t, 4, doc.Find("td.lastDayOfMonth").Length())

	titles := doc.Find("td.beerTitle")
	require.Equal(t, 2, titles.Length())
	assert.Equal(t, "Autumn's", titles.Eq(0).Text())
	rowspan, _ := titles.Eq(0).Attr("rowspan")
	assert.Equal(t, "2", rowspan)

	bubbles := doc.Find("div.full-bubble")
	require.Equal(t, 3, bubbles.Length())
	assert.Equal(t, "Autumn's Early Arrival Blonde (Batch: 10000)", bubbles.Eq(0).Text())
	style, _ := bubbles.Eq(0).Attr("style")
	assert.Equal(t, "width: 984px", style)
	title, _ := bubbles.Eq(0).Attr("title")
	assert.Contains(t, title, "using Fermenter 2")

	// The blonde bubble sits in the twelfth day cell of its row.
	firstRow := doc.Find("td.beerTitle").First().Parent()
	cells := firstRow.Find("td.headerRow")
	assert.Equal(t, 123, cells.Length())
	assert.Equal(t, 1, cells.Eq(11).Find("div.full-bubble").Length())

	assert.Equal(t, "[30000] Cleaning", doc.Find("li").Text())
}

func TestWriteHTML_EmptyCalendar(t *testing.T) {
	cal, err := Layout(nil, Options{Today: time.Date(2021, time.February, 3, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	doc := renderDoc(t, cal)

	assert.Equal(t, "February 2021 - February 2021", doc.Find("title").Text())
	assert.Equal(t, 0, doc.Find("div.full-bubble").Length())
	assert.Equal(t, 0, doc.Find("li").Length())
	assert.Equal(t, 28, doc.Find("td.dayOfMonth").Length())
}

func TestWriteHTML_EscapesDescriptions(t *testing.T) {
	cal, err := Layout(parseEntries(t, "[1] <b>Bold</b> & Co\nstart 2021-01-01\n"), Options{})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, cal))
	assert.NotContains(t, buf.String(), "<b>Bold</b>")
	assert.Contains(t, buf.String(), "&lt;b&gt;Bold&lt;/b&gt;")
}
