package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/alexanderramin/pla2html/internal/config"
	"github.com/alexanderramin/pla2html/internal/pla"
	"github.com/alexanderramin/pla2html/internal/repository"
	"github.com/alexanderramin/pla2html/internal/service"
	"github.com/alexanderramin/pla2html/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2021, 10, 14, 12, 0, 0, 0, time.UTC)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	return &App{
		Schedule: service.NewScheduleService(repository.NewSQLiteSnapshotRepo(database), testutil.NewTestUoW(database)),
		Config:   config.Config{DayWidthPx: 45},
		Now:      func() time.Time { return testNow },
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRenderCmd_WritesFile(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)
	out := filepath.Join(t.TempDir(), "brew.html")

	stdout, err := executeCmd(t, app, "render", "-i", in, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+out)
	assert.Contains(t, stdout, "1 entry not scheduled")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("div.full-bubble").Length())
	assert.Equal(t, "Autumn's Blonde", strings.TrimSpace(doc.Find("div.beerTitle-spacer").First().Text()))
}

func TestRenderCmd_Stdout(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	stdout, err := executeCmd(t, app, "render", "-i", in, "-o", "-", "--from", "2021-10-01", "--to", "2021-10-31")
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, "October 2021", strings.TrimSpace(doc.Find("td.monthName").Text()))
	// Bottling starts in November and is clipped away.
	assert.Equal(t, 1, doc.Find("div.full-bubble").Length())
}

func TestRenderCmd_DayWidthFlag(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, "[1] solo\nstart 2021-10-12\nduration 2\n")

	stdout, err := executeCmd(t, app, "render", "-i", in, "-o", "-", "--day-width", "30")
	require.NoError(t, err)
	assert.Contains(t, stdout, "width: 54px")
}

func TestRenderCmd_DayWidthFromConfig(t *testing.T) {
	app := testApp(t)
	app.Config.DayWidthPx = 20
	in := testutil.WritePLA(t, "[1] solo\nstart 2021-10-12\nduration 2\n")

	stdout, err := executeCmd(t, app, "render", "-i", in, "-o", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "width: 34px")
}

func TestRenderCmd_RejectsBadFlags(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	_, err := executeCmd(t, app, "render", "-i", in, "-o", "-", "--from", "12/10/2021")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")

	_, err = executeCmd(t, app, "render", "-i", in, "-o", "-", "--day-width", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestRenderCmd_MissingPathsNonInteractive(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "render", "-o", "x.html")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input")
	assert.NotContains(t, err.Error(), "--output")
}

func TestRenderCmd_PromptsWhenInteractive(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)
	app.IsInteractive = func() bool { return true }
	var prompted bool
	app.PromptPaths = func(input, output *string) error {
		prompted = true
		*input = in
		*output = defaultOutputPath(in)
		return nil
	}

	_, err := executeCmd(t, app, "render")
	require.NoError(t, err)
	assert.True(t, prompted)
	assert.FileExists(t, strings.TrimSuffix(in, ".pla")+".html")
}

func TestRenderCmd_ParseErrorLeavesNoFile(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, "[1] a\nduration soon\n")
	out := filepath.Join(t.TempDir(), "a.html")

	_, err := executeCmd(t, app, "render", "-i", in, "-o", out)
	require.ErrorIs(t, err, pla.ErrInvalidDuration)
	assert.NoFileExists(t, out)
}

func TestListCmd(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	out, err := executeCmd(t, app, "list", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Autumn's Blonde")
	assert.Contains(t, out, "Bottling")
	assert.Contains(t, out, "4 entries")
}

func TestShowCmd(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	out, err := executeCmd(t, app, "show", in, "10001")
	require.NoError(t, err)
	assert.Contains(t, out, "BOTTLING")
	assert.Contains(t, out, "[ Brew day ]")
}

func TestShowCmd_Errors(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	_, err := executeCmd(t, app, "show", in, "42")
	require.Error(t, err)
	assert.Equal(t, "entry 42 not found", err.Error())

	_, err = executeCmd(t, app, "show", in, "ten")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid entry id")
}

func TestExportCmd_JSON(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	out, err := executeCmd(t, app, "export", in)
	require.NoError(t, err)

	var docs []entryDoc
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 4)
	assert.Equal(t, uint32(10000), docs[1].ID)
	assert.Empty(t, docs[3].Children)
}

func TestExportCmd_RejectsUnknownFormat(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	_, err := executeCmd(t, app, "export", in, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of json, yaml")
}

func TestImportHistorySnapshotForget(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	out, err := executeCmd(t, app, "import", in)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported plan.pla as snapshot")
	assert.Contains(t, out, "(4 entries)")

	snaps, err := app.Schedule.History(context.Background())
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	id := snaps[0].DisplayID()

	out, err = executeCmd(t, app, "history")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "plan.pla")

	out, err = executeCmd(t, app, "snapshot", id)
	require.NoError(t, err)
	assert.Contains(t, out, "snapshot "+id)
	assert.Contains(t, out, "Order malt")

	out, err = executeCmd(t, app, "snapshot", id, "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "description: Brew day")
	assert.Contains(t, out, "name: Fermenter 2")

	_, err = executeCmd(t, app, "forget", id)
	require.NoError(t, err)

	_, err = executeCmd(t, app, "snapshot", id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotCmd_EmptyID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "snapshot", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestBrowseCmd_RunsModel(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)

	var got tea.Model
	app.RunProgram = func(m tea.Model) error {
		got = m
		return nil
	}

	_, err := executeCmd(t, app, "browse", in)
	require.NoError(t, err)
	require.IsType(t, browseModel{}, got)
	assert.Contains(t, got.View(), "plan.pla")
}

func TestBrowseCmd_ProgramErrorPropagates(t *testing.T) {
	app := testApp(t)
	in := testutil.WritePLA(t, testutil.BrewPlan)
	boom := errors.New("no tty")
	app.RunProgram = func(tea.Model) error { return boom }

	_, err := executeCmd(t, app, "browse", in)
	assert.ErrorIs(t, err, boom)
}
