package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pla2html/internal/cli/formatter"
	"github.com/alexanderramin/pla2html/internal/pla"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type browseMode int

const (
	modeList browseMode = iota
	modeDetail
	modeFilter
)

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Open   key.Binding
	Back   key.Binding
	Filter key.Binding
	Quit   key.Binding
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Open:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filter, k.Back, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, {k.Open, k.Back, k.Filter, k.Quit}}
}

// browseModel lists entries and opens one at a time in a scrollable detail
// pane. Rows hold indexes into entries so filtering never copies them.
type browseModel struct {
	title   string
	entries []pla.Entry
	lookup  formatter.EntryLookup
	rows    []int
	cursor  int
	offset  int

	mode   browseMode
	filter textinput.Model
	detail viewport.Model
	help   help.Model
	keys   browseKeyMap

	width, height int
	quitting      bool
}

func newBrowseModel(title string, p *pla.Parser) browseModel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "id or description"
	ti.PromptStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader)

	m := browseModel{
		title:   title,
		entries: p.Entries(),
		lookup:  p.GetEntryByID,
		filter:  ti,
		detail:  viewport.New(80, 20),
		help:    help.New(),
		keys:    defaultBrowseKeys(),
	}
	m.applyFilter()
	return m
}

func (m browseModel) Init() tea.Cmd {
	return nil
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.detail.Width = msg.Width
		m.detail.Height = max(1, msg.Height-2)
		m.scrollToCursor()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m browseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		m.scrollToCursor()
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(0, len(m.rows)-1)
		m.scrollToCursor()
	case key.Matches(msg, m.keys.Open):
		e, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.detail.SetContent(formatter.FormatEntryDetail(e, m.lookup))
		m.detail.GotoTop()
		m.mode = modeDetail
	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		return m, m.filter.Focus()
	case key.Matches(msg, m.keys.Back):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.applyFilter()
		}
	}
	return m, nil
}

func (m browseModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEsc:
		m.filter.SetValue("")
		m.filter.Blur()
		m.applyFilter()
		m.mode = modeList
		return m, nil
	case tea.KeyEnter:
		m.filter.Blur()
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter keeps entries whose id starts with, or whose description
// contains, the filter text (case-insensitive).
func (m *browseModel) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	rows := make([]int, 0, len(m.entries))
	for i, e := range m.entries {
		if q == "" ||
			strings.HasPrefix(strconv.FormatUint(uint64(e.ID), 10), q) ||
			strings.Contains(strings.ToLower(e.Description), q) {
			rows = append(rows, i)
		}
	}
	m.rows = rows
	m.cursor = min(m.cursor, max(0, len(m.rows)-1))
	m.offset = 0
	m.scrollToCursor()
}

func (m *browseModel) moveCursor(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.rows)-1)
	m.scrollToCursor()
}

// listHeight is the number of entry rows that fit; 0 means unbounded.
func (m browseModel) listHeight() int {
	if m.height == 0 {
		return 0
	}
	// title, filter line, blank line, help
	return max(1, m.height-4)
}

func (m *browseModel) scrollToCursor() {
	h := m.listHeight()
	if h == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
}

func (m browseModel) selected() (pla.Entry, bool) {
	if len(m.rows) == 0 {
		return pla.Entry{}, false
	}
	return m.entries[m.rows[m.cursor]], true
}

func (m browseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeDetail {
		return m.detail.View() + "\n" + scrollIndicator(m.detail) + "  " + m.help.View(m.keys)
	}

	var b strings.Builder
	b.WriteString(formatter.StyleHeader.Render(m.title))
	b.WriteString(formatter.Dim(fmt.Sprintf("  %d of %d", len(m.rows), len(m.entries))))
	b.WriteString("\n")
	if m.mode == modeFilter || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
	}
	b.WriteString("\n")

	end := len(m.rows)
	if h := m.listHeight(); h > 0 {
		end = min(end, m.offset+h)
	}
	if len(m.rows) == 0 {
		b.WriteString(formatter.Dim("  no matching entries") + "\n")
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m browseModel) renderRow(i int) string {
	e := m.entries[m.rows[i]]
	line := fmt.Sprintf("[%d] %s", e.ID, e.Description)
	if s, ok := e.Start(); ok {
		line += formatter.Dim("  " + s.Date.Format(dateLayout))
	}
	if i == m.cursor {
		return formatter.StyleHeader.Render("> ") + formatter.StyleBold.Render(line)
	}
	return "  " + line
}

func scrollIndicator(vp viewport.Model) string {
	switch {
	case vp.AtTop():
		return formatter.Dim("[TOP]")
	case vp.AtBottom():
		return formatter.Dim("[END]")
	}
	return formatter.Dim(fmt.Sprintf("[%d%%]", int(vp.ScrollPercent()*100)))
}
