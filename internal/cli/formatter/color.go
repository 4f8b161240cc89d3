package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pla2html/internal/pla"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CommandStyle returns the style used for a sub-record keyword.
func CommandStyle(cmd pla.Command) lipgloss.Style {
	switch cmd {
	case pla.CommandStart:
		return StyleGreen
	case pla.CommandDuration:
		return StyleYellow
	case pla.CommandDependency:
		return StyleRed
	case pla.CommandChild:
		return StyleBlue
	case pla.CommandResource:
		return StylePurple
	default:
		return StyleDim
	}
}

// CommandBadge renders a sub-record keyword padded to a fixed width.
func CommandBadge(cmd pla.Command) string {
	name := cmd.String()
	return CommandStyle(cmd).Render(name) + strings.Repeat(" ", max(0, 8-len(name)))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
