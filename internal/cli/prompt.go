package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alexanderramin/pla2html/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

func plaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// promptRenderPaths asks for whichever of input and output is still empty.
// An empty output answer falls back to the input path with an .html extension.
func promptRenderPaths(input, output *string) error {
	var fields []huh.Field
	if *input == "" {
		fields = append(fields, huh.NewInput().
			Title("PLA file").
			Description("Schedule to render").
			Value(input).
			Validate(validateInputPath))
	}
	if *output == "" {
		fields = append(fields, huh.NewInput().
			Title("HTML output").
			Description("Leave empty to write next to the PLA file").
			Placeholder("schedule.html").
			Value(output))
	}
	if len(fields) > 0 {
		if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(plaHuhTheme()).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return fmt.Errorf("render cancelled")
			}
			return err
		}
	}

	*input = strings.TrimSpace(*input)
	*output = strings.TrimSpace(*output)
	if *output == "" {
		*output = defaultOutputPath(*input)
	}
	return nil
}

func validateInputPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("a PLA file is required")
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("cannot read %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}
