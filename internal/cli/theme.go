package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/tutor/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// errNoSubjects is returned when the corpus offers nothing to pick.
var errNoSubjects = errors.New("corpus has no subjects")

// tutorHuhTheme returns a huh theme that matches the formatter palette.
func tutorHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// subjectSelectForm builds the picker shown when chat starts without a subject.
func subjectSelectForm(names []string, result *string) (*huh.Form, error) {
	if len(names) == 0 {
		return nil, errNoSubjects
	}

	options := make([]huh.Option[string], 0, len(names))
	for _, n := range names {
		options = append(options, huh.NewOption(n, n))
	}
	*result = names[0]

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose a subject").
				Description(fmt.Sprintf("%d subjects available", len(names))).
				Options(options...).
				Value(result),
		),
	).WithTheme(tutorHuhTheme()).WithShowHelp(false), nil
}
