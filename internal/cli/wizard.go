package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/timecard/internal/cli/formatter"
	"github.com/alexanderramin/timecard/internal/domain"
)

// timecardHuhTheme returns a huh theme using the formatter palette.
func timecardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func dayOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(domain.DaysOfWeek))
	for _, d := range domain.DaysOfWeek {
		opts = append(opts, huh.NewOption(string(d), string(d)))
	}
	return opts
}

func timeOptions(times []string) []huh.Option[string] {
	return huh.NewOptions(times...)
}

// entryForm builds the "add entry" form. Fields already set on draft are
// kept as defaults. End times are limited to slots after the chosen start.
func entryForm(draft *domain.EntryDraft) *huh.Form {
	if draft.Day == "" {
		draft.Day = string(domain.Monday)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day").
				Options(dayOptions()...).
				Value(&draft.Day),
			huh.NewInput().
				Title("Job").
				Placeholder("Site or job name").
				Value(&draft.JobName).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("job name is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Start").
				Options(timeOptions(domain.StartTimeOptions())...).
				Value(&draft.StartTime),
			huh.NewSelect[string]().
				Title("End").
				OptionsFunc(func() []huh.Option[string] {
					return timeOptions(domain.EndOptionsAfter(draft.StartTime))
				}, &draft.StartTime).
				Value(&draft.EndTime),
			huh.NewText().
				Title("Description").
				Value(&draft.Description),
		),
	).WithTheme(timecardHuhTheme()).WithShowHelp(false)
}

// draftComplete reports whether the required fields are present.
// Description is optional.
func draftComplete(d domain.EntryDraft) bool {
	return d.Day != "" && d.JobName != "" && d.StartTime != "" && d.EndTime != ""
}
