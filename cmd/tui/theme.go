package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds every style the view uses. Widgets never pick colours
// themselves; they ask the active theme.
type Theme struct {
	Name   string
	Title  lipgloss.Style
	Label  lipgloss.Style
	Input  lipgloss.Style
	Output lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

var (
	DarkTheme = Theme{
		Name:   "dark",
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("236")).Padding(0, 1),
		Output: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}

	LightTheme = Theme{
		Name:   "light",
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Input:  lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("254")).Padding(0, 1),
		Output: lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("248")).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}

	Themes = []Theme{DarkTheme, LightTheme}
)

// ThemeByName returns the named theme, or the dark theme for unknown names.
func ThemeByName(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return DarkTheme
}

// Next returns the theme after t.
func (t Theme) Next() Theme {
	for i, known := range Themes {
		if known.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return DarkTheme
}
