package render

import "github.com/charmbracelet/lipgloss"

// Theme defines the styles used for eg's own terminal output.
type Theme struct {
	Name   string
	Plain  lipgloss.Style // programs with default examples only
	Custom lipgloss.Style // the custom-only flag
	Both   lipgloss.Style // the custom-and-default flag
}

// DefaultTheme returns a colored theme.
func DefaultTheme() Theme {
	return Theme{
		Name:   "default",
		Plain:  lipgloss.NewStyle(),
		Custom: lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),  // green
		Both:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // orange
	}
}

// MonoTheme returns a monochrome theme (no styling at all).
func MonoTheme() Theme {
	return Theme{
		Name:   "mono",
		Plain:  lipgloss.NewStyle(),
		Custom: lipgloss.NewStyle(),
		Both:   lipgloss.NewStyle(),
	}
}

// ThemeFor picks DefaultTheme when color is wanted and MonoTheme otherwise.
func ThemeFor(useColor bool) Theme {
	if useColor {
		return DefaultTheme()
	}
	return MonoTheme()
}
