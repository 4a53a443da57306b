package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. A single lime accent; chrome in grays, problems in red
// and yellow.
const (
	ColorLime     = "154" // primary accent (#AFFF00)
	ColorLimeDim  = "106" // dimmed lime for panel borders
	ColorGray     = "245" // secondary text, labels
	ColorDarkGray = "238" // separators, de-emphasized rows
	ColorRed      = "196" // errors
	ColorYellow   = "220" // warnings
)

// Styles holds all UI styles for terminal rendering.
type Styles struct {
	Header  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Active  lipgloss.Style
	Label   lipgloss.Style
	Panel   lipgloss.Style
}

// DefaultStyles returns styled components for interactive terminals.
func DefaultStyles() Styles {
	base := lipgloss.NewStyle()
	lime := base.Foreground(lipgloss.Color(ColorLime))

	return Styles{
		Header:  lime.Bold(true),
		Success: lime,
		Warning: base.Foreground(lipgloss.Color(ColorYellow)),
		Error:   base.Foreground(lipgloss.Color(ColorRed)),
		Dim:     base.Foreground(lipgloss.Color(ColorDarkGray)),
		Active:  lime.Bold(true),
		Label:   base.Foreground(lipgloss.Color(ColorGray)),
		Panel: base.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorLimeDim)).
			Padding(0, 1),
	}
}

// NoColorStyles returns plain-rendering styles for pipes and NO_COLOR runs.
func NoColorStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Header:  plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
		Dim:     plain,
		Active:  plain,
		Label:   plain,
		Panel:   plain,
	}
}

// GetStyles picks the style set for the color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
