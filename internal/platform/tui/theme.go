package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles of the menu screens.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	ItemSolved  lipgloss.Style
	Description lipgloss.Style
	Controls    lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Border      lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Border:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// MonochromeTheme drops colour for terminals that render it badly.
func MonochromeTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:       plain.Bold(true),
		Subtitle:    plain,
		ItemNormal:  plain,
		ItemActive:  plain.Reverse(true),
		ItemSolved:  plain.Italic(true),
		Description: plain.Faint(true),
		Controls:    plain.Faint(true),
		Status:      plain,
		Error:       plain.Bold(true),
		Border:      plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}

var theme = DefaultTheme()

// SetTheme sets the theme used by screens created afterwards.
func SetTheme(t Theme) {
	theme = t
}

// CurrentTheme returns the active theme.
func CurrentTheme() Theme {
	return theme
}

// centerText pads text on the left so it sits in the middle of width
// columns. Styled text is measured without its escape codes.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
