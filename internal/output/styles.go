package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Use these instead of inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: panel names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "current" panel state.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "ignored" panel state.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for the "removed" panel state.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (panel names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles headings and key hints.
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// Panel states.
const (
	StateCurrent = "current"
	StateActive  = "active"
	StateIgnored = "ignored"
	StateRemoved = "removed"
)

// StateStyle returns the style for a panel state. Unknown states are
// unstyled.
func StateStyle(state string) lipgloss.Style {
	switch state {
	case StateCurrent:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorGreen)
	case StateActive:
		return lipgloss.NewStyle()
	case StateIgnored:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StateRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minNameColumnWidth keeps state words aligned across panel lines.
const minNameColumnWidth = 24

// FormatPanelLine renders a panel name with a right-aligned, color-coded
// state suffix.
//
// Format: p:<NAME>  <state>
func FormatPanelLine(name, state string) string {
	padding := minNameColumnWidth - len(name)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("p:")
	styledName := StyleNoun.Render(name)
	styledState := StateStyle(state).Render(state)

	return prefix + styledName + strings.Repeat(" ", padding) + styledState
}

// FormatRowLimit renders a row limit and the rule that produced it.
func FormatRowLimit(rows int, rule string) string {
	return fmt.Sprintf("%s %s", StyleAction.Render(fmt.Sprintf("%d", rows)), StyleDim.Render("("+rule+")"))
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
