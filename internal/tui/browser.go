// Package tui implements the interactive panel browser.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/logpanel/cli/internal/limits"
	"github.com/logpanel/cli/internal/output"
	"github.com/logpanel/cli/internal/panel"
)

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(output.ColorDimGray)
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(output.ColorGreen)
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(output.ColorCyan)
	errorStyle     = lipgloss.NewStyle().Foreground(output.ColorRed)
)

const helpText = "tab/l next • shift+tab/h prev • d remove panel • q quit"

// Model is the bubbletea model for browsing panels.
type Model struct {
	session   *panel.Session
	limit     limits.Decision
	width     int
	status    string
	statusErr bool
	quitting  bool
}

// New creates a browser over an active session.
func New(session *panel.Session, limit limits.Decision) Model {
	return Model{session: session, limit: limit}
}

// Current returns the panel being shown.
func (m Model) Current() panel.Module {
	return m.session.Current()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "tab", "right", "l":
		m.session.Next()
		m.status = ""
	case "shift+tab", "left", "h":
		m.session.Prev()
		m.status = ""
	case "d":
		removed := m.session.Current()
		if err := m.session.RemoveCurrent(); err != nil {
			m.status = err.Error()
			m.statusErr = true
			return m, nil
		}
		output.PanelLogger(removed.String()).Debug("panel removed")
		m.status = fmt.Sprintf("Removed %s.", removed)
		m.statusErr = false
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	current := m.session.Current()
	tabs := make([]string, 0, m.session.Registry().Count())
	for _, mod := range m.session.Registry().Modules() {
		if mod == current {
			tabs = append(tabs, activeTabStyle.Render(mod.String()))
		} else {
			tabs = append(tabs, tabStyle.Render(mod.String()))
		}
	}
	strip := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.width > 0 {
		strip = lipgloss.NewStyle().MaxWidth(m.width).Render(strip)
	}
	b.WriteString(strip)
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render(current.Title()))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Showing up to %s rows\n", output.FormatRowLimit(m.limit.MaxRows, string(m.limit.Rule)))
	fmt.Fprintf(&b, "%d of %d panels active\n", m.session.Registry().Count(), panel.TotalModules)

	if m.status != "" {
		b.WriteString("\n")
		if m.statusErr {
			b.WriteString(errorStyle.Render(m.status))
		} else {
			b.WriteString(m.status)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(output.StyleDim.Render(helpText))
	b.WriteString("\n")

	return b.String()
}

// Run starts the browser on the terminal and blocks until the user quits.
func Run(session *panel.Session, limit limits.Decision) error {
	_, err := tea.NewProgram(New(session, limit), tea.WithAltScreen()).Run()
	return err
}
