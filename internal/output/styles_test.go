package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStateStyle(t *testing.T) {
	tests := []struct {
		name     string
		state    string
		wantBold bool
		wantFG   lipgloss.TerminalColor
	}{
		{name: "current is bold green", state: StateCurrent, wantBold: true, wantFG: ColorGreen},
		{name: "ignored is yellow", state: StateIgnored, wantFG: ColorYellow},
		{name: "removed is red", state: StateRemoved, wantFG: ColorRed},
		{name: "active is plain", state: StateActive, wantFG: lipgloss.NoColor{}},
		{name: "unknown is plain", state: "other", wantFG: lipgloss.NoColor{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StateStyle(tt.state)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantFG, style.GetForeground())
		})
	}
}

func TestFormatPanelLine(t *testing.T) {
	line := FormatPanelLine("HOSTS", StateActive)

	assert.Contains(t, line, "p:")
	assert.Contains(t, line, "HOSTS")
	assert.Contains(t, line, "active")
	assert.Less(t, strings.Index(line, "HOSTS"), strings.Index(line, "active"))
}

func TestFormatPanelLine_LongNameKeepsGap(t *testing.T) {
	name := strings.Repeat("X", minNameColumnWidth+4)
	line := FormatPanelLine(name, StateRemoved)
	assert.Contains(t, line, name+"  ")
}

func TestFormatRowLimit(t *testing.T) {
	out := FormatRowLimit(366, "default")
	assert.Contains(t, out, "366")
	assert.Contains(t, out, "(default)")
}

func TestFormatCheckmark(t *testing.T) {
	assert.Contains(t, FormatCheckmark("done"), "✔ done")
}
