package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_String(t *testing.T) {
	out := NewTable("A", "B").Row("one", "two").Row("three", "four").String()

	for _, s := range []string{"A", "B", "one", "two", "three", "four"} {
		assert.Contains(t, out, s)
	}
}

func TestRenderPanelTable(t *testing.T) {
	out := RenderPanelTable([]PanelRow{
		{Position: 1, Name: "VISITORS", Title: "Unique visitors per day", State: StateCurrent, MaxRows: 366},
		{Name: "VIRTUAL_HOSTS", Title: "Virtual hosts", State: StateRemoved, MaxRows: 366},
	})

	assert.Contains(t, out, "PANEL")
	assert.Contains(t, out, "VISITORS")
	assert.Contains(t, out, "VIRTUAL_HOSTS")
	assert.Contains(t, out, "removed")
	assert.Contains(t, out, "-")
}
