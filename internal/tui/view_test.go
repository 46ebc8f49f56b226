package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alecthomas/assert"
)

func TestMappingViewShowsBindings(t *testing.T) {
	m, _, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "Jump")
	assert.Contains(t, view, "Squat")
	assert.Contains(t, view, "Lean Left")
	assert.Contains(t, view, "Lean Right")
	assert.Contains(t, view, "disconnected")
}

func TestViewShowsUnboundPlaceholder(t *testing.T) {
	m, b, _ := newTestModel(t)
	b.Clear("moveLeft")

	assert.Contains(t, m.View(), "(unbound)")
}

func TestSensitivityViewShowsRanges(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = m.apply(t, keyType(tea.KeyTab))

	view := m.View()
	assert.Contains(t, view, "jumpThreshold")
	assert.Contains(t, view, "repeatIntervalSeconds")
	assert.Contains(t, view, "[0.02..0.30]")
}

func TestDraggingHelpLine(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = m.apply(t, keyType(tea.KeyEnter))

	assert.Contains(t, m.View(), "press target key")
}
