package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewSpinner_Defaults(t *testing.T) {
	m := NewSpinner()

	assert.Equal(t, "Working...", m.Message())
	assert.Contains(t, stripANSI(m.View()), "Working...")
	assert.NotNil(t, m.Init())
}

func TestSpinner_WithMessage(t *testing.T) {
	m := NewSpinner(WithMessage("Starting nginx:alpine"))

	assert.Contains(t, stripANSI(m.View()), "Starting nginx:alpine")
}

func TestSpinner_UpdateKeepsMessage(t *testing.T) {
	m := NewSpinner(WithMessage("Pulling"))

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	spinnerModel, ok := updated.(SpinnerModel)
	assert.True(t, ok)
	assert.Equal(t, "Pulling", spinnerModel.Message())
}
