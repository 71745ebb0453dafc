package theme_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/charmbracelet/lipgloss"

	"github.com/JacobCrabill/zigdown-sub003/internal/theme"
)

func TestByNameFallsBackToDefault(t *testing.T) {
	assert.Equal(t, theme.Default, theme.ByName("nonexistent"))
	assert.Equal(t, theme.Dark, theme.ByName("dark"))
}

func TestUnrecognizedAlertLabelUsesDefaultAndNoIcon(t *testing.T) {
	assert.Equal(t, theme.Default.AlertDefault, theme.Default.Alert("MYSTERY"))
	assert.Equal(t, "", theme.AlertIcon("MYSTERY"))
	assert.Equal(t, "⚠", theme.AlertIcon("WARNING"))
}

func TestDowngradePicksClosestCandidate(t *testing.T) {
	red := lipgloss.Color("#ff0000")
	candidates := []lipgloss.Color{"#fe0000", "#00ff00", "#0000ff"}
	assert.Equal(t, lipgloss.Color("#fe0000"), theme.Downgrade(red, candidates))
}

func TestDowngradeWithNoCandidatesReturnsInput(t *testing.T) {
	c := lipgloss.Color("#123456")
	assert.Equal(t, c, theme.Downgrade(c, nil))
}
