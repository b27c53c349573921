package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/ui/theme"
)

// ActionButton renders a fixed-width button used for screen actions.
func ActionButton(label string, selected bool, width int) string {
	if selected {
		return theme.ButtonActive.Width(width).Align(lipgloss.Center).Render("▸ " + label)
	}
	return theme.ButtonInactive.Width(width).Align(lipgloss.Center).Render(label)
}
