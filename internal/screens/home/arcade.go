package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/ui/components"
	"github.com/abhisek/koten/internal/ui/theme"
)

// Brush-style banner, shown when the terminal is tall enough.
const titleFull = `╔═╗  古 典 問 答  ╔═╗
║ ║  ─────────── ║ ║
╚═╝  こ て ん    ╚═╝`

const titleCompact = "古 典 · K O T E N"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// renderStatsBar renders the overall mastery counts in a bordered box.
func renderStatsBar(st stats, cw int, compact bool) string {
	correctStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	wrongStyle := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var text string
	if compact {
		text = fmt.Sprintf("%s %s %s",
			correctStyle.Render(fmt.Sprintf("○%d", st.correct)),
			wrongStyle.Render(fmt.Sprintf("×%d", st.incorrect)),
			dimStyle.Render(fmt.Sprintf("/%d", st.total)),
		)
	} else {
		text = fmt.Sprintf("%s  %s  %s",
			correctStyle.Render(fmt.Sprintf("○ 正解 %d", st.correct)),
			wrongStyle.Render(fmt.Sprintf("× 復習 %d", st.incorrect)),
			dimStyle.Render(fmt.Sprintf("全 %d 問", st.total)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 28

// renderMenu renders each menu item as a fixed-width button, or as plain
// lines when the terminal is short.
func renderMenu(labels []string, selected int, cw int, compact bool) string {
	var lines []string
	for i, label := range labels {
		if compact {
			if i == selected {
				lines = append(lines, theme.Selected.Render(" ▸ "+label+" "))
			} else {
				lines = append(lines, theme.Unselected.Render("   "+label))
			}
			continue
		}
		lines = append(lines, components.ActionButton(label, i == selected, buttonWidth))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
