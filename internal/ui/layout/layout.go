package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/koten/internal/ui/theme"
)

// Minimum terminal size; a question card with four options needs about this.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Below these content sizes screens drop decorations such as the banner.
const (
	compactWidth  = 100
	compactHeight = 24
)

// brand is the fixed left part of the header.
const brand = "古典 Koten"

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompact reports whether a screen with the given content area should
// use its compact rendering.
func IsCompact(width, contentHeight int) bool {
	return width < compactWidth || contentHeight < compactHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Align(lipgloss.Center).Render(fmt.Sprintf(
			"端末が小さすぎます\n\n%d x %d 以上に広げてください\n（現在 %d x %d）",
			MinWidth, MinHeight, width, height)))
}

// bar is the bordered style shared by header and footer. The border takes
// two columns, the padding two more.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader renders the brand on the left, the screen title centered and
// status (typically the round score) on the right. When the title does not
// fit between the two, it follows the brand instead.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	textStyle := lipgloss.NewStyle().Foreground(theme.Text)

	left := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(brand)
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render(status)
	side := max(lipgloss.Width(left), lipgloss.Width(right))

	if lipgloss.Width(title)+2*side+2 > inner {
		mid := textStyle.Render(" " + title)
		gap := max(inner-lipgloss.Width(left)-lipgloss.Width(mid)-lipgloss.Width(right), 1)
		return bar(width).Render(left + mid + strings.Repeat(" ", gap) + right)
	}

	return bar(width).Render(
		lipgloss.PlaceHorizontal(side, lipgloss.Left, left) +
			lipgloss.PlaceHorizontal(inner-2*side, lipgloss.Center, textStyle.Render(title)) +
			lipgloss.PlaceHorizontal(side, lipgloss.Right, right))
}

// RenderFooter renders the key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := descStyle.Render("  ·  ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return bar(width).Render(strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height the other two leave.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).MaxHeight(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
