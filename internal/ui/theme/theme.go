package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: sumi ink on washi paper, indigo and vermilion accents
var (
	Primary   = lipgloss.Color("#1E3A8A") // Indigo
	Secondary = lipgloss.Color("#B7950B") // Gold leaf
	Accent    = lipgloss.Color("#A93226") // Vermilion
	Success   = lipgloss.Color("#3B82F6") // Blue
	Error     = lipgloss.Color("#E74C3C") // Red
	Text      = lipgloss.Color("#F8F5F0") // Washi
	TextDim   = lipgloss.Color("#A8A29E") // Stone
	TextInk   = lipgloss.Color("#1C1917") // Sumi
	BgDark    = lipgloss.Color("#1C1917") // Sumi
	BgCard    = lipgloss.Color("#292524") // Charcoal
	Border    = lipgloss.Color("#44403C") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Warning = lipgloss.NewStyle().
		Foreground(Secondary)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Foreground(TextInk).
			Background(Secondary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)
