package components

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/koten/internal/ui/layout"
)

// KeyMap holds the bindings shared by every screen.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Next   key.Binding
	Retry  key.Binding
	Parts  key.Binding
	Menu   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// Keys is the application key map.
var Keys = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Select"),
	),
	Next: key.NewBinding(
		key.WithKeys("enter", "space", "n"),
		key.WithHelp("Enter", "Next"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Retry"),
	),
	Parts: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "Parts"),
	),
	Menu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "Menu"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	),
}

// Hints converts bindings into footer key hints, skipping disabled ones.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}

// OptionIndex maps the digit keys 1-9 to option indices. ok is false for
// any other key or an index beyond n.
func OptionIndex(k string, n int) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	i := int(k[0] - '1')
	if i >= n {
		return 0, false
	}
	return i, true
}
