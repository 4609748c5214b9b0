package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/toaster/internal/ui/overlay"
)

// KeyMap defines the application keybindings
type KeyMap struct {
	Success       key.Binding
	Error         key.Binding
	Info          key.Binding
	Warning       key.Binding
	DismissNewest key.Binding
	DismissAll    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Success: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "success"),
		),
		Error: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "error"),
		),
		Info: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "info"),
		),
		Warning: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "warning"),
		),
		DismissNewest: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss newest"),
		),
		DismissAll: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "dismiss all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Success, k.Error, k.Info, k.Warning, k.DismissNewest, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped as in the help overlay
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Success, k.Error, k.Info, k.Warning},
		{k.DismissNewest, k.DismissAll},
		{k.Help, k.Quit},
	}
}

// Sections names the FullHelp groups for the help overlay
func (k KeyMap) Sections() []overlay.Section {
	names := []string{"Notifications", "Dismiss", "General"}
	groups := k.FullHelp()

	sections := make([]overlay.Section, len(groups))
	for i, g := range groups {
		sections[i] = overlay.Section{Name: names[i], Bindings: g}
	}
	return sections
}
