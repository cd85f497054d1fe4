package plot

import (
	"github.com/charmbracelet/bubbles/key"

	"kelvin/internal/app/ui/components"
)

// KeyMap defines the key bindings for the plot view
type KeyMap struct {
	components.KeyMap
	ToggleChannel key.Binding
	AutoRange     key.Binding
	ViewAll       key.Binding
	LogScale      key.Binding
	Normalized    key.Binding
	Follow        key.Binding
	Reload        key.Binding
	Commit        key.Binding
	Blur          key.Binding
	ToggleTips    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	base := components.DefaultKeyMap()

	return KeyMap{
		KeyMap: base,
		ToggleChannel: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "show/hide"),
		),
		AutoRange: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autoscale y"),
		),
		ViewAll: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "view all"),
		),
		LogScale: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "log scale"),
		),
		Normalized: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "normalized"),
		),
		Follow: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "follow"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		Blur: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave field"),
		),
		ToggleTips: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tips"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.ToggleChannel, k.AutoRange, k.ViewAll, k.Follow, k.CycleFocus, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.ToggleChannel, k.AutoRange, k.ViewAll},
		{k.LogScale, k.Normalized, k.Follow, k.Reload},
		{k.CycleFocus, k.Commit, k.Blur, k.ToggleTips, k.Quit, k.ForceQuit},
	}
}
