package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding

	// View switching
	ViewHome key.Binding
	ViewDemo key.Binding

	// Demo actions
	ListRecipes  key.Binding
	CreateRecipe key.Binding
	WeeklyPlan   key.Binding

	// Backend selection
	EditAddress key.Binding
	Up          key.Binding
	Down        key.Binding
	PickPreset  key.Binding

	// Response
	CopyResponse key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "e"),
			key.WithHelp("e", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch view"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to home"),
		),

		ViewHome: key.NewBinding(
			key.WithKeys("1", "h"),
			key.WithHelp("1", "Home"),
		),
		ViewDemo: key.NewBinding(
			key.WithKeys("2", "d"),
			key.WithHelp("2", "API demo"),
		),

		ListRecipes: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "List recipes"),
		),
		CreateRecipe: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Create sample recipe"),
		),
		WeeklyPlan: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Weekly plan"),
		),

		EditAddress: key.NewBinding(
			key.WithKeys("b", "/"),
			key.WithHelp("b", "Edit backend address"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "Previous preset"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "Next preset"),
		),
		PickPreset: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Use preset"),
		),

		CopyResponse: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy response"),
		),
	}
}
