package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// renderHelp renders the full-screen help overlay. Any key closes it.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []struct {
		title    string
		bindings []key.Binding
	}{
		{"Navigation", []key.Binding{m.keys.ViewHome, m.keys.ViewDemo, m.keys.Tab, m.keys.Escape}},
		{"API demo", []key.Binding{m.keys.ListRecipes, m.keys.CreateRecipe, m.keys.WeeklyPlan}},
		{"Backend", []key.Binding{m.keys.Up, m.keys.Down, m.keys.PickPreset, m.keys.EditAddress}},
		{"Response", []key.Binding{m.keys.CopyResponse}},
		{"General", []key.Binding{m.keys.Help, m.keys.CycleTheme, m.keys.Quit}},
	}

	var b strings.Builder
	b.WriteString(styles.Logo.Render("ladle key bindings"))
	b.WriteString("\n\n")
	for _, section := range sections {
		b.WriteString(styles.AccentText.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.bindings {
			help := binding.Help()
			b.WriteString("  ")
			b.WriteString(styles.Text.Render("<" + help.Key + ">"))
			b.WriteString(" ")
			b.WriteString(styles.MutedText.Render(help.Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.FaintText.Render("press any key to close"))

	return styles.Panel.Width(m.contentWidth()).Render(b.String())
}
