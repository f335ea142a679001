package ui

import "strings"

// renderHome renders the landing view.
func (m Model) renderHome() string {
	styles := m.theme.Styles()

	lines := []string{
		"",
		styles.Logo.Render("ladle"),
		styles.Text.Render("A terminal console for recipe backends."),
		"",
		styles.MutedText.Render("Press ") + styles.AccentText.Render("2") +
			styles.MutedText.Render(" to open the API demo: pick a backend address and fire"),
		styles.MutedText.Render("one of three requests against its recipe API."),
		"",
		styles.FaintText.Render("Theme: " + m.theme.Name + " (T to cycle)"),
	}

	return styles.Panel.Width(m.contentWidth()).Render(strings.Join(lines, "\n"))
}
