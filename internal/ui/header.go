package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ladle-tui/ladle/internal/panel"
)

// renderHeader renders the top status bar: logo, backend address and the
// current outcome phase.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	out := m.panel.Outcome()

	parts := []string{
		styles.Logo.Render("ladle"),
		styles.MutedText.Render(truncateMiddle(m.panel.Address(), 48)),
	}

	if out.Phase != panel.PhaseIdle {
		badge := styles.PhaseStyle(out.Phase.String()).Render(strings.ToUpper(out.Phase.String()))
		parts = append(parts, badge)
		if out.Phase != panel.PhaseLoading {
			parts = append(parts, styles.FaintText.Render(out.Action.String()+" · "+out.Updated.Format("15:04:05")))
		}
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderNavBar renders the two-entry navigation bar. Exactly one entry is
// highlighted; the views themselves render exclusively below it.
func (m Model) renderNavBar() string {
	styles := m.theme.Styles()

	entry := func(label string, view View) string {
		if m.currentView == view {
			return styles.Selected.Render(" " + label + " ")
		}
		return styles.MutedText.Render(" " + label + " ")
	}

	bar := entry("1 Home", ViewHome) + " " + entry("2 API Demo", ViewDemo)
	return lipgloss.NewStyle().Width(m.width).Render(bar)
}

// renderFooter renders the context key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := []string{
		m.keys.Tab.Help().Key + " " + m.keys.Tab.Help().Desc,
		m.keys.Help.Help().Key + " help",
		m.keys.Quit.Help().Key + " quit",
	}
	if m.currentView == ViewDemo {
		hints = append([]string{
			m.keys.ListRecipes.Help().Key + "/" +
				m.keys.CreateRecipe.Help().Key + "/" +
				m.keys.WeeklyPlan.Help().Key + " actions",
			m.keys.CopyResponse.Help().Key + " copy",
		}, hints...)
	}

	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  ·  "))
}
