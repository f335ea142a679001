package ui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ladle-tui/ladle/internal/panel"
	"github.com/ladle-tui/ladle/internal/recipes"
)

// handleDemoKey processes keyboard input for the API demo view.
func (m Model) handleDemoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	presets := m.panel.Presets()

	switch {
	case key.Matches(msg, m.keys.ListRecipes):
		return m.trigger(panel.ActionListRecipes)

	case key.Matches(msg, m.keys.CreateRecipe):
		return m.trigger(panel.ActionCreateRecipe)

	case key.Matches(msg, m.keys.WeeklyPlan):
		return m.trigger(panel.ActionWeeklyPlan)

	case key.Matches(msg, m.keys.EditAddress):
		m.addressInput.SetValue(m.panel.Address())
		m.addressInput.CursorEnd()
		m.addressInput.Focus()
		m.editingAddress = true
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Up):
		if m.presetIdx > 0 {
			m.presetIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.presetIdx < len(presets)-1 {
			m.presetIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.PickPreset):
		if m.presetIdx < len(presets) {
			m.panel.Select(presets[m.presetIdx])
			m.note = ""
		}
		return m, nil

	case key.Matches(msg, m.keys.CopyResponse):
		m.copyResponse()
		return m, nil
	}

	// Remaining keys scroll the response viewport.
	var cmd tea.Cmd
	m.responseView, cmd = m.responseView.Update(msg)
	return m, cmd
}

// handleAddressKey processes input while the free-text address field is
// focused. Enter commits (last write wins over any preset pick), Esc cancels.
func (m Model) handleAddressKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.panel.Select(m.addressInput.Value())
		m.addressInput.Blur()
		m.editingAddress = false
		return m, nil
	case "esc":
		m.addressInput.Blur()
		m.editingAddress = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.addressInput, cmd = m.addressInput.Update(msg)
	return m, cmd
}

// trigger dispatches one demo action. Triggers are declined while a request
// is outstanding; the guard lives here in the model, not in the rendering.
func (m Model) trigger(action panel.Action) (tea.Model, tea.Cmd) {
	if m.panel.Busy() {
		return m, nil
	}
	m.note = ""
	_, run := m.panel.Trigger(action)
	m.syncResponse()
	return m, tea.Batch(runCmd(m.ctx, run), m.loading.Tick)
}

// copyResponse puts the last successful response body on the clipboard.
func (m *Model) copyResponse() {
	out := m.panel.Outcome()
	if out.Phase != panel.PhaseSuccess {
		m.note = "Nothing to copy"
		return
	}
	if err := clipboard.WriteAll(string(out.Result)); err != nil {
		m.note = "Clipboard unavailable"
		return
	}
	m.note = "Response copied"
}

// syncResponse rebuilds the viewport content from the current outcome.
func (m *Model) syncResponse() {
	if m.panel == nil {
		return
	}
	styles := m.theme.Styles()
	out := m.panel.Outcome()

	switch out.Phase {
	case panel.PhaseSuccess:
		m.responseView.SetContent(formatJSON(out.Result))
		m.responseView.GotoTop()
	case panel.PhaseFailure:
		m.responseView.SetContent(styles.ErrorBlock.Render("Request failed: " + out.Err))
		m.responseView.GotoTop()
	default:
		m.responseView.SetContent("")
	}
}

// renderDemo renders the API demo view: backend selector, action row and the
// response area.
func (m Model) renderDemo() string {
	var b strings.Builder
	b.WriteString(m.renderBackendSection())
	b.WriteString("\n")
	b.WriteString(m.renderActionsSection())
	b.WriteString("\n")
	b.WriteString(m.renderResponseSection())
	return b.String()
}

func (m Model) renderBackendSection() string {
	styles := m.theme.Styles()
	presets := m.panel.Presets()
	current := m.panel.Address()

	var lines []string
	lines = append(lines,
		styles.MutedText.Render("Backend ")+styles.AccentText.Render(current))

	for i, preset := range presets {
		marker := "  "
		label := styles.Text.Render(preset)
		if preset == current {
			marker = styles.SuccessText.Render("● ")
		}
		if i == m.presetIdx {
			label = styles.Selected.Render(preset)
		}
		lines = append(lines, marker+label)
	}

	if m.editingAddress {
		lines = append(lines, m.addressInput.View())
	} else {
		lines = append(lines, styles.FaintText.Render("b to type an address, enter to use the highlighted preset"))
	}

	box := styles.Panel
	if m.editingAddress {
		box = styles.PanelFocus
	}
	return box.Width(m.contentWidth()).Render(strings.Join(lines, "\n"))
}

func (m Model) renderActionsSection() string {
	styles := m.theme.Styles()
	busy := m.panel.Busy()

	entries := []struct {
		binding key.Binding
		label   string
	}{
		{m.keys.ListRecipes, "List recipes"},
		{m.keys.CreateRecipe, "Create sample recipe"},
		{m.keys.WeeklyPlan, "Plan for " + recipes.SamplePlanDate},
	}

	var parts []string
	for _, entry := range entries {
		keyLabel := entry.binding.Help().Key
		if busy {
			parts = append(parts, styles.FaintText.Render("<"+keyLabel+"> "+entry.label))
		} else {
			parts = append(parts,
				styles.AccentText.Render("<"+keyLabel+">")+" "+styles.Text.Render(entry.label))
		}
	}

	return styles.Panel.Width(m.contentWidth()).Render(strings.Join(parts, "   "))
}

func (m Model) renderResponseSection() string {
	styles := m.theme.Styles()
	out := m.panel.Outcome()

	var body string
	switch out.Phase {
	case panel.PhaseIdle:
		body = styles.FaintText.Render("No request yet. Trigger an action above.")
	case panel.PhaseLoading:
		body = m.loading.View() + styles.MutedText.Render(" waiting for "+out.Action.String()+"...")
	default:
		body = m.responseView.View()
	}

	title := styles.MutedText.Render("Response")
	if m.note != "" {
		title += "  " + styles.WarningText.Render(m.note)
	}
	return title + "\n" + styles.Panel.Width(m.contentWidth()).Render(body)
}

func (m Model) contentWidth() int {
	width := m.width - 2
	if width < 20 {
		width = 20
	}
	return width
}
