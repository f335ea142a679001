package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ladle-tui/ladle/internal/panel"
	"github.com/ladle-tui/ladle/internal/prefs"
)

// View represents the current active view.
type View int

const (
	ViewHome View = iota
	ViewDemo
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewDemo:
		return "api demo"
	default:
		return "unknown"
	}
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Panel     *panel.Panel
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx       context.Context
	panel     *panel.Panel
	prefsPath string

	theme Theme
	keys  keyMap

	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Backend selection state
	presetIdx      int
	addressInput   textinput.Model
	editingAddress bool

	// Response state
	loading      spinner.Model
	responseView viewport.Model

	// Transient status line (clipboard feedback)
	note string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}
	theme := GetTheme(themeName)

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "http://localhost:8080"
	input.Prompt = "> "

	loading := spinner.New(spinner.WithSpinner(spinner.Dot))
	loading.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:          ctx,
		panel:        opts.Panel,
		prefsPath:    prefsPath,
		theme:        theme,
		keys:         DefaultKeyMap(),
		currentView:  ViewHome,
		addressInput: input,
		loading:      loading,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.responseView = viewport.New(msg.Width, msg.Height)
		}
		m.ready = true
		m.layout()
		m.syncResponse()
		return m, nil

	case spinner.TickMsg:
		if !m.panel.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading, cmd = m.loading.Update(msg)
		return m, cmd

	case resolutionMsg:
		if m.panel.Apply(panel.Resolution(msg)) {
			m.syncResponse()
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNavBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderContent() string {
	switch m.currentView {
	case ViewDemo:
		return m.renderDemo()
	default:
		// Unknown views fall back to home.
		return m.renderHome()
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay.
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// Free-text address entry captures everything except commit/cancel.
	if m.editingAddress {
		return m.handleAddressKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.setTheme(NextTheme(m.theme.Name))
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.currentView == ViewHome {
			m.currentView = ViewDemo
		} else {
			m.currentView = ViewHome
		}
		return m, nil

	case key.Matches(msg, m.keys.ViewHome):
		m.currentView = ViewHome
		return m, nil

	case key.Matches(msg, m.keys.ViewDemo):
		m.currentView = ViewDemo
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewHome
		return m, nil
	}

	if m.currentView == ViewDemo {
		return m.handleDemoKey(msg)
	}
	return m, nil
}

// setTheme switches the active theme and persists the choice.
func (m *Model) setTheme(name string) {
	m.theme = GetTheme(name)
	m.loading.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
	}
	m.syncResponse()
}

// layout resizes the response viewport to the space left over by the header,
// nav bar, footer and the backend/actions sections.
func (m *Model) layout() {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	chrome := 3 + // header, nav, footer
		len(m.panel.Presets()) + 4 + // backend section with border
		3 // actions row with border
	height := m.height - chrome
	if height < 3 {
		height = 3
	}
	m.responseView.Width = width
	m.responseView.Height = height
}

// Messages

type resolutionMsg panel.Resolution

// Commands

func runCmd(ctx context.Context, run func(context.Context) panel.Resolution) tea.Cmd {
	return func() tea.Msg {
		return resolutionMsg(run(ctx))
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Panel == nil {
		return fmt.Errorf("ui requires a demo panel")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
