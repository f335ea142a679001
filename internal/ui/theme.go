package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string
	Surface    string

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Outcome phase badge colors, keyed by panel.Phase.String()
	PhaseColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		PanelFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		ErrorBlock: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Foreground(lipgloss.Color(t.Danger)).
			Padding(0, 1),

		phaseColors: t.PhaseColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style

	Panel      lipgloss.Style
	PanelFocus lipgloss.Style
	ErrorBlock lipgloss.Style

	phaseColors map[string]string
	background  string
	muted       string
}

// PhaseStyle returns a badge style for the given outcome phase.
func (s Styles) PhaseStyle(phase string) lipgloss.Style {
	color := s.phaseColors[phase]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// Theme definitions

var themes = map[string]Theme{
	"Basil":   basilTheme(),
	"Saffron": saffronTheme(),
	"Slate":   slateTheme(),
}

var themeOrder = []string{"Basil", "Saffron", "Slate"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return basilTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func basilTheme() Theme {
	return Theme{
		Name: "Basil",

		Background: "#0e1310",
		Surface:    "#15201a",

		Border:      "#2c4034",
		BorderFocus: "#7fbf8e",

		Text:    "#d6e3d6",
		Muted:   "#7d8f82",
		Faint:   "#5a685e",
		Accent:  "#7fbf8e",
		Success: "#8fd4a8",
		Warning: "#e3c578",
		Danger:  "#e07a7a",
		Info:    "#79c0c8",

		PhaseColors: map[string]string{
			"idle":    "#7d8f82",
			"loading": "#79c0c8",
			"success": "#8fd4a8",
			"failure": "#e07a7a",
		},
	}
}

func saffronTheme() Theme {
	return Theme{
		Name: "Saffron",

		Background: "#191410",
		Surface:    "#221b14",

		Border:      "#453627",
		BorderFocus: "#e0a458",

		Text:    "#ead9c9",
		Muted:   "#9a8672",
		Faint:   "#6e6054",
		Accent:  "#e0a458",
		Success: "#a3c585",
		Warning: "#e8c35c",
		Danger:  "#d96c5f",
		Info:    "#8fb8c8",

		PhaseColors: map[string]string{
			"idle":    "#9a8672",
			"loading": "#8fb8c8",
			"success": "#a3c585",
			"failure": "#d96c5f",
		},
	}
}

func slateTheme() Theme {
	return Theme{
		Name: "Slate",

		Background: "#11141a",
		Surface:    "#191e26",

		Border:      "#323a46",
		BorderFocus: "#7a9ec2",

		Text:    "#d2d8e0",
		Muted:   "#828c99",
		Faint:   "#5c6672",
		Accent:  "#7a9ec2",
		Success: "#86b89b",
		Warning: "#d8bd76",
		Danger:  "#cc6b77",
		Info:    "#76b3bd",

		PhaseColors: map[string]string{
			"idle":    "#828c99",
			"loading": "#76b3bd",
			"success": "#86b89b",
			"failure": "#cc6b77",
		},
	}
}
