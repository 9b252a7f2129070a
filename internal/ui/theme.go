package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string

	Border        string
	SelectionBg   string
	SelectionText string
}

// DefaultTheme returns the standard palette.
func DefaultTheme() Theme {
	return Theme{
		Name:          "Storefront",
		Text:          "#f8f8f2",
		Muted:         "#6272a4",
		Accent:        "#00a278",
		Success:       "#50fa7b",
		Warning:       "#f1fa8c",
		Danger:        "#ff5555",
		Border:        "#44475a",
		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",
	}
}

// Styles holds the Lipgloss styles derived from a Theme.
type Styles struct {
	Title        lipgloss.Style
	Text         lipgloss.Style
	MutedText    lipgloss.Style
	AccentText   lipgloss.Style
	SuccessText  lipgloss.Style
	WarningText  lipgloss.Style
	DangerText   lipgloss.Style
	SelectedRow  lipgloss.Style
	Pane         lipgloss.Style
	PaneTitle    lipgloss.Style
	NoticeWarn   lipgloss.Style
	NoticeError  lipgloss.Style
	NoticeInfo   lipgloss.Style
	CommandBar   lipgloss.Style
	SearchActive lipgloss.Style
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		SelectedRow: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		NoticeWarn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		NoticeError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),

		NoticeInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		CommandBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		SearchActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
	}
}
