package tui

import "github.com/charmbracelet/lipgloss"

var (
	green       = lipgloss.Color("#2E7D32")
	lightGreen  = lipgloss.Color("#8BC34A")
	muted       = lipgloss.Color("#7A869A")
	destructive = lipgloss.Color("#E53935")
	border      = lipgloss.Color("#C8E6C9")
)

// Styles holds every lipgloss style the dashboard renders with.
type Styles struct {
	Brand       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Title       lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Card        lipgloss.Style
	CardValue   lipgloss.Style
	Panel       lipgloss.Style
	Dialog      lipgloss.Style
	Button      lipgloss.Style
	ButtonOff   lipgloss.Style
	Danger      lipgloss.Style
	Label       lipgloss.Style
	FocusLabel  lipgloss.Style
	ProgressOn  lipgloss.Style
	ProgressOff lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Brand:       lipgloss.NewStyle().Bold(true).Foreground(green).PaddingRight(2),
		Tab:         lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		ActiveTab:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(green).Padding(0, 1),
		Title:       lipgloss.NewStyle().Bold(true).Foreground(green),
		Muted:       lipgloss.NewStyle().Foreground(muted),
		Error:       lipgloss.NewStyle().Foreground(destructive),
		Success:     lipgloss.NewStyle().Foreground(green),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1).Width(24),
		CardValue:   lipgloss.NewStyle().Bold(true).Foreground(green),
		Panel:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1),
		Dialog:      lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(destructive).Padding(1, 2),
		Button:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(green).Padding(0, 1),
		ButtonOff:   lipgloss.NewStyle().Foreground(muted).Background(lipgloss.Color("#E0E0E0")).Padding(0, 1),
		Danger:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(destructive).Padding(0, 1),
		Label:       lipgloss.NewStyle().Foreground(muted).Width(16),
		FocusLabel:  lipgloss.NewStyle().Bold(true).Foreground(green).Width(16),
		ProgressOn:  lipgloss.NewStyle().Foreground(lightGreen),
		ProgressOff: lipgloss.NewStyle().Foreground(border),
	}
}
