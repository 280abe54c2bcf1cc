package bubble

import "github.com/charmbracelet/lipgloss"

// Styles controls how the field is drawn.
type Styles struct {
	Label       lipgloss.Style
	Symbol      lipgloss.Style
	Text        lipgloss.Style
	Caret       lipgloss.Style
	Placeholder lipgloss.Style
	Box         lipgloss.Style
	FocusedBox  lipgloss.Style
	Info        lipgloss.Style
	Warning     lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the stock look.
func DefaultStyles() Styles {
	return Styles{
		Label:       lipgloss.NewStyle().Bold(true),
		Symbol:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Text:        lipgloss.NewStyle(),
		Caret:       lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		FocusedBox:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
		Info:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Warning:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
