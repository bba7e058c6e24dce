package report

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for console output
type Theme struct {
	Title    lipgloss.Style
	Kmer     lipgloss.Style
	Count    lipgloss.Style
	Position lipgloss.Style
	Match    lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
	Levels   map[string]lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	Kmer:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	Count:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("221")),
	Position: lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Match:    lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("212")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Error:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	Levels: map[string]lipgloss.Style{
		"Identical": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
		"Low":       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("148")),
		"Medium":    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		"High":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	},
}

func (t Theme) level(name string) lipgloss.Style {
	if s, ok := t.Levels[name]; ok {
		return s
	}
	return t.Dim
}
