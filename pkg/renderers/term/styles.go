package term

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

type styles struct {
	title    lipgloss.Style
	section  lipgloss.Style
	field    lipgloss.Style
	label    lipgloss.Style
	required lipgloss.Style
	value    lipgloss.Style
	hint     lipgloss.Style
	err      lipgloss.Style
	empty    lipgloss.Style
	submit   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(colorCyan),
		section:  r.NewStyle().Bold(true),
		field:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1),
		label:    r.NewStyle().Foreground(colorWhite),
		required: r.NewStyle().Foreground(colorRed),
		value:    r.NewStyle().Foreground(colorCyan),
		hint:     r.NewStyle().Foreground(colorGray),
		err:      r.NewStyle().Foreground(colorRed),
		empty:    r.NewStyle().Foreground(colorDim).Italic(true),
		submit:   r.NewStyle().Bold(true).Foreground(colorCyan),
	}
}
