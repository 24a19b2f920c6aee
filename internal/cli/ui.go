package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorDim   = lipgloss.Color("240")
)

// ui writes styled status lines. Colors are only emitted when out is a
// terminal.
type ui struct {
	out     io.Writer
	success lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
}

func newUI(out io.Writer) *ui {
	r := lipgloss.NewRenderer(out)
	return &ui{
		out:     out,
		success: r.NewStyle().Foreground(colorGreen),
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
	}
}

func (u *ui) printSuccess(format string, args ...any) {
	fmt.Fprintln(u.out, u.success.Render("✓")+" "+fmt.Sprintf(format, args...))
}

func (u *ui) printTitle(text string) {
	fmt.Fprintln(u.out, u.title.Render(text))
}

func (u *ui) printDetail(format string, args ...any) {
	fmt.Fprintln(u.out, "  "+u.dim.Render(fmt.Sprintf(format, args...)))
}

func (u *ui) println(text string) {
	fmt.Fprintln(u.out, text)
}
