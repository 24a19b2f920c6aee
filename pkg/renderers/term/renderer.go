package term

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
)

// DefaultWidth is the preview width in cells when none is configured.
const DefaultWidth = 80

type Option func(*Renderer)

// WithWidth sets the total width of a full row. Values below 20 are ignored.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width >= 20 {
			r.width = width
		}
	}
}

// WithOutput detects the color profile of w. Without it the preview is
// rendered without colors.
func WithOutput(w io.Writer) Option {
	return func(r *Renderer) {
		if w != nil {
			r.lg = lipgloss.NewRenderer(w)
		}
	}
}

// Renderer draws a form preview for terminals. Each field is a bordered box
// whose width follows its size share of the row.
type Renderer struct {
	width int
	lg    *lipgloss.Renderer
}

var _ render.Renderer = (*Renderer)(nil)

func New(options ...Option) *Renderer {
	r := &Renderer{width: DefaultWidth}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.lg == nil {
		r.lg = lipgloss.NewRenderer(io.Discard)
	}
	return r
}

func (r *Renderer) Name() string {
	return "term"
}

func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, form model.Form, options render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	view := render.NewView(form, options, stripControl)
	st := newStyles(r.lg)

	var blocks []string
	blocks = append(blocks, st.title.Render(view.Title))
	for _, section := range view.Sections {
		if !section.Expanded {
			blocks = append(blocks, st.section.Render("▸ "+section.Label)+" "+st.hint.Render("(collapsed)"))
			continue
		}
		blocks = append(blocks, st.section.Render("▾ "+section.Label))
		for _, row := range section.Rows {
			blocks = append(blocks, r.renderRow(st, view, row))
		}
	}
	if view.SubmitLabel != "" {
		blocks = append(blocks, st.submit.Render("[ "+view.SubmitLabel+" ]"))
	}
	return []byte(lipgloss.JoinVertical(lipgloss.Left, blocks...) + "\n"), nil
}

func (r *Renderer) renderRow(st styles, view render.View, row render.RowView) string {
	if row.Empty {
		return st.empty.Render("  " + render.EmptyRow)
	}
	boxes := make([]string, 0, len(row.Fields))
	for _, field := range row.Fields {
		boxes = append(boxes, r.renderField(st, view, field))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (r *Renderer) renderField(st styles, view render.View, field render.FieldView) string {
	// Border cells sit outside the styled width.
	width := int(float64(r.width)*field.Width/100) - 2
	if width < 4 {
		width = 4
	}

	label := st.label.Render(field.Label)
	if field.Required {
		label += st.required.Render(" *")
	}
	lines := []string{label, r.controlLine(st, view, field)}
	for _, msg := range field.Errors {
		lines = append(lines, st.err.Render("! "+msg))
	}
	return st.field.Width(width).Render(strings.Join(lines, "\n"))
}

func (r *Renderer) controlLine(st styles, view render.View, field render.FieldView) string {
	value := field.Value
	switch {
	case value != "":
		line := st.value.Render(value)
		if view.ReadOnly {
			return line
		}
		return line + " " + st.hint.Render(fmt.Sprintf("(%s)", field.Type))
	case field.Type == model.FieldTypeSelect:
		if len(field.Options) == 0 {
			return st.hint.Render(render.SelectPrompt)
		}
		return st.hint.Render(render.SelectPrompt + ": " + strings.Join(field.Options, " | "))
	default:
		return st.hint.Render(fmt.Sprintf("<%s>", field.Type))
	}
}

// stripControl trims labels and drops control characters that would break
// the box layout.
func stripControl(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, s))
}
