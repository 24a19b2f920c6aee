package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Fallback captions shown when the author left a label blank.
const (
	UntitledForm    = "Untitled Form"
	UntitledSection = "Section"
	EmptyRow        = "(Empty row)"
	SelectPrompt    = "Select an option"
)

// View is the presentation of a form shared by every renderer.
type View struct {
	FormID      string
	Title       string
	Mode        model.ViewMode
	ReadOnly    bool
	SubmitLabel string
	Action      string
	Sections    []SectionView
}

// SectionView is one section of a View.
type SectionView struct {
	ID       string
	Label    string
	Expanded bool
	Rows     []RowView
}

// RowView is one row of a SectionView. Width is the rounded row width.
type RowView struct {
	Width  float64
	Empty  bool
	Fields []FieldView
}

// FieldView is one field of a RowView.
type FieldView struct {
	ID       string
	Label    string
	Type     model.FieldType
	Size     model.Size
	Width    float64
	Required bool
	Options  []string
	Value    string
	Errors   []string
}

// NewView builds the presentation of form for the given options. Labels pass
// through clean, which renderers use to strip markup.
func NewView(form model.Form, opts Options, clean func(string) string) View {
	if clean == nil {
		clean = strings.TrimSpace
	}
	mode := opts.Mode
	if mode == "" {
		mode = model.ViewModeCreate
	}
	view := View{
		FormID:   form.ID,
		Title:    fallback(clean(form.FormLabel), UntitledForm),
		Mode:     mode,
		ReadOnly: mode == model.ViewModeView,
		Action:   opts.Action,
		Sections: make([]SectionView, 0, len(form.Sections)),
	}
	switch mode {
	case model.ViewModeCreate:
		view.SubmitLabel = "Submit"
	case model.ViewModeEdit:
		view.SubmitLabel = "Save Changes"
	}

	for _, section := range form.Sections {
		sv := SectionView{
			ID:       section.ID,
			Label:    fallback(clean(section.Label), UntitledSection),
			Expanded: section.Expanded,
			Rows:     make([]RowView, 0, len(section.Rows)),
		}
		for _, row := range section.Rows {
			rv := RowView{Width: model.RowWidth(row), Empty: len(row) == 0}
			for _, field := range row {
				rv.Fields = append(rv.Fields, FieldView{
					ID:       field.ID,
					Label:    fallback(clean(field.Label), field.ID),
					Type:     field.Type,
					Size:     field.Size,
					Width:    model.SizeToPercent(field.Size),
					Required: field.Required,
					Options:  cleanAll(field.Options, clean),
					Value:    FormatValue(opts.Values[field.ID]),
					Errors:   NormalizeMessages(opts.Errors[field.ID]),
				})
			}
			sv.Rows = append(sv.Rows, rv)
		}
		view.Sections = append(view.Sections, sv)
	}
	return view
}

// FormatValue renders a stored value for display. Whole numbers drop their
// decimal point.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// NormalizeMessages trims messages and removes blanks and duplicates while
// preserving order.
func NormalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(messages))
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		trimmed := strings.TrimSpace(msg)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func fallback(value, alt string) string {
	if value == "" {
		return alt
	}
	return value
}

func cleanAll(values []string, clean func(string) string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = clean(v)
	}
	return out
}
