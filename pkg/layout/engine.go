package layout

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// IDGenerator produces identifiers for new sections and fields.
type IDGenerator func() string

// Option configures the Engine.
type Option func(*Engine)

// WithIDGenerator overrides the default UUID generator.
func WithIDGenerator(gen IDGenerator) Option {
	return func(e *Engine) {
		if gen != nil {
			e.newID = gen
		}
	}
}

// Engine applies layout edits to immutable form snapshots. Each operation
// returns a new Form that shares every untouched section, row and field
// slice with its input; on error the input form is returned as is.
type Engine struct {
	newID IDGenerator
}

// New constructs an Engine.
func New(options ...Option) *Engine {
	e := &Engine{newID: uuid.NewString}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// Reset returns the default empty draft.
func (e *Engine) Reset() model.Form {
	return model.NewForm()
}

// SetTitle replaces the form label verbatim.
func (e *Engine) SetTitle(form model.Form, title string) (model.Form, error) {
	form.FormLabel = title
	return form, nil
}

// NewField returns a field with the builder defaults: text, sm, optional.
func (e *Engine) NewField() model.Field {
	return model.Field{
		ID:   e.newID(),
		Type: model.FieldTypeText,
		Size: model.SizeSmall,
	}
}

// AddSection appends "Section N" holding one empty row.
func (e *Engine) AddSection(form model.Form) (model.Form, error) {
	section := model.Section{
		ID:       e.newID(),
		Label:    fmt.Sprintf("Section %d", len(form.Sections)+1),
		Expanded: true,
		Rows:     []model.Row{{}},
	}
	sections := make([]model.Section, len(form.Sections), len(form.Sections)+1)
	copy(sections, form.Sections)
	form.Sections = append(sections, section)
	return form, nil
}

// DeleteSection removes the section. Unknown ids leave the form unchanged.
func (e *Engine) DeleteSection(form model.Form, sectionID string) (model.Form, error) {
	idx := form.SectionIndex(sectionID)
	if idx < 0 {
		return form, nil
	}
	sections := make([]model.Section, 0, len(form.Sections)-1)
	sections = append(sections, form.Sections[:idx]...)
	form.Sections = append(sections, form.Sections[idx+1:]...)
	return form, nil
}

// RenameSection replaces the section label verbatim.
func (e *Engine) RenameSection(form model.Form, sectionID, label string) (model.Form, error) {
	return e.updateSection("rename section", form, sectionID, func(section model.Section) (model.Section, error) {
		section.Label = label
		return section, nil
	})
}

// ToggleSection records the expanded state of a section.
func (e *Engine) ToggleSection(form model.Form, sectionID string, expanded bool) (model.Form, error) {
	return e.updateSection("toggle section", form, sectionID, func(section model.Section) (model.Section, error) {
		section.Expanded = expanded
		return section, nil
	})
}

// AddRow appends an empty row to the section.
func (e *Engine) AddRow(form model.Form, sectionID string) (model.Form, error) {
	return e.updateSection("add row", form, sectionID, func(section model.Section) (model.Section, error) {
		rows := make([]model.Row, len(section.Rows), len(section.Rows)+1)
		copy(rows, section.Rows)
		section.Rows = append(rows, model.Row{})
		return section, nil
	})
}

// DeleteRow removes a row; the only row of a section is never removed.
func (e *Engine) DeleteRow(form model.Form, sectionID string, rowIndex int) (model.Form, error) {
	const op = "delete row"
	return e.updateSection(op, form, sectionID, func(section model.Section) (model.Section, error) {
		if rowIndex < 0 || rowIndex >= len(section.Rows) {
			return section, unknown(op, "section %q has no row %d", sectionID, rowIndex)
		}
		if model.IsLastRow(section, rowIndex) {
			return section, reject(op, ReasonLastRow, ErrLastRow)
		}
		section.Rows = removeRow(section.Rows, rowIndex)
		return section, nil
	})
}

// AddField places a default field after the fields of the target row, or
// in a new row right below it when a sm field no longer fits.
func (e *Engine) AddField(form model.Form, sectionID string, rowIndex int) (model.Form, error) {
	return e.InsertField(form, sectionID, rowIndex, e.NewField())
}

// InsertField applies the AddField placement rule to a caller-built field.
func (e *Engine) InsertField(form model.Form, sectionID string, rowIndex int, field model.Field) (model.Form, error) {
	const op = "add field"
	return e.updateSection(op, form, sectionID, func(section model.Section) (model.Section, error) {
		if rowIndex < 0 || rowIndex >= len(section.Rows) {
			return section, unknown(op, "section %q has no row %d", sectionID, rowIndex)
		}
		row := section.Rows[rowIndex]
		if model.CanAppend(model.RowWidth(row), field.Size) {
			grown := make(model.Row, len(row), len(row)+1)
			copy(grown, row)
			section.Rows = replaceRow(section.Rows, rowIndex, append(grown, field))
			return section, nil
		}
		section.Rows = insertRow(section.Rows, rowIndex+1, model.Row{field})
		return section, nil
	})
}

// DeleteField removes a field. A row left empty is pruned unless it is the
// only row of its section.
func (e *Engine) DeleteField(form model.Form, sectionID string, rowIndex int, fieldID string) (model.Form, error) {
	const op = "delete field"
	return e.updateSection(op, form, sectionID, func(section model.Section) (model.Section, error) {
		col, err := locateField(op, section, sectionID, rowIndex, fieldID)
		if err != nil {
			return section, err
		}
		row := section.Rows[rowIndex]
		shrunk := make(model.Row, 0, len(row)-1)
		shrunk = append(shrunk, row[:col]...)
		shrunk = append(shrunk, row[col+1:]...)
		if len(shrunk) == 0 && len(section.Rows) > 1 {
			section.Rows = removeRow(section.Rows, rowIndex)
			return section, nil
		}
		section.Rows = replaceRow(section.Rows, rowIndex, shrunk)
		return section, nil
	})
}

// ResizeField changes a field's size. Growing a field requires room for the
// full new share on top of the row's current width, so a lone lg field cannot
// jump to xl; shrinking is always accepted.
func (e *Engine) ResizeField(form model.Form, sectionID string, rowIndex int, fieldID string, size model.Size) (model.Form, error) {
	const op = "resize field"
	if !size.Valid() {
		return form, fmt.Errorf("layout: %s: size %q: %w", op, size, ErrInvalidValue)
	}
	return e.updateSection(op, form, sectionID, func(section model.Section) (model.Section, error) {
		col, err := locateField(op, section, sectionID, rowIndex, fieldID)
		if err != nil {
			return section, err
		}
		row := section.Rows[rowIndex]
		field := row[col]
		if model.SizeToPercent(size) > model.SizeToPercent(field.Size) && !model.CanAppend(model.RowWidth(row), size) {
			return section, reject(op, ReasonRowOverflow, ErrRowOverflow)
		}
		field.Size = size
		section.Rows = replaceRow(section.Rows, rowIndex, replaceField(row, col, field))
		return section, nil
	})
}

// RetypeField changes the field type. Select fields keep (or start) an option
// list; every other type drops it.
func (e *Engine) RetypeField(form model.Form, sectionID string, rowIndex int, fieldID string, fieldType model.FieldType) (model.Form, error) {
	if !fieldType.Valid() {
		return form, fmt.Errorf("layout: retype field: type %q: %w", fieldType, ErrInvalidValue)
	}
	return e.updateField("retype field", form, sectionID, rowIndex, fieldID, func(field model.Field) (model.Field, error) {
		field.Type = fieldType
		if fieldType == model.FieldTypeSelect {
			options := make([]string, len(field.Options))
			copy(options, field.Options)
			field.Options = options
			return field, nil
		}
		field.Options = nil
		return field, nil
	})
}

// RelabelField replaces the field label verbatim.
func (e *Engine) RelabelField(form model.Form, sectionID string, rowIndex int, fieldID, label string) (model.Form, error) {
	return e.updateField("relabel field", form, sectionID, rowIndex, fieldID, func(field model.Field) (model.Field, error) {
		field.Label = label
		return field, nil
	})
}

// SetFieldRequired toggles the required flag.
func (e *Engine) SetFieldRequired(form model.Form, sectionID string, rowIndex int, fieldID string, required bool) (model.Form, error) {
	return e.updateField("set required", form, sectionID, rowIndex, fieldID, func(field model.Field) (model.Field, error) {
		field.Required = required
		return field, nil
	})
}

// AddOption appends an option to a select field.
func (e *Engine) AddOption(form model.Form, sectionID string, rowIndex int, fieldID, option string) (model.Form, error) {
	const op = "add option"
	return e.updateField(op, form, sectionID, rowIndex, fieldID, func(field model.Field) (model.Field, error) {
		if field.Type != model.FieldTypeSelect {
			return field, unknown(op, "field %q is not a select", fieldID)
		}
		options := make([]string, len(field.Options), len(field.Options)+1)
		copy(options, field.Options)
		field.Options = append(options, option)
		return field, nil
	})
}

// EditOption replaces the option at index.
func (e *Engine) EditOption(form model.Form, sectionID string, rowIndex int, fieldID string, index int, option string) (model.Form, error) {
	const op = "edit option"
	return e.updateField(op, form, sectionID, rowIndex, fieldID, func(field model.Field) (model.Field, error) {
		if index < 0 || index >= len(field.Options) {
			return field, unknown(op, "field %q has no option %d", fieldID, index)
		}
		options := make([]string, len(field.Options))
		copy(options, field.Options)
		options[index] = option
		field.Options = options
		return field, nil
	})
}

// DeleteOption removes the option at index.
func (e *Engine) DeleteOption(form model.Form, sectionID string, rowIndex int, fieldID string, index int) (model.Form, error) {
	const op = "delete option"
	return e.updateField(op, form, sectionID, rowIndex, fieldID, func(field model.Field) (model.Field, error) {
		if index < 0 || index >= len(field.Options) {
			return field, unknown(op, "field %q has no option %d", fieldID, index)
		}
		options := make([]string, 0, len(field.Options)-1)
		options = append(options, field.Options[:index]...)
		field.Options = append(options, field.Options[index+1:]...)
		return field, nil
	})
}

func (e *Engine) updateSection(op string, form model.Form, sectionID string, fn func(model.Section) (model.Section, error)) (model.Form, error) {
	idx := form.SectionIndex(sectionID)
	if idx < 0 {
		return form, unknown(op, "section %q", sectionID)
	}
	section, err := fn(form.Sections[idx])
	if err != nil {
		return form, err
	}
	sections := make([]model.Section, len(form.Sections))
	copy(sections, form.Sections)
	sections[idx] = section
	form.Sections = sections
	return form, nil
}

func (e *Engine) updateField(op string, form model.Form, sectionID string, rowIndex int, fieldID string, fn func(model.Field) (model.Field, error)) (model.Form, error) {
	return e.updateSection(op, form, sectionID, func(section model.Section) (model.Section, error) {
		col, err := locateField(op, section, sectionID, rowIndex, fieldID)
		if err != nil {
			return section, err
		}
		row := section.Rows[rowIndex]
		field, err := fn(row[col])
		if err != nil {
			return section, err
		}
		section.Rows = replaceRow(section.Rows, rowIndex, replaceField(row, col, field))
		return section, nil
	})
}

func locateField(op string, section model.Section, sectionID string, rowIndex int, fieldID string) (int, error) {
	if rowIndex < 0 || rowIndex >= len(section.Rows) {
		return -1, unknown(op, "section %q has no row %d", sectionID, rowIndex)
	}
	col := section.Rows[rowIndex].IndexOf(fieldID)
	if col < 0 {
		return -1, unknown(op, "field %q not in row %d", fieldID, rowIndex)
	}
	return col, nil
}

func replaceRow(rows []model.Row, idx int, row model.Row) []model.Row {
	out := make([]model.Row, len(rows))
	copy(out, rows)
	out[idx] = row
	return out
}

func insertRow(rows []model.Row, idx int, row model.Row) []model.Row {
	out := make([]model.Row, 0, len(rows)+1)
	out = append(out, rows[:idx]...)
	out = append(out, row)
	return append(out, rows[idx:]...)
}

func removeRow(rows []model.Row, idx int) []model.Row {
	out := make([]model.Row, 0, len(rows)-1)
	out = append(out, rows[:idx]...)
	return append(out, rows[idx+1:]...)
}

func replaceField(row model.Row, idx int, field model.Field) model.Row {
	out := make(model.Row, len(row))
	copy(out, row)
	out[idx] = field
	return out
}
