package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptySection reports a section without any row.
	ErrEmptySection = errors.New("model: section must contain at least one row")
	// ErrRowOverflow reports a row wider than WidthBudget.
	ErrRowOverflow = errors.New("model: row width exceeds 100%")
	// ErrDuplicateID reports a section or field id used twice.
	ErrDuplicateID = errors.New("model: duplicate id")
)

// IsRowOverflowing reports whether the row exceeds the width budget.
func IsRowOverflowing(row Row) bool {
	return !FitsBudget(RowWidth(row))
}

// IsLastRow reports whether removing rowIndex would leave the section without
// rows. Out-of-range indexes are never the last row.
func IsLastRow(section Section, rowIndex int) bool {
	if rowIndex < 0 || rowIndex >= len(section.Rows) {
		return false
	}
	return len(section.Rows) == 1
}

// FieldRef locates a field inside a form.
type FieldRef struct {
	SectionIndex int
	RowIndex     int
	Column       int
	Field        Field
}

// Fields returns every field in section, row, column order.
func (f Form) Fields() []FieldRef {
	var out []FieldRef
	for si, section := range f.Sections {
		for ri, row := range section.Rows {
			for ci, field := range row {
				out = append(out, FieldRef{SectionIndex: si, RowIndex: ri, Column: ci, Field: field})
			}
		}
	}
	return out
}

// FindField looks a field up by id.
func (f Form) FindField(id string) (FieldRef, bool) {
	for _, ref := range f.Fields() {
		if ref.Field.ID == id {
			return ref, true
		}
	}
	return FieldRef{}, false
}

// SectionIndex returns the position of the section with the given id or -1.
func (f Form) SectionIndex(id string) int {
	for idx, section := range f.Sections {
		if section.ID == id {
			return idx
		}
	}
	return -1
}

// IndexOf returns the column of the field with the given id or -1.
func (r Row) IndexOf(fieldID string) int {
	for idx, field := range r {
		if field.ID == fieldID {
			return idx
		}
	}
	return -1
}

// CheckStructure validates the structural invariants of a loaded form: ids
// present and unique, known types and sizes, at least one row per section
// and no overflowing row. Publish-time content checks live in pkg/validation.
func CheckStructure(form Form) error {
	seen := make(map[string]struct{})
	claim := func(kind, id string) error {
		if strings.TrimSpace(id) == "" {
			return fmt.Errorf("model: %s id is required", kind)
		}
		if _, exists := seen[id]; exists {
			return fmt.Errorf("%w: %s %q", ErrDuplicateID, kind, id)
		}
		seen[id] = struct{}{}
		return nil
	}

	for si, section := range form.Sections {
		if err := claim("section", section.ID); err != nil {
			return err
		}
		if len(section.Rows) == 0 {
			return fmt.Errorf("%w: section %d (%q)", ErrEmptySection, si+1, section.Label)
		}
		for ri, row := range section.Rows {
			if IsRowOverflowing(row) {
				return fmt.Errorf("%w: section %q row %d is %.2f%%", ErrRowOverflow, section.Label, ri+1, RowWidth(row))
			}
			for _, field := range row {
				if err := claim("field", field.ID); err != nil {
					return err
				}
				if !field.Type.Valid() {
					return fmt.Errorf("model: field %q has unknown type %q", field.ID, field.Type)
				}
				if !field.Size.Valid() {
					return fmt.Errorf("model: field %q has unknown size %q", field.ID, field.Size)
				}
			}
		}
	}
	return nil
}
