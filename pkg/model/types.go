package model

import (
	"fmt"
	"strings"
	"time"
)

// FieldType is the closed set of input kinds a field can declare.
type FieldType string

const (
	FieldTypeText   FieldType = "text"
	FieldTypeNumber FieldType = "number"
	FieldTypeEmail  FieldType = "email"
	FieldTypeDate   FieldType = "date"
	FieldTypeSelect FieldType = "select"
)

// FieldTypes lists every supported field type in display order.
func FieldTypes() []FieldType {
	return []FieldType{FieldTypeText, FieldTypeNumber, FieldTypeEmail, FieldTypeDate, FieldTypeSelect}
}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeText, FieldTypeNumber, FieldTypeEmail, FieldTypeDate, FieldTypeSelect:
		return true
	default:
		return false
	}
}

// ParseFieldType normalises raw input into a FieldType.
func ParseFieldType(raw string) (FieldType, error) {
	t := FieldType(strings.ToLower(strings.TrimSpace(raw)))
	if !t.Valid() {
		return "", fmt.Errorf("model: unknown field type %q", raw)
	}
	return t, nil
}

// Size is the width category of a field inside its row.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
	SizeXL     Size = "xl"
)

// Sizes lists the size categories from narrowest to widest.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge, SizeXL}
}

// Valid reports whether s is a known size category.
func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeXL:
		return true
	default:
		return false
	}
}

// ParseSize normalises raw input into a Size.
func ParseSize(raw string) (Size, error) {
	s := Size(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("model: unknown field size %q", raw)
	}
	return s, nil
}

// ViewMode is the navigation mode a form is opened with.
type ViewMode string

const (
	ViewModeCreate ViewMode = "create"
	ViewModeEdit   ViewMode = "edit"
	ViewModeView   ViewMode = "view"
)

// ParseViewMode maps raw input to a ViewMode, defaulting to create.
func ParseViewMode(raw string) (ViewMode, error) {
	switch mode := ViewMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return ViewModeCreate, nil
	case ViewModeCreate, ViewModeEdit, ViewModeView:
		return mode, nil
	default:
		return "", fmt.Errorf("model: unknown view mode %q", raw)
	}
}

// Field models one input of the form. Options is only meaningful for select
// fields; nil means the field carries no option list at all.
type Field struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Size     Size      `json:"size"`
	Required bool      `json:"required"`
	Options  []string  `json:"options,omitempty"`
}

// Row is an ordered group of fields sharing the width budget.
type Row []Field

// Section is a named, collapsible group of rows.
type Section struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Expanded bool   `json:"expanded"`
	Rows     []Row  `json:"rows"`
}

// Form is the top-level layout document. ID stays empty until the form is
// saved for the first time.
type Form struct {
	ID        string    `json:"id,omitempty"`
	FormLabel string    `json:"formLabel"`
	ViewType  ViewMode  `json:"viewType,omitempty"`
	Sections  []Section `json:"sections"`
}

// Template is the persisted record of a published form.
type Template struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Config    Form      `json:"config"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
	Revision  int64     `json:"revision,omitempty"`
}

// Response is one submission stored against a template. Data is keyed by
// field id; Pretty is keyed by field label and derived at save time.
type Response struct {
	ResponseID string         `json:"responseId"`
	Data       map[string]any `json:"data"`
	Pretty     map[string]any `json:"pretty,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt,omitzero"`
}

// NewForm returns the default empty draft.
func NewForm() Form {
	return Form{
		ViewType: ViewModeCreate,
		Sections: []Section{},
	}
}
