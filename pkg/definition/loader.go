package definition

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

type documentFile struct {
	Title     string        `json:"title" yaml:"title"`
	FormLabel string        `json:"formLabel" yaml:"formLabel"`
	ViewType  string        `json:"viewType" yaml:"viewType"`
	Sections  []sectionFile `json:"sections" yaml:"sections"`
}

type sectionFile struct {
	ID       string        `json:"id" yaml:"id"`
	Label    string        `json:"label" yaml:"label"`
	Expanded *bool         `json:"expanded" yaml:"expanded"`
	Rows     [][]fieldFile `json:"rows" yaml:"rows"`
}

type fieldFile struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Type     string   `json:"type" yaml:"type"`
	Size     string   `json:"size" yaml:"size"`
	Required bool     `json:"required" yaml:"required"`
	Options  []string `json:"options" yaml:"options"`
}

// Loader turns authoring files into forms.
type Loader struct {
	labeler Labeler
	newID   func() string
}

// Option customises a Loader.
type Option func(*Loader)

// WithLabeler overrides how missing field labels are derived.
func WithLabeler(labeler Labeler) Option {
	return func(l *Loader) {
		if labeler != nil {
			l.labeler = labeler
		}
	}
}

// WithIDGenerator overrides how missing section and field ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(l *Loader) {
		if gen != nil {
			l.newID = gen
		}
	}
}

// NewLoader builds a Loader with DefaultLabeler and uuid ids.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{labeler: DefaultLabeler, newID: uuid.NewString}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}
	return l
}

// Parse decodes a single authoring document with the default loader.
func Parse(source string, data []byte) (model.Form, error) {
	return NewLoader().Parse(source, data)
}

// LoadFile reads and parses the authoring file at path.
func (l *Loader) LoadFile(path string) (model.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("definition: read %s: %w", path, err)
	}
	return l.Parse(path, data)
}

// LoadFS walks fsys and parses every JSON/YAML file, keyed by path.
func (l *Loader) LoadFS(fsys fs.FS) (map[string]model.Form, error) {
	forms := make(map[string]model.Form)
	if fsys == nil {
		return forms, nil
	}
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}
		form, err := l.Parse(path, data)
		if err != nil {
			return err
		}
		forms[path] = form
		return nil
	})
	if err != nil {
		return nil, err
	}
	return forms, nil
}

// Parse decodes data as JSON, falling back to YAML, and normalises the
// result into a structurally valid form.
func (l *Loader) Parse(source string, data []byte) (model.Form, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return model.Form{}, err
	}
	form, err := l.normalise(doc, source)
	if err != nil {
		return model.Form{}, err
	}
	if err := model.CheckStructure(form); err != nil {
		return model.Form{}, fmt.Errorf("definition: %s: %w", source, err)
	}
	return form, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("definition: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("definition: parse %s: invalid JSON or YAML", source)
}

func (l *Loader) normalise(doc documentFile, source string) (model.Form, error) {
	form := model.NewForm()
	form.FormLabel = doc.FormLabel
	if strings.TrimSpace(doc.Title) != "" {
		form.FormLabel = doc.Title
	}
	mode, err := model.ParseViewMode(doc.ViewType)
	if err != nil {
		return model.Form{}, fmt.Errorf("definition: %s: %w", source, err)
	}
	form.ViewType = mode

	for si, rawSection := range doc.Sections {
		section := model.Section{
			ID:       strings.TrimSpace(rawSection.ID),
			Label:    rawSection.Label,
			Expanded: true,
			Rows:     make([]model.Row, 0, len(rawSection.Rows)),
		}
		if section.ID == "" {
			section.ID = l.newID()
		}
		if section.Label == "" {
			section.Label = fmt.Sprintf("Section %d", si+1)
		}
		if rawSection.Expanded != nil {
			section.Expanded = *rawSection.Expanded
		}
		if len(rawSection.Rows) == 0 {
			section.Rows = append(section.Rows, model.Row{})
		}
		for ri, rawRow := range rawSection.Rows {
			row := make(model.Row, 0, len(rawRow))
			for ci, rawField := range rawRow {
				field, err := l.normaliseField(rawField)
				if err != nil {
					return model.Form{}, fmt.Errorf("definition: %s: section %d row %d field %d: %w", source, si+1, ri+1, ci+1, err)
				}
				row = append(row, field)
			}
			section.Rows = append(section.Rows, row)
		}
		form.Sections = append(form.Sections, section)
	}
	return form, nil
}

func (l *Loader) normaliseField(raw fieldFile) (model.Field, error) {
	field := model.Field{
		ID:       strings.TrimSpace(raw.ID),
		Label:    raw.Label,
		Type:     model.FieldTypeText,
		Size:     model.SizeSmall,
		Required: raw.Required,
	}
	if raw.Type != "" {
		t, err := model.ParseFieldType(raw.Type)
		if err != nil {
			return model.Field{}, err
		}
		field.Type = t
	}
	if raw.Size != "" {
		s, err := model.ParseSize(raw.Size)
		if err != nil {
			return model.Field{}, err
		}
		field.Size = s
	}
	if field.Label == "" {
		field.Label = l.labeler(field.ID)
	}
	if field.ID == "" {
		field.ID = l.newID()
	}
	if field.Type == model.FieldTypeSelect {
		field.Options = append([]string{}, raw.Options...)
	}
	return field, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
