package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/model"
)

// SequentialIDs returns a generator yielding prefix-1, prefix-2, ... so
// tests can predict ids handed out by the layout engine and the session.
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// SampleForm is a publishable two-row contact form covering every field type.
func SampleForm() model.Form {
	return model.Form{
		FormLabel: "Contact",
		ViewType:  model.ViewModeCreate,
		Sections: []model.Section{{
			ID:       "contact",
			Label:    "Contact details",
			Expanded: true,
			Rows: []model.Row{
				{
					{ID: "name", Label: "Full name", Type: model.FieldTypeText, Size: model.SizeMedium, Required: true},
					{ID: "email", Label: "Email", Type: model.FieldTypeEmail, Size: model.SizeMedium, Required: true},
				},
				{
					{ID: "age", Label: "Age", Type: model.FieldTypeNumber, Size: model.SizeSmall},
					{ID: "plan", Label: "Plan", Type: model.FieldTypeSelect, Size: model.SizeSmall, Options: []string{"Basic", "Pro"}},
					{ID: "start", Label: "Start date", Type: model.FieldTypeDate, Size: model.SizeSmall},
				},
			},
		}},
	}
}

// SampleTemplate wraps SampleForm in a template record with the given id.
func SampleTemplate(id string) model.Template {
	form := SampleForm()
	form.ID = id
	return model.Template{ID: id, Title: form.FormLabel, Config: form}
}

// MustLoadForm reads an authoring file into a Form.
func MustLoadForm(t *testing.T, path string) model.Form {
	t.Helper()

	form, err := LoadForm(path)
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	return form
}

// LoadForm reads an authoring file into a Form, returning an error for
// callers managing setup outside of *testing.T.
func LoadForm(path string) (model.Form, error) {
	if path == "" {
		return model.Form{}, errors.New("testsupport: form path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: read form: %w", err)
	}
	form, err := definition.Parse(path, data)
	if err != nil {
		return model.Form{}, fmt.Errorf("testsupport: parse form: %w", err)
	}
	return form, nil
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
