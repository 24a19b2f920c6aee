package store

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// PrettyData re-keys data by the current field labels of form. Fields with a
// blank label fall back to their id, values for fields no longer in the form
// are dropped and a repeated label is disambiguated with the field id.
func PrettyData(form model.Form, data map[string]any) map[string]any {
	if len(data) == 0 {
		return nil
	}
	pretty := make(map[string]any, len(data))
	for _, ref := range form.Fields() {
		value, ok := data[ref.Field.ID]
		if !ok {
			continue
		}
		key := strings.TrimSpace(ref.Field.Label)
		if key == "" {
			key = ref.Field.ID
		}
		if _, taken := pretty[key]; taken {
			key = key + " (" + ref.Field.ID + ")"
		}
		pretty[key] = value
	}
	if len(pretty) == 0 {
		return nil
	}
	return pretty
}
