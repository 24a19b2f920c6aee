package render

import "github.com/goliatone/go-formbuilder/pkg/model"

// Options describe per-request data renderers use without touching the form.
type Options struct {
	// Mode selects create, edit or view presentation. Empty means create.
	Mode model.ViewMode
	// Values pre-populates controls, keyed by field id.
	Values map[string]any
	// Errors surfaces validation feedback keyed by field id.
	Errors map[string][]string
	// Action is the submit target of HTML forms.
	Action string
}
