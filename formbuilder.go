// Package formbuilder exposes the common entry points of the module: the
// form model, the layout engine, rule compilation, storage and HTML
// rendering.
package formbuilder

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/layout"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/store"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

type (
	Form     = model.Form
	Section  = model.Section
	Row      = model.Row
	Field    = model.Field
	Template = model.Template
	Response = model.Response

	// RenderOptions describes per-request values, errors and mode used by
	// renderers.
	RenderOptions = render.Options
)

// NewEngine exposes the layout engine constructor.
func NewEngine(options ...layout.Option) *layout.Engine {
	return layout.New(options...)
}

// Compile builds the validation rules of form.
func Compile(form Form) validation.Ruleset {
	return validation.Compile(form)
}

// LoadForm reads a YAML or JSON authoring file.
func LoadForm(path string) (Form, error) {
	return definition.NewLoader().LoadFile(path)
}

// OpenStore opens the configured KV backend and wraps it in a Store.
func OpenStore(ctx context.Context, cfg store.Config) (*store.Store, error) {
	kv, err := store.OpenKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return store.New(kv), nil
}

// RenderHTML renders form as an HTML page. themeCfg may be nil.
func RenderHTML(ctx context.Context, form Form, opts RenderOptions, themeCfg *theme.RendererConfig) ([]byte, error) {
	renderer, err := html.New(html.WithTheme(themeCfg))
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, form, opts)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can
// extend them.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// EmbeddedAssets exposes the default stylesheet.
func EmbeddedAssets() fs.FS {
	return html.AssetsFS()
}
