package gotemplate_test

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/render/template/gotemplate"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(templatesFS)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func TestRenderTemplate_WritesAndReturns(t *testing.T) {
	engine := newEngine(t)
	var buf bytes.Buffer
	got, err := engine.RenderTemplate("hello", map[string]any{"name": "  Ada "}, &buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Ada!\n" {
		t.Fatalf("result = %q", got)
	}
	if buf.String() != got {
		t.Fatalf("writer = %q, result = %q", buf.String(), got)
	}

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestGlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}))
	got, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging\n" {
		t.Fatalf("result = %q", got)
	}
}

func TestDomainFilters(t *testing.T) {
	engine := newEngine(t)
	data := struct {
		Fields []map[string]any `json:"fields"`
	}{
		Fields: []map[string]any{
			{"id": "abcdef", "size": 66.66, "type": "email"},
			{"id": "xy", "size": 100.0, "type": "select"},
		},
	}
	got, err := engine.RenderTemplate("widths", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "ab...ef=66.66%:email;xy=100%:select;\n"
	if got != want {
		t.Fatalf("result = %q, want %q", got, want)
	}
}

func TestRenderString_AndCustomFilter(t *testing.T) {
	engine := newEngine(t)
	name := "shout_" + strings.ReplaceAll(t.Name(), "/", "_")
	err := engine.RegisterFilter(name, func(input any, _ any) (any, error) {
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter(name, func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	got, err := engine.RenderString("{{ who|"+name+" }}", map[string]any{"who": "ada"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("result = %q", got)
	}
}
