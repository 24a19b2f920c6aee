package formbuilder

import (
	"context"
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/store"
)

func TestFacade_LoadPublishRender(t *testing.T) {
	ctx := context.Background()
	form, err := LoadForm("pkg/definition/testdata/contact.yaml")
	if err != nil {
		t.Fatalf("load form: %v", err)
	}
	if rules := Compile(form); rules.Len() != 5 {
		t.Fatalf("rules = %d", rules.Len())
	}

	st, err := OpenStore(ctx, store.Config{Driver: store.DriverMemory})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	if _, err := st.SaveTemplate(ctx, Template{ID: "contact", Title: form.FormLabel, Config: form}); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := RenderHTML(ctx, form, RenderOptions{}, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "<h1 class=\"fb-title\">Contact</h1>") {
		t.Fatalf("unexpected html:\n%s", out)
	}
}

func TestFacade_EmbeddedFiles(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/form.tpl"); err != nil {
		t.Fatalf("form template: %v", err)
	}
	if _, err := fs.ReadFile(EmbeddedAssets(), "formbuilder.css"); err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	eng := NewEngine()
	if form := eng.Reset(); len(form.Sections) != 0 {
		t.Fatalf("reset form = %+v", form)
	}
}
