package definition_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestLoadFile_MatchesSample(t *testing.T) {
	form, err := definition.NewLoader().LoadFile("testdata/contact.yaml")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if diff := cmp.Diff(testsupport.SampleForm(), form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_JSONDefaults(t *testing.T) {
	loader := definition.NewLoader(definition.WithIDGenerator(testsupport.SequentialIDs("gen")))
	raw := []byte(`{
  "formLabel": "Enrolment",
  "viewType": "edit",
  "sections": [
    {"expanded": false, "rows": [[{"id": "studentName"}, {"label": "Notes", "size": "md"}]]},
    {"label": "Empty"}
  ]
}`)
	form, err := loader.Parse("enrol.json", raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := model.Form{
		FormLabel: "Enrolment",
		ViewType:  model.ViewModeEdit,
		Sections: []model.Section{
			{
				ID:       "gen-1",
				Label:    "Section 1",
				Expanded: false,
				Rows: []model.Row{{
					{ID: "studentName", Label: "Student Name", Type: model.FieldTypeText, Size: model.SizeSmall},
					{ID: "gen-2", Label: "Notes", Type: model.FieldTypeText, Size: model.SizeMedium},
				}},
			},
			{ID: "gen-3", Label: "Empty", Expanded: true, Rows: []model.Row{{}}},
		},
	}
	if diff := cmp.Diff(want, form); diff != "" {
		t.Fatalf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		raw    string
		target error
	}{
		"empty":    {raw: "   "},
		"garbage":  {raw: "{: ["},
		"type":     {raw: "sections:\n  - rows:\n      - - id: a\n          type: checkbox\n"},
		"size":     {raw: "sections:\n  - rows:\n      - - id: a\n          size: huge\n"},
		"mode":     {raw: "viewType: print\n"},
		"overflow": {raw: "sections:\n  - id: s\n    rows:\n      - - {id: a, size: xl}\n        - {id: b}\n", target: model.ErrRowOverflow},
		"dup":      {raw: "sections:\n  - id: s\n    rows:\n      - - {id: a}\n        - {id: a}\n", target: model.ErrDuplicateID},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := definition.Parse(name+".yaml", []byte(tc.raw))
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.target != nil && !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
		})
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/a.yaml":   {Data: []byte("title: A\n")},
		"forms/b.json":   {Data: []byte(`{"title": "B"}`)},
		"forms/notes.md": {Data: []byte("# ignored")},
	}
	forms, err := definition.NewLoader().LoadFS(fsys)
	if err != nil {
		t.Fatalf("LoadFS: %v", err)
	}
	got := map[string]string{}
	for path, form := range forms {
		got[path] = form.FormLabel
	}
	want := map[string]string{"forms/a.yaml": "A", "forms/b.json": "B"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("forms mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"fullName":   "Full Name",
		"start_date": "Start Date",
		"address-2":  "Address 2",
		"line2Text":  "Line 2 Text",
		"":           "",
	}
	for in, want := range cases {
		if got := definition.DefaultLabeler(in); got != want {
			t.Errorf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}
