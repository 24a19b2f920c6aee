package validation_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func singleField(field model.Field) model.Form {
	return model.Form{
		FormLabel: "Signup",
		Sections:  []model.Section{{ID: "s1", Label: "Main", Rows: []model.Row{{field}}}},
	}
}

func TestCompile_EmptyForm(t *testing.T) {
	set := validation.Compile(model.NewForm())
	if set.Len() != 0 {
		t.Fatalf("expected empty ruleset, got %d rules", set.Len())
	}
	got, err := set.Validate(map[string]any{"stray": "value"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected unknown keys to be dropped, got %v", got)
	}
}

func TestCompile_RulesInDocumentOrder(t *testing.T) {
	form := model.Form{Sections: []model.Section{
		{ID: "s1", Rows: []model.Row{{
			{ID: "name", Type: model.FieldTypeText, Required: true},
			{ID: "age", Type: model.FieldTypeNumber},
		}}},
		{ID: "s2", Rows: []model.Row{{
			{ID: "mail", Type: model.FieldTypeEmail, Required: true},
			{ID: "born", Type: model.FieldTypeDate},
			{ID: "plan", Type: model.FieldTypeSelect, Options: []string{"a"}},
		}}},
	}}
	want := []validation.Rule{
		{FieldID: "name", Kind: validation.KindString, Required: true},
		{FieldID: "age", Kind: validation.KindNumber},
		{FieldID: "mail", Kind: validation.KindEmail, Required: true},
		{FieldID: "born", Kind: validation.KindString},
		{FieldID: "plan", Kind: validation.KindString},
	}
	if diff := cmp.Diff(want, validation.Compile(form).Rules()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestKindFor_CoversEveryFieldType(t *testing.T) {
	for _, ft := range model.FieldTypes() {
		if kind := validation.KindFor(ft); kind == "" {
			t.Fatalf("no kind for %q", ft)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unsupported type")
		}
	}()
	validation.KindFor("checkbox")
}

func TestValidate_RequiredEmail(t *testing.T) {
	set := validation.Compile(singleField(model.Field{ID: "f1", Label: "Email", Type: model.FieldTypeEmail, Required: true}))

	_, err := set.Validate(map[string]any{"f1": "not-an-email"})
	submission, ok := validation.AsSubmissionError(err)
	if !ok {
		t.Fatalf("expected SubmissionError, got %v", err)
	}
	if got := submission.Message("f1"); got != validation.MessageEmail {
		t.Fatalf("message = %q", got)
	}

	got, err := set.Validate(map[string]any{"f1": "a@b.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"f1": "a@b.com"}, got); diff != "" {
		t.Fatalf("parsed mismatch (-want +got):\n%s", diff)
	}

	_, err = set.Validate(map[string]any{"f1": ""})
	if submission, _ := validation.AsSubmissionError(err); submission.Message("f1") != validation.MessageRequired {
		t.Fatalf("expected required message, got %v", err)
	}
	_, err = set.Validate(map[string]any{})
	if submission, _ := validation.AsSubmissionError(err); submission.Message("f1") != validation.MessageRequired {
		t.Fatalf("expected required message for absent field, got %v", err)
	}
}

func TestValidate_OptionalNumber(t *testing.T) {
	set := validation.Compile(singleField(model.Field{ID: "n", Label: "Age", Type: model.FieldTypeNumber}))

	got, err := set.Validate(map[string]any{})
	if err != nil {
		t.Fatalf("absent optional number must pass: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no parsed values, got %v", got)
	}

	got, err = set.Validate(map[string]any{"n": " 42.5 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"n": 42.5}, got); diff != "" {
		t.Fatalf("parsed mismatch (-want +got):\n%s", diff)
	}

	got, err = set.Validate(map[string]any{"n": json.Number("7")})
	if err != nil || got["n"] != 7.0 {
		t.Fatalf("json.Number = %v, %v", got, err)
	}

	got, err = set.Validate(map[string]any{"n": nil})
	if err != nil {
		t.Fatalf("nil optional number must pass: %v", err)
	}
	if v, ok := got["n"]; !ok || v != nil {
		t.Fatalf("expected explicit nil to be kept, got %v", got)
	}

	for _, bad := range []any{"abc", "NaN", "Inf", true} {
		_, err := set.Validate(map[string]any{"n": bad})
		submission, ok := validation.AsSubmissionError(err)
		if !ok || submission.Message("n") != validation.MessageNumber {
			t.Fatalf("value %v: expected number message, got %v", bad, err)
		}
	}
}

func TestValidate_RequiredNumber(t *testing.T) {
	set := validation.Compile(singleField(model.Field{ID: "n", Label: "Age", Type: model.FieldTypeNumber, Required: true}))
	for _, empty := range []any{nil, ""} {
		_, err := set.Validate(map[string]any{"n": empty})
		if submission, _ := validation.AsSubmissionError(err); submission.Message("n") != validation.MessageRequired {
			t.Fatalf("value %#v: expected required message, got %v", empty, err)
		}
	}
	got, err := set.Validate(map[string]any{"n": 3})
	if err != nil || got["n"] != 3.0 {
		t.Fatalf("int input = %v, %v", got, err)
	}
}

func TestValidate_StringKinds(t *testing.T) {
	form := model.Form{FormLabel: "x", Sections: []model.Section{{ID: "s", Rows: []model.Row{{
		{ID: "t", Type: model.FieldTypeText, Required: true},
		{ID: "d", Type: model.FieldTypeDate},
		{ID: "o", Type: model.FieldTypeSelect, Required: true, Options: []string{"a", "b"}},
	}}}}}
	set := validation.Compile(form)

	_, err := set.Validate(map[string]any{"t": "", "d": 5, "o": ""})
	submission, ok := validation.AsSubmissionError(err)
	if !ok {
		t.Fatalf("expected SubmissionError, got %v", err)
	}
	want := map[string][]string{
		"t": {validation.MessageRequired},
		"d": {validation.MessageText},
		"o": {validation.MessageRequired},
	}
	if diff := cmp.Diff(want, submission.Fields); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), "t: This field is required") {
		t.Fatalf("error text = %q", err.Error())
	}

	got, err := set.Validate(map[string]any{"t": "hello", "d": "", "o": "b", "extra": 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"t": "hello", "d": "", "o": "b"}, got); diff != "" {
		t.Fatalf("parsed mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField(t *testing.T) {
	set := validation.Compile(singleField(model.Field{ID: "m", Type: model.FieldTypeEmail}))
	if _, msg := set.ValidateField("m", "nope"); msg != validation.MessageEmail {
		t.Fatalf("message = %q", msg)
	}
	if _, msg := set.ValidateField("m", ""); msg != "" {
		t.Fatalf("optional empty email must pass, got %q", msg)
	}
	if _, msg := set.ValidateField("unknown", 1); msg != "" {
		t.Fatalf("unknown field must pass, got %q", msg)
	}
}

func TestOpenAPISchema(t *testing.T) {
	form := model.Form{FormLabel: "Signup", Sections: []model.Section{{ID: "s", Rows: []model.Row{{
		{ID: "mail", Label: "Email", Type: model.FieldTypeEmail, Required: true},
		{ID: "age", Label: "Age", Type: model.FieldTypeNumber},
	}}}}}
	schema := validation.Compile(form).OpenAPISchema()
	if schema.Title != "Signup" {
		t.Fatalf("title = %q", schema.Title)
	}
	if diff := cmp.Diff([]string{"mail"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	age := schema.Properties["age"].Value
	if age == nil || !age.Nullable || age.Title != "Age" {
		t.Fatalf("age schema = %+v", age)
	}
	if err := schema.VisitJSON(map[string]any{"mail": "a@b.com", "age": 3.0}); err != nil {
		t.Fatalf("object schema rejected valid data: %v", err)
	}
	if err := schema.VisitJSON(map[string]any{"age": 3.0}); err == nil {
		t.Fatalf("object schema accepted missing required field")
	}

	raw, err := validation.Compile(form).MarshalOpenAPI()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"pattern"`) {
		t.Fatalf("expected email pattern in export: %s", raw)
	}
}

func TestCheckPublish_WhitespaceTitle(t *testing.T) {
	form := singleField(model.Field{ID: "f", Label: "Name", Type: model.FieldTypeText})
	form.FormLabel = "  "
	err := validation.CheckPublish(form)
	if !errors.Is(err, validation.ErrMissingTitle) {
		t.Fatalf("expected ErrMissingTitle, got %v", err)
	}
	publish, ok := validation.AsPublishError(err)
	if !ok || !strings.Contains(strings.ToLower(publish.Reason), "title") {
		t.Fatalf("reason = %v", err)
	}
}

func TestCheckPublish_SelectWithoutOptions(t *testing.T) {
	form := singleField(model.Field{ID: "plan", Label: "Plan", Type: model.FieldTypeSelect, Options: []string{}})
	err := validation.CheckPublish(form)
	if !errors.Is(err, validation.ErrMissingOptions) {
		t.Fatalf("expected ErrMissingOptions, got %v", err)
	}
	publish, _ := validation.AsPublishError(err)
	if publish.FieldID != "plan" || publish.Label != "Plan" || !strings.Contains(publish.Reason, "Plan") {
		t.Fatalf("publish error = %+v", publish)
	}
}

func TestCheckPublish_FirstOffenderInDocumentOrder(t *testing.T) {
	form := model.Form{FormLabel: "ok", Sections: []model.Section{{ID: "s", Rows: []model.Row{
		{{ID: "a", Label: "A", Type: model.FieldTypeSelect, Options: []string{"x", " "}}},
		{{ID: "b", Type: model.FieldTypeText}},
	}}}}
	err := validation.CheckPublish(form)
	if !errors.Is(err, validation.ErrEmptyOption) {
		t.Fatalf("expected ErrEmptyOption, got %v", err)
	}

	form.Sections[0].Rows[0][0].Options = []string{"x"}
	err = validation.CheckPublish(form)
	publish, ok := validation.AsPublishError(err)
	if !ok || !errors.Is(err, validation.ErrMissingLabel) || publish.FieldID != "b" {
		t.Fatalf("expected missing label on b, got %v", err)
	}

	form.Sections[0].Rows[1][0].Label = "B"
	if err := validation.CheckPublish(form); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
