package model_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

func TestSizeToPercent(t *testing.T) {
	cases := map[model.Size]float64{
		model.SizeSmall:  33.33,
		model.SizeMedium: 50,
		model.SizeLarge:  66.66,
		model.SizeXL:     100,
		"":               33.33,
		"huge":           33.33,
	}
	for size, want := range cases {
		if got := model.SizeToPercent(size); got != want {
			t.Errorf("SizeToPercent(%q) = %v, want %v", size, got, want)
		}
	}
}

func TestRowWidth_RoundsToTwoDecimals(t *testing.T) {
	row := model.Row{
		{ID: "a", Size: model.SizeSmall},
		{ID: "b", Size: model.SizeSmall},
		{ID: "c", Size: model.SizeSmall},
	}
	if got := model.RowWidth(row); got != 99.99 {
		t.Fatalf("RowWidth = %v, want 99.99", got)
	}
	if model.IsRowOverflowing(row) {
		t.Fatalf("three sm fields must fit the budget")
	}

	wide := model.Row{{ID: "a", Size: model.SizeLarge}, {ID: "b", Size: model.SizeMedium}}
	if got := model.RowWidth(wide); got != 116.66 {
		t.Fatalf("RowWidth = %v, want 116.66", got)
	}
	if !model.IsRowOverflowing(wide) {
		t.Fatalf("lg+md must overflow")
	}
	if got := model.RowWidth(nil); got != 0 {
		t.Fatalf("empty row width = %v", got)
	}
}

func TestIsLastRow(t *testing.T) {
	single := model.Section{ID: "s", Rows: []model.Row{{}}}
	if !model.IsLastRow(single, 0) {
		t.Fatalf("only row must be the last row")
	}
	if model.IsLastRow(single, 3) {
		t.Fatalf("out of range index is not the last row")
	}
	double := model.Section{ID: "s", Rows: []model.Row{{}, {}}}
	if model.IsLastRow(double, 1) {
		t.Fatalf("section with two rows has no last row")
	}
}

func TestCheckStructure(t *testing.T) {
	valid := model.Form{
		FormLabel: "Contact",
		Sections: []model.Section{{
			ID:    "s1",
			Label: "Main",
			Rows: []model.Row{{
				{ID: "f1", Label: "Name", Type: model.FieldTypeText, Size: model.SizeMedium},
				{ID: "f2", Label: "Email", Type: model.FieldTypeEmail, Size: model.SizeMedium},
			}},
		}},
	}
	if err := model.CheckStructure(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	overflow := valid
	overflow.Sections = []model.Section{{
		ID:   "s1",
		Rows: []model.Row{{{ID: "f1", Type: model.FieldTypeText, Size: model.SizeXL}, {ID: "f2", Type: model.FieldTypeText, Size: model.SizeSmall}}},
	}}
	if err := model.CheckStructure(overflow); !errors.Is(err, model.ErrRowOverflow) {
		t.Fatalf("expected ErrRowOverflow, got %v", err)
	}

	empty := model.Form{Sections: []model.Section{{ID: "s1"}}}
	if err := model.CheckStructure(empty); !errors.Is(err, model.ErrEmptySection) {
		t.Fatalf("expected ErrEmptySection, got %v", err)
	}

	dup := model.Form{Sections: []model.Section{{
		ID:   "s1",
		Rows: []model.Row{{{ID: "s1", Type: model.FieldTypeText, Size: model.SizeSmall}}},
	}}}
	if err := model.CheckStructure(dup); !errors.Is(err, model.ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestFormFields_DocumentOrder(t *testing.T) {
	form := model.Form{Sections: []model.Section{
		{ID: "s1", Rows: []model.Row{{{ID: "a"}, {ID: "b"}}, {{ID: "c"}}}},
		{ID: "s2", Rows: []model.Row{{{ID: "d"}}}},
	}}
	var got []string
	for _, ref := range form.Fields() {
		got = append(got, ref.Field.ID)
	}
	if diff := cmp.Diff([]string{"a", "b", "c", "d"}, got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}

	ref, ok := form.FindField("c")
	if !ok || ref.SectionIndex != 0 || ref.RowIndex != 1 || ref.Column != 0 {
		t.Fatalf("FindField(c) = %+v, %v", ref, ok)
	}
	if idx := form.SectionIndex("s2"); idx != 1 {
		t.Fatalf("SectionIndex(s2) = %d", idx)
	}
}

func TestParseHelpers(t *testing.T) {
	if got, err := model.ParseFieldType(" Email "); err != nil || got != model.FieldTypeEmail {
		t.Fatalf("ParseFieldType = %q, %v", got, err)
	}
	if _, err := model.ParseFieldType("checkbox"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
	if got, err := model.ParseSize("XL"); err != nil || got != model.SizeXL {
		t.Fatalf("ParseSize = %q, %v", got, err)
	}
	if got, err := model.ParseViewMode(""); err != nil || got != model.ViewModeCreate {
		t.Fatalf("ParseViewMode = %q, %v", got, err)
	}
}

func TestShortIDAndRespondentName(t *testing.T) {
	if got := model.ShortID("0123456789abcdef", 4); got != "0123...cdef" {
		t.Fatalf("ShortID = %q", got)
	}
	if got := model.ShortID("short", 6); got != "short" {
		t.Fatalf("ShortID = %q", got)
	}

	form := model.Form{Sections: []model.Section{{ID: "s", Rows: []model.Row{{{ID: "f1"}, {ID: "f2"}}}}}}
	named := model.Response{ResponseID: "r1", Data: map[string]any{"fullName": "Ada", "f1": "x"}}
	if got := model.RespondentName(form, named); got != "Ada" {
		t.Fatalf("RespondentName = %q", got)
	}
	byField := model.Response{ResponseID: "r2", Data: map[string]any{"f1": "", "f2": "second"}}
	if got := model.RespondentName(form, byField); got != "second" {
		t.Fatalf("RespondentName = %q", got)
	}
	empty := model.Response{ResponseID: "r3"}
	if got := model.RespondentName(form, empty); got != "r3" {
		t.Fatalf("RespondentName = %q", got)
	}
}
