package fill_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/fill"
	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

type stubDriver struct {
	inputs    []string
	selectIdx []int
	confirm   []bool

	defaults     []string
	selectOpts   [][]string
	selectDefs   []int
	infoMessages []string

	inputPos   int
	selectPos  int
	confirmPos int
}

func (s *stubDriver) Input(_ context.Context, cfg fill.InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	s.defaults = append(s.defaults, cfg.Default)
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ fill.ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg fill.SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	s.selectOpts = append(s.selectOpts, cfg.Options)
	s.selectDefs = append(s.selectDefs, cfg.DefaultIndex)
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestFill_CreateReprompts(t *testing.T) {
	form := testsupport.SampleForm()
	driver := &stubDriver{
		// name, email (bad then good), age (bad then good), start
		inputs:    []string{"Ada", "nope", "ada@example.com", "abc", "36", ""},
		selectIdx: []int{2},
	}
	got, err := fill.New(driver).Fill(context.Background(), form, validation.Compile(form), render.Options{})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := map[string]any{"name": "Ada", "email": "ada@example.com", "age": 36.0, "plan": "Pro"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	wantInfo := []string{"Contact", "Email: " + validation.MessageEmail, "Age: " + validation.MessageNumber}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{fill.SkipOption, "Basic", "Pro"}}, driver.selectOpts); diff != "" {
		t.Fatalf("select options mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_RequiredFieldCannotBeSkipped(t *testing.T) {
	form := model.Form{Sections: []model.Section{{ID: "s", Rows: []model.Row{{
		{ID: "name", Label: "Name", Type: model.FieldTypeText, Size: model.SizeSmall, Required: true},
	}}}}}
	driver := &stubDriver{inputs: []string{"", "Grace"}}
	got, err := fill.New(driver).Fill(context.Background(), form, validation.Compile(form), render.Options{})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"name": "Grace"}, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if driver.infoMessages[1] != "Name: "+validation.MessageRequired {
		t.Fatalf("messages = %v", driver.infoMessages)
	}
}

func TestFill_EditPrefills(t *testing.T) {
	form := testsupport.SampleForm()
	current := map[string]any{"name": "Ada", "email": "ada@example.com", "age": 36.0, "plan": "Basic"}
	driver := &stubDriver{
		inputs:    []string{"Ada Lovelace", "ada@example.com", "37", "2024-01-02"},
		selectIdx: []int{1},
	}
	got, err := fill.New(driver).Fill(context.Background(), form, validation.Compile(form), render.Options{Mode: model.ViewModeEdit, Values: current})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}

	if diff := cmp.Diff([]string{"Ada", "ada@example.com", "36", ""}, driver.defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1}, driver.selectDefs); diff != "" {
		t.Fatalf("select default mismatch (-want +got):\n%s", diff)
	}
	want := map[string]any{"name": "Ada Lovelace", "email": "ada@example.com", "age": 37.0, "plan": "Basic", "start": "2024-01-02"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_ViewModePrintsOnly(t *testing.T) {
	form := testsupport.SampleForm()
	current := map[string]any{"name": "Ada", "age": 36.0}
	driver := &stubDriver{}
	got, err := fill.New(driver).Fill(context.Background(), form, validation.Compile(form), render.Options{Mode: model.ViewModeView, Values: current})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff(current, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	want := []string{"Contact", "Full name: Ada", "Email: ", "Age: 36", "Plan: ", "Start date: "}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestFill_Confirm(t *testing.T) {
	form := model.Form{Sections: []model.Section{{ID: "s", Rows: []model.Row{{
		{ID: "note", Label: "Note", Type: model.FieldTypeText, Size: model.SizeSmall},
	}}}}}

	driver := &stubDriver{inputs: []string{"hi"}, confirm: []bool{false}}
	_, err := fill.New(driver, fill.WithConfirm(true)).Fill(context.Background(), form, validation.Compile(form), render.Options{})
	if !errors.Is(err, fill.ErrDiscarded) {
		t.Fatalf("expected ErrDiscarded, got %v", err)
	}

	driver = &stubDriver{inputs: []string{"hi"}, confirm: []bool{true}}
	got, err := fill.New(driver, fill.WithConfirm(true)).Fill(context.Background(), form, validation.Compile(form), render.Options{})
	if err != nil {
		t.Fatalf("fill: %v", err)
	}
	if diff := cmp.Diff(map[string]any{"note": "hi"}, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
