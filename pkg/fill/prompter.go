package fill

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

// SkipOption is offered first on optional select fields.
const SkipOption = "(skip)"

// Option configures a Prompter.
type Option func(*Prompter)

// WithConfirm asks for confirmation before returning the answers.
func WithConfirm(confirm bool) Option {
	return func(p *Prompter) {
		p.confirm = confirm
	}
}

// Prompter asks for every field of a form and returns the answers keyed by
// field id.
type Prompter struct {
	driver  PromptDriver
	confirm bool
}

// New constructs a Prompter. A nil driver falls back to survey on stdio
// with messages discarded.
func New(driver PromptDriver, options ...Option) *Prompter {
	if driver == nil {
		driver = NewSurveyDriver(nil)
	}
	p := &Prompter{driver: driver}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Fill walks form in document order. In view mode the current values are
// printed and returned unchanged. In edit mode opts.Values pre-fill every
// prompt. Answers are checked with rules, and rejected answers are prompted
// again with the failure message.
func (p *Prompter) Fill(ctx context.Context, form model.Form, rules validation.Ruleset, opts render.Options) (map[string]any, error) {
	view := render.NewView(form, opts, strings.TrimSpace)
	if err := p.driver.Info(ctx, view.Title); err != nil {
		return nil, err
	}

	if view.ReadOnly {
		for _, ref := range form.Fields() {
			label := fieldLabel(ref.Field)
			if err := p.driver.Info(ctx, fmt.Sprintf("%s: %s", label, render.FormatValue(opts.Values[ref.Field.ID]))); err != nil {
				return nil, err
			}
		}
		return copyValues(opts.Values), nil
	}

	values := make(map[string]any)
	for _, ref := range form.Fields() {
		value, keep, err := p.promptField(ctx, ref.Field, rules, opts.Values[ref.Field.ID])
		if err != nil {
			return nil, err
		}
		if keep {
			values[ref.Field.ID] = value
		}
	}

	if p.confirm {
		ok, err := p.driver.Confirm(ctx, ConfirmConfig{Message: view.SubmitLabel + "?", Default: true})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrDiscarded
		}
	}
	return values, nil
}

func (p *Prompter) promptField(ctx context.Context, field model.Field, rules validation.Ruleset, current any) (any, bool, error) {
	rule, _ := rules.Rule(field.ID)
	message := fieldLabel(field)
	if rule.Required {
		message += " *"
	}

	for {
		answer, err := p.ask(ctx, field, message, rule.Required, render.FormatValue(current))
		if err != nil {
			return nil, false, err
		}
		if !rule.Required && strings.TrimSpace(answer) == "" {
			return nil, false, nil
		}

		parsed, failure := rules.ValidateField(field.ID, answer)
		if failure != "" {
			if err := p.driver.Info(ctx, fmt.Sprintf("%s: %s", fieldLabel(field), failure)); err != nil {
				return nil, false, err
			}
			continue
		}
		return parsed, true, nil
	}
}

func (p *Prompter) ask(ctx context.Context, field model.Field, message string, required bool, current string) (string, error) {
	if field.Type != model.FieldTypeSelect || len(field.Options) == 0 {
		return p.driver.Input(ctx, InputConfig{
			Message: message,
			Default: current,
			Help:    string(field.Type),
		})
	}

	options := field.Options
	if !required {
		options = append([]string{SkipOption}, field.Options...)
	}
	idx, err := p.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: indexOf(options, current),
		Help:         render.SelectPrompt,
	})
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(options) {
		return "", errors.New("fill: selection out of range")
	}
	if !required && idx == 0 {
		return "", nil
	}
	return options[idx], nil
}

func fieldLabel(field model.Field) string {
	if label := strings.TrimSpace(field.Label); label != "" {
		return label
	}
	return field.ID
}

func copyValues(values map[string]any) map[string]any {
	out := make(map[string]any, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
