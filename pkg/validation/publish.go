package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

var (
	// ErrMissingTitle signals a form published without a label.
	ErrMissingTitle = errors.New("validation: missing form title")
	// ErrMissingLabel signals a field without a label.
	ErrMissingLabel = errors.New("validation: missing field label")
	// ErrMissingOptions signals a select field with no options.
	ErrMissingOptions = errors.New("validation: select field without options")
	// ErrEmptyOption signals a select field with a blank option.
	ErrEmptyOption = errors.New("validation: empty select option")
)

// PublishError identifies the first field that blocks publishing. FieldID is
// empty when the form itself is at fault.
type PublishError struct {
	FieldID string
	Label   string
	Reason  string
	Err     error
}

func (e *PublishError) Error() string {
	if e == nil {
		return ""
	}
	return e.Reason
}

func (e *PublishError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CheckPublish verifies that form is complete enough to be saved as a
// template: it needs a title, every field needs a label and select fields
// need at least one non-blank option. Fields are checked in document order and
// the first offender is reported.
func CheckPublish(form model.Form) error {
	if strings.TrimSpace(form.FormLabel) == "" {
		return &PublishError{Reason: "Form title is required.", Err: ErrMissingTitle}
	}
	for _, ref := range form.Fields() {
		field := ref.Field
		label := strings.TrimSpace(field.Label)
		if label == "" {
			return &PublishError{
				FieldID: field.ID,
				Reason: fmt.Sprintf("Field %d in row %d of section %d needs a label.",
					ref.Column+1, ref.RowIndex+1, ref.SectionIndex+1),
				Err: ErrMissingLabel,
			}
		}
		if field.Type != model.FieldTypeSelect {
			continue
		}
		if len(field.Options) == 0 {
			return &PublishError{
				FieldID: field.ID,
				Label:   label,
				Reason:  fmt.Sprintf("Select field %q needs at least one option.", label),
				Err:     ErrMissingOptions,
			}
		}
		for _, option := range field.Options {
			if strings.TrimSpace(option) == "" {
				return &PublishError{
					FieldID: field.ID,
					Label:   label,
					Reason:  fmt.Sprintf("Select field %q has an empty option.", label),
					Err:     ErrEmptyOption,
				}
			}
		}
	}
	return nil
}

// AsPublishError extracts a PublishError from err.
func AsPublishError(err error) (*PublishError, bool) {
	var publish *PublishError
	if errors.As(err, &publish) {
		return publish, true
	}
	return nil, false
}

// AsSubmissionError extracts a SubmissionError from err.
func AsSubmissionError(err error) (*SubmissionError, bool) {
	var submission *SubmissionError
	if errors.As(err, &submission) {
		return submission, true
	}
	return nil, false
}
