package layout

import (
	"errors"
	"fmt"
)

const (
	// ReasonLastRow is the user-facing message for a rejected row deletion.
	ReasonLastRow = "At least one row must exist in a section."
	// ReasonRowOverflow is the user-facing message for a rejected resize.
	ReasonRowOverflow = "Row width cannot exceed 100%. Resize or move fields to a new row."
)

var (
	// ErrLastRow signals an attempt to delete the only row of a section.
	ErrLastRow = errors.New("layout: last row")
	// ErrRowOverflow signals a change that would push a row past 100%.
	ErrRowOverflow = errors.New("layout: row overflow")
	// ErrUnknownReference signals a section, row, field or option that is not
	// part of the snapshot. Callers may treat it as a no-op.
	ErrUnknownReference = errors.New("layout: unknown reference")
	// ErrInvalidValue signals a size or field type outside the supported set.
	ErrInvalidValue = errors.New("layout: invalid value")
)

// Rejection is a business-rule refusal. The form handed to the operation is
// returned untouched alongside it.
type Rejection struct {
	Op     string
	Reason string
	Err    error
}

func (r *Rejection) Error() string {
	if r == nil {
		return ""
	}
	return r.Reason
}

func (r *Rejection) Unwrap() error {
	if r == nil {
		return nil
	}
	return r.Err
}

// AsRejection extracts a Rejection from err.
func AsRejection(err error) (*Rejection, bool) {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		return rejection, true
	}
	return nil, false
}

func reject(op, reason string, sentinel error) error {
	return &Rejection{Op: op, Reason: reason, Err: sentinel}
}

func unknown(op, format string, args ...any) error {
	return fmt.Errorf("layout: %s: %s: %w", op, fmt.Sprintf(format, args...), ErrUnknownReference)
}
