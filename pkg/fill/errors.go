package fill

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("fill: aborted")
	// ErrDiscarded signals the user declined to submit the collected answers.
	ErrDiscarded = errors.New("fill: submission discarded")
)
