package alternator

import "errors"

var (
	// ErrInvalidSign indicates Options.Lead is neither Positive nor Negative.
	ErrInvalidSign = errors.New("alternator: lead sign must be Positive or Negative")
)
