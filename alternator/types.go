package alternator

import "golang.org/x/exp/constraints"

// Number is any signed numeric type: the classification into positive
// and negative only makes sense where values below zero exist.
type Number interface {
	constraints.Signed | constraints.Float
}

// Sign selects which class of values opens the alternation.
//
//   - Positive — output starts with the first positive value (default).
//   - Negative — output starts with the first negative value.
type Sign int

const (
	// Positive leads: p0, n0, p1, n1, ...
	Positive Sign = iota

	// Negative leads: n0, p0, n1, p1, ...
	Negative
)

// String implements fmt.Stringer.
func (s Sign) String() string {
	switch s {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// Options configures RearrangeWith.
//
// Fields:
//   - Lead — the sign whose first element opens the output.
type Options struct {
	Lead Sign
}

// DefaultOptions returns the options used by Rearrange.
func DefaultOptions() Options {
	return Options{Lead: Positive}
}
