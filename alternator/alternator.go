package alternator

import "fmt"

// Rearrange — alternate positives and negatives
//
// Description:
//
//	Builds a new slice in which the strictly positive and strictly
//	negative elements of input alternate, positive first, each class
//	in its original relative order. The surplus of the longer class is
//	appended unchanged once the shorter one is exhausted.
//
// Algorithm Outline:
//  1. Partition input into positives (x > 0) and negatives (x < 0).
//  2. While both cursors are in bounds emit positives[i], negatives[j].
//  3. Append the remaining tail of whichever partition is left.
//
// Edge cases:
//   - empty input     → empty, non-nil slice
//   - single-sign     → that partition in original order
//   - zero / NaN      → dropped (both comparisons are false)
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(n)
func Rearrange[T Number](input []T) []T {
	pos, neg := Partition(input)

	return Interleave(pos, neg)
}

// RearrangeWith is Rearrange with a configurable leading sign.
//
// Errors:
//   - ErrInvalidSign — opts.Lead is not a known Sign.
func RearrangeWith[T Number](input []T, opts Options) ([]T, error) {
	pos, neg := Partition(input)
	switch opts.Lead {
	case Positive:
		return Interleave(pos, neg), nil
	case Negative:
		return Interleave(neg, pos), nil
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSign, int(opts.Lead))
	}
}

// Partition splits input into its strictly positive and strictly negative
// elements in a single pass. Both results preserve input order and never
// alias input.
func Partition[T Number](input []T) (positives, negatives []T) {
	var zero T
	positives = make([]T, 0, len(input))
	negatives = make([]T, 0, len(input))
	for _, v := range input {
		switch {
		case v > zero:
			positives = append(positives, v)
		case v < zero:
			negatives = append(negatives, v)
		}
	}

	return positives, negatives
}

// Interleave merges a and b by taking one element from each in turn,
// starting with a. When either runs out the rest of the other is
// appended in order. The result is always a fresh, non-nil slice.
func Interleave[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		out = append(out, a[i], b[j])
		i++
		j++
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)

	return out
}

// IsAlternating reports whether seq has the shape Rearrange produces:
// no zero or NaN values, signs strictly alternating until the first
// pair of equal neighbours, and a single-sign tail from there on.
// Either sign may open the sequence.
func IsAlternating[T Number](seq []T) bool {
	var zero T
	tail := 0 // sign of the surplus tail once alternation stops; 0 while alternating
	prev := 0
	for _, v := range seq {
		s := 0
		switch {
		case v > zero:
			s = 1
		case v < zero:
			s = -1
		default:
			return false
		}
		if tail != 0 {
			if s != tail {
				return false
			}
		} else if s == prev {
			tail = s
		}
		prev = s
	}

	return true
}
