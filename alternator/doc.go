// Package alternator rearranges a sequence of signed numbers so that
// positive and negative values alternate one-for-one.
//
// 🚀 What does it do?
//
//	Given  [-3, 1, 2, 4, -6, 8, -8, -1]
//	it returns [1, -3, 2, -6, 4, -8, 8, -1].
//
//	The positives keep their relative input order, and so do the
//	negatives. Once the shorter class runs out, the rest of the longer
//	class is appended as-is:
//
//	[-3, 1, 2, 4, -6, 8, -8, -1, -3, -4, -5, -6, -7]
//	  → [1, -3, 2, -6, 4, -8, 8, -1, -3, -4, -5, -6, -7]
//
// ✨ Key features:
//   - generic over every signed integer and float type (Number)
//   - pure: the input is never mutated, a fresh slice is returned
//   - total: no error path, empty input yields an empty result
//   - zero (and NaN) is neither positive nor negative and is dropped
//   - choose which sign leads the alternation via Options.Lead
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/alternate/alternator"
//
//	out := alternator.Rearrange([]int{-3, 1, 2, 4, -6, 8, -8, -1})
//
//	opts := alternator.DefaultOptions()
//	opts.Lead = alternator.Negative
//	out, err := alternator.RearrangeWith(in, opts)
//
// Performance:
//
//   - Time:   O(n) — one partition pass plus one linear merge
//   - Memory: O(n) — two partition buffers and the output
//
// Concurrency: every call touches only its own input and output, so the
// functions may be called from many goroutines without synchronization.
package alternator
