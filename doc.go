// Package alternate collects two small, self-contained tools.
//
// 🚀 What is inside?
//
//	alternator/ — rearrange signed numbers so positives and negatives
//	              alternate one-for-one, each class keeping its order,
//	              with the surplus of the longer class appended
//	ticket/     — zoo entrance tickets: age-bracket pricing, a JSON
//	              flat-file store, table rendering and an interactive
//	              session over injected input/output
//	cmd/        — the alternate and zooticket command-line programs
//
// Quick example:
//
//	alternator.Rearrange([]int{-3, 1, 2, 4, -6, 8, -8, -1})
//	// → [1 -3 2 -6 4 -8 8 -1]
//
//	go get github.com/katalvlaran/alternate
package alternate
