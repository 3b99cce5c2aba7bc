// Package ticket issues and verifies zoo entrance tickets.
//
// A Ticket groups the guests admitted together on one date; each guest
// pays by age bracket (Pricing). Tickets are kept in a JSON flat file
// (Store) and can be listed or verified by ID. Session drives the whole
// workflow interactively over any io.Reader / io.Writer pair.
//
// Default pricing (INR):
//
//	age ≤ 2    →   0
//	age < 18   → 100
//	age < 60   → 500
//	otherwise  → 300
//
// Nothing in this package holds process-wide state: the input source,
// output sink and file path are always passed in.
package ticket
