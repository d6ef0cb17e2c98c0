// Package domain contains the studio platform's records and the pure rules
// around them: validated value objects (tenant slugs, e-mails, gallery codes),
// tier and role orderings, gallery and order state machines, and order total
// computation. Records are plain values; every transition returns the next
// record plus an optional event instead of mutating its receiver. Nothing in
// here talks to storage or the network.
package domain
