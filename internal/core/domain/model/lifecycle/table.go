package lifecycle

import "slices"

// Table is a directed graph of allowed status transitions. A status with no
// outgoing edges is terminal.
type Table[S comparable] map[S][]S

// Allows reports whether from -> to is an edge of the table.
func (t Table[S]) Allows(from, to S) bool {
	return slices.Contains(t[from], to)
}

// Targets returns a copy of the statuses reachable in one step from from.
func (t Table[S]) Targets(from S) []S {
	return slices.Clone(t[from])
}

// IsTerminal reports whether no transition leaves s.
func (t Table[S]) IsTerminal(s S) bool {
	return len(t[s]) == 0
}
