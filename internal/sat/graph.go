package sat

// This file exposes the implication graph (component D) as a small set of
// named operations over the assignment trail. The graph has no separate
// storage of its own: a node is a currently-true literal, its level is the
// decision level at which it was forced, and its antecedents are given by
// its reason clause (nil for a decision or a root-level fact, meaning no
// antecedents).

// LevelOf returns the decision level at which l's variable was assigned.
// The result is meaningless if l is currently unassigned.
func (s *Solver) LevelOf(l Literal) int {
	return s.level[l.VarID()]
}

// InGraph reports whether l is currently a node of the implication graph,
// i.e. currently assigned true.
func (s *Solver) InGraph(l Literal) bool {
	return s.LitValue(l) == True
}

// ReasonClause returns the clause that forced l, or nil if l is a decision
// literal or a root-level fact.
func (s *Solver) ReasonClause(l Literal) *Clause {
	return s.reason[l.VarID()]
}
