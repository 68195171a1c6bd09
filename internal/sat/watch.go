package sat

// watcher is one entry of a literal's watch list: a clause watching that
// literal, plus a guard literal of the clause. When the guard is true the
// clause cannot possibly be unit or falsified, so Solver.Propagate can skip
// calling into the clause entirely.
type watcher struct {
	clause *Clause
	guard  Literal
}

// Watch registers c as watching the given literal, i.e. c will be revisited
// whenever watch becomes true (the clause literal it negates becomes false).
// guard is another literal of c, used to skip the clause cheaply while it is
// true.
func (s *Solver) Watch(c *Clause, watch, guard Literal) {
	s.watchers[watch] = append(s.watchers[watch], watcher{clause: c, guard: guard})
}

// There is no move_watch as a single operation: Solver.Propagate drains a
// literal's whole watch list up front and re-appends the entries whose guard
// is true, and Clause.propagate re-registers every other visited entry
// through Watch, under the same literal or a new one.
