package sat

// Clause is an unordered collection of distinct literals stored as a small
// slice, watched on exactly two of its positions (component C). literals[0]
// and literals[1] are always the clause's two watched literals; for a learnt
// clause literals[0] is the asserting literal (the negation of the 1-UIP).
//
// Unit clauses (length 1) and the empty clause are never turned into a
// *Clause: they are handled directly by newClause and never reach the
// watcher machinery (see Solver.unitLiterals).
type Clause struct {
	literals []Literal
	learnt   bool

	// prevPos is the index propagate last found a replacement watch at. A
	// clause's irrelevant literals (positions 2..N) tend to resolve the same
	// way across repeated calls, so resuming the scan there instead of
	// always restarting at 2 avoids rescanning literals we already know are
	// false.
	prevPos int
}

// newClause normalizes lits (removing duplicate literals for non-learnt
// clauses; learnt clauses are built from a 1-UIP cut and are duplicate-free
// by construction) and, depending on the resulting size:
//
//   - 0: the clause is unsatisfiable on its own; ok is false.
//   - 1: the literal is recorded as a root-level fact and no Clause is
//     created; c is nil and ok is true, except for a non-learnt clause
//     whose literal is already false, for which ok is false.
//   - 2+: a watched Clause is created and installed in the watcher index.
func newClause(s *Solver, lits []Literal, learnt bool) (c *Clause, ok bool) {
	size := len(lits)

	if !learnt {
		seen := make(map[Literal]bool, size)
		for i := size - 1; i >= 0; i-- {
			if seen[lits[i]] {
				size--
				lits[i], lits[size] = lits[size], lits[i]
				continue
			}
			seen[lits[i]] = true
		}
		lits = lits[:size]
	}

	switch size {
	case 0:
		return nil, false
	case 1:
		if !learnt && s.LitValue(lits[0]) == False {
			return nil, false
		}
		s.unitLiterals = append(s.unitLiterals, lits[0])
		return nil, true
	default:
		c = &Clause{
			literals: append([]Literal(nil), lits...),
			learnt:   learnt,
			prevPos:  2,
		}
		if learnt {
			// Put the literal with the highest level (other than the
			// asserting one) at position 1, so the clause's second watch
			// sits on the literal that will resolve soonest.
			maxLevel, at := -1, 1
			for i := 1; i < len(c.literals); i++ {
				if lvl := s.level[c.literals[i].VarID()]; lvl > maxLevel {
					maxLevel, at = lvl, i
				}
			}
			c.literals[1], c.literals[at] = c.literals[at], c.literals[1]
		}
		s.Watch(c, c.literals[0].Opposite(), c.literals[1])
		s.Watch(c, c.literals[1].Opposite(), c.literals[0])
		return c, true
	}
}

// propagate is invoked when l has just become true, i.e. its negation (one
// of the clause's watched literals) has just become false. It returns true
// if the clause is satisfied, still has two non-false watches (possibly
// after moving one), or became unit and its other watched literal
// literals[0] was enqueued. It returns false only when the clause is now
// falsified: no replacement watch exists and literals[0] is already false.
func (c *Clause) propagate(s *Solver, l Literal) bool {
	opp := l.Opposite()
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if s.LitValue(c.literals[0]) == True {
		s.Watch(c, l, c.literals[0])
		return true
	}

	if c.prevPos >= len(c.literals) {
		c.prevPos = 2
	}
	for i := c.prevPos; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			c.prevPos = i + 1
			s.Watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}
	for i := 2; i < c.prevPos; i++ {
		if s.LitValue(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], c.literals[1]
			c.prevPos = i + 1
			s.Watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	s.Watch(c, l, c.literals[0])
	return s.enqueue(c.literals[0], c)
}

// AntecedentsOf returns {not l' : l' in c, l' != forced}, written into buf's
// storage (buf's previous contents are discarded).
// forced must be c.literals[0], the clause's currently-asserted literal.
func (c *Clause) AntecedentsOf(buf []Literal) []Literal {
	out := buf[:0]
	for _, lit := range c.literals[1:] {
		out = append(out, lit.Opposite())
	}
	return out
}

// AntecedentsOfConflict returns {not l' : l' in c, l' != confLit}, written
// into buf's storage (buf's previous contents are discarded). confLit is the clause's literal that is currently false and whose
// watcher scan discovered the clause is fully falsified.
func (c *Clause) AntecedentsOfConflict(confLit Literal, buf []Literal) []Literal {
	out := buf[:0]
	for _, lit := range c.literals {
		if lit == confLit {
			continue
		}
		out = append(out, lit.Opposite())
	}
	return out
}

func (c *Clause) String() string {
	s := ""
	for i, lit := range c.literals {
		if i > 0 {
			s += " "
		}
		s += lit.String()
	}
	return s
}
