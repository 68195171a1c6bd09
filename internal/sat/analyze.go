package sat

// This file implements component G: computing a learnt clause from a
// conflict via the fractional-weight 1-UIP construction.
//
// A conflict is discovered as a falsified clause together with the literal
// trigger whose assignment caused the watcher scan to find it. The
// analysis treats the conflict as one extra graph node, confLit = not
// trigger: a literal that is currently false, recorded into the graph only
// for the duration of this analysis, with antecedents {not l' : l' in
// conflict, l' != confLit}.
//
// 1. distribute(root, weights) pushes weight 1 from root through its
//    current-level antecedents, splitting it evenly among them at each
//    step, accumulating into weights[x] for every node x reached.
// 2. C1 = nodes with weights[x] == 1 after distribute(trigger).
// 3. C2 = nodes with weights[x] == 1 after distribute(confLit).
// 4. Candidates = (C1 intersect C2) \ {trigger, confLit}: nodes that fully
//    dominate both the path to trigger and the path to the conflict.
// 5. Starting at trigger, walk backward through current-level antecedents
//    (any deterministic choice of successor works) until a candidate is
//    hit, or until a node has no further current-level antecedents — which
//    can only be the level's decision literal, itself always a valid (if
//    trivial) dominator. That node is the first UIP.
// 6. find_cut(trigger) and find_cut(confLit) each walk the graph from
//    their root, stopping at (and contributing not x to the learnt clause
//    for) any node from a strictly lower level, and stopping without
//    contributing at the first UIP itself.
//
// Both walks are iterative (explicit stack) rather than recursive, since
// the implication graph's depth is bounded only by the number of variables.
func (s *Solver) Analyze(conflict *Clause, trigger Literal) []Literal {
	level := s.DecisionLevel()
	confLit := trigger.Opposite()

	fuip := s.firstUIP(trigger, confLit, conflict, level)

	s.seenVar.Clear()
	cut := make([]Literal, 1, 8)

	cut = s.findCut(trigger, fuip, confLit, conflict, level, cut)
	cut = s.findCut(confLit, fuip, confLit, conflict, level, cut)

	cut[0] = fuip.Opposite()

	for _, lit := range cut {
		s.BumpVarActivity(lit)
	}
	s.DecayVarActivity()

	return cut
}

// literalAntecedents returns the antecedents of x in the (possibly
// conflict-extended) implication graph, reusing s.tmpReason as scratch
// space. The result must be fully consumed before this is called again.
func (s *Solver) literalAntecedents(x, confLit Literal, conflict *Clause) []Literal {
	if x == confLit {
		s.tmpReason = conflict.AntecedentsOfConflict(confLit, s.tmpReason)
		return s.tmpReason
	}
	r := s.reason[x.VarID()]
	if r == nil {
		return nil
	}
	s.tmpReason = r.AntecedentsOf(s.tmpReason)
	return s.tmpReason
}

func (s *Solver) distribute(root, confLit Literal, conflict *Clause, level int, weights []float64, touched *[]Literal) {
	type frame struct {
		lit Literal
		w   float64
	}
	stack := []frame{{root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if weights[top.lit] == 0 {
			*touched = append(*touched, top.lit)
		}
		weights[top.lit] += top.w

		var atLevel []Literal
		for _, a := range s.literalAntecedents(top.lit, confLit, conflict) {
			if s.level[a.VarID()] == level {
				atLevel = append(atLevel, a)
			}
		}
		if len(atLevel) == 0 {
			continue
		}
		share := top.w / float64(len(atLevel))
		for _, a := range atLevel {
			stack = append(stack, frame{a, share})
		}
	}
}

func (s *Solver) firstUIP(trigger, confLit Literal, conflict *Clause, level int) Literal {
	n := len(s.assigns)
	if cap(s.weights) < n {
		s.weights = make([]float64, n)
	}
	weights := s.weights[:n]
	touched := s.weightTouched[:0]

	s.distribute(trigger, confLit, conflict, level, weights, &touched)
	inC1 := make(map[Literal]bool, len(touched))
	for _, t := range touched {
		if weights[t] == 1 {
			inC1[t] = true
		}
		weights[t] = 0
	}
	touched = touched[:0]

	s.distribute(confLit, confLit, conflict, level, weights, &touched)
	candidates := make(map[Literal]bool)
	for _, t := range touched {
		if weights[t] == 1 && inC1[t] && t != trigger && t != confLit {
			candidates[t] = true
		}
		weights[t] = 0
	}
	s.weightTouched = touched[:0]

	cur := trigger
	for !candidates[cur] {
		var next Literal
		found := false
		for _, a := range s.literalAntecedents(cur, confLit, conflict) {
			if s.level[a.VarID()] == level {
				next = a
				found = true
				break
			}
		}
		if !found {
			// cur has no further current-level antecedent: it is the
			// level's decision literal, a trivial (always valid) dominator.
			return cur
		}
		cur = next
	}
	return cur
}

// findCut walks from start, appending the negation of every node from a
// strictly lower level to cut and stopping recursion at fuip. seenVar
// (s.seenVar) is shared across the two calls for trigger and confLit so a
// node reachable from both contributes at most once.
func (s *Solver) findCut(start, fuip, confLit Literal, conflict *Clause, level int, cut []Literal) []Literal {
	stack := []Literal{start}
	s.seenVar.Add(start.VarID())
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if s.level[x.VarID()] < level {
			cut = append(cut, x.Opposite())
			continue
		}
		if x == fuip {
			continue
		}
		for _, a := range s.literalAntecedents(x, confLit, conflict) {
			v := a.VarID()
			if s.seenVar.Contains(v) {
				continue
			}
			s.seenVar.Add(v)
			stack = append(stack, a)
		}
	}
	return cut
}
