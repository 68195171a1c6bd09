package sat

// Propagate drains the propagation queue, visiting each newly-assigned
// literal's watch list and asking every watched clause whether it has
// become unit or falsified. It returns the falsified clause and the literal
// whose assignment triggered the discovery on conflict, or (nil, 0) once
// the queue empties out with no conflict.
func (s *Solver) Propagate() (*Clause, Literal) {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		s.tmpWatchers = append(s.tmpWatchers[:0], s.watchers[l]...)
		s.watchers[l] = s.watchers[l][:0]

		for i, w := range s.tmpWatchers {
			if s.LitValue(w.guard) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}
			if w.clause.propagate(s, l) {
				continue
			}
			// w.clause found no new watch and enqueuing literals[0]
			// failed, meaning the clause is now fully falsified. This
			// watcher entry has already been re-homed by propagate via
			// Watch, and the remaining (unvisited) watchers of l must be
			// preserved before we stop.
			if s.LitValue(w.clause.literals[0]) == False {
				s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
				s.propQueue.Clear()
				return w.clause, l
			}
		}
	}
	return nil, 0
}
