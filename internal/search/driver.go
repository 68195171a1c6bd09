// Package search implements component H: the CDCL driver loop that ties
// propagation, conflict analysis and decision-making together into a
// complete solve. It is kept separate from package sat so that the
// search policy (when to stop, how often to report stats) can change
// without touching the solver's core data structures.
package search

import (
	"time"

	"github.com/lemaire-dev/yasolve/internal/sat"
)

// Stats is a snapshot of search progress, reported through Options.OnStats.
type Stats struct {
	Iterations int64
	Conflicts  int64
	Restarts   int64
	Decisions  int64
	Elapsed    time.Duration
}

// Options configures the driver's stop conditions and progress reporting.
// None of these affect the result's correctness, only how long the search
// is allowed to run before giving up with Unknown.
type Options struct {
	// MaxConflicts bounds the number of conflicts the search may hit before
	// it gives up. Negative disables the bound.
	MaxConflicts int64
	// Timeout bounds wall-clock time. Negative disables the bound.
	Timeout time.Duration
	// StatsEvery, if positive, calls OnStats every that many iterations.
	StatsEvery int64
	OnStats    func(Stats)
}

// DefaultOptions runs to completion with periodic stats reporting and no
// OnStats callback registered.
var DefaultOptions = Options{MaxConflicts: -1, Timeout: -1, StatsEvery: 10000}

// Driver runs the baseline CDCL loop over a *sat.Solver: restart
// unconditionally after every learnt clause, never backjump to a partial
// decision level.
type Driver struct {
	solver *sat.Solver
	opts   Options
	stats  Stats
	start  time.Time
}

// NewDriver returns a Driver that will search s according to opts.
func NewDriver(s *sat.Solver, opts Options) *Driver {
	return &Driver{solver: s, opts: opts}
}

// Stats returns a snapshot of the driver's progress so far.
func (d *Driver) Stats() Stats {
	st := d.stats
	st.Elapsed = time.Since(d.start)
	return st
}

func (d *Driver) shouldStop() bool {
	if d.opts.MaxConflicts >= 0 && d.stats.Conflicts >= d.opts.MaxConflicts {
		return true
	}
	if d.opts.Timeout >= 0 && time.Since(d.start) >= d.opts.Timeout {
		return true
	}
	return false
}

// Solve runs the search loop to completion (or until a configured stop
// condition triggers) and returns True with a model recorded in
// s.Models, False, or Unknown.
//
//	restart()
//	loop:
//	  conflict := propagate()
//	  if conflict:
//	    if level == 0: return UNSAT
//	    learnt := analyze(conflict)
//	    record(learnt)
//	    restart()
//	  else:
//	    if every variable is assigned: return SAT
//	    decide()
func (d *Driver) Solve() sat.LBool {
	s := d.solver
	if s.LoadUnsat() {
		return sat.False
	}

	d.start = time.Now()
	s.Restart()
	if s.LoadUnsat() {
		return sat.False
	}

	for {
		d.stats.Iterations++
		if d.opts.OnStats != nil && d.opts.StatsEvery > 0 && d.stats.Iterations%d.opts.StatsEvery == 0 {
			d.opts.OnStats(d.Stats())
		}

		conflict, trigger := s.Propagate()
		if conflict != nil {
			d.stats.Conflicts++
			if s.DecisionLevel() == 0 {
				return sat.False
			}
			learnt := s.Analyze(conflict, trigger)
			s.Record(learnt)
			d.stats.Restarts++
			s.Restart()
			if s.LoadUnsat() {
				return sat.False
			}
			continue
		}

		if s.NumAssigns() == s.NumVariables() {
			s.SaveModel()
			s.Restart()
			return sat.True
		}

		if d.shouldStop() {
			return sat.Unknown
		}
		d.stats.Decisions++
		s.Decide()
	}
}
