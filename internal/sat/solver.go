package sat

import (
	"fmt"
	"io"
)

// Options configures a Solver's ambient, non-core behavior. None of these
// fields affect soundness or completeness; they tune the VSIDS heap and
// (optionally) phase saving.
type Options struct {
	// ActivityGrowth is the per-conflict growth factor applied to the
	// variable-activity bump amount (1/decay in the classic VSIDS
	// formulation). 0 selects a sane default.
	ActivityGrowth float64
	// PhaseSaving, when true, makes a fresh decision on a variable reuse the
	// polarity it last held instead of always defaulting to positive. Off
	// by default, matching the baseline's unconditional-restart design: a
	// full restart already throws away the trail, so saved phases are the
	// only memory of past search carried across restarts.
	PhaseSaving bool
}

// DefaultOptions is used by NewDefaultSolver.
var DefaultOptions = Options{ActivityGrowth: 1 / 0.95, PhaseSaving: false}

// Solver holds the full mutable state of a CDCL run: the assignment trail
// and decision levels (component A), the clause store and watcher index
// (components B and C), the decision heap (component E), and the scratch
// buffers used by propagation and conflict analysis (components F and G).
// The search loop itself (component H) lives in package search and only
// calls the exported methods below.
type Solver struct {
	constraints []*Clause
	learnts     []*Clause

	// unitLiterals holds every literal that was ever asserted as a length-1
	// clause, original or learnt. A full restart wipes the entire trail
	// including level 0, so these facts must be re-derived from scratch at
	// the start of every search round; Restart replays this slice into the
	// propagation queue before returning.
	unitLiterals []Literal

	order *DecisionOrder

	watchers  [][]watcher
	propQueue *Queue[Literal]

	assigns  []LBool
	trail    []Literal
	trailLim []int
	reason   []*Clause
	level    []int

	unsat bool

	Models [][]bool

	seenVar *ResetSet

	tmpWatchers []watcher
	tmpReason   []Literal

	weights       []float64
	weightTouched []Literal
}

// NewSolver returns an empty Solver configured by opts.
func NewSolver(opts Options) *Solver {
	growth := opts.ActivityGrowth
	if growth <= 1 {
		growth = DefaultOptions.ActivityGrowth
	}
	return &Solver{
		order:     NewDecisionOrder(growth, opts.PhaseSaving),
		propQueue: NewQueue[Literal](128),
		seenVar:   &ResetSet{},
	}
}

// NewDefaultSolver returns an empty Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// NumVariables returns the number of variables registered so far.
func (s *Solver) NumVariables() int {
	return len(s.level)
}

// NumAssigns returns the number of currently assigned variables.
func (s *Solver) NumAssigns() int {
	return len(s.trail)
}

// NumConstraints returns the number of original (non-learnt) clauses.
func (s *Solver) NumConstraints() int {
	return len(s.constraints)
}

// NumLearnts returns the number of learnt clauses recorded so far.
func (s *Solver) NumLearnts() int {
	return len(s.learnts)
}

// NumUnitFacts returns the number of unit clauses recorded in the
// unitLiterals roster so far (see Restart), original or learnt.
func (s *Solver) NumUnitFacts() int {
	return len(s.unitLiterals)
}

// DecisionLevel returns the number of decisions currently on the trail.
func (s *Solver) DecisionLevel() int {
	return len(s.trailLim)
}

// LoadUnsat reports whether the instance is already known unsatisfiable
// without any search: either an empty clause was added while loading the
// formula, or two of its unit facts directly contradicted each other when
// Restart last replayed them.
func (s *Solver) LoadUnsat() bool {
	return s.unsat
}

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v int) LBool {
	return s.assigns[PositiveLiteral(v)]
}

// LitValue returns the current value of literal l.
func (s *Solver) LitValue(l Literal) LBool {
	return s.assigns[l]
}

// AddVariable registers a new variable and returns its ID.
func (s *Solver) AddVariable() int {
	v := s.NumVariables()
	s.watchers = append(s.watchers, nil, nil)
	s.assigns = append(s.assigns, Unknown, Unknown)
	s.reason = append(s.reason, nil)
	s.level = append(s.level, -1)
	s.seenVar.Expand()
	s.order.AddVariable()
	return v
}

// AddClause adds an original (non-learnt) clause to the formula. It may
// only be called at the root decision level, since the baseline does not
// support adding clauses mid-search (no incremental solving).
func (s *Solver) AddClause(lits []Literal) error {
	if s.DecisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called at decision level %d, want 0", s.DecisionLevel())
	}
	c, ok := newClause(s, lits, false)
	if c != nil {
		s.constraints = append(s.constraints, c)
	}
	if !ok {
		s.unsat = true
	}
	return nil
}

// Record stores a freshly learnt clause (the output of Analyze) in the
// clause database.
func (s *Solver) Record(learnt []Literal) {
	c, ok := newClause(s, learnt, true)
	if !ok {
		panic("sat: learnt clause reduced to the empty clause, which cannot happen for a valid 1-UIP cut")
	}
	if c != nil {
		s.learnts = append(s.learnts, c)
	}
}

// enqueue assigns l true, recording from as its reason clause (nil for a
// decision or a root-level fact). It returns false if l was already false,
// i.e. this enqueue constitutes a conflict.
func (s *Solver) enqueue(l Literal, from *Clause) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		v := l.VarID()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[v] = s.DecisionLevel()
		s.reason[v] = from
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		return true
	}
}

// Decide implements pop_unassigned + assume: it picks the highest-activity
// unassigned variable, opens a new decision level, and assigns it.
func (s *Solver) Decide() {
	v, ok := s.order.PopUnassigned(s.VarValue)
	if !ok {
		panic("sat: Decide called with no unassigned variable remaining")
	}
	lit := NegativeLiteral(v)
	if s.order.Polarity(v) {
		lit = PositiveLiteral(v)
	}
	s.trailLim = append(s.trailLim, len(s.trail))
	s.enqueue(lit, nil)
}

// BumpVarActivity bumps the activity of l's variable.
func (s *Solver) BumpVarActivity(l Literal) {
	s.order.Bump(l.VarID())
}

// DecayVarActivity grows the bump amount applied by future calls to
// BumpVarActivity, to be called once per learnt clause.
func (s *Solver) DecayVarActivity() {
	s.order.Decay()
}

// undoOne retracts the most recent assignment on the trail.
func (s *Solver) undoOne() {
	l := s.trail[len(s.trail)-1]
	v := l.VarID()
	s.order.Reinsert(v, l.IsPositive())
	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[v] = nil
	s.level[v] = -1
	s.trail = s.trail[:len(s.trail)-1]
}

// Restart retracts every assignment back to the root level and re-derives
// every root-level fact (component A's unitLiterals roster), then leaves
// them queued for the next call to Propagate. This is the baseline's only
// way back from a conflict: it never backjumps to a partial decision level.
//
// Two unit facts can directly contradict each other (e.g. "1" and "-1" both
// recorded as root-level facts): enqueue rejects the second one outright,
// since its literal is already false. That is itself a conflict, just one
// that never goes through the watcher machinery, so it must be caught here
// rather than silently dropped.
func (s *Solver) Restart() {
	for len(s.trail) > 0 {
		s.undoOne()
	}
	s.trailLim = s.trailLim[:0]
	s.propQueue.Clear()
	for _, l := range s.unitLiterals {
		if !s.enqueue(l, nil) {
			s.unsat = true
			return
		}
	}
}

// WriteConstraints writes every unit fact in the unitLiterals roster
// (including learnt ones recorded so far) and every original (non-learnt)
// clause, one per line, as 1-indexed DIMACS signed integers terminated by 0. Used by the CLI's
// puzzle generator to emit a CNF file a plain DIMACS reader can parse back.
func (s *Solver) WriteConstraints(w io.Writer) error {
	writeLine := func(lits []Literal) error {
		for _, l := range lits {
			n := l.VarID() + 1
			if !l.IsPositive() {
				n = -n
			}
			if _, err := fmt.Fprintf(w, "%d ", n); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintln(w, "0")
		return err
	}
	for _, l := range s.unitLiterals {
		if err := writeLine([]Literal{l}); err != nil {
			return err
		}
	}
	for _, c := range s.constraints {
		if err := writeLine(c.literals); err != nil {
			return err
		}
	}
	return nil
}

// SaveModel copies the current complete assignment into s.Models. It panics
// if any variable is still unassigned.
func (s *Solver) SaveModel() {
	model := make([]bool, s.NumVariables())
	for v := range model {
		lb := s.VarValue(v)
		if lb == Unknown {
			panic("sat: SaveModel called with an unassigned variable")
		}
		model[v] = lb == True
	}
	s.Models = append(s.Models, model)
}
