package sat

import "github.com/rhartert/yagh"

// DecisionOrder is component E: a max-priority heap over unassigned
// variables keyed by a VSIDS-style activity score. Activity is bumped for
// every variable touched while building a learnt clause and the bump amount
// itself grows geometrically every conflict (BUMP_FACTOR), which has the
// same effect as decaying older scores without having to touch them all.
type DecisionOrder struct {
	heap *yagh.IntMap[float64]

	scores []float64
	bump   float64
	factor float64

	// phases holds the last value each variable was assigned, consulted on
	// the next decision only when phaseSaving is enabled. The baseline
	// leaves phaseSaving off and always decides positive.
	phases      []LBool
	phaseSaving bool
}

// NewDecisionOrder builds an empty decision order. factor is the
// per-conflict growth rate applied to the bump amount (BUMP_FACTOR); values
// close to but above 1 (e.g. 1/0.95) make recently-involved variables
// dominate the heap.
func NewDecisionOrder(factor float64, phaseSaving bool) *DecisionOrder {
	return &DecisionOrder{
		heap:        yagh.New[float64](0),
		bump:        1,
		factor:      factor,
		phaseSaving: phaseSaving,
	}
}

// AddVariable registers a new variable with zero activity, immediately
// eligible for decision.
func (o *DecisionOrder) AddVariable() {
	v := len(o.scores)
	o.scores = append(o.scores, 0)
	o.phases = append(o.phases, Unknown)
	o.heap.GrowBy(1)
	o.heap.Put(v, 0)
}

// Reinsert makes v eligible for decision again after it has been unassigned,
// recording its last polarity for phase saving.
func (o *DecisionOrder) Reinsert(v int, wasTrue bool) {
	if o.phaseSaving {
		o.phases[v] = Lift(wasTrue)
	}
	o.heap.Put(v, -o.scores[v])
}

// Bump increases v's activity by the current bump amount, rescaling all
// activities down if the running total risks overflowing a float64.
func (o *DecisionOrder) Bump(v int) {
	o.scores[v] += o.bump
	if o.heap.Contains(v) {
		o.heap.Put(v, -o.scores[v])
	}
	if o.scores[v] > 1e100 {
		o.rescale()
	}
}

// Decay grows the bump amount by factor, to be called once per learnt
// clause (never once per variable bumped).
func (o *DecisionOrder) Decay() {
	o.bump *= o.factor
	if o.bump > 1e100 {
		o.rescale()
	}
}

func (o *DecisionOrder) rescale() {
	o.bump *= 1e-100
	for v, sc := range o.scores {
		sc *= 1e-100
		o.scores[v] = sc
		if o.heap.Contains(v) {
			o.heap.Put(v, -sc)
		}
	}
}

// PopUnassigned implements pop_unassigned: it extracts variables in
// decreasing activity order, discarding any that are already assigned,
// until it finds one that is free or the heap is exhausted.
func (o *DecisionOrder) PopUnassigned(valueOf func(int) LBool) (int, bool) {
	for {
		next, ok := o.heap.Pop()
		if !ok {
			return 0, false
		}
		if valueOf(next.Elem) != Unknown {
			continue
		}
		return next.Elem, true
	}
}

// Polarity reports the phase a fresh decision on v should take: the saved
// phase when phase saving is on and known, positive otherwise.
func (o *DecisionOrder) Polarity(v int) bool {
	if !o.phaseSaving {
		return true
	}
	return o.phases[v] != False
}
