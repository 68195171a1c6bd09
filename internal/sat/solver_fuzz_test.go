package sat_test

import (
	"math/rand"
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/lemaire-dev/yasolve/internal/sat"
	"github.com/lemaire-dev/yasolve/internal/search"
)

// randomClauses generates count random clauses of width between 1 and 3 over
// numVars variables, as DIMACS-style signed variable IDs (1-based, negative
// for a negated literal).
func randomClauses(r *rand.Rand, numVars, count int) [][]int {
	clauses := make([][]int, count)
	for i := range clauses {
		width := 1 + r.Intn(3)
		cl := make([]int, width)
		for j := range cl {
			v := 1 + r.Intn(numVars)
			if r.Intn(2) == 0 {
				v = -v
			}
			cl[j] = v
		}
		clauses[i] = cl
	}
	return clauses
}

// giniVerdict feeds clauses into an in-process gini instance and reports
// whether it found the formula satisfiable.
func giniVerdict(numVars int, clauses [][]int) bool {
	g := gini.New()
	vars := make([]z.Var, numVars+1)
	for v := 1; v <= numVars; v++ {
		vars[v] = g.Lit().Var()
	}
	for _, cl := range clauses {
		for _, signed := range cl {
			v := vars[abs(signed)]
			if signed < 0 {
				g.Add(v.Neg())
			} else {
				g.Add(v.Pos())
			}
		}
		g.Add(0)
	}
	return g.Solve() == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// buildSolver loads the same clauses into a fresh *sat.Solver.
func buildSolver(numVars int, clauses [][]int) *sat.Solver {
	s := sat.NewDefaultSolver()
	for v := 0; v < numVars; v++ {
		s.AddVariable()
	}
	for _, cl := range clauses {
		lits := make([]sat.Literal, len(cl))
		for i, signed := range cl {
			v := abs(signed) - 1
			if signed < 0 {
				lits[i] = sat.NegativeLiteral(v)
			} else {
				lits[i] = sat.PositiveLiteral(v)
			}
		}
		if err := s.AddClause(lits); err != nil {
			panic(err)
		}
	}
	return s
}

func satisfies(clauses [][]int, model []bool) bool {
	for _, cl := range clauses {
		ok := false
		for _, signed := range cl {
			v := abs(signed) - 1
			if (signed > 0) == model[v] {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// TestSolverAgreesWithGini differentially tests the baseline solver against
// go-air/gini, an independent in-process CDCL implementation, over many
// small random CNF instances with clauses of width 1 to 3. Every SAT verdict is additionally checked
// by evaluating the returned model against the original clauses.
func TestSolverAgreesWithGini(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const trials = 200
	for trial := 0; trial < trials; trial++ {
		numVars := 3 + r.Intn(6)
		numClauses := 4 + r.Intn(20)
		clauses := randomClauses(r, numVars, numClauses)

		wantSAT := giniVerdict(numVars, clauses)

		s := buildSolver(numVars, clauses)
		d := search.NewDriver(s, search.DefaultOptions)
		got := d.Solve()

		if got == sat.True && !wantSAT {
			t.Fatalf("trial %d: solver says SAT, gini says UNSAT; clauses=%v", trial, clauses)
		}
		if got == sat.False && wantSAT {
			t.Fatalf("trial %d: solver says UNSAT, gini says SAT; clauses=%v", trial, clauses)
		}
		if got == sat.True {
			model := s.Models[len(s.Models)-1]
			if !satisfies(clauses, model) {
				t.Fatalf("trial %d: model %v does not satisfy clauses %v", trial, model, clauses)
			}
		}
	}
}
