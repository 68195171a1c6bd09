// Package dimacs reads DIMACS CNF instances and model files and loads them
// into a sat.Solver.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	external "github.com/rhartert/dimacs"

	"github.com/lemaire-dev/yasolve/internal/sat"
)

// builder adapts a *sat.Solver to github.com/rhartert/dimacs's Builder
// interface, translating DIMACS' 1-based signed-integer literals into the
// solver's dense 0-based Literal encoding as each problem line and clause is
// streamed in.
type builder struct {
	s *sat.Solver
}

func (b *builder) Problem(problem string, nVars, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: unsupported problem type %q, want \"cnf\"", problem)
	}
	for i := 0; i < nVars; i++ {
		b.s.AddVariable()
	}
	return nil
}

func (b *builder) Clause(lits []int) error {
	converted := make([]sat.Literal, len(lits))
	for i, l := range lits {
		if l > 0 {
			converted[i] = sat.PositiveLiteral(l - 1)
		} else {
			converted[i] = sat.NegativeLiteral(-l - 1)
		}
	}
	return b.s.AddClause(converted)
}

func (b *builder) Comment(string) error {
	return nil
}

// Load reads the DIMACS CNF instance at path (transparently gzip-decoding
// if the name ends in .gz) and instantiates its variables and clauses into
// s. s must be empty.
func Load(path string, s *sat.Solver) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return fmt.Errorf("dimacs: %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	if err := external.ReadBuilder(r, &builder{s: s}); err != nil {
		return fmt.Errorf("dimacs: %s: %w", path, err)
	}
	return nil
}
