package dimacs

import (
	"fmt"
	"os"

	external "github.com/rhartert/dimacs"
)

// modelBuilder adapts the external DIMACS clause reader to a different end:
// a models file has no problem line, and each "clause" line is actually one
// full satisfying assignment, its literals already in variable order.
type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(string, int, int) error {
	return fmt.Errorf("dimacs: a models file must not contain a problem line")
}

func (b *modelBuilder) Comment(string) error {
	return nil
}

func (b *modelBuilder) Clause(lits []int) error {
	model := make([]bool, len(lits))
	for i, l := range lits {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}

// ReadModels reads a models file: one satisfying assignment per line, each
// written as its literals in the same numbering as the corresponding DIMACS
// instance, terminated by a 0. It is used by tests to check a solved
// instance against a pre-computed expected model set; it is not a DIMACS
// format in its own right, but reuses the same clause-line syntax.
func ReadModels(filename string) ([][]bool, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("dimacs: %w", err)
	}
	defer f.Close()

	b := &modelBuilder{}
	if err := external.ReadBuilder(f, b); err != nil {
		return nil, fmt.Errorf("dimacs: %s: %w", filename, err)
	}
	return b.models, nil
}
