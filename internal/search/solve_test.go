package search_test

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lemaire-dev/yasolve/internal/dimacs"
	"github.com/lemaire-dev/yasolve/internal/sat"
	"github.com/lemaire-dev/yasolve/internal/search"
)

// testdataDir points at package sat's instance corpus: each ".cnf" file is
// paired with a ".cnf.models" file listing every one of its models.
const testdataDir = "../sat/testdata"

type testCase struct {
	name         string
	instanceFile string
	modelsFile   string
}

func listTestCases(t *testing.T) []testCase {
	t.Helper()
	var cases []testCase
	err := filepath.WalkDir(testdataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".cnf") {
			return nil
		}
		cases = append(cases, testCase{
			name:         d.Name(),
			instanceFile: path,
			modelsFile:   path + ".models",
		})
		return nil
	})
	if err != nil {
		t.Fatalf("listing test cases: %s", err)
	}
	return cases
}

func toString(model []bool) string {
	b := make([]byte, len(model))
	for i, v := range model {
		if v {
			b[i] = 1
		}
	}
	return string(b)
}

func toSet(models [][]bool) map[string]struct{} {
	set := make(map[string]struct{}, len(models))
	for _, m := range models {
		set[toString(m)] = struct{}{}
	}
	return set
}

// solveAll drives s to exhaustion, blocking every model it finds with a
// freshly added clause, and returns every model encountered.
func solveAll(s *sat.Solver) [][]bool {
	for {
		d := search.NewDriver(s, search.DefaultOptions)
		if d.Solve() != sat.True {
			return s.Models
		}
		last := s.Models[len(s.Models)-1]
		block := make([]sat.Literal, len(last))
		for i, v := range last {
			if v {
				block[i] = sat.NegativeLiteral(i)
			} else {
				block[i] = sat.PositiveLiteral(i)
			}
		}
		s.AddClause(block)
	}
}

// TestSolveAll verifies that the driver finds exactly the expected set of
// models for every instance in package sat's test corpus.
func TestSolveAll(t *testing.T) {
	for _, tc := range listTestCases(t) {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			want, err := dimacs.ReadModels(tc.modelsFile)
			if err != nil {
				t.Fatalf("reading expected models: %s", err)
			}

			s := sat.NewDefaultSolver()
			if err := dimacs.Load(tc.instanceFile, s); err != nil {
				t.Fatalf("loading instance: %s", err)
			}

			got := solveAll(s)
			if !cmp.Equal(toSet(got), toSet(want)) {
				t.Errorf("model set mismatch for %s: got %d models, want %d", tc.name, len(got), len(want))
			}
		})
	}
}
