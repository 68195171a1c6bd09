package puzzle_test

import (
	"testing"

	"github.com/lemaire-dev/yasolve/internal/puzzle"
	"github.com/lemaire-dev/yasolve/internal/sat"
	"github.com/lemaire-dev/yasolve/internal/search"
)

// want is the classic answer to the five houses riddle, left to right.
var want = []puzzle.Person{
	{Nationality: "Norwegian", House: "Yellow", Position: 1, Drink: "Water", Smoke: "Dunhill", Pet: "Cat"},
	{Nationality: "Dane", House: "Blue", Position: 2, Drink: "Tea", Smoke: "Blends", Pet: "Horse"},
	{Nationality: "Brit", House: "Red", Position: 3, Drink: "Milk", Smoke: "Pall Mall", Pet: "Bird"},
	{Nationality: "German", House: "Green", Position: 4, Drink: "Coffee", Smoke: "Prince", Pet: "Fish"},
	{Nationality: "Swede", House: "White", Position: 5, Drink: "Beer", Smoke: "Bluemasters", Pet: "Dog"},
}

func TestGenerateHasExactlyOneModel(t *testing.T) {
	s := sat.NewDefaultSolver()
	if err := puzzle.Generate(s); err != nil {
		t.Fatalf("Generate: %s", err)
	}

	d := search.NewDriver(s, search.DefaultOptions)
	if got := d.Solve(); got != sat.True {
		t.Fatalf("Solve() = %v, want sat.True", got)
	}

	got := puzzle.Decode(s.Models[0])
	if len(got) != len(want) {
		t.Fatalf("Decode returned %d people, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("house %d = %+v, want %+v", i+1, got[i], want[i])
		}
	}

	// The puzzle is constructed to have a unique solution: blocking the
	// model just found and solving again must be unsatisfiable.
	last := s.Models[len(s.Models)-1]
	block := make([]sat.Literal, len(last))
	for i, v := range last {
		if v {
			block[i] = sat.NegativeLiteral(i)
		} else {
			block[i] = sat.PositiveLiteral(i)
		}
	}
	if err := s.AddClause(block); err != nil {
		t.Fatalf("AddClause: %s", err)
	}
	d2 := search.NewDriver(s, search.DefaultOptions)
	if got := d2.Solve(); got != sat.False {
		t.Fatalf("second Solve() = %v, want sat.False (unique solution)", got)
	}
}
