// Package puzzle encodes the "five houses" logic puzzle (a.k.a. Einstein's
// riddle) as a CNF instance, so it can be fed through the same CDCL solver
// used for arbitrary DIMACS input, and decodes a model back into a readable
// answer.
package puzzle

import "github.com/lemaire-dev/yasolve/internal/sat"

// The five categories of the puzzle. Each is a 5x5 grid of variables:
// varID(kind, person, value) is true iff the given person has the given
// value for that category (e.g. house(2, 3) true means person 2 lives in
// the house of color 3).
const (
	house = iota
	location
	drink
	smoke
	pet
	numCategories
)

const people = 5

func varID(kind, person, value int) int {
	return kind*people*people + (person-1)*people + (value - 1)
}

var (
	nationalities = [people]string{"Brit", "Dane", "German", "Norwegian", "Swede"}
	colors        = [people]string{"Blue", "Green", "Red", "White", "Yellow"}
	drinkNames    = [people]string{"Beer", "Coffee", "Milk", "Tea", "Water"}
	smokeNames    = [people]string{"Blends", "Bluemasters", "Dunhill", "Pall Mall", "Prince"}
	petNames      = [people]string{"Bird", "Cat", "Dog", "Fish", "Horse"}
)

// Generate registers the puzzle's 125 variables and all of its clauses on
// s. It returns an error only if building a clause itself fails (e.g. s is
// not at the root decision level); a correctly generated instance of this
// puzzle is always satisfiable with exactly one solution.
func Generate(s *sat.Solver) error {
	for i := 0; i < numCategories*people*people; i++ {
		s.AddVariable()
	}

	unit := func(kind, person, value int) error {
		return s.AddClause([]sat.Literal{lit(kind, person, value)})
	}
	iff := func(a, b sat.Literal) error {
		if err := s.AddClause([]sat.Literal{a.Opposite(), b}); err != nil {
			return err
		}
		return s.AddClause([]sat.Literal{a, b.Opposite()})
	}

	// 1. The Brit lives in the red house.
	if err := unit(house, 1, 3); err != nil {
		return err
	}
	// 2. The Swede keeps dogs as pets.
	if err := unit(pet, 5, 3); err != nil {
		return err
	}
	// 3. The Dane drinks tea.
	if err := unit(drink, 2, 4); err != nil {
		return err
	}
	// 9. The Norwegian lives in the first house.
	if err := unit(location, 4, 1); err != nil {
		return err
	}
	// 12. The German smokes Prince.
	if err := unit(smoke, 3, 5); err != nil {
		return err
	}

	// 5. The green house's owner drinks coffee.
	for a := 1; a <= people; a++ {
		if err := iff(lit(house, a, 2), lit(drink, a, 2)); err != nil {
			return err
		}
	}
	// 6. The Pall Mall smoker rears birds.
	for a := 1; a <= people; a++ {
		if err := iff(lit(smoke, a, 4), lit(pet, a, 1)); err != nil {
			return err
		}
	}
	// 7. The owner of the yellow house smokes Dunhill.
	for a := 1; a <= people; a++ {
		if err := iff(lit(house, a, 5), lit(smoke, a, 3)); err != nil {
			return err
		}
	}
	// 8. The man in the center house drinks milk.
	for a := 1; a <= people; a++ {
		if err := iff(lit(location, a, 3), lit(drink, a, 3)); err != nil {
			return err
		}
	}
	// 11. The Bluemasters smoker drinks beer.
	for a := 1; a <= people; a++ {
		if err := iff(lit(smoke, a, 2), lit(drink, a, 1)); err != nil {
			return err
		}
	}

	// 4. The green house is on the left of the white house. Modeled in both
	// directions: for any two houses a strict one-step-apart relationship
	// holds regardless of which side we reason from.
	for a := 1; a <= people; a++ {
		for b := 1; b < people; b++ {
			for c := 1; c <= people; c++ {
				green, pos, white, next := lit(house, a, 2), lit(location, a, b), lit(house, c, 4), lit(location, c, b+1)
				if err := s.AddClause([]sat.Literal{green.Opposite(), pos.Opposite(), white.Opposite(), next}); err != nil {
					return err
				}
				if err := s.AddClause([]sat.Literal{green.Opposite(), next.Opposite(), white.Opposite(), pos}); err != nil {
					return err
				}
			}
		}
	}

	// 13. The Norwegian lives next to the blue house.
	for a := 1; a <= people; a++ {
		for b := 1; b <= people; b++ {
			norwegianAt, blueAt := lit(location, 4, a), lit(house, b, 1)
			clause := []sat.Literal{norwegianAt.Opposite(), blueAt.Opposite()}
			if a > 1 {
				clause = append(clause, lit(location, b, a-1))
			}
			if a < people {
				clause = append(clause, lit(location, b, a+1))
			}
			if err := s.AddClause(clause); err != nil {
				return err
			}

			personBAt := lit(location, b, a)
			clause2 := []sat.Literal{personBAt.Opposite(), blueAt.Opposite()}
			if a > 1 {
				clause2 = append(clause2, lit(location, 4, a-1))
			}
			if a < people {
				clause2 = append(clause2, lit(location, 4, a+1))
			}
			if err := s.AddClause(clause2); err != nil {
				return err
			}
		}
	}

	// 10. The Blends smoker lives next to the cat owner.
	if err := neighbor(s, smoke, 1, pet, 2); err != nil {
		return err
	}
	// 14. The horse owner lives next to the Dunhill smoker.
	if err := neighbor(s, pet, 5, smoke, 3); err != nil {
		return err
	}
	// 15. The Blends smoker has a neighbor who drinks water.
	if err := neighbor(s, smoke, 1, drink, 5); err != nil {
		return err
	}

	// Each person has exactly one value per category, and each value is
	// used by exactly one person per category.
	for kind := 0; kind < numCategories; kind++ {
		for i := 1; i <= people; i++ {
			row := make([]sat.Literal, people)
			col := make([]sat.Literal, people)
			for j := 1; j <= people; j++ {
				row[j-1] = lit(kind, i, j)
				col[j-1] = lit(kind, j, i)
			}
			if err := exactlyOne(s, row); err != nil {
				return err
			}
			if err := exactlyOne(s, col); err != nil {
				return err
			}
		}
	}

	return nil
}

// neighbor encodes "whoever has attribute (kindA, valA) lives one house
// away from whoever has attribute (kindB, valB)". Since each person has
// exactly one position, the same person can never hold both attributes.
// It is applied symmetrically: from the (kindA)
// person's position, and from the (kindB) person's position.
func neighbor(s *sat.Solver, kindA, valA, kindB, valB int) error {
	for a := 1; a <= people; a++ {
		for b := 1; b <= people; b++ {
			for c := 1; c <= people; c++ {
				attrA, posA, attrB := lit(kindA, a, valA), lit(location, a, b), lit(kindB, c, valB)
				clause := []sat.Literal{attrA.Opposite(), posA.Opposite(), attrB.Opposite()}
				if b > 1 {
					clause = append(clause, lit(location, c, b-1))
				}
				if b < people {
					clause = append(clause, lit(location, c, b+1))
				}
				if err := s.AddClause(clause); err != nil {
					return err
				}

				posC := lit(location, c, b)
				clause2 := []sat.Literal{attrA.Opposite(), posC.Opposite(), attrB.Opposite()}
				if b > 1 {
					clause2 = append(clause2, lit(location, a, b-1))
				}
				if b < people {
					clause2 = append(clause2, lit(location, a, b+1))
				}
				if err := s.AddClause(clause2); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func lit(kind, person, value int) sat.Literal {
	return sat.PositiveLiteral(varID(kind, person, value))
}

func exactlyOne(s *sat.Solver, lits []sat.Literal) error {
	if err := s.AddClause(append([]sat.Literal(nil), lits...)); err != nil {
		return err
	}
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			if err := s.AddClause([]sat.Literal{lits[i].Opposite(), lits[j].Opposite()}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Person is one decoded row of a solved puzzle.
type Person struct {
	Nationality string
	House       string
	Position    int
	Drink       string
	Smoke       string
	Pet         string
}

// Decode turns a satisfying model (as produced by sat.Solver.Models) into
// the five people, sorted left to right by house position.
func Decode(model []bool) []Person {
	result := make([]Person, people)
	for i := 1; i <= people; i++ {
		p := &result[i-1]
		p.Nationality = nationalities[i-1]
		for j := 1; j <= people; j++ {
			if model[varID(house, i, j)] {
				p.House = colors[j-1]
			}
			if model[varID(location, i, j)] {
				p.Position = j
			}
			if model[varID(drink, i, j)] {
				p.Drink = drinkNames[j-1]
			}
			if model[varID(smoke, i, j)] {
				p.Smoke = smokeNames[j-1]
			}
			if model[varID(pet, i, j)] {
				p.Pet = petNames[j-1]
			}
		}
	}
	for i := 0; i < people; i++ {
		for j := i + 1; j < people; j++ {
			if result[j].Position < result[i].Position {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result
}
