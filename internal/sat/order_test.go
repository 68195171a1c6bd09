package sat

import "testing"

func TestDecisionOrderPopsHighestActivityFirst(t *testing.T) {
	o := NewDecisionOrder(1/0.95, false)
	for i := 0; i < 3; i++ {
		o.AddVariable()
	}

	o.Bump(1)
	o.Bump(1)
	o.Bump(2)

	assigned := map[int]bool{}
	valueOf := func(v int) LBool {
		if assigned[v] {
			return True
		}
		return Unknown
	}

	first, ok := o.PopUnassigned(valueOf)
	if !ok || first != 1 {
		t.Fatalf("first pop = (%d, %v), want (1, true)", first, ok)
	}
	assigned[first] = true

	second, ok := o.PopUnassigned(valueOf)
	if !ok || second != 2 {
		t.Fatalf("second pop = (%d, %v), want (2, true)", second, ok)
	}
	assigned[second] = true

	third, ok := o.PopUnassigned(valueOf)
	if !ok || third != 0 {
		t.Fatalf("third pop = (%d, %v), want (0, true)", third, ok)
	}
}

func TestDecisionOrderSkipsAssignedVariables(t *testing.T) {
	o := NewDecisionOrder(1/0.95, false)
	for i := 0; i < 2; i++ {
		o.AddVariable()
	}
	o.Bump(0)

	assigned := map[int]bool{0: true}
	valueOf := func(v int) LBool {
		if assigned[v] {
			return True
		}
		return Unknown
	}

	got, ok := o.PopUnassigned(valueOf)
	if !ok || got != 1 {
		t.Fatalf("PopUnassigned = (%d, %v), want (1, true)", got, ok)
	}
}

func TestDecisionOrderExhausted(t *testing.T) {
	o := NewDecisionOrder(1/0.95, false)
	o.AddVariable()
	valueOf := func(int) LBool { return True }
	if _, ok := o.PopUnassigned(valueOf); ok {
		t.Fatalf("expected PopUnassigned to report no candidate")
	}
}

func TestDecisionOrderPhaseSaving(t *testing.T) {
	o := NewDecisionOrder(1/0.95, true)
	o.AddVariable()
	if !o.Polarity(0) {
		t.Fatalf("a never-assigned variable should default to positive polarity")
	}
	o.Reinsert(0, false)
	if o.Polarity(0) {
		t.Fatalf("Polarity should reuse the saved negative phase")
	}
	o.Reinsert(0, true)
	if !o.Polarity(0) {
		t.Fatalf("Polarity should reuse the saved positive phase")
	}
}
