package sat

import "testing"

func TestLiteralEncoding(t *testing.T) {
	for v := 0; v < 10; v++ {
		pos := PositiveLiteral(v)
		neg := NegativeLiteral(v)

		if pos.VarID() != v || neg.VarID() != v {
			t.Fatalf("VarID mismatch for variable %d: pos=%d neg=%d", v, pos.VarID(), neg.VarID())
		}
		if !pos.IsPositive() || neg.IsPositive() {
			t.Fatalf("IsPositive mismatch for variable %d", v)
		}
		if pos.Opposite() != neg || neg.Opposite() != pos {
			t.Fatalf("Opposite mismatch for variable %d", v)
		}
	}
}

func TestLBoolOpposite(t *testing.T) {
	cases := []struct {
		in, want LBool
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, c := range cases {
		if got := c.in.Opposite(); got != c.want {
			t.Errorf("Opposite(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLift(t *testing.T) {
	if Lift(true) != True {
		t.Errorf("Lift(true) != True")
	}
	if Lift(false) != False {
		t.Errorf("Lift(false) != False")
	}
}
