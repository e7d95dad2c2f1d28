package scheme

import "testing"

func TestClassifySimpleForm(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"(5)", true},
		{"A1", true},
		{"A-1", true},
		{"1A", true},
		{"(1)(2)", true},
		{"(1)2", true},
		{"1/2", true},
		{"1.2", true},
		{"1-2", true},
		{"1", false},     // pure Arabic, never reaches discovery
		{"abc", false},   // no digits at all
		{"A1B2C3", false},
	}
	for _, c := range cases {
		if got := classifySimpleForm(c.in); got != c.want {
			t.Errorf("classifySimpleForm(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestComposite_RoundTrip(t *testing.T) {
	c, err := newComposite("A-1")
	if err != nil {
		t.Fatalf("newComposite: %v", err)
	}
	if !c.SupportsExtrapolation() {
		t.Fatal("expected A-<d> to support extrapolation")
	}
	for _, v := range []string{"A-1", "A-2", "A-25"} {
		if !c.SyntacticMatch(v) {
			t.Errorf("SyntacticMatch(%q) = false, want true", v)
		}
		n, err := c.NumeralValue(v)
		if err != nil {
			t.Fatalf("NumeralValue(%q): %v", v, err)
		}
		if got := c.FromNum(n); got != v {
			t.Errorf("FromNum(NumeralValue(%q)) = %q, want %q", v, got, v)
		}
	}
}

func TestComposite_TwoHoles(t *testing.T) {
	c, err := newComposite("(3)(12)")
	if err != nil {
		t.Fatalf("newComposite: %v", err)
	}
	n1, _ := c.NumeralValue("(3)(12)")
	n2, _ := c.NumeralValue("(3)(13)")
	if !c.IsIncrease(n1, 1, n2) {
		t.Error("expected (3)(12) -> (3)(13) over one page to be an increase")
	}
	if got := c.FromNum(n1); got != "(3)(12)" {
		t.Errorf("FromNum round trip = %q, want %q", got, "(3)(12)")
	}
}

func TestComposite_InvalidValue(t *testing.T) {
	c, err := newComposite("A-1")
	if err != nil {
		t.Fatalf("newComposite: %v", err)
	}
	if _, err := c.NumeralValue("B-1"); err == nil {
		t.Error("expected error for value that does not match the template")
	}
}
