package scheme

import "testing"

func TestRoman_SyntacticMatch(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"i", true},
		{"II", true},
		{"iv", true},
		{"IX", true},
		{"xii", true},
		{"MCMXCIV", true},
		{"", false},
		{"iiii", false}, // non-subtractive, rejected by the anchored pattern
		{"abc", false},
		{"4", false},
	}
	var r Roman
	for _, c := range cases {
		if got := r.SyntacticMatch(c.in); got != c.want {
			t.Errorf("SyntacticMatch(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRoman_RoundTrip(t *testing.T) {
	var r Roman
	for _, v := range []string{"i", "ii", "iii", "iv", "v", "ix", "xii", "xl", "mcmxciv"} {
		n, err := r.NumeralValue(v)
		if err != nil {
			t.Fatalf("NumeralValue(%q): %v", v, err)
		}
		if got := r.FromNum(n); got != v {
			t.Errorf("FromNum(NumeralValue(%q)) = %q, want %q", v, got, v)
		}
	}
}

func TestRoman_NumeralValue(t *testing.T) {
	var r Roman
	cases := []struct {
		in   string
		want int64
	}{
		{"i", 1},
		{"iv", 4},
		{"v", 5},
		{"ix", 9},
		{"xiv", 14},
		{"mcmxciv", 1994},
	}
	for _, c := range cases {
		got, err := r.NumeralValue(c.in)
		if err != nil {
			t.Fatalf("NumeralValue(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("NumeralValue(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
