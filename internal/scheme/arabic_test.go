package scheme

import "testing"

func TestArabic_SyntacticMatch(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"007", true},
		{"", false},
		{"iv", false},
		{"4a", false},
		{"-1", false},
	}
	var a Arabic
	for _, c := range cases {
		if got := a.SyntacticMatch(c.in); got != c.want {
			t.Errorf("SyntacticMatch(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestArabic_RoundTrip(t *testing.T) {
	var a Arabic
	for _, v := range []string{"1", "42", "1000"} {
		n, err := a.NumeralValue(v)
		if err != nil {
			t.Fatalf("NumeralValue(%q): %v", v, err)
		}
		if got := a.FromNum(n); got != v {
			t.Errorf("FromNum(NumeralValue(%q)) = %q, want %q", v, got, v)
		}
	}
}

func TestArabic_IsIncrease(t *testing.T) {
	var a Arabic
	if !a.IsIncrease(5, 3, 8) {
		t.Error("expected 5 + 3 == 8 to be an increase")
	}
	if a.IsIncrease(5, 3, 9) {
		t.Error("expected 5 + 3 != 9 to not be an increase")
	}
}
