package scheme

import (
	"regexp"
	"strings"
)

// romanPattern matches classical Roman numerals 1-4999 in subtractive
// notation, case-insensitively (the input is upper-cased before matching).
var romanPattern = regexp.MustCompile(`^M{0,4}(CM|CD|D?C{0,3})(XC|XL|L?X{0,3})(IX|IV|V?I{0,3})$`)

var romanValues = []struct {
	symbol string
	value  int64
}{
	{"M", 1000}, {"CM", 900}, {"D", 500}, {"CD", 400},
	{"C", 100}, {"XC", 90}, {"L", 50}, {"XL", 40},
	{"X", 10}, {"IX", 9}, {"V", 5}, {"IV", 4}, {"I", 1},
}

// Roman matches classical Roman numerals commonly used for front matter
// (front-of-book pagination): "i", "ii", "iv", "xii".
type Roman struct{}

func (Roman) Name() string { return "roman" }

func (Roman) SyntacticMatch(s string) bool {
	if s == "" {
		return false
	}
	u := strings.ToUpper(s)
	return romanPattern.MatchString(u)
}

func (Roman) NumeralValue(s string) (int64, error) {
	u := strings.ToUpper(s)
	var total int64
	for _, rv := range romanValues {
		for strings.HasPrefix(u, rv.symbol) {
			total += rv.value
			u = u[len(rv.symbol):]
		}
	}
	return total, nil
}

// FromNum renders the lowercase canonical Roman numeral for n. Lowercase is
// used because front-matter Roman numerals in scanned books are almost
// always lowercase ("i", "ii", "iii"); see DESIGN.md for this choice.
func (Roman) FromNum(n int64) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return strings.ToLower(b.String())
}

func (Roman) IsIncrease(baseValue int64, steps int, candidateValue int64) bool {
	return defaultIsIncrease(baseValue, steps, candidateValue)
}

func (Roman) SupportsExtrapolation() bool { return true }
