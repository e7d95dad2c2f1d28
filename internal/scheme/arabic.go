package scheme

import (
	"regexp"
	"strconv"
)

var arabicPattern = regexp.MustCompile(`^[0-9]+$`)

// Arabic matches plain decimal page numbers: "1", "42", "108".
type Arabic struct{}

func (Arabic) Name() string { return "arabic" }

func (Arabic) SyntacticMatch(s string) bool {
	return arabicPattern.MatchString(s)
}

func (Arabic) NumeralValue(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func (Arabic) FromNum(n int64) string {
	return strconv.FormatInt(n, 10)
}

func (Arabic) IsIncrease(baseValue int64, steps int, candidateValue int64) bool {
	return defaultIsIncrease(baseValue, steps, candidateValue)
}

func (Arabic) SupportsExtrapolation() bool { return true }
