// Package scheme implements the family of pluggable page numbering schemes:
// Arabic, Roman, SingleLetter and dynamically-discovered Composite templates.
// Dispatch is on a tagged variant (the Scheme interface), never inheritance.
package scheme

// Scheme is the capability set every numbering convention implements:
// syntactic matching, integer valuation, formatting from an integer, an
// increase check, and an extrapolation capability flag.
type Scheme interface {
	// Name identifies the scheme for diagnostics and JSON/YAML dumps.
	Name() string

	// SyntacticMatch reports whether s is a value this scheme recognizes.
	SyntacticMatch(s string) bool

	// NumeralValue converts a syntactically-matching value to its integer
	// ordering key. Behavior is undefined if SyntacticMatch(s) is false.
	NumeralValue(s string) (int64, error)

	// FromNum renders an integer back to this scheme's canonical string form.
	FromNum(n int64) string

	// IsIncrease reports whether candidateValue is reachable from baseValue
	// after advancing steps pages, i.e. baseValue+steps == candidateValue
	//. Every scheme shares this definition; it is part of the
	// interface so callers never need scheme-specific logic at call sites.
	IsIncrease(baseValue int64, steps int, candidateValue int64) bool

	// SupportsExtrapolation reports whether the gap filler may synthesize
	// missing values for runs of this scheme.
	SupportsExtrapolation() bool
}

// defaultIsIncrease is the shared definition of "is this an increase":
// base + steps == candidate. Every built-in and composite scheme delegates
// to it so the rule lives in exactly one place.
func defaultIsIncrease(baseValue int64, steps int, candidateValue int64) bool {
	return baseValue+int64(steps) == candidateValue
}
