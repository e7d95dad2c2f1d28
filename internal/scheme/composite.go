package scheme

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/openscan/pagenum/internal/model"
)

// compositeBase is the base used to pack a composite scheme's digit groups
// into a single ordering integer.
const compositeBase int64 = 1_000_000_000_000 // 10^12

var (
	digitRunPattern  = regexp.MustCompile(`[0-9]+`)
	letterRunPattern = regexp.MustCompile(`[A-Z]+`)

	// simpleFormPatterns classify a sample into one of the "simple
	// composite" shapes from table. Built once; see
	// classifySimpleForm for how they're applied.
	simpleParen1   = regexp.MustCompile(`^\([0-9]{1,8}\)$`)
	simpleParen2   = regexp.MustCompile(`^\([0-9]{1,8}\)\([0-9]{1,8}\)$`)
	simpleParenD   = regexp.MustCompile(`^\([0-9]{1,8}\)[0-9]{1,8}$`)
	simpleDSepD    = regexp.MustCompile(`^[0-9]{1,8}[/.\-][0-9]{1,8}$`)
	simpleLetterD  = regexp.MustCompile(`^[A-Z]+[^A-Za-z0-9]*[0-9]{1,8}$`)
	simpleDLetter  = regexp.MustCompile(`^[0-9]{1,8}[^A-Za-z0-9]*[A-Z]+$`)
)

// classifySimpleForm reports whether sample, abstracted to its digit- and
// uppercase-letter-run shape, is one of the eight "simple composite" forms:
// (d), Ad, dA, (d)(d), (d)d, d/d, d.d, d-d. Arabic-only strings (no literal
// characters at all) are excluded here because they are matched by Arabic
// first in registry scan order and never reach composite discovery.
func classifySimpleForm(sample string) bool {
	nd := len(digitRunPattern.FindAllString(sample, -1))
	nl := len(letterRunPattern.FindAllString(strings.ToUpper(sample), -1))
	if nd == 0 {
		return false
	}
	switch {
	case nd == 1 && nl == 0:
		return simpleParen1.MatchString(sample)
	case nd == 1 && nl == 1:
		u := upperLetterRuns(sample)
		return simpleLetterD.MatchString(u) || simpleDLetter.MatchString(u)
	case nd == 2 && nl == 0:
		return simpleParen2.MatchString(sample) || simpleParenD.MatchString(sample) || simpleDSepD.MatchString(sample)
	default:
		return false
	}
}

// upperLetterRuns upper-cases only the alphabetic runs of s, leaving digits
// and punctuation untouched, so the simple-form regexes match regardless of
// the sample's original letter case.
func upperLetterRuns(s string) string {
	return strings.ToUpper(s)
}

// Composite matches values following a template derived from one observed
// sample: every maximal run of digits becomes a hole, everything else is
// literal. Composite instances are created by the registry on
// first observation and shared thereafter.
type Composite struct {
	name           string
	literalParts   []string // len == k+1
	k              int
	pattern        *regexp.Regexp
	supportsExtrap bool
}

// newComposite derives a template from sample. It always succeeds if sample
// contains at least one digit run; the caller (registry) is responsible for
// deciding whether sample is eligible for discovery in the first place.
func newComposite(sample string) (*Composite, error) {
	locs := digitRunPattern.FindAllStringIndex(sample, -1)
	if len(locs) == 0 {
		return nil, fmt.Errorf("pagenum: %q has no digit group to template", sample)
	}

	parts := make([]string, 0, len(locs)+1)
	prev := 0
	for _, loc := range locs {
		parts = append(parts, sample[prev:loc[0]])
		prev = loc[1]
	}
	parts = append(parts, sample[prev:])
	k := len(locs)

	var sb strings.Builder
	sb.WriteString("^")
	for i, p := range parts {
		sb.WriteString(regexp.QuoteMeta(p))
		if i < k {
			sb.WriteString(`([0-9]{1,8})`)
		}
	}
	sb.WriteString("$")

	return &Composite{
		name:           strings.Join(parts, "<d>"),
		literalParts:   parts,
		k:              k,
		pattern:        regexp.MustCompile(sb.String()),
		supportsExtrap: classifySimpleForm(sample),
	}, nil
}

func (c *Composite) Name() string { return c.name }

func (c *Composite) SyntacticMatch(s string) bool {
	return c.pattern.MatchString(s)
}

// NumeralValue packs the k digit groups right-to-left in base
// compositeBase: the rightmost group is least significant.
func (c *Composite) NumeralValue(s string) (int64, error) {
	m := c.pattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q does not match template %q", model.ErrInvalidComposite, s, c.name)
	}
	var value int64
	groups := m[1:]
	for i, g := range groups {
		n, err := strconv.ParseInt(g, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", model.ErrInvalidComposite, s, err)
		}
		weight := int64(1)
		for p := 0; p < c.k-1-i; p++ {
			weight *= compositeBase
		}
		value += n * weight
	}
	return value, nil
}

// FromNum reconstructs the literal/digit layout from a packed value.
// Digit groups are rendered without zero-padding; a composite scheme whose
// founding sample used zero-padded digits will not round-trip exactly
// (documented in DESIGN.md).
func (c *Composite) FromNum(n int64) string {
	groups := make([]int64, c.k)
	remaining := n
	for i := 0; i < c.k; i++ {
		weight := int64(1)
		for p := 0; p < c.k-1-i; p++ {
			weight *= compositeBase
		}
		groups[i] = remaining / weight
		remaining = remaining % weight
	}

	var b strings.Builder
	for i := 0; i < c.k; i++ {
		b.WriteString(c.literalParts[i])
		b.WriteString(strconv.FormatInt(groups[i], 10))
	}
	b.WriteString(c.literalParts[c.k])
	return b.String()
}

func (c *Composite) IsIncrease(baseValue int64, steps int, candidateValue int64) bool {
	return defaultIsIncrease(baseValue, steps, candidateValue)
}

func (c *Composite) SupportsExtrapolation() bool { return c.supportsExtrap }
