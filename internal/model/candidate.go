package model

// Prob is a classifier's (p_false, p_true) output for one observation.
type Prob struct {
	PFalse, PTrue float64
}

// SchemeHandle identifies a registered numbering scheme without importing
// the scheme package (which in turn depends on model), avoiding an import
// cycle. The scheme package's Registry hands these out and resolves them.
type SchemeHandle int

// Candidate is a word observation deemed syntactically consistent with some
// numbering scheme, or a gap-filled synthetic stand-in for one.
//
// Invariants: Synthetic == true iff Observation == nil;
// NumValue must equal the owning scheme's NumeralValue(Value).
type Candidate struct {
	Value     string
	NumValue  int64
	Scheme    SchemeHandle
	Synthetic bool

	// Observation is nil for synthetic candidates, set for observed ones.
	Observation *WordObservation

	// Page is the zero-based effective page index this candidate was found
	// on (or synthesized for).
	Page int

	// Prob is set at most once, during pass 2 classification.
	Prob *Prob
}

// NewObserved builds a non-synthetic candidate backed by a word observation.
func NewObserved(page int, value string, numValue int64, scheme SchemeHandle, obs WordObservation) Candidate {
	return Candidate{
		Value:       value,
		NumValue:    numValue,
		Scheme:      scheme,
		Synthetic:   false,
		Observation: &obs,
		Page:        page,
	}
}

// NewSynthetic builds a gap-filled candidate with no backing observation.
func NewSynthetic(page int, value string, numValue int64, scheme SchemeHandle) Candidate {
	return Candidate{
		Value:     value,
		NumValue:  numValue,
		Scheme:    scheme,
		Synthetic: true,
		Page:      page,
	}
}

// Equal reports whether two candidates represent the same (scheme, value,
// page) triple, used by the enumerator's "c != v_last" tie-break.
func (c Candidate) Equal(o Candidate) bool {
	return c.Scheme == o.Scheme && c.NumValue == o.NumValue && c.Page == o.Page
}
