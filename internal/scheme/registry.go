package scheme

import (
	"log/slog"
	"sync"

	"github.com/openscan/pagenum/internal/model"
)

// CompositeLimit bounds the number of dynamically-discovered composite
// schemes a registry will admit.
const CompositeLimit = 2500

// builtinCount is the number of preinstalled schemes (Arabic, Roman,
// SingleLetter), which always occupy handles 0, 1, 2.
const builtinCount = 3

// Registry holds the fixed set of built-in schemes plus dynamically
// discovered composite schemes, appended in insertion order and never
// invalidated or rehashed mid-run.
type Registry struct {
	mu         sync.Mutex
	schemes    []Scheme // index == model.SchemeHandle
	capReached bool
	logger     *slog.Logger
}

// NewRegistry builds a registry with Arabic, Roman and SingleLetter
// preinstalled, in that match order.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		schemes: []Scheme{Arabic{}, Roman{}, SingleLetter{}},
		logger:  logger,
	}
}

// Scheme resolves a handle to its Scheme. Panics on an out-of-range handle,
// which can only happen if a caller holds a handle from a different
// registry instance — a programmer error.
func (r *Registry) Scheme(h model.SchemeHandle) Scheme {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.schemes[h]
}

// Match attempts every scheme in fixed order (builtins first, then
// composites in insertion order) and returns the handle of the first whose
// SyntacticMatch succeeds.
func (r *Registry) Match(word string) (model.SchemeHandle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, s := range r.schemes {
		if s.SyntacticMatch(word) {
			return model.SchemeHandle(i), true
		}
	}
	return -1, false
}

// EligibleForComposite reports whether word matches one of the eight
// "simple composite" forms the extractor uses to gate discovery, without
// registering anything.
func EligibleForComposite(word string) bool {
	return classifySimpleForm(word)
}

// DiscoverComposite appends a new composite scheme templated on sample, if
// the registry has not reached CompositeLimit. It returns the new handle and
// true on success. If the cap has already been reached, it returns
// (-1, false) and logs model.ErrCompositeCapReached exactly once across the
// registry's lifetime.
func (r *Registry) DiscoverComposite(sample string) (model.SchemeHandle, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.schemes)-builtinCount >= CompositeLimit {
		if !r.capReached {
			r.capReached = true
			r.logger.Warn("composite scheme registry cap reached", "limit", CompositeLimit, "error", model.ErrCompositeCapReached)
		}
		return -1, false
	}

	c, err := newComposite(sample)
	if err != nil {
		return -1, false
	}
	r.schemes = append(r.schemes, c)
	return model.SchemeHandle(len(r.schemes) - 1), true
}

// Schemes returns every registered scheme, builtins first in match order
// followed by composites in discovery order, for diagnostics/dumping.
func (r *Registry) Schemes() []Scheme {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Scheme, len(r.schemes))
	copy(out, r.schemes)
	return out
}

// Len returns the total number of registered schemes, builtins included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.schemes)
}

// CompositeCount returns the number of dynamically-discovered composite
// schemes currently registered.
func (r *Registry) CompositeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.schemes) - builtinCount
}
