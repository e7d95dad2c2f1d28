// Package trellis builds a layered best-path graph over a document's pages
// and solves it with a Viterbi-style shortest-path search, picking one
// candidate (or "none") per page.
package trellis

import (
	"math"

	"github.com/openscan/pagenum/internal/model"
)

// NoneCost is TRELLIS_NONE_COST: the transition cost to or from a page's
// "none" state.
const NoneCost = 2.0

// SentinelCost is the cost returned for any transition the builder never
// explicitly established.
const SentinelCost = NoneCost + 1

// EmissionCost is the uniform per-node cost charged regardless of which
// state is visited.
const EmissionCost = 1.0

// State is one node in a layer: either the distinguished "none" state
// (SeqID < 0) or the i-th element of some sequence.
type State struct {
	Candidate *model.Candidate
	SeqID     int
	SeqPos    int
	SeqLen    int
}

func (s State) isNone() bool { return s.SeqID < 0 }

// Layer holds every state touching one page; index 0 is always the none
// state.
type Layer struct {
	Page   int
	States []State
}

// Trellis is the built graph, parameterized by the sequence-link factor F
// (3 in pass 1, 1 in pass 2).
type Trellis struct {
	Layers []Layer
	F      float64
}

// Build constructs a Trellis of totalPages layers from sequences, which
// must already be gap-filled.
func Build(sequences []model.Sequence, totalPages int, f float64) *Trellis {
	t := &Trellis{F: f, Layers: make([]Layer, totalPages)}
	for p := range t.Layers {
		t.Layers[p] = Layer{Page: p, States: []State{{SeqID: -1}}}
	}

	for seqID, seq := range sequences {
		n := seq.Len()
		for i, c := range seq.Entries {
			c := c
			if c.Page < 0 || c.Page >= totalPages {
				continue
			}
			t.Layers[c.Page].States = append(t.Layers[c.Page].States, State{
				Candidate: &c,
				SeqID:     seqID,
				SeqPos:    i,
				SeqLen:    n,
			})
		}
	}
	return t
}

// edgeCost implements the four transition rules between adjacent layers.
func (t *Trellis) edgeCost(prev, cur State) float64 {
	if !prev.isNone() && !cur.isNone() && cur.SeqID == prev.SeqID && cur.SeqPos == prev.SeqPos+1 {
		return t.F / float64(cur.SeqLen)
	}
	if cur.isNone() {
		return NoneCost
	}
	if prev.isNone() {
		return NoneCost
	}
	return SentinelCost
}

// Solve runs the Viterbi best-path search and returns one candidate (or
// nil for "none") per page.
func (t *Trellis) Solve() []*model.Candidate {
	if len(t.Layers) == 0 {
		return nil
	}

	dist := make([][]float64, len(t.Layers))
	back := make([][]int, len(t.Layers))

	dist[0] = make([]float64, len(t.Layers[0].States))
	back[0] = make([]int, len(t.Layers[0].States))
	for i := range dist[0] {
		dist[0][i] = EmissionCost
		back[0][i] = -1
	}

	for p := 1; p < len(t.Layers); p++ {
		states := t.Layers[p].States
		prevStates := t.Layers[p-1].States
		dist[p] = make([]float64, len(states))
		back[p] = make([]int, len(states))

		for si, cur := range states {
			best := math.Inf(1)
			bestPrev := -1
			for pi, prev := range prevStates {
				cost := dist[p-1][pi] + t.edgeCost(prev, cur) + EmissionCost
				if cost < best {
					best = cost
					bestPrev = pi
				}
			}
			dist[p][si] = best
			back[p][si] = bestPrev
		}
	}

	last := len(t.Layers) - 1
	bestIdx := 0
	best := math.Inf(1)
	for i, d := range dist[last] {
		if d < best {
			best = d
			bestIdx = i
		}
	}

	assignment := make([]*model.Candidate, len(t.Layers))
	idx := bestIdx
	for p := last; p >= 0; p-- {
		assignment[p] = t.Layers[p].States[idx].Candidate
		idx = back[p][idx]
	}
	return assignment
}
