// Package hamilton: the backtracking search proper.

package hamilton

import (
	"fmt"

	"github.com/katalvlaran/tred/bitmatrix"
	"github.com/katalvlaran/tred/core"
	"github.com/katalvlaran/tred/scc"
)

// Cycle computes a Hamiltonian cycle of g and returns it as a vertex
// sequence v0..v(n-1); the closing edge v(n-1)→v0 is implied. The input
// must be directed, unweighted, have at least 3 vertices, and allow
// neither self-loops nor parallel edges.
//
// Returns (nil, nil) — "none" — when g is not strongly connected, since a
// Hamiltonian cycle implies strong connectivity. Returns a shape sentinel
// (ErrNilGraph, ErrNotDirected, ErrTooFewVertices, ErrWeighted,
// ErrLoopsAllowed, ErrMultiEdges) on invalid input, and ErrNoCycleFound
// if the exhaustive search fails on a strongly connected graph — a
// contract break, not a reachable outcome for well-formed input.
//
// Worst-case runtime is exponential in the vertex count.
func Cycle(g *core.Graph) ([]string, error) {
	if err := checkGraph(g); err != nil {
		return nil, err
	}

	// A graph that is not strongly connected carries no Hamiltonian cycle:
	// answer "none" without searching.
	strong, err := scc.StronglyConnected(g)
	if err != nil {
		return nil, fmt.Errorf("hamilton: %w", err)
	}
	if !strong {
		return nil, nil
	}

	// Dense adjacency bitmap plus positional vertex indexing.
	adj, ix, err := bitmatrix.Adjacency(g)
	if err != nil {
		return nil, fmt.Errorf("hamilton: %w", err)
	}
	n := ix.Len()

	// Initialise the tour with [0, unset, ..., unset]: the first vertex is
	// fixed as the starting point, killing the rotational symmetry.
	s := &searcher{adj: adj, maxIndex: n - 1, tour: make([]int, n)}
	for k := 1; k < n; k++ {
		s.tour[k] = unset
	}

	// Search from slot 1 (slot 0 is fixed).
	s.run(1)
	if !s.found {
		return nil, ErrNoCycleFound
	}

	// Translate tour positions back into vertex IDs.
	out := make([]string, n)
	for k, p := range s.tour {
		out[k] = ix.ID(p)
	}

	return out, nil
}

// ClosedCycle is Cycle with the starting vertex repeated at the end, so
// the result reads as the closed walk v0..v(n-1),v0. Returns (nil, nil)
// when Cycle does.
func ClosedCycle(g *core.Graph) ([]string, error) {
	tour, err := Cycle(g)
	if err != nil || tour == nil {
		return nil, err
	}

	return append(tour, tour[0]), nil
}

// checkGraph rejects every input shape the search is not defined for.
func checkGraph(g *core.Graph) error {
	switch {
	case g == nil:
		return ErrNilGraph
	case !g.Directed():
		return ErrNotDirected
	case g.VertexCount() < minVertices:
		return ErrTooFewVertices
	case g.Weighted():
		return ErrWeighted
	case g.Looped():
		return ErrLoopsAllowed
	case g.Multigraph():
		return ErrMultiEdges
	}

	return nil
}

// searcher holds the backtracking state: the adjacency bitmap, the tour
// under construction (vertex positions, unset where undecided), and the
// success flag that unwinds the recursion once a cycle closes.
type searcher struct {
	adj      *bitmatrix.Matrix
	tour     []int
	maxIndex int
	found    bool
}

// run recursively fills tour[k..]. At each depth it asks nextVertex for
// the next viable candidate; a dead end backtracks, a filled last slot
// records success, anything else recurses one slot deeper. Recursion
// depth equals the vertex count.
func (s *searcher) run(k int) {
	for {
		s.nextVertex(k)
		// Dead end at this depth: hand control back to the caller.
		if s.tour[k] == unset {
			return
		}
		if k == s.maxIndex {
			s.found = true
		} else {
			s.run(k + 1)
		}
		if s.found {
			return
		}
	}
}

// nextVertex advances tour[k] to the next candidate that extends the
// tour, or to unset when the candidates are exhausted. Termination is by
// exactly three distinct returns:
//
//  1. dead end — every position tried, slot reset to unset;
//  2. next step found — the candidate is adjacent, fresh, and the tour
//     is still incomplete;
//  3. cycle closed — the candidate fills the last slot and the closing
//     edge back to tour[0] exists.
func (s *searcher) nextVertex(k int) {
	for {
		// Select the next untried position.
		s.tour[k]++
		// Exhausted all positions at this depth: dead end.
		if s.tour[k] > s.maxIndex {
			s.tour[k] = unset
			return
		}
		// The predecessor must reach the candidate.
		if !s.adj.Get(s.tour[k-1], s.tour[k]) {
			continue
		}
		// The candidate must not appear earlier in the tour.
		if s.visited(k) {
			continue
		}
		// Tour still incomplete: found the next step.
		if k < s.maxIndex {
			return
		}
		// Last slot: accept only if the cycle closes back to the start.
		if s.adj.Get(s.tour[k], s.tour[0]) {
			return
		}
	}
}

// visited reports whether tour[k] already occurs in tour[0..k-1].
func (s *searcher) visited(k int) bool {
	for p := 0; p < k; p++ {
		if s.tour[p] == s.tour[k] {
			return true
		}
	}

	return false
}
