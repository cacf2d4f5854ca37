// SPDX-License-Identifier: MIT
// Package: tred/builder
//
// impl_scc_chain.go — implementation of SCCChain(count, size).
//
// Contract:
//   • count ≥ 1, size ≥ 3 (else ErrTooFewVertices).
//   • Vertex IDs are "S<scc>/V<vertex>" regardless of cfg.idFn, so the
//     membership of a vertex is readable in test failures.
//   • Per component: the Hamiltonian ring v0→v1→…→v(size-1)→v0, plus every
//     forward chord (u,v) with u<v not already present in either direction.
//   • Between components: one forward edge from each vertex to the
//     same-numbered vertex of the next component.
//
// Edge count: count·size(size−1)/2 + (count−1)·size. The exact-subset
// transitive reduction of this fixture has count·size + (count−1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tred/core"
)

const (
	methodSCCChain  = "SCCChain"
	minSCCChainLen  = 1
	minSCCChainSize = 3
)

// SCCVertex names vertex #v of component #s in an SCCChain fixture.
func SCCVertex(s, v int) string {
	return fmt.Sprintf("S%d/V%d", s, v)
}

// SCCChain returns a Constructor that builds a linear chain of 'count'
// dense strongly connected components of 'size' vertices each.
func SCCChain(count, size int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if count < minSCCChainLen {
			return fmt.Errorf("%s: count=%d < min=%d: %w", methodSCCChain, count, minSCCChainLen, ErrTooFewVertices)
		}
		if size < minSCCChainSize {
			return fmt.Errorf("%s: size=%d < min=%d: %w", methodSCCChain, size, minSCCChainSize, ErrTooFewVertices)
		}

		// 1) Vertices plus the Hamiltonian ring of every component.
		for s := 0; s < count; s++ {
			for v := 0; v < size; v++ {
				if err := g.AddVertex(SCCVertex(s, v)); err != nil {
					return fmt.Errorf("%s: AddVertex: %w", methodSCCChain, err)
				}
			}
			for v := 0; v < size; v++ {
				if _, err := g.AddEdge(SCCVertex(s, v), SCCVertex(s, (v+1)%size), 0); err != nil {
					return fmt.Errorf("%s: ring edge: %w", methodSCCChain, err)
				}
			}
		}

		// 2) Redundant forward chords within components and forward links
		//    between corresponding vertices of neighbouring components.
		for s := 0; s < count; s++ {
			for u := 0; u < size; u++ {
				uID := SCCVertex(s, u)
				for v := u + 1; v < size; v++ {
					vID := SCCVertex(s, v)
					if g.HasEdge(uID, vID) || g.HasEdge(vID, uID) {
						continue
					}
					if _, err := g.AddEdge(uID, vID, 0); err != nil {
						return fmt.Errorf("%s: chord: %w", methodSCCChain, err)
					}
				}
				if s+1 < count {
					if _, err := g.AddEdge(uID, SCCVertex(s+1, u), 0); err != nil {
						return fmt.Errorf("%s: link: %w", methodSCCChain, err)
					}
				}
			}
		}

		return nil
	}
}
