// SPDX-License-Identifier: MIT
// Package: tred/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each ordered pair (i,j) with i<j exactly once, i→j.
//     In a directed graph this yields the transitive tournament K_n→;
//     in an undirected graph the mirror is implicit.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tred/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, n, methodComplete); err != nil {
			return err
		}
		// Lexicographic pair order keeps emission deterministic.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				uID, vID := cfg.idFn(i), cfg.idFn(j)
				if _, err := g.AddEdge(uID, vID, 0); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodComplete, uID, vID, err)
				}
			}
		}

		return nil
	}
}
