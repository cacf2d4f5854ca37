// SPDX-License-Identifier: MIT
// Package: tred/builder
//
// impl_cycle.go — implementation of Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; Path: n ≥ 2 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Cycle emits edges in stable order i -> (i+1)%n; Path stops at n-2.
//   • Returns only sentinel errors; never panics at runtime.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tred/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, n, methodCycle); err != nil {
			return err
		}
		// Ring edges in ascending i; the last one closes back to 0.
		for i := 0; i < n; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn((i+1)%n)
			if _, err := g.AddEdge(uID, vID, 0); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodCycle, uID, vID, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds an n-vertex simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addIndexedVertices(g, cfg, n, methodPath); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			uID, vID := cfg.idFn(i), cfg.idFn(i+1)
			if _, err := g.AddEdge(uID, vID, 0); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, uID, vID, err)
			}
		}

		return nil
	}
}

// addIndexedVertices inserts vertices 0..n-1 via cfg.idFn.
func addIndexedVertices(g *core.Graph, cfg builderConfig, n int, method string) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}
