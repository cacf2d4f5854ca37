// Package reduce: Hsu's transitive reduction for acyclic digraphs.

package reduce

import (
	"fmt"

	"github.com/katalvlaran/tred/bitmatrix"
	"github.com/katalvlaran/tred/core"
	"github.com/katalvlaran/tred/dfs"
)

// Dag transitively reduces the acyclic digraph g in place: after the
// call, reachability between every vertex pair is unchanged and no
// remaining edge is a transitive shortcut. Edges are only ever removed,
// by their identity handle; none are added.
//
// checkCycles guards against misuse: when true, a cycle in g aborts with
// ErrCycle before anything is mutated. Callers that have just proven
// acyclicity themselves (the Cyclic orchestrator, twice) pass false and
// skip the O(V+E) detection.
//
// Returns ErrNilGraph / ErrNotDirected on shape violations.
// Complexity: O(V³/64) word operations plus O(V+E) rewrite.
func Dag(g *core.Graph, checkCycles bool) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.Directed() {
		return ErrNotDirected
	}
	if checkCycles {
		cyclic, err := dfs.HasCycle(g)
		if err != nil {
			return fmt.Errorf("reduce: Dag: %w", err)
		}
		if cyclic {
			return ErrCycle
		}
	}

	// 1) Snapshot the edges and build the adjacency bit matrix. The
	//    snapshot drives the rewrite below, so only pre-existing edges can
	//    ever be touched.
	before := g.Edges()
	m, ix, err := bitmatrix.Adjacency(g)
	if err != nil {
		return fmt.Errorf("reduce: Dag: %w", err)
	}

	// 2) Phase 1+2 share the matrix storage: adjacency → path matrix →
	//    transitively reduced matrix, all in place.
	m.Closure()
	m.Reduce()

	// 3) Phase 3: rewrite. Drop every original edge whose bit was cleared.
	for _, e := range before {
		i, _ := ix.Pos(e.From)
		j, _ := ix.Pos(e.To)
		if m.Get(i, j) {
			continue
		}
		if err = g.RemoveEdge(e.ID); err != nil {
			return fmt.Errorf("reduce: Dag: remove %s→%s: %w", e.From, e.To, err)
		}
	}

	return nil
}
