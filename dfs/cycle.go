// Package dfs implements cycle detection for directed core.Graphs using
// depth-first search with three-color marking and back-edge detection.
//
// HasCycle answers the single question the reduce package needs — "does
// this digraph contain at least one directed cycle?" — and stops at the
// first back edge instead of enumerating cycles.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (explicit stack, state map, neighbor cache)
package dfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tred/core"
)

// Vertex visitation states.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current DFS path (visiting).
	Black        // Black: the vertex and all its descendants are fully explored.
)

// ErrNotDirected is returned when cycle detection is asked about an
// undirected graph; back-edge marking is only meaningful with oriented
// edges.
var ErrNotDirected = errors.New("dfs: graph is not directed")

// HasCycle reports whether the directed graph g contains a directed cycle.
// A nil graph is cycle-free. Self-loops count as cycles when present.
//
// The traversal is iterative (explicit stack), so detection works on
// graphs whose longest path exceeds the goroutine stack comfort zone.
func HasCycle(g *core.Graph) (bool, error) {
	// 1) Nil graph is trivially acyclic.
	if g == nil {
		return false, nil
	}
	if !g.Directed() {
		return false, ErrNotDirected
	}

	// 2) Prepare visitation state and a per-vertex neighbor cache, so the
	//    container's sorted snapshot is taken once per vertex, not once
	//    per stack touch.
	verts := g.Vertices() // sorted list of vertex IDs
	state := make(map[string]int, len(verts))
	adj := make(map[string][]*core.Edge, len(verts))

	// 3) Launch DFS from each unvisited vertex; stop at the first back edge.
	for _, v := range verts {
		if state[v] != White {
			continue
		}
		found, err := visit(g, v, state, adj)
		if err != nil {
			return false, fmt.Errorf("dfs: HasCycle: %w", err)
		}
		if found {
			return true, nil
		}
	}

	return false, nil
}

// frame is one explicit-stack entry: a vertex and its next unexplored
// neighbor offset.
type frame struct {
	id   string
	next int
}

// visit runs an iterative DFS from root, marking states and reporting
// whether a Gray→Gray back edge (a directed cycle) was found.
func visit(g *core.Graph, root string, state map[string]int, adj map[string][]*core.Edge) (bool, error) {
	stack := []frame{{id: root}}
	state[root] = Gray

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		edges, ok := adj[top.id]
		if !ok {
			var err error
			edges, err = g.Neighbors(top.id)
			if err != nil {
				return false, fmt.Errorf("Neighbors(%q): %w", top.id, err)
			}
			adj[top.id] = edges
		}

		if top.next >= len(edges) {
			// All descendants explored: blacken and pop.
			state[top.id] = Black
			stack = stack[:len(stack)-1]
			continue
		}
		e := edges[top.next]
		top.next++

		switch state[e.To] {
		case Gray:
			// Back edge closes a cycle (covers self-loops: e.To == top.id).
			return true, nil
		case White:
			state[e.To] = Gray
			stack = append(stack, frame{id: e.To})
		}
	}

	return false, nil
}
