// Package scc: Tarjan strongly connected components, iterative form.

package scc

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/tred/bitmatrix"
	"github.com/katalvlaran/tred/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is analyzed.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrNotDirected is returned for undirected inputs; strong
	// connectivity is a directed-graph notion.
	ErrNotDirected = errors.New("scc: graph is not directed")
)

const unvisited = -1

// Components returns the strongly connected components of g. Each
// component is a sorted slice of vertex IDs; components appear in the
// order Tarjan finishes them, which is a reverse topological order of
// the condensation.
//
// Returns ErrNilGraph / ErrNotDirected on shape violations.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	// Dense positions keep the bookkeeping in flat int slices.
	ix := bitmatrix.NewIndex(g.Vertices())
	n := ix.Len()
	t := &tarjan{
		adj:     make([][]int, n),
		index:   make([]int, n),
		lowlink: make([]int, n),
		onStack: make([]bool, n),
	}
	for i := 0; i < n; i++ {
		t.index[i] = unvisited
	}
	for _, e := range g.Edges() {
		u, _ := ix.Pos(e.From)
		v, _ := ix.Pos(e.To)
		t.adj[u] = append(t.adj[u], v)
	}

	for v := 0; v < n; v++ {
		if t.index[v] == unvisited {
			t.strongconnect(v)
		}
	}

	// Translate positions back to sorted ID slices.
	out := make([][]string, len(t.comps))
	for i, comp := range t.comps {
		ids := make([]string, len(comp))
		for j, p := range comp {
			ids[j] = ix.ID(p)
		}
		sort.Strings(ids)
		out[i] = ids
	}

	return out, nil
}

// StronglyConnected reports whether g consists of a single SCC spanning
// all vertices. Graphs with zero or one vertex count as strongly
// connected.
func StronglyConnected(g *core.Graph) (bool, error) {
	comps, err := Components(g)
	if err != nil {
		return false, fmt.Errorf("scc: StronglyConnected: %w", err)
	}

	return len(comps) <= 1, nil
}

// tarjan carries the algorithm state across strongconnect calls.
type tarjan struct {
	adj     [][]int
	index   []int
	lowlink []int
	onStack []bool
	stack   []int // Tarjan's component stack
	next    int   // next discovery index
	comps   [][]int
}

// tframe is one explicit-recursion frame: a vertex and the offset of its
// next unexplored successor.
type tframe struct {
	v  int
	ei int
}

// strongconnect explores the DFS tree rooted at 'root' without recursion,
// popping a component whenever a root vertex (lowlink == index) finishes.
func (t *tarjan) strongconnect(root int) {
	frames := []tframe{{v: root}}

	for len(frames) > 0 {
		f := &frames[len(frames)-1]
		v := f.v

		// First touch: assign discovery index and push on component stack.
		if f.ei == 0 {
			t.index[v] = t.next
			t.lowlink[v] = t.next
			t.next++
			t.stack = append(t.stack, v)
			t.onStack[v] = true
		}

		// Explore successors until one demands descending.
		descended := false
		for f.ei < len(t.adj[v]) {
			w := t.adj[v][f.ei]
			f.ei++
			if t.index[w] == unvisited {
				frames = append(frames, tframe{v: w})
				descended = true
				break
			}
			if t.onStack[w] && t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
		if descended {
			continue
		}

		// v is finished: maybe pop a component, then propagate lowlink up.
		if t.lowlink[v] == t.index[v] {
			var comp []int
			for {
				w := t.stack[len(t.stack)-1]
				t.stack = t.stack[:len(t.stack)-1]
				t.onStack[w] = false
				comp = append(comp, w)
				if w == v {
					break
				}
			}
			t.comps = append(t.comps, comp)
		}
		frames = frames[:len(frames)-1]
		if len(frames) > 0 {
			parent := frames[len(frames)-1].v
			if t.lowlink[v] < t.lowlink[parent] {
				t.lowlink[parent] = t.lowlink[v]
			}
		}
	}
}
