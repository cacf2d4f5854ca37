// Package core: edge management.
//
// Adjacency is stored as a nested map: adjacency[from][to][edgeID],
// allowing constant-time existence, insertion, and deletion of edges.
// Undirected graphs mirror every entry in the reverse direction.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its generated Edge.ID. Missing endpoints are created on the fly.
// Enforces the weight, loop, and multi-edge policies of the graph.
//
// Returns ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed,
// ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// Generate a fresh atomic ID, then go through the shared insertion path.
	eid := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	if err := g.AddEdgeWithID(eid, from, to, weight); err != nil {
		return "", err
	}

	return eid, nil
}

// AddEdgeWithID inserts an edge under a caller-chosen identity. This is the
// re-materialization path: an edge that was backed up and removed can be
// restored under its original handle, so auxiliary state keyed on the ID
// stays valid across a rewrite.
//
// Returns ErrEmptyEdgeID, ErrDuplicateEdgeID, plus the AddEdge policy errors.
// Complexity: O(1) amortized.
func (g *Graph) AddEdgeWithID(id, from, to string, weight int64) error {
	// 1) Shape validation before any mutation.
	if id == "" {
		return ErrEmptyEdgeID
	}
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	// 2) Ensure both endpoints exist (idempotent).
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	// 3) Identity and multi-edge constraints under the lock.
	if _, exists := g.edges[id]; exists {
		return ErrDuplicateEdgeID
	}
	if !g.allowMulti {
		if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
			return ErrMultiEdgeNotAllowed
		}
	}

	// 4) Keep the generator ahead of externally chosen "e<n>" IDs so a
	//    later AddEdge cannot collide with a re-materialized handle.
	if n, ok := numericEdgeID(id); ok {
		for {
			cur := atomic.LoadUint64(&g.nextEdgeID)
			if cur >= n || atomic.CompareAndSwapUint64(&g.nextEdgeID, cur, n) {
				break
			}
		}
	}

	// 5) Store and index.
	e := &Edge{ID: id, From: from, To: to, Weight: weight}
	g.edges[id] = e
	g.ensureAdjMap(from, to)
	g.adjacency[from][to][id] = struct{}{}
	// Mirror undirected edges (loops skip the mirror).
	if !g.directed && from != to {
		g.ensureAdjMap(to, from)
		g.adjacency[to][from][id] = struct{}{}
	}

	return nil
}

// RemoveEdge deletes the edge with the given ID (and its mirror) from the
// graph. Removal is by handle only; there is no remove-by-endpoints, so
// every deletion path is identity-preserving.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	g.removeEdgeFromAdj(eid, e)

	return nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if inner, ok := g.adjacency[from][to]; ok && len(inner) > 0 {
		return true
	}

	return false
}

// Edge retrieves an edge by its identity handle.
// Returns ErrEdgeNotFound if absent.
// Complexity: O(1).
func (g *Graph) Edge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween retrieves the edge from 'from' to 'to'. When the graph is a
// multigraph and several parallel edges exist, the one with the smallest
// ID is returned so repeated lookups are stable.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(p·logp) for p parallel edges, O(1) in simple graphs.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	inner, ok := g.adjacency[from][to]
	if !ok || len(inner) == 0 {
		return nil, ErrEdgeNotFound
	}
	eid := ""
	for id := range inner {
		if eid == "" || id < eid {
			eid = id
		}
	}

	return g.edges[eid], nil
}

// Edges returns all edges sorted by their ID.
// Complexity: O(E·logE)
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Neighbors returns all edges leaving vertex 'id' (for undirected graphs,
// all incident edges). Result is sorted by Edge.ID for determinism.
// Complexity: O(d·logd), where d is the number of incident edges.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for _, edgeSet := range g.adjacency[id] {
		for eid := range edgeSet {
			out = append(out, g.edges[eid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// FilterEdges removes all edges failing the predicate.
// Complexity: O(E).
func (g *Graph) FilterEdges(pred func(*Edge) bool) {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	for eid, e := range g.edges {
		if !pred(e) {
			g.removeEdgeFromAdj(eid, e)
			delete(g.edges, eid)
		}
	}
}

// Internal helpers:
////////////////////

// numericEdgeID extracts n from a generated-style ID "e<n>".
func numericEdgeID(id string) (uint64, bool) {
	rest, ok := strings.CutPrefix(id, edgeIDPrefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(rest, 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

// ensureAdjID makes adjacency[id] non-nil.
func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjMap ensures adjacency[from][to] is initialized.
func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeEdgeFromAdj deletes eid from both directions if needed.
func (g *Graph) removeEdgeFromAdj(eid string, e *Edge) {
	if m := g.adjacency[e.From][e.To]; m != nil {
		delete(m, eid)
		if len(m) == 0 {
			delete(g.adjacency[e.From], e.To)
		}
	}
	// Mirror removal for undirected edges.
	if !g.directed && e.From != e.To {
		if m := g.adjacency[e.To][e.From]; m != nil {
			delete(m, eid)
			if len(m) == 0 {
				delete(g.adjacency[e.To], e.From)
			}
		}
	}
}
