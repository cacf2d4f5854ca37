// Package core: structural copies and induced subgraphs.

package core

// optionsOf rebuilds the GraphOption list matching g's configuration.
func (g *Graph) optionsOf() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.weighted {
		opts = append(opts, WithWeighted())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}

	return opts
}

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges. Vertex Metadata maps are shared, not deep-copied.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := NewGraph(g.optionsOf()...)
	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.adjacency[id] = make(map[string]map[string]struct{})
	}

	return clone
}

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency. Edge IDs are preserved, so a clone can act as a backup
// that the original is later restored from.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		clone.edges[eid] = ne
		clone.ensureAdjMap(e.From, e.To)
		clone.adjacency[e.From][e.To][eid] = struct{}{}
		if !g.directed && e.From != e.To {
			clone.ensureAdjMap(e.To, e.From)
			clone.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}
	clone.nextEdgeID = g.nextEdgeID

	return clone
}

// Induce builds the induced subgraph on the given vertex set: the named
// vertices plus every edge whose both endpoints are in the set. Edge IDs
// are preserved so the subgraph's edges remain valid handles into the
// parent graph.
//
// Returns ErrVertexNotFound if any named vertex is absent from g.
// Complexity: O(V' + E)
func (g *Graph) Induce(ids []string) (*Graph, error) {
	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if !g.HasVertex(id) {
			return nil, ErrVertexNotFound
		}
		member[id] = struct{}{}
	}

	sub := NewGraph(g.optionsOf()...)
	for id := range member {
		if err := sub.AddVertex(id); err != nil {
			return nil, err
		}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		if _, okF := member[e.From]; !okF {
			continue
		}
		if _, okT := member[e.To]; !okT {
			continue
		}
		sub.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To, Weight: e.Weight}
		sub.ensureAdjMap(e.From, e.To)
		sub.adjacency[e.From][e.To][eid] = struct{}{}
		if !g.directed && e.From != e.To {
			sub.ensureAdjMap(e.To, e.From)
			sub.adjacency[e.To][e.From][eid] = struct{}{}
		}
	}
	sub.nextEdgeID = g.nextEdgeID

	return sub, nil
}
