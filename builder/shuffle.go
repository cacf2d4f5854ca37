// SPDX-License-Identifier: MIT
// Package: tred/builder
//
// shuffle.go — random vertex relabeling for equivariance tests.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tred/core"
)

// ShuffleIDs returns a structural copy of g whose vertex IDs have been
// bijectively renamed by a seeded random permutation of the sorted vertex
// list, together with the old→new mapping. Edge identities are preserved,
// so an edge handle in the copy names the image of the same edge in g.
//
// The point: sorted enumeration of the copy visits vertices in a
// different order than the original, which exercises order-sensitive
// tie-breaking in the algorithms without changing graph structure.
func ShuffleIDs(g *core.Graph, seed int64) (*core.Graph, map[string]string, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("ShuffleIDs: %w", ErrConstructFailed)
	}

	ids := g.Vertices()
	perm := rand.New(rand.NewSource(seed)).Perm(len(ids))
	mapping := make(map[string]string, len(ids))
	for i, id := range ids {
		mapping[id] = ids[perm[i]]
	}

	// Rebuild with identical flags under the permuted names.
	opts := []core.GraphOption{core.WithDirected(g.Directed())}
	if g.Weighted() {
		opts = append(opts, core.WithWeighted())
	}
	if g.Looped() {
		opts = append(opts, core.WithLoops())
	}
	if g.Multigraph() {
		opts = append(opts, core.WithMultiEdges())
	}
	out := core.NewGraph(opts...)
	for _, id := range ids {
		if err := out.AddVertex(mapping[id]); err != nil {
			return nil, nil, fmt.Errorf("ShuffleIDs: %w", err)
		}
	}
	for _, e := range g.Edges() {
		if err := out.AddEdgeWithID(e.ID, mapping[e.From], mapping[e.To], e.Weight); err != nil {
			return nil, nil, fmt.Errorf("ShuffleIDs: %w", err)
		}
	}

	return out, mapping, nil
}
