// SPDX-License-Identifier: MIT
// Package: tred/bitmatrix
//
// adjacency.go — dense vertex indexing and adjacency-matrix construction.

package bitmatrix

import (
	"errors"

	"github.com/katalvlaran/tred/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed to Adjacency.
var ErrNilGraph = errors.New("bitmatrix: graph is nil")

// Index is a stable positional indexing of a vertex set: position i ↔
// vertex ids[i]. It is built once per reduction call and addresses both
// the bit matrix and tour slices. Lookup is a map access, not a linear
// scan.
type Index struct {
	ids []string
	pos map[string]int
}

// NewIndex builds an Index over ids in the given order. The slice is not
// copied; callers pass the sorted snapshot from core.Graph.Vertices.
func NewIndex(ids []string) Index {
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return Index{ids: ids, pos: pos}
}

// Len returns the number of indexed vertices.
func (ix Index) Len() int { return len(ix.ids) }

// ID returns the vertex at position i.
func (ix Index) ID(i int) string { return ix.ids[i] }

// Pos returns the position of vertex id and whether it is indexed.
func (ix Index) Pos(id string) (int, bool) {
	i, ok := ix.pos[id]

	return i, ok
}

// Adjacency builds the dense adjacency bit matrix of g together with the
// Index that addresses it: bit (i,j) is set iff an edge ID(i)→ID(j)
// exists. Vertex positions follow the sorted order of g.Vertices(), so
// the matrix is identical across runs for equal graphs.
//
// Returns ErrNilGraph on nil input.
// Complexity: O(V + E) beyond the O(V²/64) allocation.
func Adjacency(g *core.Graph) (*Matrix, Index, error) {
	if g == nil {
		return nil, Index{}, ErrNilGraph
	}

	ix := NewIndex(g.Vertices())
	m := New(ix.Len())
	for _, e := range g.Edges() {
		i, _ := ix.Pos(e.From)
		j, _ := ix.Pos(e.To)
		m.Set(i, j)
	}

	return m, ix, nil
}
