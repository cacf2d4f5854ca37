package reduce_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tred/builder"
	"github.com/katalvlaran/tred/core"
	"github.com/katalvlaran/tred/reduce"
	"github.com/katalvlaran/tred/scc"
)

// reduceGraph runs a Cyclic reduction in the given mode, failing the test
// on any error.
func reduceGraph(t *testing.T, g *core.Graph, synthetic bool) {
	t.Helper()
	r, err := reduce.NewCyclic(g)
	require.NoError(t, err)
	require.NoError(t, r.AllowSyntheticEdges(synthetic).Reduce())
}

// bothModes runs the subtest once per mode policy.
func bothModes(t *testing.T, fn func(t *testing.T, synthetic bool)) {
	t.Run("exact-subset", func(t *testing.T) { fn(t, false) })
	t.Run("synthetic", func(t *testing.T) { fn(t, true) })
}

// TestNewCyclic_Validation covers every rejected input shape.
func TestNewCyclic_Validation(t *testing.T) {
	_, err := reduce.NewCyclic(nil)
	assert.ErrorIs(t, err, reduce.ErrNilGraph)

	undirectedG := core.NewGraph()
	_, err = reduce.NewCyclic(undirectedG)
	assert.ErrorIs(t, err, reduce.ErrNotDirected)

	weighted := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err = reduce.NewCyclic(weighted)
	assert.ErrorIs(t, err, reduce.ErrWeighted)

	looped := core.NewGraph(core.WithDirected(true), core.WithLoops())
	_, err = reduce.NewCyclic(looped)
	assert.ErrorIs(t, err, reduce.ErrLoopsAllowed)

	multi := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	_, err = reduce.NewCyclic(multi)
	assert.ErrorIs(t, err, reduce.ErrMultiEdges)
}

// TestCyclic_EmptyGraph: V=∅, E=∅ stays V=∅, E=∅.
func TestCyclic_EmptyGraph(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := core.NewGraph(core.WithDirected(true))
		reduceGraph(t, g, synthetic)
		assert.Equal(t, 0, g.VertexCount())
		assert.Equal(t, 0, g.EdgeCount())
	})
}

// TestCyclic_OneVertex keeps an isolated vertex untouched.
func TestCyclic_OneVertex(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("A"))
	reduceGraph(t, g, false)
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestCyclic_SingleEdge: E={(A,B)} stays unchanged.
func TestCyclic_SingleEdge(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{{"A", "B"}})
		reduceGraph(t, g, synthetic)
		assert.Equal(t, 2, g.VertexCount())
		assert.Equal(t, 1, g.EdgeCount())
		assert.True(t, g.HasEdge("A", "B"))
	})
}

// TestCyclic_FourCycle: a chordless 4-cycle is already minimal.
func TestCyclic_FourCycle(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}})
		reduceGraph(t, g, synthetic)
		assert.Equal(t, 4, g.VertexCount())
		assert.Equal(t, 4, g.EdgeCount())
		assert.True(t, g.HasEdge("A", "B"))
		assert.True(t, g.HasEdge("B", "C"))
		assert.True(t, g.HasEdge("C", "D"))
		assert.True(t, g.HasEdge("D", "A"))
	})
}

// TestCyclic_FourCycleWithChords drops the two chords and keeps a
// Hamiltonian cycle over all four vertices.
func TestCyclic_FourCycleWithChords(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{
			{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"D", "B"},
		})
		reduceGraph(t, g, synthetic)
		assert.Equal(t, 4, g.VertexCount())
		assert.Equal(t, 4, g.EdgeCount())
		assertSingleRingPerSCC(t, g)
	})
}

// TestCyclic_SmallDAG takes the acyclic fast path and keeps all edges.
func TestCyclic_SmallDAG(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{{"A", "B"}, {"B", "C"}, {"B", "D"}})
		reduceGraph(t, g, synthetic)
		assert.Equal(t, 3, g.EdgeCount())
		assert.True(t, g.HasEdge("A", "B"))
		assert.True(t, g.HasEdge("B", "C"))
		assert.True(t, g.HasEdge("B", "D"))
	})
}

// TestCyclic_DAGWithShortcuts reduces the nine-edge DAG to its skeleton
// through the fast path.
func TestCyclic_DAGWithShortcuts(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{
			{"A", "B"}, {"B", "C"}, {"B", "D"}, {"C", "E"}, {"D", "F"},
			{"B", "E"}, {"B", "F"}, {"A", "E"}, {"A", "F"},
		})
		reduceGraph(t, g, synthetic)
		assert.Equal(t, 5, g.EdgeCount())
		for _, want := range [][2]string{
			{"A", "B"}, {"B", "C"}, {"B", "D"}, {"C", "E"}, {"D", "F"},
		} {
			assert.True(t, g.HasEdge(want[0], want[1]), "missing %s→%s", want[0], want[1])
		}
	})
}

// TestCyclic_MediumCyclicGraph is the 16-vertex, 30-edge fixture with
// four SCCs; both modes land on 19 edges.
func TestCyclic_MediumCyclicGraph(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{
			{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"D", "B"},
			{"A", "E"}, {"B", "G"}, {"E", "F"}, {"F", "G"}, {"G", "E"}, {"E", "H"},
			{"F", "L"}, {"H", "I"}, {"I", "J"}, {"J", "K"}, {"K", "L"}, {"L", "H"},
			{"H", "J"}, {"I", "K"}, {"J", "N"}, {"K", "M"}, {"M", "N"}, {"N", "O"},
			{"O", "P"}, {"P", "M"}, {"M", "O"}, {"N", "P"}, {"G", "M"}, {"C", "P"},
		})
		require.Equal(t, 16, g.VertexCount())
		require.Equal(t, 30, g.EdgeCount())

		reduceGraph(t, g, synthetic)

		assert.Equal(t, 16, g.VertexCount())
		assert.Equal(t, 19, g.EdgeCount())
		assertSingleRingPerSCC(t, g)
	})
}

// TestCyclic_SingleVertexSCCs is the 6-vertex, 15-edge fixture whose
// condensation is one 5-vertex SCC {A,B,C,D,E} plus the singleton {F};
// both modes land on 6 edges.
func TestCyclic_SingleVertexSCCs(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{
			{"A", "C"}, {"A", "D"}, {"A", "E"}, {"B", "A"}, {"C", "B"}, {"C", "D"},
			{"C", "E"}, {"D", "B"}, {"D", "E"}, {"E", "B"}, {"F", "A"}, {"F", "B"},
			{"F", "C"}, {"F", "D"}, {"F", "E"},
		})
		require.Equal(t, 6, g.VertexCount())
		require.Equal(t, 15, g.EdgeCount())

		reduceGraph(t, g, synthetic)

		assert.Equal(t, 6, g.VertexCount())
		assert.Equal(t, 6, g.EdgeCount())
	})
}

// TestCyclic_SCCChain covers the classic stress shape: k SCCs of size k, dense
// within, one forward link per corresponding vertex pair. The reduction
// must land on exactly k·k + (k−1) edges in both modes.
func TestCyclic_SCCChain(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		for k := 3; k <= 6; k++ {
			g, err := builder.BuildGraph(
				[]core.GraphOption{core.WithDirected(true)}, nil,
				builder.SCCChain(k, k),
			)
			require.NoError(t, err)
			require.Equal(t, k*k, g.VertexCount())
			require.Equal(t, k*k*(k-1)/2+(k-1)*k, g.EdgeCount())

			reduceGraph(t, g, synthetic)

			assert.Equal(t, k*k, g.VertexCount(), "k=%d", k)
			assert.Equal(t, k*k+(k-1), g.EdgeCount(), "k=%d", k)
			assertSingleRingPerSCC(t, g)
		}
	})
}

// TestCyclic_ExactSubsetSoundness: in exact-subset mode every surviving
// handle existed before the reduction.
func TestCyclic_ExactSubsetSoundness(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)}, nil,
		builder.SCCChain(4, 5),
	)
	require.NoError(t, err)
	idsBefore := edgeIDSet(g)

	reduceGraph(t, g, false)

	for id := range edgeIDSet(g) {
		_, had := idsBefore[id]
		assert.True(t, had, "edge handle %s was forged in exact-subset mode", id)
	}
}

// TestCyclic_SyntheticKeepsVertexSet: synthetic mode may invent edges but
// never vertices.
func TestCyclic_SyntheticKeepsVertexSet(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)}, nil,
		builder.SCCChain(3, 4),
	)
	require.NoError(t, err)
	vertsBefore := g.Vertices()

	reduceGraph(t, g, true)

	assert.Equal(t, vertsBefore, g.Vertices())
	for _, e := range g.Edges() {
		assert.True(t, g.HasVertex(e.From))
		assert.True(t, g.HasVertex(e.To))
	}
}

// TestCyclic_ReachabilityPreserved verifies invariant 2 on a mixed graph.
func TestCyclic_ReachabilityPreserved(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{
			{"A", "B"}, {"B", "C"}, {"C", "A"}, // SCC {A,B,C}
			{"A", "C"},                         // chord
			{"C", "D"}, {"B", "D"},             // two crossings to D
			{"D", "E"}, {"A", "E"},             // shortcut into the tail
		})
		before := closure(t, g)

		reduceGraph(t, g, synthetic)

		assert.Equal(t, before, closure(t, g), "reachability changed")
	})
}

// TestCyclic_Idempotent verifies invariant 3 in both modes.
func TestCyclic_Idempotent(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)}, nil,
			builder.SCCChain(3, 4),
		)
		require.NoError(t, err)

		reduceGraph(t, g, synthetic)
		onceClosure := closure(t, g)
		onceCount := g.EdgeCount()

		reduceGraph(t, g, synthetic)
		assert.Equal(t, onceCount, g.EdgeCount())
		assert.Equal(t, onceClosure, closure(t, g))
	})
}

// TestCyclic_EdgeCountMonotone verifies invariant 4 across assorted inputs.
func TestCyclic_EdgeCountMonotone(t *testing.T) {
	fixtures := [][][2]string{
		{{"A", "B"}},
		{{"A", "B"}, {"B", "A"}},
		{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"A", "C"}},
		{{"A", "B"}, {"B", "C"}, {"B", "D"}, {"C", "E"}, {"D", "F"}, {"A", "F"}},
	}
	bothModes(t, func(t *testing.T, synthetic bool) {
		for i, edges := range fixtures {
			g := directed(edges)
			before := g.EdgeCount()
			reduceGraph(t, g, synthetic)
			assert.LessOrEqual(t, g.EdgeCount(), before, "fixture %d grew", i)
		}
	})
}

// TestCyclic_RelabelingEquivariant: reducing a relabeled copy yields the
// relabeled closure of reducing the original.
func TestCyclic_RelabelingEquivariant(t *testing.T) {
	build := func() *core.Graph {
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(true)}, nil,
			builder.SCCChain(3, 4),
		)
		require.NoError(t, err)

		return g
	}

	orig := build()
	shuffled, mapping, err := builder.ShuffleIDs(orig, 99)
	require.NoError(t, err)

	reduceGraph(t, orig, false)
	reduceGraph(t, shuffled, false)

	// Map the original's reduced closure through the relabeling and
	// compare with the shuffled reduction's closure.
	want := make(map[[2]string]bool)
	for pair := range closure(t, orig) {
		want[[2]string{mapping[pair[0]], mapping[pair[1]]}] = true
	}
	assert.Equal(t, want, closure(t, shuffled))
	// Counts match too, even though witness choices may differ.
	assert.Equal(t, orig.EdgeCount(), shuffled.EdgeCount())
}

// TestCyclic_TwoVertexSCC: a 2-cycle has fewer than three intra edges and
// must pass through unpruned. The inter-SCC witness is the existing B→C in
// exact-subset mode; synthetic mode links the first vertices, A→C.
func TestCyclic_TwoVertexSCC(t *testing.T) {
	bothModes(t, func(t *testing.T, synthetic bool) {
		g := directed([][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}})
		reduceGraph(t, g, synthetic)
		assert.Equal(t, 3, g.EdgeCount())
		assert.True(t, g.HasEdge("A", "B"))
		assert.True(t, g.HasEdge("B", "A"))
		if synthetic {
			assert.True(t, g.HasEdge("A", "C"))
		} else {
			assert.True(t, g.HasEdge("B", "C"))
		}
	})
}

// assertSingleRingPerSCC checks invariant 7: after reduction, the
// surviving intra-SCC edges of every component form one simple cycle
// covering all its vertices.
func assertSingleRingPerSCC(t *testing.T, g *core.Graph) {
	t.Helper()
	comps, err := scc.Components(g)
	require.NoError(t, err)

	member := map[string]int{}
	for i, comp := range comps {
		for _, id := range comp {
			member[id] = i
		}
	}

	outDeg := map[string]int{}
	inDeg := map[string]int{}
	intra := map[int]int{}
	for _, e := range g.Edges() {
		if member[e.From] != member[e.To] {
			continue
		}
		outDeg[e.From]++
		inDeg[e.To]++
		intra[member[e.From]]++
	}

	for i, comp := range comps {
		if len(comp) == 1 {
			assert.Zero(t, intra[i], "singleton SCC %v holds intra edges", comp)
			continue
		}
		// A simple covering cycle: exactly |comp| edges, every vertex with
		// in-degree and out-degree one, strongly connected as a whole.
		assert.Equal(t, len(comp), intra[i], "SCC %v is not a single ring", comp)
		for _, id := range comp {
			assert.Equal(t, 1, outDeg[id], "vertex %s out-degree", id)
			assert.Equal(t, 1, inDeg[id], "vertex %s in-degree", id)
		}
	}
}

// TestCyclic_LargerChainSmoke runs one bigger exact-subset instance to
// make sure the Hamiltonian search copes with denser components.
func TestCyclic_LargerChainSmoke(t *testing.T) {
	if testing.Short() {
		t.Skip("dense exact-subset reduction is slow in -short mode")
	}
	const k = 8
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(true)}, nil,
		builder.SCCChain(k, k),
	)
	require.NoError(t, err)

	reduceGraph(t, g, false)
	assert.Equal(t, k*k+(k-1), g.EdgeCount())
	assertSingleRingPerSCC(t, g)
}

// TestCyclic_ModeDefaultIsExact documents the default policy via the
// identity-soundness property.
func TestCyclic_ModeDefaultIsExact(t *testing.T) {
	g := directed([][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}, {"A", "C"}, {"D", "B"},
	})
	idsBefore := edgeIDSet(g)

	r, err := reduce.NewCyclic(g)
	require.NoError(t, err)
	require.NoError(t, r.Reduce()) // no AllowSyntheticEdges call

	for id := range edgeIDSet(g) {
		_, had := idsBefore[id]
		assert.True(t, had, "default mode forged edge handle %s", id)
	}
}

// edgeList formats the current edges for debugging failed expectations.
func edgeList(g *core.Graph) []string {
	out := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		out = append(out, fmt.Sprintf("%s→%s", e.From, e.To))
	}

	return out
}
