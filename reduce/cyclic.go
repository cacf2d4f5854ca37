// Package reduce: transitive reduction for digraphs with cycles.

package reduce

import (
	"fmt"

	"github.com/katalvlaran/tred/core"
	"github.com/katalvlaran/tred/dfs"
	"github.com/katalvlaran/tred/hamilton"
	"github.com/katalvlaran/tred/scc"
)

// minPrunableEdges is the smallest intra-SCC edge count worth pruning: a
// 1-vertex component has 0 edges and a 2-vertex component at most 2, and
// both are already minimal cycles.
const minPrunableEdges = 3

// Cyclic reduces a directed, possibly cyclic graph transitively. Create
// one with NewCyclic, optionally flip AllowSyntheticEdges, then call
// Reduce.
//
// The zero mode (exact-subset) guarantees that every surviving edge is an
// edge handle of the original graph — each SCC is cut down to an existing
// Hamiltonian cycle and every retained inter-SCC link is an existing
// edge. Allowing synthetic edges trades that guarantee for speed.
type Cyclic struct {
	g              *core.Graph
	allowSynthetic bool
}

// NewCyclic validates the input shape and wraps g for reduction. The
// graph must be directed, unweighted, and must permit neither self-loops
// nor parallel edges.
//
// Returns ErrNilGraph, ErrNotDirected, ErrWeighted, ErrLoopsAllowed or
// ErrMultiEdges.
func NewCyclic(g *core.Graph) (*Cyclic, error) {
	switch {
	case g == nil:
		return nil, ErrNilGraph
	case !g.Directed():
		return nil, ErrNotDirected
	case g.Weighted():
		return nil, ErrWeighted
	case g.Looped():
		return nil, ErrLoopsAllowed
	case g.Multigraph():
		return nil, ErrMultiEdges
	}

	return &Cyclic{g: g}, nil
}

// AllowSyntheticEdges selects the mode policy for subsequent Reduce
// calls and returns the receiver for chaining. The default is false:
// only pre-existing edges survive.
func (c *Cyclic) AllowSyntheticEdges(allow bool) *Cyclic {
	c.allowSynthetic = allow

	return c
}

// Reduce rewrites the wrapped graph to its transitive reduction.
//
// Pipeline: acyclic fast path (plain Dag, cycle check skipped — the
// detection just ran) → condensation → Dag on the condensation →
// per-SCC pruning → projection back into the input graph.
func (c *Cyclic) Reduce() error {
	// 1) Acyclic fast path: Hsu alone is both faster and trivially
	//    identity-preserving.
	cyclic, err := dfs.HasCycle(c.g)
	if err != nil {
		return fmt.Errorf("reduce: Cyclic: %w", err)
	}
	if !cyclic {
		return Dag(c.g, false)
	}

	// 2) Condense into the SCC quotient (acyclic by construction).
	cond, err := scc.Condense(c.g)
	if err != nil {
		return fmt.Errorf("reduce: Cyclic: %w", err)
	}

	// 3) Inter-SCC reduction: minimal set of links between components.
	if err = Dag(cond.DAG(), false); err != nil {
		return fmt.Errorf("reduce: Cyclic: condensation: %w", err)
	}

	// 4) Intra-SCC reduction: each component shrinks to one simple cycle
	//    covering its vertices.
	if err = c.pruneComponents(cond); err != nil {
		return err
	}

	// 5) Projection: rewrite the input graph from the pruned quotient.
	return c.expand(cond)
}

// pruneComponents rewrites each component of the condensation down to a
// single Hamiltonian-shaped cycle. Components with fewer than three edges
// need no pruning.
func (c *Cyclic) pruneComponents(cond *scc.Condensation) error {
	for i := 0; i < cond.Len(); i++ {
		comp := cond.Component(i)
		if comp.EdgeCount() < minPrunableEdges {
			continue
		}
		var err error
		if c.allowSynthetic {
			err = c.replaceWithRing(comp)
		} else {
			err = pruneToHamiltonian(comp)
		}
		if err != nil {
			return fmt.Errorf("reduce: Cyclic: component %d: %w", i, err)
		}
	}

	return nil
}

// replaceWithRing deletes every edge of the component and installs the
// enumeration-order ring v0→v1→…→v(m-1)→v0 instead. New ring edges are
// created in the parent graph first and mirrored into the component under
// the same handle; where the parent already has the required edge, that
// existing handle is reused instead of forging a duplicate.
func (c *Cyclic) replaceWithRing(comp *core.Graph) error {
	for _, e := range comp.Edges() {
		if err := comp.RemoveEdge(e.ID); err != nil {
			return fmt.Errorf("drop %s: %w", e.ID, err)
		}
	}

	verts := comp.Vertices() // stable enumeration: sorted IDs
	m := len(verts)
	for i := 0; i < m; i++ {
		from, to := verts[i], verts[(i+1)%m]
		eid, err := c.ensureParentEdge(from, to)
		if err != nil {
			return err
		}
		if err = comp.AddEdgeWithID(eid, from, to, 0); err != nil {
			return fmt.Errorf("mirror ring edge %s→%s: %w", from, to, err)
		}
	}

	return nil
}

// ensureParentEdge returns the handle of the parent edge from→to,
// creating the edge when it does not exist yet.
func (c *Cyclic) ensureParentEdge(from, to string) (string, error) {
	if c.g.HasEdge(from, to) {
		e, err := c.g.EdgeBetween(from, to)
		if err != nil {
			return "", fmt.Errorf("lookup %s→%s: %w", from, to, err)
		}

		return e.ID, nil
	}
	eid, err := c.g.AddEdge(from, to, 0)
	if err != nil {
		return "", fmt.Errorf("add synthetic %s→%s: %w", from, to, err)
	}

	return eid, nil
}

// pruneToHamiltonian finds an existing Hamiltonian cycle in the component
// and removes every component edge that is not one of its m cycle edges.
// Tour edges are left untouched, so their identity is preserved.
func pruneToHamiltonian(comp *core.Graph) error {
	tour, err := hamilton.Cycle(comp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInternalInvariant, err)
	}
	if tour == nil {
		// The component is strongly connected by construction; "none" here
		// means the strong-connectivity contract broke somewhere upstream.
		return fmt.Errorf("%w: no Hamiltonian cycle in a strongly connected component", ErrInternalInvariant)
	}

	pos := make(map[string]int, len(tour))
	for i, id := range tour {
		pos[id] = i
	}

	m := len(tour)
	for _, e := range comp.Edges() {
		// Keep only the m cycle edges: each tour vertex to its successor,
		// the last one closing back to the start.
		if pos[e.To] == (pos[e.From]+1)%m {
			continue
		}
		if err = comp.RemoveEdge(e.ID); err != nil {
			return fmt.Errorf("drop %s: %w", e.ID, err)
		}
	}

	return nil
}

// expand projects the pruned condensation back into the input graph. The
// surviving edge set of the input becomes exactly: one witness edge per
// surviving condensation edge, plus every component's surviving edges.
//
// The order is load-bearing: the removal pass keeps only witnesses — it
// eats the intra-SCC edges too — and the component edges are
// re-materialized afterwards under their preserved handles.
func (c *Cyclic) expand(cond *scc.Condensation) error {
	// 1) Pick one witness per surviving inter-SCC connection.
	witnesses := make(map[string]struct{}, cond.DAG().EdgeCount())
	for _, de := range cond.DAG().Edges() {
		si, err := cond.Pos(de.From)
		if err != nil {
			return fmt.Errorf("reduce: Cyclic: %w", err)
		}
		ti, err := cond.Pos(de.To)
		if err != nil {
			return fmt.Errorf("reduce: Cyclic: %w", err)
		}
		var eid string
		if c.allowSynthetic {
			eid, err = c.syntheticLink(cond.Component(si), cond.Component(ti))
		} else {
			eid, err = c.findLink(cond.Component(si), cond.Component(ti))
		}
		if err != nil {
			return err
		}
		witnesses[eid] = struct{}{}
	}

	// 2) Removal pass: drop every input edge that is not a witness.
	for _, e := range c.g.Edges() {
		if _, keep := witnesses[e.ID]; keep {
			continue
		}
		if err := c.g.RemoveEdge(e.ID); err != nil {
			return fmt.Errorf("reduce: Cyclic: expand: %w", err)
		}
	}

	// 3) Re-materialize the surviving intra-SCC edges under their
	//    original handles.
	for i := 0; i < cond.Len(); i++ {
		for _, e := range cond.Component(i).Edges() {
			if err := c.g.AddEdgeWithID(e.ID, e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("reduce: Cyclic: expand: restore %s: %w", e.ID, err)
			}
		}
	}

	return nil
}

// findLink scans the source and target component vertex sets in their
// sorted order and returns the first existing input edge crossing them.
// Existence is guaranteed by the condensation contract; its absence is an
// internal invariant violation.
func (c *Cyclic) findLink(src, tgt *core.Graph) (string, error) {
	for _, u := range src.Vertices() {
		for _, v := range tgt.Vertices() {
			if !c.g.HasEdge(u, v) {
				continue
			}
			e, err := c.g.EdgeBetween(u, v)
			if err != nil {
				return "", fmt.Errorf("reduce: Cyclic: %w", err)
			}

			return e.ID, nil
		}
	}

	return "", fmt.Errorf("%w: no edge between connected components", ErrInternalInvariant)
}

// syntheticLink connects the first vertex of the source component to the
// first vertex of the target component, reusing an existing edge when one
// happens to be there.
func (c *Cyclic) syntheticLink(src, tgt *core.Graph) (string, error) {
	eid, err := c.ensureParentEdge(src.Vertices()[0], tgt.Vertices()[0])
	if err != nil {
		return "", fmt.Errorf("reduce: Cyclic: %w", err)
	}

	return eid, nil
}
