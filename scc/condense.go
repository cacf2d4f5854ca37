// Package scc: condensation construction.

package scc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/tred/core"
)

// compIDPrefix prefixes DAG vertex IDs; CompID(3) == "c3".
const compIDPrefix = "c"

// CompID returns the condensation-DAG vertex ID standing for component
// position i.
func CompID(i int) string {
	return fmt.Sprintf("%s%d", compIDPrefix, i)
}

// Condensation is the SCC quotient of a directed graph. Its DAG has one
// vertex CompID(i) per strongly connected component; its side table maps
// position i to the induced subgraph of that component. The DAG is
// acyclic by construction.
type Condensation struct {
	dag    *core.Graph
	comps  []*core.Graph  // position i ↔ DAG vertex CompID(i)
	member map[string]int // input vertex ID → component position
}

// Condense builds the condensation of g. Component subgraphs are induced
// copies: pruning a component does not touch g, and every component edge
// keeps the edge ID it has in g.
//
// Returns ErrNilGraph / ErrNotDirected on shape violations.
func Condense(g *core.Graph) (*Condensation, error) {
	comps, err := Components(g)
	if err != nil {
		return nil, fmt.Errorf("scc: Condense: %w", err)
	}

	c := &Condensation{
		dag:    core.NewGraph(core.WithDirected(true)),
		comps:  make([]*core.Graph, len(comps)),
		member: make(map[string]int, g.VertexCount()),
	}

	// 1) One DAG vertex + one induced subgraph per component.
	for i, ids := range comps {
		sub, err := g.Induce(ids)
		if err != nil {
			return nil, fmt.Errorf("scc: Condense: induce component %d: %w", i, err)
		}
		c.comps[i] = sub
		if err = c.dag.AddVertex(CompID(i)); err != nil {
			return nil, fmt.Errorf("scc: Condense: %w", err)
		}
		for _, id := range ids {
			c.member[id] = i
		}
	}

	// 2) One DAG edge per connected component pair, regardless of how many
	//    input edges cross it.
	for _, e := range g.Edges() {
		si := c.member[e.From]
		ti := c.member[e.To]
		if si == ti {
			continue
		}
		if c.dag.HasEdge(CompID(si), CompID(ti)) {
			continue
		}
		if _, err = c.dag.AddEdge(CompID(si), CompID(ti), 0); err != nil {
			return nil, fmt.Errorf("scc: Condense: %w", err)
		}
	}

	return c, nil
}

// DAG returns the condensation digraph. Mutating it (e.g. reducing it
// transitively) is allowed; the side table is unaffected.
func (c *Condensation) DAG() *core.Graph { return c.dag }

// Len returns the number of components.
func (c *Condensation) Len() int { return len(c.comps) }

// Component returns the induced subgraph at position i.
func (c *Condensation) Component(i int) *core.Graph { return c.comps[i] }

// ComponentOf returns the component position holding the input vertex id.
func (c *Condensation) ComponentOf(id string) (int, bool) {
	i, ok := c.member[id]

	return i, ok
}

// Pos translates a DAG vertex ID back into a component position.
// Returns an error for IDs the condensation did not mint.
func (c *Condensation) Pos(dagID string) (int, error) {
	rest, ok := strings.CutPrefix(dagID, compIDPrefix)
	if !ok {
		return 0, fmt.Errorf("scc: %q is not a condensation vertex", dagID)
	}
	i, err := strconv.Atoi(rest)
	if err != nil || i < 0 || i >= len(c.comps) {
		return 0, fmt.Errorf("scc: %q is not a condensation vertex", dagID)
	}

	return i, nil
}
