package reduce

import "errors"

var (
	// ErrNilGraph is returned when a nil graph is reduced.
	ErrNilGraph = errors.New("reduce: graph is nil")

	// ErrNotDirected is returned for undirected inputs.
	ErrNotDirected = errors.New("reduce: graph must be directed")

	// ErrCycle is returned by Dag when cycle checking is enabled and the
	// input contains a directed cycle; use Cyclic for such graphs.
	ErrCycle = errors.New("reduce: graph contains a cycle; use Cyclic instead")

	// ErrWeighted is returned when the graph carries weights.
	ErrWeighted = errors.New("reduce: graph must be unweighted")

	// ErrLoopsAllowed is returned when the graph permits self-loops.
	ErrLoopsAllowed = errors.New("reduce: graph must not allow self-loops")

	// ErrMultiEdges is returned when the graph permits parallel edges.
	ErrMultiEdges = errors.New("reduce: graph must not allow multiple edges")

	// ErrInternalInvariant flags a contract-level impossibility observed
	// mid-reduction (e.g. no Hamiltonian cycle inside a strongly connected
	// component, or a condensation edge with no underlying witness). It is
	// never triggered by well-formed input.
	ErrInternalInvariant = errors.New("reduce: internal invariant violated")
)
