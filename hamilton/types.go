package hamilton

import "errors"

// minVertices is the smallest vertex count that can carry a directed
// cycle without self-loops or parallel edges.
const minVertices = 3

// unset marks a tour slot that holds no vertex yet.
const unset = -1

var (
	// ErrNilGraph is returned when a nil graph is searched.
	ErrNilGraph = errors.New("hamilton: graph is nil")

	// ErrNotDirected is returned for undirected inputs.
	ErrNotDirected = errors.New("hamilton: graph must be directed")

	// ErrTooFewVertices is returned for graphs with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("hamilton: graph must have >= 3 vertices for a cycle")

	// ErrWeighted is returned when the graph carries weights.
	ErrWeighted = errors.New("hamilton: graph must be unweighted")

	// ErrLoopsAllowed is returned when the graph permits self-loops.
	ErrLoopsAllowed = errors.New("hamilton: graph must not allow self-loops")

	// ErrMultiEdges is returned when the graph permits parallel edges.
	ErrMultiEdges = errors.New("hamilton: graph must not allow multiple edges")

	// ErrNoCycleFound means the search exhausted a strongly connected
	// graph without finding a tour. A Hamiltonian cycle must exist there,
	// so this is a defect in the search, never a property of well-formed
	// input.
	ErrNoCycleFound = errors.New(
		"hamilton: no Hamiltonian cycle found although the graph is strongly connected; " +
			"this indicates an error in the algorithm")
)
