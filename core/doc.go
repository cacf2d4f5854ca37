// Package core defines the central Graph, Vertex, and Edge types used by
// every algorithm in tred, and provides thread-safe primitives for
// building, querying, cloning, and inducing graphs.
//
// Identity model:
//
// Every edge carries a string ID that is unique within its Graph. The ID
// is the edge's handle: removal goes through RemoveEdge(id), and an edge
// that was backed up can be re-inserted with AddEdgeWithID without losing
// the identity that host applications may have attached state to. The
// transitive reduction in exact-subset mode relies on this: a surviving
// edge after reduction is the same handle that went in.
//
// Concurrency:
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so reads can proceed
// concurrently. Algorithms that rewrite a graph structurally (the reduce
// package) require exclusive access for the duration of the call; the
// locks protect map integrity, not multi-step algorithmic invariants.
//
// Determinism:
//
// Vertices() and Edges() return sorted snapshots. Every tred algorithm
// enumerates through these accessors, so equal graphs produce equal
// results, including which tie-broken edges survive a reduction.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEmptyEdgeID         - edge ID is the empty string.
//	ErrDuplicateEdgeID     - AddEdgeWithID would reuse an existing ID.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core
