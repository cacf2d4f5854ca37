// Package reduce computes in-place transitive reductions of directed
// core.Graphs: the smallest edge set preserving the reachability closure.
//
// Two entry points cover the two input classes:
//
//   - Dag applies Harry Hsu's method to an acyclic digraph: build the
//     adjacency bit matrix, transform it into a path matrix, transitively
//     reduce it, then drop every graph edge whose matrix bit went out.
//     Hsu, "An algorithm for finding a minimal equivalent graph of a
//     digraph", JACM 22(1), 1975. Only removes edges; strictly wrong on
//     cyclic input (it would empty every cycle), hence the cycle check.
//
//   - Cyclic handles arbitrary digraphs by isolating the cycles first:
//     condense the input into its SCC quotient, reduce the (acyclic)
//     condensation with Dag, rewrite each strongly connected component
//     down to a single Hamiltonian-shaped cycle, then project the result
//     back into the input graph with exactly one witness edge per
//     surviving inter-SCC connection.
//
// Mode policy (Cyclic only):
//
//	AllowSyntheticEdges(false)  exact-subset (default): every surviving
//	                            edge is an original edge handle; each SCC
//	                            is cut down to an existing Hamiltonian
//	                            cycle found by exhaustive search — slow on
//	                            dense SCCs (exponential in SCC size).
//	AllowSyntheticEdges(true)   fast: each SCC is replaced by an
//	                            enumeration-order ring and inter-SCC
//	                            witnesses may be freshly created edges.
//
// The caller owns the graph and must guarantee exclusive access for the
// duration of a Reduce call; concurrent structural mutation is undefined.
// Nothing is logged and nothing is retried — every failure surfaces as a
// sentinel error at the entry point.
package reduce
