// Package hamilton finds Hamiltonian cycles in directed graphs by
// exhaustive depth-first backtracking over a vertex permutation.
//
// The searcher fixes the starting vertex at position 0 (removing the
// rotational symmetry of cyclic tours), keeps the adjacency as a dense
// bit matrix, and tries candidate vertices in ascending position order,
// so the reported cycle is reproducible for a given vertex ordering: it
// is the first cycle in that enumeration, not any particular one.
//
// A graph that is not strongly connected cannot carry a Hamiltonian
// cycle, so the search short-circuits to "none" (a nil tour, no error)
// after a linear-time strong-connectivity check.
//
// Runtime grows exponentially with the number of vertices — callers use
// this only on small dense subgraphs (the reduce package confines it to
// one strongly connected component at a time). As a reference point, an
// 18-vertex dense component takes on the order of seconds.
package hamilton
