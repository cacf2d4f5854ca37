// Package bitmatrix provides dense square boolean matrices with packed,
// word-aligned rows, plus adjacency-matrix construction and dense vertex
// indexing for core.Graph.
//
// The matrix is the working representation of both transitive-reduction
// phases (Hsu's method): Closure turns an adjacency matrix into a path
// matrix, Reduce turns a path matrix into a transitively reduced one.
// Both mutate the receiver in place — the two phases deliberately share
// storage — and both run their hot loops over machine words, not bits.
//
// Row storage is a single flat []uint64; row i occupies the half-open
// word range [i·w, (i+1)·w) where w = ceil(n/64). Bit j of row i is
// bits[i·w + j/64] >> (j%64) & 1.
//
// Complexity:
//
//	Set/Clear/Get        O(1)
//	Closure              O(V³/64) word operations
//	Reduce               O(V³/64) word operations
//	Adjacency            O(V + E)
package bitmatrix
