// SPDX-License-Identifier: MIT
// Package: tred/bitmatrix
//
// bitmatrix.go — packed square bit matrix and the two Hsu phases.

package bitmatrix

import "math/bits"

const wordBits = 64

// Matrix is an n×n dense bit matrix with word-packed rows.
// Indices are positions in [0, n); callers keep their own mapping from
// vertices to positions (see Index in adjacency.go).
type Matrix struct {
	n     int      // dimension
	words int      // words per row, ceil(n/64)
	bits  []uint64 // row-major storage, n*words words
}

// New allocates an n×n zero matrix.
// Complexity: O(n²/64).
func New(n int) *Matrix {
	words := (n + wordBits - 1) / wordBits

	return &Matrix{n: n, words: words, bits: make([]uint64, n*words)}
}

// Dim returns the matrix dimension n.
func (m *Matrix) Dim() int { return m.n }

// row returns the word slice backing row i.
func (m *Matrix) row(i int) []uint64 {
	return m.bits[i*m.words : (i+1)*m.words]
}

// Set sets bit (i,j).
func (m *Matrix) Set(i, j int) {
	m.bits[i*m.words+j/wordBits] |= 1 << uint(j%wordBits)
}

// Clear clears bit (i,j).
func (m *Matrix) Clear(i, j int) {
	m.bits[i*m.words+j/wordBits] &^= 1 << uint(j%wordBits)
}

// Get reports bit (i,j).
func (m *Matrix) Get(i, j int) bool {
	return m.bits[i*m.words+j/wordBits]&(1<<uint(j%wordBits)) != 0
}

// OnesCount returns the number of set bits in the whole matrix.
// Complexity: O(n²/64).
func (m *Matrix) OnesCount() int {
	total := 0
	for _, w := range m.bits {
		total += bits.OnesCount64(w)
	}

	return total
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	cp := &Matrix{n: m.n, words: m.words, bits: make([]uint64, len(m.bits))}
	copy(cp.bits, m.bits)

	return cp
}

// Closure transforms an adjacency matrix into a path matrix in place:
// after the call, bit (i,j) is set iff j is reachable from i through the
// original edges. The input must describe an acyclic digraph for the
// subsequent Reduce to be meaningful; Closure itself has no such
// requirement.
//
// For each pivot i and each row j≠i with bit (j,i) set, row i is OR-ed
// into row j one machine word at a time — this row-OR is the hot path.
func (m *Matrix) Closure() {
	var (
		n  = m.n
		ri []uint64 // pivot row
		rj []uint64 // target row
		w  int
	)
	for i := 0; i < n; i++ {
		ri = m.row(i)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if m.Get(j, i) {
				rj = m.row(j)
				for w = range rj {
					rj[w] |= ri[w]
				}
			}
		}
	}
}

// Reduce transforms a path matrix into a transitively reduced matrix in
// place: whenever (i,j) and (j,k) are both set, (i,k) is cleared, because
// the path i→j→k makes a direct i→k redundant. The clear sweep over k is
// a word-level AND-NOT of row j against row i.
//
// On a path matrix of an acyclic digraph the diagonal is empty, so row j
// is never the row being rewritten within its own pivot step.
func (m *Matrix) Reduce() {
	var (
		n  = m.n
		rj []uint64 // pivot row
		ri []uint64 // row being pruned
		w  int
	)
	for j := 0; j < n; j++ {
		rj = m.row(j)
		for i := 0; i < n; i++ {
			if m.Get(i, j) {
				ri = m.row(i)
				for w = range ri {
					ri[w] &^= rj[w]
				}
			}
		}
	}
}
