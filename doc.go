// Package tred computes transitive reductions of directed graphs,
// including graphs that contain cycles.
//
// 🚀 What is tred?
//
//	A small, thread-safe, zero-dependency library that brings together:
//		• Core primitives: create vertices & identity-carrying edges, mutate safely under locks
//		• Hsu's transitive reduction for DAGs on a packed bit matrix
//		• Strong connectivity: Tarjan components & graph condensation
//		• Exhaustive Hamiltonian-cycle search for small dense digraphs
//		• Cyclic transitive reduction: condense, reduce, prune, project back
//
// ✨ Why choose tred?
//
//   - Identity-preserving – exact-subset mode never forges edge handles
//   - Rock-solid guarantees – deterministic enumeration, in-code invariants
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under seven subpackages:
//
//	core/      — fundamental Graph, Vertex, Edge types & thread-safe primitives
//	bitmatrix/ — packed word-aligned boolean matrices + adjacency construction
//	dfs/       — boolean cycle detection for directed graphs
//	scc/       — Tarjan strong components & condensation
//	hamilton/  — backtracking Hamiltonian-cycle search
//	reduce/    — DAG and cyclic transitive reduction
//	builder/   — deterministic graph fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	A──▶B──▶C──▶D      plus the shortcuts A──▶C and B──▶D:
//	reduce leaves only the chain A▶B▶C▶D — reachability is unchanged,
//	every redundant edge is gone.
//
// Dive into README-style package docs (doc.go in each subpackage) for the
// contracts, complexity notes and the exact-subset vs synthetic-allowed
// trade-off.
//
//	go get github.com/katalvlaran/tred
package tred
