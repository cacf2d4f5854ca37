// Package builder assembles deterministic graph fixtures for tests and
// benchmarks.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g,
//     resolves cfg, runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.
//
// Fixtures:
//
//	Cycle(n)               — simple directed/undirected cycle C_n
//	Path(n)                — simple path P_n
//	Complete(n)            — complete graph K_n (ordered pairs i<j)
//	SCCChain(count, size)  — a chain of dense strongly connected
//	                         components: per component a Hamiltonian
//	                         ring plus all forward chords, plus one
//	                         forward edge between corresponding vertices
//	                         of neighbouring components
//
// SCCChain reproduces the classic cyclic-reduction stress fixture: with
// count=size=k the input has k·k(k−1)/2 + (k−1)·k edges and its exact
// transitive reduction has k·k + (k−1).
package builder
