// Package scc provides strong-connectivity analysis for directed
// core.Graphs: Tarjan's strongly connected components and the graph
// condensation built from them.
//
// A condensation is a digraph whose vertices are the SCCs of the input
// and whose edges are the inter-SCC connections; it is acyclic by
// construction. Because "a graph whose vertices are graphs" is awkward to
// model with map keys, the condensation keeps its component subgraphs in
// a positional side table: DAG vertex "c3" stands for Component(3), and
// component identity is positional, never structural.
//
// Component subgraphs are induced from the input with their edge IDs
// preserved, so an edge handle seen in a component is a valid handle into
// the input graph.
//
// Complexity:
//
//   - Components: O(V + E) (iterative Tarjan, explicit stacks)
//   - Condense:   O(V + E) on top of Components
package scc
