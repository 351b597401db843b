// Package graphs builds graphs from edge lists and extracts breadth-first
// trees from them, on top of github.com/dominikbraun/graph.
//
// Vertices are their own hash, so a graph of hostnames is a
// graph.Graph[string, string]. Neighbours are visited in sorted order,
// which keeps traversal results deterministic.
package graphs
