// Package render draws adjacency structures as Graphviz diagrams.
//
// This is the drawing boundary of islander: it consumes plain adjacency
// values produced by the graph package and emits DOT text or rendered
// SVG/PNG bytes. The core analysis packages never depend on it.
package render
