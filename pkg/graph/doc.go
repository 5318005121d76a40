// Package graph defines the vertex/edge model and the adjacency builder
// shared by every analysis in islander.
//
// Vertices are opaque comparable values: two equal values are the same
// vertex, and no identity beyond equality is assumed. An edge is an ordered
// (From, To) pair; self-loops are legal.
//
// The central operation is [BuildAdjacency], which turns an edge list (plus
// optional isolated vertices) into a vertex → neighbor-set mapping. It is a
// pure function of its inputs: building twice from the same inputs yields
// structurally equal mappings.
//
// # Example
//
//	adj := graph.BuildAdjacency([]graph.Edge[string]{
//	    {From: "a", To: "b"},
//	    {From: "b", To: "c"},
//	}, nil, false)
//	// adj["a"] contains "b"; adj["b"] contains "a" and "c".
//
// Connectivity analyses live in the components package; rendering of
// adjacency structures lives in the render package. Neither is required to
// use this package.
package graph
