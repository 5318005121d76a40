// Package components partitions a graph's vertices into connected
// components.
//
// Connectivity is always the undirected notion: two vertices belong to the
// same component when a chain of edges joins them, regardless of edge
// direction. Four interchangeable engines produce the same logical result:
//
//   - [UnionFind]: quick-find over an arena of member lists. Lookup is O(1),
//     union is O(size of the smaller component).
//   - [NaiveMerge]: rescans a list of growing vertex sets per edge.
//     Quadratic; kept as the correctness baseline the other engines are
//     checked against.
//   - [DFS] / [DFSIterative]: depth-first traversal. The recursive form
//     carries an explicit depth budget and fails on long chains (see
//     [ErrDepthExceeded]); the iterative form replaces the call stack with
//     an explicit stack of neighbor frames and handles arbitrarily long
//     chains.
//   - [BFS]: breadth-first traversal with a FIFO queue. Robust to long
//     chains by construction.
//
// All engines build their working state fresh per call and share nothing
// across calls. None of them is safe for use while the caller concurrently
// mutates the input.
//
// # Choosing an engine
//
// Use [BFS] or [DFSIterative] for arbitrary input. [UnionFind] is the right
// choice when edges arrive as a stream and membership queries are
// interleaved (see [Finder]). [NaiveMerge] and [DFS] exist to demonstrate,
// respectively, the quadratic baseline and the recursion-depth hazard.
package components
