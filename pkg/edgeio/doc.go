// Package edgeio reads and writes edge lists for string-vertex graphs.
//
// Three formats are supported, auto-detected by file extension:
//
//   - Text (.txt, .edges): one edge per line as "u v", a lone vertex name
//     for an isolated vertex, "#" comments.
//   - JSON (.json): {"vertices": [...], "edges": [{"from": ..., "to": ...}]}.
//   - TOML (.toml): a vertices array plus [[edges]] tables.
//
// The package also encodes computed partitions as JSON or plain text for
// CLI and API output. All encoders sort their output so identical graphs
// produce identical bytes.
package edgeio
