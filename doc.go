// Package mstkit keeps minimum spanning trees minimum while the weights of a
// live graph drift, one edge at a time, without recomputing from scratch.
//
// 🚀 What is in the box?
//
//	• core/   — Graph, Tree and Edge types over any ordered node ID, plus Verify
//	• dynmst/ — the update algorithm: cycle step, split step, dispatcher, options
//
// ✨ How a change is handled
//
//   - Non-tree edge gets cheaper → insert it, drop the heaviest edge on the cycle it closes.
//   - Tree edge gets dearer      → remove it, add the cheapest edge across the cut.
//   - Anything else              → the tree is already minimum.
//
// Quick ASCII example (tree edges drawn, A—C lowered from 5 to 0.5):
//
//	  before           after
//	A──1──B          A──1──B
//	      │           \
//	      1           0.5
//	      │             \
//	      C              C
//
// The initial tree comes from Prim or Kruskal; this module only maintains it.
//
//	go get github.com/katalvlaran/mstkit
package mstkit
