// Package dom implements the document-tree construction core of the
// HTML parsing engine: the node/document data model, the mutation
// protocol over it, and the TreeBuilder capability the parser drives.
//
// # Overview
//
// A Document owns a flat node store (dom/arena) and references nodes
// exclusively by NodeID. Nodes carry a parent link, an ordered child
// list, and one typed payload (document, doctype, text, comment, or
// element). The mutation primitives maintain the tree invariants:
//
//   - exactly one node, the root, has no parent
//   - a child appears in its parent's list iff its parent link matches
//   - no ID appears in more than one child list
//   - no node is its own ancestor; every attach runs a cycle check first
//
// Nodes are never deleted. Detaching removes reachability from the
// root; identity and storage persist.
//
// # Access discipline
//
// Documents are reached through DocumentHandle, a cheaply-copied shared
// handle with a runtime single-writer guard. Overlapping a mutable
// access with any other access panics; ordering between call sites is
// the caller's job, not this package's.
//
// # Building
//
// The TreeBuilder interface is the construction surface. The handle
// implements it immediately; the tasks package implements it as a
// recorded queue replayed in bulk. Both produce identical trees for
// identical call sequences. The builder package assembles fresh
// documents and fragment documents in their required initial state.
package dom
