// Package arena provides the identity-assigning node store backing a
// document.
//
// # Overview
//
// The store is a flat, append-only container. Registering an item
// assigns it the next sequential ID; the ID stays valid for the life of
// the store and lookups are O(1) slice indexing. Nothing is ever freed:
// a document node that is detached from the tree remains addressable by
// its ID.
//
// The store is deliberately unaware of what it holds. The dom package
// instantiates it as Store[*dom.Node] and keeps all tree invariants
// (parent/child symmetry, acyclicity) on its side of the boundary.
//
// PeekNextID exists for one caller: the deferred task queue predicts
// the IDs that future element registrations will receive. Those
// predictions hold only while nothing else registers items on the same
// store; see the tasks package for the interleaving hazard.
package arena
