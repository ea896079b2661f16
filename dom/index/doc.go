// Package index maintains the named-id lookup table for a document:
// the mapping from an element's validated "id" attribute value to its
// node identity, with first-writer-wins semantics.
package index
