// Package walker provides iterative traversal over document subtrees.
//
// Traversal uses an explicit work-list instead of recursion so that
// stack usage stays bounded on adversarially deep trees. The walker
// sees the tree only through the ChildLister interface; it never
// touches node payloads.
package walker

import "github.com/bigfatbird/gosub-browser/dom/arena"

// initialStackCapacity pre-sizes the work-list. Typical documents nest
// a few dozen levels at most, so this avoids most reallocations.
const initialStackCapacity = 64

// ChildLister exposes the child identities of a stored node. An unknown
// identity yields nil.
type ChildLister interface {
	ChildrenOf(id arena.ID) []arena.ID
}

// HasDescendant reports whether target appears anywhere in node's
// subtree, node itself excluded. This is the cycle check backing every
// attach: attaching node under one of its own descendants would make
// the tree a graph.
//
// Child lists are duplicate-free by document invariant, so no visited
// set is needed; cost is O(size of node's subtree).
func HasDescendant(t ChildLister, node, target arena.ID) bool {
	stack := make([]arena.ID, 0, initialStackCapacity)
	stack = append(stack, t.ChildrenOf(node)...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == target {
			return true
		}
		stack = append(stack, t.ChildrenOf(id)...)
	}
	return false
}

// Descendants returns node's subtree in depth-first pre-order, node
// itself excluded.
func Descendants(t ChildLister, node arena.ID) []arena.ID {
	var out []arena.ID
	stack := make([]arena.ID, 0, initialStackCapacity)
	stack = appendReversed(stack, t.ChildrenOf(node))

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)
		stack = appendReversed(stack, t.ChildrenOf(id))
	}
	return out
}

// appendReversed pushes ids back-to-front so the stack pops them in
// document order.
func appendReversed(stack, ids []arena.ID) []arena.ID {
	for i := len(ids) - 1; i >= 0; i-- {
		stack = append(stack, ids[i])
	}
	return stack
}
