package dom

import "github.com/bigfatbird/gosub-browser/dom/arena"

// DocumentFragment is a secondary, independently stored subtree meant
// to be spliced into its owning document later, for instance under a
// <template> element. Host is the node the fragment will attach to;
// the splice itself is not part of this core.
type DocumentFragment struct {
	store *arena.Store[*Node]

	// Doc is a handle to the fragment's owning document.
	Doc DocumentHandle

	// Host is the node in Doc the fragment is destined for.
	Host NodeID
}

// NewFragment creates a fragment with its own empty store, owned by doc
// and destined for host.
func NewFragment(doc DocumentHandle, host NodeID) DocumentFragment {
	return DocumentFragment{
		store: arena.NewStore[*Node](),
		Doc:   doc.Clone(),
		Host:  host,
	}
}
