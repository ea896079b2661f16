package dom

import (
	"io"

	"github.com/bigfatbird/gosub-browser/dom/arena"
	"github.com/bigfatbird/gosub-browser/dom/index"
	"github.com/bigfatbird/gosub-browser/dom/walker"
)

// DocumentType is the kind of document being built.
type DocumentType int

const (
	// HTMLDocument is a regular HTML document.
	HTMLDocument DocumentType = iota
	// IframeSrcDoc is a document created from an iframe srcdoc attribute.
	IframeSrcDoc
)

// QuirksMode is the parser-compatibility classification. It is computed
// elsewhere and consumed here as a plain value.
type QuirksMode int

const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

// Document owns one node store and the named-id index over it, and
// implements every tree mutation primitive. All external references to
// nodes are plain NodeIDs resolved through the store.
type Document struct {
	store *arena.Store[*Node]
	named *index.Named

	Doctype    DocumentType
	QuirksMode QuirksMode
}

// NewDocument creates an empty document. No root node is registered;
// use the builder package for a fully initialized document.
func NewDocument() *Document {
	return &Document{
		store:   arena.NewStore[*Node](),
		named:   index.NewNamed(),
		Doctype: HTMLDocument,
	}
}

// GetNodeByID returns the node with the given identity. The returned
// pointer aliases the stored node; mutations through it are live.
func (d *Document) GetNodeByID(id NodeID) (*Node, bool) {
	return d.store.Get(id)
}

// GetNodeByNamedID returns the element indexed under the given id
// attribute value.
func (d *Document) GetNodeByNamedID(namedID string) (*Node, bool) {
	id, ok := d.named.Get(namedID)
	if !ok {
		return nil, false
	}
	return d.store.Get(id)
}

// NamedIndex exposes the named-id index for inspection.
func (d *Document) NamedIndex() *index.Named {
	return d.named
}

// Root returns the designated root node. A document whose root is
// missing is unrecoverably broken.
func (d *Document) Root() *Node {
	root, ok := d.store.Get(RootID)
	if !ok {
		panic(panicRootNotFound)
	}
	return root
}

// PeekNextID returns the identity the next registration would assign.
func (d *Document) PeekNextID() NodeID {
	return d.store.PeekNextID()
}

// NodeCount returns the number of registered nodes, attached or not.
func (d *Document) NodeCount() int {
	return d.store.Count()
}

// DumpStore writes the raw store contents to w, for debugging.
func (d *Document) DumpStore(w io.Writer) {
	d.store.Dump(w)
}

// AddNewNode registers the node if it has no identity yet (already
// registered input is left as-is), echoes the identity into an element
// payload, and indexes an "id" attribute carried at construction time
// under the first-wins rule. Returns the node's final identity.
func (d *Document) AddNewNode(node *Node) NodeID {
	// Capture a construction-time id attribute before registration so
	// the element becomes queryable by named id.
	var namedID string
	if el, ok := node.Data.(*ElementData); ok {
		if v, ok := el.Attributes.Get("id"); ok {
			namedID = v
		}
	}

	id := node.ID
	if !node.Registered {
		id = d.store.Register(node)
		node.ID = id
		node.Registered = true
	}

	if n, ok := d.store.Get(id); ok {
		if el, ok := n.Data.(*ElementData); ok {
			el.NodeID = id
		}
	}

	if namedID != "" {
		// Add validates and keeps the first writer; duplicates and
		// invalid values are silently ignored.
		d.named.Add(namedID, id)
	}

	return id
}

// AddNode registers the node (if needed) and attaches it under parent
// at position (AtEnd to append). Returns the node's identity.
func (d *Document) AddNode(node *Node, parent NodeID, position int) NodeID {
	id := d.AddNewNode(node)
	d.AttachNodeToParent(id, parent, position)
	return id
}

// AttachNodeToParent inserts node into parent's children at position,
// clamped to the current child count (AtEnd appends), and sets the
// node's parent link. Attaching a node to itself or anywhere inside its
// own subtree is refused with no mutation, as is an unresolvable
// parent. Returns whether the attach happened.
func (d *Document) AttachNodeToParent(node, parent NodeID, position int) bool {
	if parent == node || d.HasCyclicReference(node, parent) {
		return false
	}

	parentNode, ok := d.store.Get(parent)
	if !ok {
		return false
	}
	child, ok := d.store.Get(node)
	if !ok {
		panic(panicNodeNotFound)
	}

	if position >= 0 {
		pos := position
		if pos > len(parentNode.Children) {
			pos = len(parentNode.Children)
		}
		parentNode.Children = append(parentNode.Children, 0)
		copy(parentNode.Children[pos+1:], parentNode.Children[pos:])
		parentNode.Children[pos] = node
	} else {
		parentNode.Children = append(parentNode.Children, node)
	}

	child.Parent = parent
	return true
}

// DetachNodeFromParent removes node from its parent's children and
// clears its parent link. A node that already has no parent is left
// alone.
func (d *Document) DetachNodeFromParent(node NodeID) {
	child, ok := d.store.Get(node)
	if !ok {
		panic(panicNodeNotFound)
	}
	if !child.HasParent() {
		return
	}

	parentNode, ok := d.store.Get(child.Parent)
	if !ok {
		panic(panicParentNotFound)
	}

	children := parentNode.Children[:0]
	for _, id := range parentNode.Children {
		if id != node {
			children = append(children, id)
		}
	}
	parentNode.Children = children

	child.Parent = ParentNone
}

// Relocate moves node to the end of newParent's children. Relocating a
// node onto its current parent is a no-op. The node must have been
// registered; anything else is a caller bug.
func (d *Document) Relocate(node, newParent NodeID) {
	n, ok := d.store.Get(node)
	if !ok {
		panic(panicNodeNotFound)
	}
	if !n.Registered {
		panic(panicNotRegistered)
	}

	if n.Parent == newParent {
		return
	}

	d.DetachNodeFromParent(node)
	d.AttachNodeToParent(node, newParent, AtEnd)
}

// HasCyclicReference reports whether parent lives inside node's own
// subtree, i.e. whether attaching node under parent would create a
// cycle. It runs before every attach, including relocations.
func (d *Document) HasCyclicReference(node, parent NodeID) bool {
	return walker.HasDescendant(d, node, parent)
}

// ChildrenOf implements walker.ChildLister over the store.
func (d *Document) ChildrenOf(id arena.ID) []arena.ID {
	if n, ok := d.store.Get(id); ok {
		return n.Children
	}
	return nil
}

// InsertAttribute sets an attribute on an element node. It returns a
// TaskError when the target cannot be resolved, is not an element, or
// (for "id") when the value fails validation. A valid "id" value is
// additionally indexed under the first-wins rule; an id that is already
// taken is not an error.
func (d *Document) InsertAttribute(key, value string, element NodeID) error {
	node, ok := d.store.Get(element)
	if !ok {
		return newTaskError("Node ID %d not found", element)
	}
	el, ok := node.Data.(*ElementData)
	if !ok {
		return newTaskError("Node ID %d is not an element", element)
	}
	if key == "id" && !index.ValidateID(value) {
		return newTaskError("Attribute value '%s' did not pass validation", value)
	}

	el.Attributes.Set(key, value)

	// Attributes that must stay in sync with document-level state.
	switch key {
	case "id":
		d.named.Add(value, element)
	case "class":
		panic(panicClassNotImplemented)
	}

	return nil
}
