package dom

import "github.com/bigfatbird/gosub-browser/dom/arena"

// NodeID identifies a node within its document's store.
type NodeID = arena.ID

const (
	// RootID is the identity of the document root node. The root is
	// registered first, so it always receives the store's first ID.
	RootID NodeID = 0

	// ParentNone marks a node without a parent: the root, or a node
	// that has been detached from the tree.
	ParentNone NodeID = ^NodeID(0)

	// AtEnd is the position value that appends a node after the
	// parent's existing children.
	AtEnd = -1
)

// HTMLNamespace is the namespace elements are created in by default.
const HTMLNamespace = "http://www.w3.org/1999/xhtml"

// NodeType discriminates the payload kinds a node can carry.
type NodeType int

const (
	NodeDocument NodeType = iota
	NodeDocType
	NodeText
	NodeComment
	NodeElement
)

// String returns the type name as used in diagnostics.
func (t NodeType) String() string {
	switch t {
	case NodeDocument:
		return "Document"
	case NodeDocType:
		return "DocType"
	case NodeText:
		return "Text"
	case NodeComment:
		return "Comment"
	case NodeElement:
		return "Element"
	}
	return "Unknown"
}

// NodeData is the typed payload of a node. Exactly one of the concrete
// payload types below is stored per node, always behind a pointer so
// that in-place mutation through the store works.
type NodeData interface {
	Type() NodeType
}

// DocumentData is the payload of the document root node.
type DocumentData struct{}

func (*DocumentData) Type() NodeType { return NodeDocument }

// DocTypeData is the payload of a doctype node.
type DocTypeData struct {
	Name          string
	PubIdentifier string
	SysIdentifier string
}

func (*DocTypeData) Type() NodeType { return NodeDocType }

// TextData is the payload of a text node.
type TextData struct {
	Value string
}

func (*TextData) Type() NodeType { return NodeText }

// CommentData is the payload of a comment node.
type CommentData struct {
	Value string
}

func (*CommentData) Type() NodeType { return NodeComment }

// ElementData is the payload of an element node.
type ElementData struct {
	Name       string
	Namespace  string
	Attributes *Attributes

	// NodeID echoes the node's own identity. It is written back by the
	// document at registration time, so a registered element always
	// knows its own ID without a reverse lookup.
	NodeID NodeID
}

func (*ElementData) Type() NodeType { return NodeElement }

// Node is one position in the document tree: an identity, a parent
// link, an ordered child list, and a typed payload.
//
// A freshly constructed node is a valid value with no identity yet;
// Registered flips once the document's store assigns it one.
type Node struct {
	ID         NodeID
	Parent     NodeID
	Children   []NodeID
	Data       NodeData
	Registered bool
}

// Type returns the payload kind of the node.
func (n *Node) Type() NodeType {
	return n.Data.Type()
}

// HasParent reports whether the node is attached to a parent.
func (n *Node) HasParent() bool {
	return n.Parent != ParentNone
}

// Name returns the element tag name, or "" for non-element nodes.
func (n *Node) Name() string {
	if el, ok := n.Data.(*ElementData); ok {
		return el.Name
	}
	return ""
}

func newNode(data NodeData) *Node {
	return &Node{
		Parent: ParentNone,
		Data:   data,
	}
}

// NewDocumentNode creates the payload-bearing root node of a document.
func NewDocumentNode() *Node {
	return newNode(&DocumentData{})
}

// NewDocType creates an unregistered doctype node.
func NewDocType(name, pubIdentifier, sysIdentifier string) *Node {
	return newNode(&DocTypeData{
		Name:          name,
		PubIdentifier: pubIdentifier,
		SysIdentifier: sysIdentifier,
	})
}

// NewElement creates an unregistered element node. A nil attrs starts
// the element with an empty attribute set.
func NewElement(name string, attrs *Attributes, namespace string) *Node {
	if attrs == nil {
		attrs = NewAttributes()
	}
	return newNode(&ElementData{
		Name:       name,
		Namespace:  namespace,
		Attributes: attrs,
	})
}

// NewText creates an unregistered text node.
func NewText(value string) *Node {
	return newNode(&TextData{Value: value})
}

// NewComment creates an unregistered comment node.
func NewComment(value string) *Node {
	return newNode(&CommentData{Value: value})
}
