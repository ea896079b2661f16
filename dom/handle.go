package dom

// DocumentHandle is shared, cheaply-copied access to one live document.
// Copying a handle (or calling Clone) yields another handle to the same
// document, not a copy of its content.
//
// Access goes through Read and Update closures, guarded by a runtime
// single-writer check: taking Update while any other access is
// outstanding, or Read while an Update is outstanding, is a programming
// error and panics immediately. The guard is a discipline check, not a
// lock; the document is single-threaded and nothing ever waits.
type DocumentHandle struct {
	shared *sharedDocument
}

type sharedDocument struct {
	doc *Document

	// borrow tracks outstanding access: 0 free, >0 active readers,
	// -1 an active writer.
	borrow int
}

// Shared creates an empty document and returns a handle to it.
func Shared() DocumentHandle {
	return DocumentHandle{shared: &sharedDocument{doc: NewDocument()}}
}

// Clone returns another handle to the same document. O(1).
func (h DocumentHandle) Clone() DocumentHandle {
	return h
}

// Read runs fn with shared access to the document. Reads may nest with
// other reads but not with an active Update.
func (h DocumentHandle) Read(fn func(*Document)) {
	s := h.shared
	if s.borrow < 0 {
		panic("dom: document read while an update is in progress")
	}
	s.borrow++
	defer func() { s.borrow-- }()
	fn(s.doc)
}

// Update runs fn with exclusive access to the document. Any outstanding
// access, including a read, makes this panic.
func (h DocumentHandle) Update(fn func(*Document)) {
	s := h.shared
	if s.borrow != 0 {
		panic("dom: document update while another access is in progress")
	}
	s.borrow = -1
	defer func() { s.borrow = 0 }()
	fn(s.doc)
}

// AddNode registers the node (if needed) and attaches it under parent.
func (h DocumentHandle) AddNode(node *Node, parent NodeID, position int) NodeID {
	var id NodeID
	h.Update(func(d *Document) { id = d.AddNode(node, parent, position) })
	return id
}

// AttachNodeToParent attaches an existing node under parent.
func (h DocumentHandle) AttachNodeToParent(node, parent NodeID, position int) bool {
	var ok bool
	h.Update(func(d *Document) { ok = d.AttachNodeToParent(node, parent, position) })
	return ok
}

// DetachNodeFromParent separates the node from its parent, if any.
func (h DocumentHandle) DetachNodeFromParent(node NodeID) {
	h.Update(func(d *Document) { d.DetachNodeFromParent(node) })
}

// Relocate moves the node under a new parent.
func (h DocumentHandle) Relocate(node, newParent NodeID) {
	h.Update(func(d *Document) { d.Relocate(node, newParent) })
}

// HasCyclicReference reports whether attaching node under parent would
// create a cycle.
func (h DocumentHandle) HasCyclicReference(node, parent NodeID) bool {
	var cyclic bool
	h.Read(func(d *Document) { cyclic = d.HasCyclicReference(node, parent) })
	return cyclic
}

// PeekNextID returns the identity the next registration would assign.
func (h DocumentHandle) PeekNextID() NodeID {
	var id NodeID
	h.Read(func(d *Document) { id = d.PeekNextID() })
	return id
}

// NodeCount returns the number of registered nodes.
func (h DocumentHandle) NodeCount() int {
	var n int
	h.Read(func(d *Document) { n = d.NodeCount() })
	return n
}

// DocumentHandle is the immediate TreeBuilder: every call mutates the
// live document on the spot.
var _ TreeBuilder = DocumentHandle{}

// CreateElement creates and attaches a new element node, returning its
// identity for use as a parent in later calls.
func (h DocumentHandle) CreateElement(name string, parent NodeID, position int, namespace string) NodeID {
	return h.AddNode(NewElement(name, nil, namespace), parent, position)
}

// CreateText creates and attaches a new text node.
func (h DocumentHandle) CreateText(content string, parent NodeID) {
	h.AddNode(NewText(content), parent, AtEnd)
}

// CreateComment creates and attaches a new comment node.
func (h DocumentHandle) CreateComment(content string, parent NodeID) {
	h.AddNode(NewComment(content), parent, AtEnd)
}

// InsertAttribute sets an attribute on an element node.
func (h DocumentHandle) InsertAttribute(key, value string, element NodeID) error {
	var err error
	h.Update(func(d *Document) { err = d.InsertAttribute(key, value, element) })
	return err
}
