package dom

// TreeBuilder is the four-operation capability an external parser
// drives to construct a document. Two implementations exist: the
// DocumentHandle applies every call immediately, and tasks.Queue
// records calls for a later bulk flush. A parser written against this
// interface can switch between the two without change.
type TreeBuilder interface {
	// CreateElement creates an element node under parent at position
	// (AtEnd to append) and returns its identity. Only elements return
	// an identity: the parser needs it to track the current context
	// node, typically on a stack of open elements.
	CreateElement(name string, parent NodeID, position int, namespace string) NodeID

	// CreateText appends a text node under parent.
	CreateText(content string, parent NodeID)

	// CreateComment appends a comment node under parent.
	CreateComment(content string, parent NodeID)

	// InsertAttribute sets an attribute on the element with the given
	// identity. The returned error is a *TaskError on the immediate
	// path; the buffered path defers all checks to flush time and
	// never fails here.
	InsertAttribute(key, value string, element NodeID) error
}
