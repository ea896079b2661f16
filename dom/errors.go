package dom

import "fmt"

// TaskError is a recoverable document mutation failure: a lookup miss,
// a wrong node kind for an attribute target, or an attribute value that
// failed validation. Task errors are returned (and, on the deferred
// path, collected) rather than aborting anything.
//
// The rendered text is a stable contract; callers assert on it.
type TaskError struct {
	Message string
}

func (e *TaskError) Error() string {
	return "document task error: " + e.Message
}

func newTaskError(format string, args ...any) *TaskError {
	return &TaskError{Message: fmt.Sprintf(format, args...)}
}

// Panic messages for fatal internal-consistency violations. These fire
// when an invariant was already broken upstream: the design choice is
// fail-fast, not defensive recovery.
const (
	panicNodeNotFound   = "dom: node not found"
	panicParentNotFound = "dom: parent node not found"
	panicRootNotFound   = "dom: root node not found"
	panicNotRegistered  = "dom: node is not registered to the store"

	// The "class" attribute needs a DOM-side sync (likely a
	// class-to-elements map) that has not been designed. Until it is,
	// touching it fails loudly instead of applying partially.
	panicClassNotImplemented = "dom: class attribute handling is not implemented"
)
