package tasks

import "github.com/bigfatbird/gosub-browser/dom"

// task is one recorded document mutation, replayed at flush time.
type task interface {
	run(doc dom.DocumentHandle) error
}

type createElement struct {
	name      string
	parent    dom.NodeID
	position  int
	namespace string
}

func (t createElement) run(doc dom.DocumentHandle) error {
	doc.CreateElement(t.name, t.parent, t.position, t.namespace)
	return nil
}

type createText struct {
	content string
	parent  dom.NodeID
}

func (t createText) run(doc dom.DocumentHandle) error {
	doc.CreateText(t.content, t.parent)
	return nil
}

type createComment struct {
	content string
	parent  dom.NodeID
}

func (t createComment) run(doc dom.DocumentHandle) error {
	doc.CreateComment(t.content, t.parent)
	return nil
}

type insertAttribute struct {
	key     string
	value   string
	element dom.NodeID
}

func (t insertAttribute) run(doc dom.DocumentHandle) error {
	return doc.InsertAttribute(t.key, t.value, t.element)
}

// Queue is the buffered TreeBuilder: it records calls as data and
// replays them against the live document on Flush, in FIFO order.
//
// Element creations are answered immediately with a predicted identity,
// seeded from the store's next ID at queue construction. The prediction
// holds only while nothing else registers nodes on the same document:
// interleaving queued and direct mutation without an intervening Flush
// makes predicted and actual identities diverge. Do not mix the two.
type Queue struct {
	doc dom.DocumentHandle

	// nextNodeID is the identity the next element creation will be
	// predicted to receive, without touching the store.
	nextNodeID dom.NodeID

	tasks []task
}

var _ dom.TreeBuilder = (*Queue)(nil)

// New creates a queue targeting the given document.
func New(doc dom.DocumentHandle) *Queue {
	return &Queue{
		doc:        doc.Clone(),
		nextNodeID: doc.PeekNextID(),
	}
}

// IsEmpty reports whether the queue holds no pending tasks.
func (q *Queue) IsEmpty() bool {
	return len(q.tasks) == 0
}

// Len returns the number of pending tasks.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Flush replays every queued task in order. A failing task does not
// stop the replay; its message is collected and the remaining tasks
// still run. The queue is cleared and reusable afterwards. Returns one
// message per failed task, in task order.
func (q *Queue) Flush() []string {
	var errs []string
	for _, t := range q.tasks {
		if err := t.run(q.doc); err != nil {
			errs = append(errs, err.Error())
		}
	}
	q.tasks = q.tasks[:0]
	return errs
}

// CreateElement records an element creation and returns the identity
// the element is predicted to receive once flushed. Only elements get
// an identity here: the parser needs one to use the element as a parent
// in subsequent calls.
func (q *Queue) CreateElement(name string, parent dom.NodeID, position int, namespace string) dom.NodeID {
	id := q.nextNodeID
	q.nextNodeID = q.nextNodeID.Next()
	q.tasks = append(q.tasks, createElement{
		name:      name,
		parent:    parent,
		position:  position,
		namespace: namespace,
	})
	return id
}

// CreateText records a text creation.
func (q *Queue) CreateText(content string, parent dom.NodeID) {
	q.tasks = append(q.tasks, createText{content: content, parent: parent})
}

// CreateComment records a comment creation.
func (q *Queue) CreateComment(content string, parent dom.NodeID) {
	q.tasks = append(q.tasks, createComment{content: content, parent: parent})
}

// InsertAttribute records an attribute insertion. It always succeeds:
// the document is not touched until Flush, so validation and lookup
// errors surface there.
func (q *Queue) InsertAttribute(key, value string, element dom.NodeID) error {
	q.tasks = append(q.tasks, insertAttribute{key: key, value: value, element: element})
	return nil
}
