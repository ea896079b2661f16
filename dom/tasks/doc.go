// Package tasks buffers tree-builder instructions for deferred replay.
//
// # Overview
//
// The Queue implements dom.TreeBuilder by recording each call as a task
// instead of mutating the document. Flush replays the tasks against the
// live document in FIFO order through the same primitives the immediate
// path uses, so a flushed queue and a direct handle produce identical
// trees for identical call sequences.
//
// Flush runs to completion: per-task failures (bad attribute targets,
// invalid id values) are collected as messages, not raised, and do not
// stop later tasks from applying. Partial application on error is by
// design.
//
// # Identity prediction
//
// CreateElement must return an identity before the store assigns one,
// so the queue predicts: it seeds a counter from the document's
// PeekNextID at construction and advances it per element task. The
// predictions are valid only if nothing else registers nodes on the
// same document between queue construction and Flush. Mixing queued and
// direct mutation without flushing in between corrupts the mapping.
package tasks
