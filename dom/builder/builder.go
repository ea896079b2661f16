// Package builder assembles documents in their required initial state.
package builder

import "github.com/bigfatbird/gosub-browser/dom"

// NewDocument creates a document with its root "document" node
// registered. The root receives the store's first identity.
func NewDocument() dom.DocumentHandle {
	doc := dom.Shared()
	doc.Update(func(d *dom.Document) {
		d.AddNewNode(dom.NewDocumentNode())
	})
	return doc
}

// NewFragment creates a fragment document for the given context: a
// fresh, independently stored document that inherits the context
// document's quirks mode by value and starts with a root <html> element
// attached under its document node. Host is the node in the context
// document the fragment will later be spliced into; the splice itself
// is outside this core.
func NewFragment(context dom.DocumentHandle, host dom.NodeID) dom.DocumentFragment {
	doc := NewDocument()

	var quirks dom.QuirksMode
	context.Read(func(d *dom.Document) { quirks = d.QuirksMode })
	doc.Update(func(d *dom.Document) {
		d.Doctype = dom.HTMLDocument
		d.QuirksMode = quirks
	})

	// TODO: initialize tokenizer state from the context element once
	// fragment parsing lands.
	doc.CreateElement("html", dom.RootID, dom.AtEnd, dom.HTMLNamespace)

	return dom.NewFragment(doc, host)
}
