package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigfatbird/gosub-browser/dom"
	"github.com/bigfatbird/gosub-browser/dom/builder"
)

func TestNewDocument(t *testing.T) {
	document := builder.NewDocument()

	require.Equal(t, 1, document.NodeCount())

	document.Read(func(d *dom.Document) {
		root := d.Root()
		require.Equal(t, dom.RootID, root.ID)
		require.Equal(t, dom.NodeDocument, root.Type())
		require.False(t, root.HasParent())
		require.Empty(t, root.Children)
		require.Equal(t, dom.HTMLDocument, d.Doctype)
		require.Equal(t, dom.NoQuirks, d.QuirksMode)
	})
}

func TestNewFragment(t *testing.T) {
	context := builder.NewDocument()
	context.Update(func(d *dom.Document) { d.QuirksMode = dom.Quirks })
	hostID := context.CreateElement("template", dom.RootID, dom.AtEnd, dom.HTMLNamespace)

	frag := builder.NewFragment(context, hostID)

	require.Equal(t, hostID, frag.Host)

	// The fragment document is independent: quirks mode was copied by
	// value and it has its own root plus an <html> element.
	frag.Doc.Read(func(d *dom.Document) {
		require.Equal(t, dom.Quirks, d.QuirksMode)
		require.Equal(t, 2, d.NodeCount())

		root := d.Root()
		require.Len(t, root.Children, 1)

		html, ok := d.GetNodeByID(root.Children[0])
		require.True(t, ok)
		require.Equal(t, "html", html.Name())
		el := html.Data.(*dom.ElementData)
		require.Equal(t, dom.HTMLNamespace, el.Namespace)
	})

	// Mutating the context afterwards must not leak into the fragment.
	context.Update(func(d *dom.Document) { d.QuirksMode = dom.LimitedQuirks })
	frag.Doc.Read(func(d *dom.Document) {
		require.Equal(t, dom.Quirks, d.QuirksMode)
	})
}

func TestNewFragmentLimitedQuirks(t *testing.T) {
	context := builder.NewDocument()
	context.Update(func(d *dom.Document) { d.QuirksMode = dom.LimitedQuirks })

	frag := builder.NewFragment(context, dom.RootID)
	frag.Doc.Read(func(d *dom.Document) {
		require.Equal(t, dom.LimitedQuirks, d.QuirksMode)
	})
}
