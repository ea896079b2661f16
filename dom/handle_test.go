package dom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bigfatbird/gosub-browser/dom"
	"github.com/bigfatbird/gosub-browser/dom/builder"
)

func TestHandleCloneSharesDocument(t *testing.T) {
	a := builder.NewDocument()
	b := a.Clone()

	a.CreateElement("div", dom.RootID, dom.AtEnd, dom.HTMLNamespace)

	// Both handles observe the same live document.
	require.Equal(t, 2, b.NodeCount())
}

func TestHandleUpdateInsideReadPanics(t *testing.T) {
	doc := builder.NewDocument()

	require.Panics(t, func() {
		doc.Read(func(*dom.Document) {
			doc.Update(func(*dom.Document) {})
		})
	})
}

func TestHandleUpdateInsideUpdatePanics(t *testing.T) {
	doc := builder.NewDocument()

	require.Panics(t, func() {
		doc.Update(func(*dom.Document) {
			doc.Update(func(*dom.Document) {})
		})
	})
}

func TestHandleReadInsideUpdatePanics(t *testing.T) {
	doc := builder.NewDocument()

	require.Panics(t, func() {
		doc.Update(func(*dom.Document) {
			doc.Read(func(*dom.Document) {})
		})
	})
}

func TestHandleReadsMayNest(t *testing.T) {
	doc := builder.NewDocument()

	doc.Read(func(outer *dom.Document) {
		doc.Read(func(inner *dom.Document) {
			require.Same(t, outer, inner)
		})
	})
}

func TestHandleGuardReleasedAfterPanic(t *testing.T) {
	doc := builder.NewDocument()

	require.Panics(t, func() {
		doc.Update(func(*dom.Document) { panic("boom") })
	})

	// The borrow must be released even when the closure panicked.
	doc.Update(func(*dom.Document) {})
}

func TestHandleViolationSurvivesClone(t *testing.T) {
	a := builder.NewDocument()
	b := a.Clone()

	require.Panics(t, func() {
		a.Read(func(*dom.Document) {
			b.Update(func(*dom.Document) {})
		})
	})
}
