// Package printer renders a document tree for diagnostics.
//
// The output format is a contract: tests and external tooling snapshot
// it. One line per node, box-drawing connectors, payload-specific
// rendering, and an ellipsis line once the indentation prefix exceeds a
// fixed byte length (bounding output on very deep trees).
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/bigfatbird/gosub-browser/dom"
)

const (
	// Connector before the last child of a parent.
	lastConnector = "└─ "
	// Connector before a child with more siblings following.
	siblingConnector = "├─ "

	// Indentation continuing below a last child.
	lastIndent = "   "
	// Indentation continuing below a child with more siblings.
	siblingIndent = "│  "

	// maxPrefixLen is the indentation byte length past which recursion
	// stops with an ellipsis line.
	maxPrefixLen = 40
)

// Print writes the document's tree, rooted at its root node, to w.
func Print(w io.Writer, d *dom.Document) {
	printNode(w, d, d.Root(), "", true)
}

// String renders the document held by the handle.
func String(h dom.DocumentHandle) string {
	var sb strings.Builder
	h.Read(func(d *dom.Document) { Print(&sb, d) })
	return sb.String()
}

func printNode(w io.Writer, d *dom.Document, n *dom.Node, prefix string, last bool) {
	line := prefix
	if last {
		line += lastConnector
	} else {
		line += siblingConnector
	}

	switch data := n.Data.(type) {
	case *dom.DocumentData:
		fmt.Fprintf(w, "%sDocument\n", line)
	case *dom.DocTypeData:
		fmt.Fprintf(w, "%s<!DOCTYPE %s \"%s\" \"%s\">\n",
			line, data.Name, data.PubIdentifier, data.SysIdentifier)
	case *dom.TextData:
		fmt.Fprintf(w, "%s\"%s\"\n", line, data.Value)
	case *dom.CommentData:
		fmt.Fprintf(w, "%s<!-- %s -->\n", line, data.Value)
	case *dom.ElementData:
		fmt.Fprintf(w, "%s<%s", line, data.Name)
		for _, key := range data.Attributes.Keys() {
			value, _ := data.Attributes.Get(key)
			fmt.Fprintf(w, " %s=%s", key, value)
		}
		fmt.Fprintln(w, ">")
	}

	if len(prefix) > maxPrefixLen {
		fmt.Fprintln(w, "...")
		return
	}

	childPrefix := prefix
	if last {
		childPrefix += lastIndent
	} else {
		childPrefix += siblingIndent
	}

	for i, childID := range n.Children {
		child, ok := d.GetNodeByID(childID)
		if !ok {
			panic("printer: child node not found")
		}
		printNode(w, d, child, childPrefix, i == len(n.Children)-1)
	}
}
