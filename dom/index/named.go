package index

import (
	"unicode"

	"github.com/bigfatbird/gosub-browser/dom/arena"
)

// Named maps validated element "id" attribute values to node
// identities. The first element indexed under a value keeps the mapping
// for the document's lifetime; later writers are silently ignored.
// This is an index over the store, not an ownership relation.
type Named struct {
	elems map[string]arena.ID
}

// NewNamed creates an empty named-id index.
func NewNamed() *Named {
	return &Named{elems: make(map[string]arena.ID)}
}

// Add indexes value under the first-wins rule. It returns false, with
// no other signal, when the value fails validation or is already taken.
func (ix *Named) Add(value string, id arena.ID) bool {
	if !ValidateID(value) {
		return false
	}
	if _, taken := ix.elems[value]; taken {
		return false
	}
	ix.elems[value] = id
	return true
}

// Get returns the identity indexed under value.
func (ix *Named) Get(value string) (arena.ID, bool) {
	id, ok := ix.elems[value]
	return id, ok
}

// Has reports whether value is indexed.
func (ix *Named) Has(value string) bool {
	_, ok := ix.elems[value]
	return ok
}

// Len returns the number of indexed values.
func (ix *Named) Len() int {
	return len(ix.elems)
}

// Stats reports index metrics.
type Stats struct {
	Entries int
}

// Stats returns current index metrics.
func (ix *Named) Stats() Stats {
	return Stats{Entries: len(ix.elems)}
}

// ValidateID applies the id-attribute value rule from HTML5 3.2.3.1:
// the value must contain no whitespace, must be non-empty, and must
// contain at least one alphabetic character anywhere (not necessarily
// first).
func ValidateID(value string) bool {
	if value == "" {
		return false
	}
	hasAlpha := false
	for _, r := range value {
		if unicode.IsSpace(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasAlpha = true
		}
	}
	return hasAlpha
}
