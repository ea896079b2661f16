package walker

import (
	"testing"

	"github.com/bigfatbird/gosub-browser/dom/arena"
)

// mapLister is a test ChildLister backed by a plain map.
type mapLister map[arena.ID][]arena.ID

func (m mapLister) ChildrenOf(id arena.ID) []arena.ID {
	return m[id]
}

// testTree builds:
//
//	0
//	├─ 1
//	│  ├─ 3
//	│  └─ 4
//	│     └─ 5
//	└─ 2
func testTree() mapLister {
	return mapLister{
		0: {1, 2},
		1: {3, 4},
		4: {5},
	}
}

func Test_HasDescendant(t *testing.T) {
	tree := testTree()

	cases := []struct {
		node, target arena.ID
		want         bool
	}{
		{0, 5, true},  // deep descendant
		{1, 5, true},  // through one level
		{1, 3, true},  // direct child
		{0, 0, false}, // a node is not its own descendant
		{1, 2, false}, // sibling
		{5, 1, false}, // ancestor, not descendant
		{2, 3, false}, // unrelated subtree
		{9, 1, false}, // unknown node has no children
	}

	for _, tc := range cases {
		if got := HasDescendant(tree, tc.node, tc.target); got != tc.want {
			t.Errorf("HasDescendant(%d, %d) = %v; want %v", tc.node, tc.target, got, tc.want)
		}
	}
}

func Test_Descendants_Preorder(t *testing.T) {
	tree := testTree()

	got := Descendants(tree, 0)
	want := []arena.ID{1, 3, 4, 5, 2}

	if len(got) != len(want) {
		t.Fatalf("Descendants(0) = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Descendants(0) = %v; want %v", got, want)
		}
	}
}

func Test_Descendants_Leaf(t *testing.T) {
	tree := testTree()

	if got := Descendants(tree, 5); len(got) != 0 {
		t.Errorf("Descendants(5) = %v; want empty", got)
	}
}
