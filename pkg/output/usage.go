package output

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/ritzau/edgecolor/pkg/coloring"
)

// UsageEntry is one row of the color usage table
type UsageEntry struct {
	Color int `json:"color"`
	Edges int `json:"edges"`
}

// Usage counts edges per color, ordered by color
type Usage struct {
	tree       *redblacktree.Tree // color -> edge count
	unassigned int
}

// Summarize counts the edges of each color in a final coloring.
// Unassigned edges are counted apart from the table.
func Summarize(colors []int) *Usage {
	u := &Usage{tree: redblacktree.NewWithIntComparator()}
	for _, c := range colors {
		if c == coloring.Unassigned {
			u.unassigned++
			continue
		}
		count := 0
		if v, found := u.tree.Get(c); found {
			count = v.(int)
		}
		u.tree.Put(c, count+1)
	}
	return u
}

// Entries returns the table sorted by color ascending
func (u *Usage) Entries() []UsageEntry {
	entries := make([]UsageEntry, 0, u.tree.Size())
	it := u.tree.Iterator()
	for it.Next() {
		entries = append(entries, UsageEntry{Color: it.Key().(int), Edges: it.Value().(int)})
	}
	return entries
}

// Colors returns the number of distinct colors in use
func (u *Usage) Colors() int {
	return u.tree.Size()
}

// Unassigned returns the number of edges without a color
func (u *Usage) Unassigned() int {
	return u.unassigned
}
