package widget

import (
	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/geom"
)

// Entry is one cached child rectangle.
type Entry struct {
	Node *dom.Node
	Rect geom.Rect
}

// PositionCache is a snapshot of a parent's children and their rectangles, in
// child order at the time of the last Refresh.
type PositionCache struct {
	entries     []Entry
	generations int
}

// Refresh replaces the snapshot with parent's current children and their live
// rectangles.
func (pc *PositionCache) Refresh(doc *dom.Document, parent *dom.Node) {
	children := parent.Children()
	entries := make([]Entry, len(children))
	for i, c := range children {
		entries[i] = Entry{Node: c, Rect: doc.Rect(c)}
	}
	pc.entries = entries
	pc.generations++
}

// Len returns the number of entries.
func (pc *PositionCache) Len() int { return len(pc.entries) }

// At returns the i-th entry.
func (pc *PositionCache) At(i int) Entry { return pc.entries[i] }

// Lookup returns the cached rectangle of n.
func (pc *PositionCache) Lookup(n *dom.Node) (geom.Rect, bool) {
	for _, e := range pc.entries {
		if e.Node == n {
			return e.Rect, true
		}
	}
	return geom.Rect{}, false
}

// Entries returns a copy of the snapshot.
func (pc *PositionCache) Entries() []Entry {
	out := make([]Entry, len(pc.entries))
	copy(out, pc.entries)
	return out
}

// Generation counts refreshes since the cache was created.
func (pc *PositionCache) Generation() int { return pc.generations }

func (pc *PositionCache) clear() {
	pc.entries = nil
}
