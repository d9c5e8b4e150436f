package widget

import (
	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/geom"
	"github.com/matzehuels/dragbox/pkg/observability"
)

// Computed properties a ghost does not inherit from its tile.
var ghostOverrides = map[string]bool{
	dom.PropPosition:      true,
	dom.PropPointerEvents: true,
	dom.PropLeft:          true,
	dom.PropTop:           true,
}

// Tile is the drag-box behaviour.
//
// The ghost exists exactly while the tile is selected.
type Tile struct {
	node *dom.Node
	opts Options

	selected bool
	offset   geom.Point
	ghost    *dom.Node

	group dom.ListenerGroup
}

// Node returns the tile's node.
func (t *Tile) Node() *dom.Node { return t.node }

// Selected reports whether the tile is being dragged.
func (t *Tile) Selected() bool { return t.selected }

// Ghost returns the drag ghost, or nil when idle.
func (t *Tile) Ghost() *dom.Node { return t.ghost }

// Offset returns the pointer offset captured at grab time. It is only
// meaningful while selected.
func (t *Tile) Offset() geom.Point { return t.offset }

// Connected prepares the tile's styles and subscribes to input.
func (t *Tile) Connected() {
	s := t.node.Style()
	s.Set(dom.PropUserSelect, "none")
	s.Set(dom.PropBoxSizing, "border-box")
	dom.Walk(t.node, func(n *dom.Node) bool {
		n.Style().Set(dom.PropPointerEvents, "none")
		n.Style().Set(dom.PropUserSelect, "none")
		return true
	})

	doc := t.node.Document()
	t.group.Listen(t.node, dom.EventDown, t.handleDown)
	t.group.Listen(doc, dom.EventMove, t.handleMove, dom.Passive(false))
	t.group.Listen(doc, dom.EventUp, t.handleUp)
}

// Disconnected releases the tile's listeners and ends any drag in progress.
func (t *Tile) Disconnected() {
	t.group.Release()
	if t.selected {
		t.release()
	}
}

func (t *Tile) handleDown(e *dom.Event) {
	if !e.IsPrimary() || t.selected {
		return
	}
	p, ok := e.Point()
	if !ok {
		return
	}

	r := t.node.Document().Rect(t.node)
	t.offset = p.Sub(r.TopLeft())
	t.ghost = t.spawnGhost(r)
	t.node.Style().Set(dom.PropOpacity, dom.FormatOpacity(t.opts.DragOpacity))
	t.selected = true

	t.opts.Logger.Debug("grab", "tile", t.node.ID(), "at", p, "offset", t.offset)
	observability.Drag().OnGrab(t.node.ID(), p.X, p.Y)
}

func (t *Tile) handleMove(e *dom.Event) {
	if !t.selected {
		return
	}
	p, ok := e.Point()
	if !ok {
		return
	}
	at := p.Sub(t.offset)
	t.ghost.Style().Set(dom.PropLeft, dom.Px(at.X))
	t.ghost.Style().Set(dom.PropTop, dom.Px(at.Y))
}

func (t *Tile) handleUp(*dom.Event) {
	if !t.selected {
		return
	}
	t.release()
	t.opts.Logger.Debug("release", "tile", t.node.ID())
	observability.Drag().OnRelease(t.node.ID())
}

func (t *Tile) release() {
	t.ghost.Remove()
	t.ghost = nil
	t.node.Style().Set(dom.PropOpacity, "1")
	t.selected = false
}

// spawnGhost clones the tile with its computed style, positions the clone at
// r and appends it to the body.
func (t *Tile) spawnGhost(r geom.Rect) *dom.Node {
	doc := t.node.Document()
	ghost := t.node.Clone(true)
	for _, p := range doc.ComputedStyle(t.node) {
		if ghostOverrides[p.Name] {
			continue
		}
		ghost.Style().Set(p.Name, p.Value)
	}
	gs := ghost.Style()
	gs.Set(dom.PropPosition, "absolute")
	gs.Set(dom.PropPointerEvents, "none")
	gs.Set(dom.PropLeft, dom.Px(r.Left))
	gs.Set(dom.PropTop, dom.Px(r.Top))

	if err := doc.Body().AppendChild(ghost); err != nil {
		t.opts.Logger.Error("append ghost", "tile", t.node.ID(), "err", err)
	}
	return ghost
}
