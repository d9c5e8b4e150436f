package widget

import (
	"strconv"

	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/geom"
	"github.com/matzehuels/dragbox/pkg/observability"
)

// Container is the drag-container behaviour.
type Container struct {
	node *dom.Node
	opts Options

	cache  PositionCache
	source *dom.Node

	group dom.ListenerGroup
}

// Node returns the container's node.
func (c *Container) Node() *dom.Node { return c.node }

// Source returns the child being dragged, or nil.
func (c *Container) Source() *dom.Node { return c.source }

// Cache returns the position cache.
func (c *Container) Cache() *PositionCache { return &c.cache }

// Order returns the ids of the container's children in order.
func (c *Container) Order() []string {
	children := c.node.Children()
	ids := make([]string, len(children))
	for i, n := range children {
		ids[i] = n.ID()
	}
	return ids
}

// Connected lays the container out as a row, measures its children and
// subscribes to input.
func (c *Container) Connected() {
	s := c.node.Style()
	s.Set(dom.PropDisplay, "flex")
	if c.opts.Wrap && !s.Has(dom.PropFlexWrap) {
		s.Set(dom.PropFlexWrap, "wrap")
	}
	if c.opts.Gap > 0 && !s.Has(dom.PropGap) {
		s.Set(dom.PropGap, strconv.Itoa(c.opts.Gap))
	}
	c.UpdatePositions()

	doc := c.node.Document()
	c.group.Listen(doc.Window(), dom.EventResize, func(*dom.Event) { c.UpdatePositions() })
	c.group.Listen(c.node, dom.EventDown, c.handleDown)
	c.group.Listen(doc, dom.EventMove, c.handleMove, dom.Passive(false))
	c.group.Listen(doc, dom.EventUp, c.handleUp)
}

// Disconnected releases the container's listeners.
func (c *Container) Disconnected() {
	c.group.Release()
	c.source = nil
	c.cache.clear()
}

// UpdatePositions rebuilds the position cache from the live layout.
func (c *Container) UpdatePositions() {
	c.cache.Refresh(c.node.Document(), c.node)
}

func (c *Container) handleDown(e *dom.Event) {
	if !e.IsPrimary() || e.Target == nil || e.Target == c.node {
		return
	}
	c.source = c.childContaining(e.Target)
}

func (c *Container) handleMove(e *dom.Event) {
	if c.source == nil {
		return
	}
	e.PreventDefault()

	if c.source.Parent() != c.node {
		c.source = nil
		return
	}
	p, ok := e.Point()
	if !ok || c.excluded(e, p) {
		return
	}

	// Siblings are tested against the rectangles measured before this event,
	// each at most once. A splice refreshes the cache, but the refreshed
	// rectangles only serve the next event.
	doc := c.node.Document()
	for _, target := range c.cache.Entries() {
		if target.Node == c.node || target.Node == c.source {
			continue
		}
		if !target.Rect.ContainsStrict(p) {
			continue
		}
		pos, ok := splicePosition(doc.Rect(c.source), target.Rect)
		if !ok {
			// Same top-left: nothing moves, so the cache stays current.
			continue
		}
		if err := target.Node.InsertAdjacent(pos, c.source); err != nil {
			c.opts.Logger.Debug("reorder skipped", "container", c.node.ID(), "target", target.Node.ID(), "err", err)
			continue
		}
		c.UpdatePositions()

		order := c.Order()
		c.opts.Logger.Debug("reorder", "container", c.node.ID(), "source", c.source.ID(),
			"target", target.Node.ID(), "position", pos, "order", order)
		observability.Drag().OnReorder(c.node.ID(), c.source.ID(), target.Node.ID(), pos.String(), order)
	}
}

func (c *Container) handleUp(*dom.Event) {
	c.source = nil
}

// excluded reports whether the move should not reorder anything. Mouse moves
// over the drag source or the container itself are refused. Touch moves use
// the same rule against the element under the touch point, or with legacy
// exclusion only refuse touches that started on the container.
func (c *Container) excluded(e *dom.Event, p geom.Point) bool {
	under := e.Target
	if e.IsTouch() {
		if c.opts.LegacyTouchExclusion {
			return e.Target == c.node
		}
		under = c.node.Document().ElementFromPoint(p)
	}
	if under == nil {
		return false
	}
	return under == c.node || c.source.Contains(under)
}

// childContaining returns the direct child of the container that holds n.
func (c *Container) childContaining(n *dom.Node) *dom.Node {
	for ; n != nil; n = n.Parent() {
		if n.Parent() == c.node {
			return n
		}
	}
	return nil
}

// splicePosition decides where the dragged rectangle goes relative to target.
// A source below or to the right of the target moves before it; above or to
// the left moves after it. Identical top-left corners do not move.
func splicePosition(source, target geom.Rect) (dom.Position, bool) {
	switch {
	case source.Top > target.Top || (source.Top == target.Top && source.Left > target.Left):
		return dom.BeforeBegin, true
	case source.Top < target.Top || (source.Top == target.Top && source.Left < target.Left):
		return dom.AfterEnd, true
	}
	return 0, false
}
