package dom

import (
	"github.com/matzehuels/dragbox/pkg/geom"
)

// TagBody is the tag of the document's root node.
const TagBody = "body"

// Window is the viewport. Resize events are delivered here.
type Window struct {
	width, height float64
	listeners     listenerSet
}

// Size returns the viewport dimensions.
func (w *Window) Size() (width, height float64) { return w.width, w.height }

// AddEventListener subscribes fn on the window scope. Every dispatched event
// reaches the window last.
func (w *Window) AddEventListener(typ EventType, fn Listener, opts ...ListenerOption) *Subscription {
	return w.listeners.add(typ, fn, true, opts)
}

// ListenerCount returns the number of active window listeners for typ.
func (w *Window) ListenerCount(typ EventType) int { return w.listeners.count(typ) }

// Document is a visual document: a node tree rooted at a body, a viewport and
// an element registry.
type Document struct {
	registry *Registry
	body     *Node
	window   *Window

	listeners listenerSet

	dirty  bool
	rects  map[*Node]geom.Rect
	paint  []*Node
	closed bool

	touchTargets map[int]*Node
}

// NewDocument creates an empty document with a viewport of the given size.
// A nil registry is treated as an empty one.
func NewDocument(reg *Registry, width, height float64) *Document {
	if reg == nil {
		reg = NewRegistry()
	}
	d := &Document{
		registry:     reg,
		window:       &Window{width: width, height: height},
		dirty:        true,
		touchTargets: make(map[int]*Node),
	}
	d.body = newNode(d, TagBody)
	return d
}

// Body returns the root node.
func (d *Document) Body() *Node { return d.body }

// Window returns the viewport.
func (d *Document) Window() *Window { return d.window }

// Registry returns the element registry.
func (d *Document) Registry() *Registry { return d.registry }

// CreateElement creates a detached node of kind tag. Registered kinds get their
// behaviour attached immediately; it runs once the node is connected.
func (d *Document) CreateElement(tag string) *Node {
	n := newNode(d, tag)
	if ctor, ok := d.registry.Lookup(tag); ok {
		n.element = ctor(n)
	}
	return n
}

// AddEventListener subscribes fn on the document scope.
func (d *Document) AddEventListener(typ EventType, fn Listener, opts ...ListenerOption) *Subscription {
	return d.listeners.add(typ, fn, true, opts)
}

// ListenerCount returns the number of active document listeners for typ.
func (d *Document) ListenerCount(typ EventType) int { return d.listeners.count(typ) }

// GetElementByID returns the first connected node in tree order with id.
func (d *Document) GetElementByID(id string) *Node {
	var found *Node
	Walk(d.body, func(n *Node) bool {
		if found != nil {
			return false
		}
		if n.id == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// Resize changes the viewport size and notifies window resize listeners.
func (d *Document) Resize(width, height float64) {
	if d.closed {
		return
	}
	d.window.width, d.window.height = width, height
	d.invalidate()
	d.window.listeners.fire(&Event{Type: EventResize})
}

// DispatchPointer resolves the target of a pointer input and dispatches it.
// Mouse inputs target the topmost node under the pointer; touches target the
// node they started on.
func (d *Document) DispatchPointer(typ EventType, in Input) *Event {
	e := &Event{Type: typ, Input: in}
	if d.closed {
		return e
	}

	switch in := in.(type) {
	case Mouse:
		e.Target = d.ElementFromPoint(geom.Point{X: in.X, Y: in.Y})
	case Touch:
		in = d.resolveTouches(typ, in)
		e.Input = in
		if len(in.Touches) > 0 {
			e.Target = in.Touches[0].Target
		}
	}
	if e.Target == nil {
		e.Target = d.body
	}

	d.Dispatch(e)
	return e
}

// Dispatch delivers e along its propagation path: the target, each ancestor,
// the document and finally the window.
func (d *Document) Dispatch(e *Event) {
	if d.closed {
		return
	}
	for n := e.Target; n != nil; n = n.parent {
		n.listeners.fire(e)
	}
	d.listeners.fire(e)
	d.window.listeners.fire(e)
}

func (d *Document) resolveTouches(typ EventType, in Touch) Touch {
	out := Touch{Touches: make([]TouchPoint, len(in.Touches))}
	for i, tp := range in.Touches {
		target, ok := d.touchTargets[tp.ID]
		if typ == EventDown || !ok {
			target = d.ElementFromPoint(geom.Point{X: tp.X, Y: tp.Y})
		}
		switch typ {
		case EventDown:
			d.touchTargets[tp.ID] = target
		case EventUp:
			delete(d.touchTargets, tp.ID)
		}
		tp.Target = target
		out.Touches[i] = tp
	}
	return out
}

// Close disconnects every element, releasing their listeners, and drops all
// document and window listeners. Dispatch and Resize are no-ops afterwards.
func (d *Document) Close() {
	if d.closed {
		return
	}
	d.disconnectTree(d.body)
	d.listeners.clear()
	d.window.listeners.clear()
	d.closed = true
}

func (d *Document) invalidate() { d.dirty = true }

func (d *Document) connectTree(root *Node) {
	for _, n := range treeOrder(root) {
		// A callback may have detached part of the subtree.
		if n.mounted || !n.IsConnected() {
			continue
		}
		n.mounted = true
		if n.element != nil {
			n.element.Connected()
		}
	}
}

func (d *Document) disconnectTree(root *Node) {
	for _, n := range treeOrder(root) {
		if !n.mounted {
			continue
		}
		n.mounted = false
		if n.element != nil {
			n.element.Disconnected()
		}
	}
}
