package dom

import (
	"slices"

	"github.com/google/uuid"

	"github.com/matzehuels/dragbox/pkg/errors"
)

// Position selects where InsertAdjacent places a node relative to a sibling.
type Position int

const (
	// BeforeBegin inserts immediately before the reference node.
	BeforeBegin Position = iota
	// AfterEnd inserts immediately after the reference node.
	AfterEnd
)

func (p Position) String() string {
	if p == BeforeBegin {
		return "beforebegin"
	}
	return "afterend"
}

// Node is an element in a document tree.
//
// Node identity is pointer identity. The id is a label: it comes from markup or
// is generated when the node is created.
type Node struct {
	id       string
	tag      string
	text     string
	style    *Style
	parent   *Node
	children []*Node
	doc      *Document
	element  Element
	mounted  bool

	listeners listenerSet
}

func newNode(doc *Document, tag string) *Node {
	n := &Node{
		id:  uuid.NewString(),
		tag: tag,
		doc: doc,
	}
	n.style = newStyle(doc.invalidate)
	return n
}

// ID returns the node's id.
func (n *Node) ID() string { return n.id }

// SetID replaces the node's id.
func (n *Node) SetID(id string) error {
	if err := errors.ValidateElementID(id); err != nil {
		return err
	}
	n.id = id
	return nil
}

// Tag returns the element kind name.
func (n *Node) Tag() string { return n.tag }

// Text returns the node's own text content.
func (n *Node) Text() string { return n.text }

// SetText replaces the node's own text content.
func (n *Node) SetText(s string) {
	if n.text == s {
		return
	}
	n.text = s
	n.doc.invalidate()
}

// Style returns the node's inline style.
func (n *Node) Style() *Style { return n.style }

// Parent returns the parent node, or nil.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Index returns n's position among its siblings, or -1 without a parent.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// Element returns the registered behaviour attached to n, if any.
func (n *Node) Element() Element { return n.element }

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// IsConnected reports whether n is attached to its document's body.
func (n *Node) IsConnected() bool {
	return n.doc.body.Contains(n)
}

// AppendChild moves child to the end of n's children.
func (n *Node) AppendChild(child *Node) error {
	if err := n.checkInsert(child); err != nil {
		return err
	}
	n.relocate(child, func() {
		n.children = append(n.children, child)
		child.parent = n
	})
	return nil
}

// RemoveChild detaches child from n.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil || child.parent != n {
		return errors.New(errors.ErrCodeNotFound, "node %s is not a child of %s", nodeLabel(child), nodeLabel(n))
	}
	wasConnected := child.IsConnected()
	child.detach()
	n.doc.invalidate()
	if wasConnected {
		n.doc.disconnectTree(child)
	}
	return nil
}

// Remove detaches n from its parent. It is a no-op for detached nodes.
func (n *Node) Remove() {
	if n.parent != nil {
		// RemoveChild only fails for a node that is not a child of the receiver.
		_ = n.parent.RemoveChild(n)
	}
}

// InsertAdjacent moves node next to n: immediately before it for BeforeBegin,
// immediately after it for AfterEnd. Moving a node within the connected tree does
// not run lifecycle callbacks.
func (n *Node) InsertAdjacent(pos Position, node *Node) error {
	parent := n.parent
	if parent == nil {
		return errors.New(errors.ErrCodeInvalidInput, "node %s has no parent", nodeLabel(n))
	}
	if node == n {
		return nil
	}
	if err := parent.checkInsert(node); err != nil {
		return err
	}
	parent.relocate(node, func() {
		i := slices.Index(parent.children, n)
		if pos == AfterEnd {
			i++
		}
		parent.children = slices.Insert(parent.children, i, node)
		node.parent = parent
	})
	return nil
}

// Clone copies n. With deep set the whole subtree is copied. Clones receive
// fresh ids, copy text and inline style, and carry no element behaviour.
func (n *Node) Clone(deep bool) *Node {
	c := newNode(n.doc, n.tag)
	c.text = n.text
	n.style.copyInto(c.style)
	if deep {
		for _, child := range n.children {
			cc := child.Clone(true)
			cc.parent = c
			c.children = append(c.children, cc)
		}
	}
	return c
}

// AddEventListener subscribes fn to events of type typ targeted at n or one of
// its descendants.
func (n *Node) AddEventListener(typ EventType, fn Listener, opts ...ListenerOption) *Subscription {
	return n.listeners.add(typ, fn, false, opts)
}

// ListenerCount returns the number of active listeners for typ on n.
func (n *Node) ListenerCount(typ EventType) int { return n.listeners.count(typ) }

func (n *Node) checkInsert(child *Node) error {
	if child == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot insert nil node")
	}
	if child.doc != n.doc {
		return errors.New(errors.ErrCodeInvalidInput, "node %s belongs to another document", nodeLabel(child))
	}
	if child == n.doc.body {
		return errors.New(errors.ErrCodeInvalidInput, "cannot move the document body")
	}
	if child.Contains(n) {
		return errors.New(errors.ErrCodeInvalidInput, "inserting %s into %s would create a cycle", nodeLabel(child), nodeLabel(n))
	}
	return nil
}

// relocate detaches child, runs attach, and fires lifecycle callbacks only when
// connectedness changed.
func (n *Node) relocate(child *Node, attach func()) {
	wasConnected := child.IsConnected()
	child.detach()
	attach()
	n.doc.invalidate()

	nowConnected := child.IsConnected()
	switch {
	case wasConnected && !nowConnected:
		n.doc.disconnectTree(child)
	case !wasConnected && nowConnected:
		n.doc.connectTree(child)
	}
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.tag + "#" + n.id
}
