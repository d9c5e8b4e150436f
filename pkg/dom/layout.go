package dom

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dragbox/pkg/geom"
)

// Rect returns n's on-screen rectangle in viewport coordinates. Detached nodes
// and nodes with display "none" have an empty rectangle.
func (d *Document) Rect(n *Node) geom.Rect {
	d.ensureLayout()
	return d.rects[n]
}

// PaintOrder returns the connected, displayed nodes in the order they are
// painted: normal flow in tree order, then positioned subtrees in tree order.
// Later nodes paint over earlier ones.
func (d *Document) PaintOrder() []*Node {
	d.ensureLayout()
	out := make([]*Node, len(d.paint))
	copy(out, d.paint)
	return out
}

// ElementFromPoint returns the topmost node under p that accepts pointer
// input, or nil when p is outside every such node.
func (d *Document) ElementFromPoint(p geom.Point) *Node {
	d.ensureLayout()
	for i := len(d.paint) - 1; i >= 0; i-- {
		n := d.paint[i]
		if !d.rects[n].Contains(p) {
			continue
		}
		if d.pointerEvents(n) == "none" {
			continue
		}
		return n
	}
	return nil
}

// ComputedStyle returns every style property of n with defaults filled in and
// width/height resolved from layout. Unknown inline properties follow the
// known ones in insertion order.
func (d *Document) ComputedStyle(n *Node) []Property {
	r := d.Rect(n)
	out := make([]Property, 0, len(computedDefaults)+n.style.Len())
	known := make(map[string]bool, len(computedDefaults))
	for _, def := range computedDefaults {
		known[def.Name] = true
		v := def.Value
		if n.style.Has(def.Name) {
			v = n.style.Get(def.Name)
		}
		switch def.Name {
		case PropWidth:
			v = Px(r.Width())
		case PropHeight:
			v = Px(r.Height())
		case PropPointerEvents:
			v = d.pointerEvents(n)
		}
		out = append(out, Property{Name: def.Name, Value: v})
	}
	for _, p := range n.style.Properties() {
		if !known[p.Name] {
			out = append(out, p)
		}
	}
	return out
}

// pointerEvents resolves the inherited pointer-events value.
func (d *Document) pointerEvents(n *Node) string {
	for p := n; p != nil; p = p.parent {
		if v := p.style.Get(PropPointerEvents); v != "" {
			return v
		}
	}
	return "auto"
}

func (d *Document) ensureLayout() {
	if !d.dirty && d.rects != nil {
		return
	}
	l := &layouter{rects: make(map[*Node]geom.Rect)}
	w, h := d.window.Size()

	l.place(d.body, 0, 0, w, true)
	// The body always covers the viewport.
	if r := l.rects[d.body]; r.Height() < h {
		l.rects[d.body] = geom.XYWH(0, 0, w, h)
	}
	for i := 0; i < len(l.positioned); i++ {
		n := l.positioned[i]
		x, _ := ParseLength(n.style.Get(PropLeft))
		y, _ := ParseLength(n.style.Get(PropTop))
		l.place(n, x, y, w, false)
	}

	d.rects = l.rects
	d.paint = l.paintOrder(d.body)
	d.dirty = false
}

// Box metrics of a node, in cells.
type boxMetrics struct {
	border     float64
	padV, padH float64
	margin     float64
}

func metricsOf(n *Node) boxMetrics {
	var m boxMetrics
	if _, ok := BorderStyle(n.style.Get(PropBorder)); ok {
		m.border = 1
	}
	m.padV, m.padH = ParsePadding(n.style.Get(PropPadding))
	m.margin, _ = ParseLength(n.style.Get(PropMargin))
	return m
}

// BorderStyle maps a border property value to a lipgloss border. It reports
// false for "none" or an unset value.
func BorderStyle(v string) (lipgloss.Border, bool) {
	switch strings.TrimSpace(v) {
	case "", "none":
		return lipgloss.Border{}, false
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	default:
		return lipgloss.NormalBorder(), true
	}
}

func isPositioned(n *Node) bool {
	switch n.style.Get(PropPosition) {
	case "absolute", "fixed":
		return true
	}
	return false
}

func isHidden(n *Node) bool { return n.style.Get(PropDisplay) == "none" }

type layouter struct {
	rects      map[*Node]geom.Rect
	positioned []*Node
	seen       map[*Node]bool
}

// addPositioned queues n for placement after the normal flow. A flex item
// placed twice while wrapping would otherwise queue its descendants twice.
func (l *layouter) addPositioned(n *Node) {
	if l.seen == nil {
		l.seen = make(map[*Node]bool)
	}
	if l.seen[n] {
		return
	}
	l.seen[n] = true
	l.positioned = append(l.positioned, n)
}

// place lays n out with its border-box top-left at (x, y) and returns the
// outer size. Nodes with fill set take the full available width; others shrink
// to fit their content. Explicit width/height are border-box sizes.
func (l *layouter) place(n *Node, x, y, avail float64, fill bool) (w, h float64) {
	if isHidden(n) {
		l.rects[n] = geom.Rect{Left: x, Top: y, Right: x, Bottom: y}
		return 0, 0
	}

	m := metricsOf(n)
	insetH := m.border + m.padH
	insetV := m.border + m.padV

	fixedW, hasW := ParseLength(n.style.Get(PropWidth))
	fixedH, hasH := ParseLength(n.style.Get(PropHeight))

	innerAvail := avail - 2*insetH
	if hasW {
		innerAvail = fixedW - 2*insetH
	}
	innerAvail = max(innerAvail, 0)

	textW, textH := measureText(n.text)
	cx, cy := x+insetH, y+insetV+textH

	var flowW, flowH float64
	if n.style.Get(PropDisplay) == "flex" {
		flowW, flowH = l.flexRow(n, cx, cy, innerAvail)
	} else {
		flowW, flowH = l.blockFlow(n, cx, cy, innerAvail, fill || hasW)
	}

	switch {
	case hasW:
		w = fixedW
	case fill:
		w = avail
	default:
		w = max(textW, flowW) + 2*insetH
	}
	if hasH {
		h = fixedH
	} else {
		h = textH + flowH + 2*insetV
	}

	l.rects[n] = geom.XYWH(x, y, w, h)
	return w, h
}

// blockFlow stacks children vertically. Children fill the width only when the
// parent's own width is definite; inside a shrink-to-fit parent they shrink too.
func (l *layouter) blockFlow(n *Node, x, y, avail float64, fill bool) (w, h float64) {
	for _, c := range n.children {
		if isPositioned(c) {
			l.addPositioned(c)
			continue
		}
		mg := metricsOf(c).margin
		cw, ch := l.place(c, x+mg, y+h+mg, avail-2*mg, fill)
		w = max(w, cw+2*mg)
		h += ch + 2*mg
	}
	return w, h
}

func (l *layouter) flexRow(n *Node, x, y, avail float64) (w, h float64) {
	gap, _ := ParseLength(n.style.Get(PropGap))
	wrap := n.style.Get(PropFlexWrap) == "wrap"

	var (
		cx, rowH float64
		rowTop   = y
		inRow    int
	)
	for _, c := range n.children {
		if isPositioned(c) {
			l.addPositioned(c)
			continue
		}
		mg := metricsOf(c).margin
		cw, ch := l.place(c, x+cx+mg, rowTop+mg, avail, false)
		if wrap && inRow > 0 && cx+cw+2*mg > avail {
			rowTop += rowH + gap
			cx, rowH, inRow = 0, 0, 0
			cw, ch = l.place(c, x+mg, rowTop+mg, avail, false)
		}
		cx += cw + 2*mg + gap
		rowH = max(rowH, ch+2*mg)
		w = max(w, cx-gap)
		inRow++
	}
	return w, rowTop - y + rowH
}

func (l *layouter) paintOrder(root *Node) []*Node {
	var flow, positioned []*Node
	var visit func(n *Node, out *[]*Node)
	visit = func(n *Node, out *[]*Node) {
		if isHidden(n) {
			return
		}
		*out = append(*out, n)
		for _, c := range n.children {
			if isPositioned(c) {
				continue
			}
			visit(c, out)
		}
	}
	visit(root, &flow)
	for _, p := range l.positioned {
		visit(p, &positioned)
	}
	return append(flow, positioned...)
}

// measureText returns the cell size of text using lipgloss measurement.
func measureText(text string) (w, h float64) {
	if text == "" {
		return 0, 0
	}
	return float64(lipgloss.Width(text)), float64(lipgloss.Height(text))
}
