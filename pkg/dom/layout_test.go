package dom

import (
	"testing"

	"github.com/matzehuels/dragbox/pkg/geom"
)

func mount(t *testing.T, doc *Document, markup string) {
	t.Helper()
	if _, err := doc.MountMarkup(markup); err != nil {
		t.Fatalf("MountMarkup() error = %v", err)
	}
}

func TestFlexRowLayout(t *testing.T) {
	doc := NewDocument(nil, 80, 24)
	mount(t, doc, `<div id="row" style="display: flex; gap: 1">
		<div id="a" style="width: 4; height: 2"></div>
		<div id="b" style="width: 4; height: 3"></div>
		<div id="c" style="width: 6; height: 2"></div>
	</div>`)

	tests := []struct {
		id   string
		want geom.Rect
	}{
		{"a", geom.XYWH(0, 0, 4, 2)},
		{"b", geom.XYWH(5, 0, 4, 3)},
		{"c", geom.XYWH(10, 0, 6, 2)},
		{"row", geom.XYWH(0, 0, 80, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := doc.Rect(doc.GetElementByID(tt.id))
			if got != tt.want {
				t.Errorf("Rect(%s) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestFlexWrap(t *testing.T) {
	doc := NewDocument(nil, 10, 24)
	mount(t, doc, `<div id="row" style="display: flex; flex-wrap: wrap">
		<div id="a" style="width: 4; height: 2"></div>
		<div id="b" style="width: 4; height: 2"></div>
		<div id="c" style="width: 4; height: 2"></div>
	</div>`)

	if got := doc.Rect(doc.GetElementByID("c")); got != geom.XYWH(0, 2, 4, 2) {
		t.Errorf("wrapped item Rect = %v, want %v", got, geom.XYWH(0, 2, 4, 2))
	}
	if got := doc.Rect(doc.GetElementByID("row")).Height(); got != 4 {
		t.Errorf("row height = %v, want 4", got)
	}

	// Widening the viewport brings c back onto the first row.
	doc.Resize(20, 24)
	if got := doc.Rect(doc.GetElementByID("c")); got != geom.XYWH(8, 0, 4, 2) {
		t.Errorf("after resize Rect = %v, want %v", got, geom.XYWH(8, 0, 4, 2))
	}
}

func TestBlockFlowAndText(t *testing.T) {
	doc := NewDocument(nil, 30, 10)
	mount(t, doc, `<div id="a" style="border: rounded; padding: 0 1">hello</div><div id="b">x</div>`)

	// Block children fill the available width; height is text plus insets.
	if got := doc.Rect(doc.GetElementByID("a")); got != geom.XYWH(0, 0, 30, 3) {
		t.Errorf("Rect(a) = %v, want %v", got, geom.XYWH(0, 0, 30, 3))
	}
	if got := doc.Rect(doc.GetElementByID("b")); got != geom.XYWH(0, 3, 30, 1) {
		t.Errorf("Rect(b) = %v, want %v", got, geom.XYWH(0, 3, 30, 1))
	}
	if got := doc.Rect(doc.Body()); got != geom.XYWH(0, 0, 30, 10) {
		t.Errorf("body Rect = %v, want viewport", got)
	}
}

func TestShrinkToFitFlexItem(t *testing.T) {
	doc := NewDocument(nil, 80, 24)
	mount(t, doc, `<div style="display: flex"><div id="t" style="border: rounded; padding: 0 1">AB</div></div>`)

	// 2 text cells + 1 padding + 1 border on each side.
	if got := doc.Rect(doc.GetElementByID("t")); got != geom.XYWH(0, 0, 6, 3) {
		t.Errorf("Rect = %v, want %v", got, geom.XYWH(0, 0, 6, 3))
	}
}

func TestAbsolutePositioning(t *testing.T) {
	doc := NewDocument(nil, 80, 24)
	mount(t, doc, `<div id="a" style="width: 4; height: 2"></div>
		<div id="ghost" style="position: absolute; left: 10px; top: 5px; width: 4; height: 2"></div>
		<div id="b" style="width: 4; height: 2"></div>`)

	if got := doc.Rect(doc.GetElementByID("ghost")); got != geom.XYWH(10, 5, 4, 2) {
		t.Errorf("Rect(ghost) = %v, want %v", got, geom.XYWH(10, 5, 4, 2))
	}
	// Positioned nodes leave the flow.
	if got := doc.Rect(doc.GetElementByID("b")); got.Top != 2 {
		t.Errorf("Rect(b).Top = %v, want 2", got.Top)
	}

	order := doc.PaintOrder()
	if order[len(order)-1].ID() != "ghost" {
		t.Errorf("positioned node should paint last, got %s", order[len(order)-1].ID())
	}
}

func TestDisplayNone(t *testing.T) {
	doc := NewDocument(nil, 80, 24)
	mount(t, doc, `<div id="a" style="display: none; height: 4"></div><div id="b" style="height: 1"></div>`)

	if got := doc.Rect(doc.GetElementByID("a")); !got.Empty() {
		t.Errorf("hidden Rect = %v, want empty", got)
	}
	if got := doc.Rect(doc.GetElementByID("b")).Top; got != 0 {
		t.Errorf("Rect(b).Top = %v, want 0", got)
	}
}

func TestElementFromPoint(t *testing.T) {
	doc := NewDocument(nil, 80, 24)
	mount(t, doc, `<div id="row" style="display: flex">
		<div id="tile" style="border: normal; padding: 0 1"><div id="label" style="pointer-events: none">A</div></div>
	</div>
	<div id="ghost" style="position: absolute; left: 0; top: 0; width: 5; height: 3; pointer-events: none"></div>`)

	tests := []struct {
		name string
		p    geom.Point
		want string
	}{
		{"label passes through to tile", geom.Point{X: 2, Y: 1}, "tile"},
		{"border belongs to tile", geom.Point{X: 0, Y: 0}, "tile"},
		{"outside tile hits row", geom.Point{X: 20, Y: 1}, "row"},
		{"below content hits body", geom.Point{X: 20, Y: 10}, TagBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := doc.ElementFromPoint(tt.p)
			if n == nil {
				t.Fatalf("ElementFromPoint(%v) = nil", tt.p)
			}
			got := n.ID()
			if n == doc.Body() {
				got = TagBody
			}
			if got != tt.want {
				t.Errorf("ElementFromPoint(%v) = %s, want %s", tt.p, got, tt.want)
			}
		})
	}

	if n := doc.ElementFromPoint(geom.Point{X: 100, Y: 100}); n != nil {
		t.Errorf("point outside viewport hit %s", n.ID())
	}
}

func TestComputedStyle(t *testing.T) {
	doc := NewDocument(nil, 80, 24)
	mount(t, doc, `<div style="display: flex"><div id="t" style="width: 7; height: 3; opacity: 0.5; custom-prop: x"></div></div>`)

	props := map[string]string{}
	var names []string
	for _, p := range doc.ComputedStyle(doc.GetElementByID("t")) {
		props[p.Name] = p.Value
		names = append(names, p.Name)
	}

	want := map[string]string{
		PropWidth:         "7px",
		PropHeight:        "3px",
		PropOpacity:       "0.5",
		PropPosition:      "static",
		PropPointerEvents: "auto",
		"custom-prop":     "x",
	}
	for k, v := range want {
		if props[k] != v {
			t.Errorf("computed %s = %q, want %q", k, props[k], v)
		}
	}
	if names[len(names)-1] != "custom-prop" {
		t.Errorf("unknown properties should come last, got %v", names)
	}
}

func TestLayoutInvalidatedByMutation(t *testing.T) {
	doc := NewDocument(nil, 80, 24)
	mount(t, doc, `<div id="row" style="display: flex"><div id="a" style="width: 3; height: 1"></div><div id="b" style="width: 3; height: 1"></div></div>`)

	a, b := doc.GetElementByID("a"), doc.GetElementByID("b")
	if doc.Rect(b).Left != 3 {
		t.Fatalf("Rect(b).Left = %v, want 3", doc.Rect(b).Left)
	}

	if err := b.InsertAdjacent(AfterEnd, a); err != nil {
		t.Fatal(err)
	}
	if doc.Rect(b).Left != 0 || doc.Rect(a).Left != 3 {
		t.Errorf("after move a=%v b=%v", doc.Rect(a), doc.Rect(b))
	}

	a.Style().Set(PropWidth, "5")
	if doc.Rect(a).Width() != 5 {
		t.Errorf("style write not reflected: %v", doc.Rect(a))
	}
}
