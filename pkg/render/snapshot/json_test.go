package snapshot

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/widget"
)

func newBoard(t *testing.T) *dom.Document {
	t.Helper()
	reg := dom.NewRegistry()
	if err := widget.Register(reg, widget.DefaultOptions()); err != nil {
		t.Fatal(err)
	}
	doc := dom.NewDocument(reg, 40, 10)
	_, err := doc.MountMarkup(`<drag-container id="row">` +
		`<drag-box id="a" style="width: 4; height: 3">A</drag-box>` +
		`<drag-box id="b" style="width: 4; height: 3">B</drag-box>` +
		`</drag-container>`)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestRenderJSON(t *testing.T) {
	doc := newBoard(t)

	data, err := RenderJSON(doc)
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Width != 40 || out.Height != 10 {
		t.Errorf("size = %vx%v, want 40x10", out.Width, out.Height)
	}
	if len(out.Nodes) != 3 {
		t.Fatalf("Nodes count = %d, want 3", len(out.Nodes))
	}
	b := out.Nodes[2]
	if b.ID != "b" || b.Parent != "row" || b.X != 4 || b.Width != 4 || b.Opacity != 1 {
		t.Errorf("node b = %+v", b)
	}
	if got := out.Containers["row"]; !slices.Equal(got, []string{"a", "b"}) {
		t.Errorf("Containers[row] = %v, want [a b]", got)
	}
	if out.Step != nil || out.Scenario != "" {
		t.Error("options should be omitted when unset")
	}
}

func TestRenderJSONWhileDragging(t *testing.T) {
	doc := newBoard(t)
	doc.DispatchPointer(dom.EventDown, dom.Mouse{X: 1, Y: 1})

	data, err := RenderJSON(doc, WithJSONScenario("swap"), WithJSONStep(0))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("json.Unmarshal() error: %v", err)
	}

	if out.Scenario != "swap" || out.Step == nil || *out.Step != 0 {
		t.Errorf("scenario/step = %q/%v", out.Scenario, out.Step)
	}
	if !slices.Equal(out.Dragging, []string{"a"}) {
		t.Errorf("Dragging = %v, want [a]", out.Dragging)
	}

	ghost := out.Nodes[len(out.Nodes)-1]
	if !ghost.Positioned || ghost.Parent != "" {
		t.Errorf("last node should be the body-level ghost, got %+v", ghost)
	}
	if out.Nodes[1].Opacity != 0.1 {
		t.Errorf("source opacity = %v, want 0.1", out.Nodes[1].Opacity)
	}
}
