package snapshot

import (
	"encoding/json"

	"github.com/matzehuels/dragbox/pkg/buildinfo"
	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/widget"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	scenario string
	step     int
	hasStep  bool
}

// WithJSONScenario records the scenario name the snapshot was taken from.
func WithJSONScenario(name string) JSONOption { return func(r *jsonRenderer) { r.scenario = name } }

// WithJSONStep records the index of the last replayed step.
func WithJSONStep(i int) JSONOption {
	return func(r *jsonRenderer) { r.step = i; r.hasStep = true }
}

type jsonOutput struct {
	Generator  string              `json:"generator"`
	Scenario   string              `json:"scenario,omitempty"`
	Step       *int                `json:"step,omitempty"`
	Width      float64             `json:"width"`
	Height     float64             `json:"height"`
	Nodes      []jsonNode          `json:"nodes"`
	Containers map[string][]string `json:"containers,omitempty"`
	Dragging   []string            `json:"dragging,omitempty"`
}

type jsonNode struct {
	ID         string  `json:"id"`
	Tag        string  `json:"tag"`
	Parent     string  `json:"parent,omitempty"`
	Text       string  `json:"text,omitempty"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Positioned bool    `json:"positioned,omitempty"`
	Opacity    float64 `json:"opacity"`
}

// RenderJSON serializes the painted nodes of doc with their rectangles, the
// child order of every drag-container and the ids of tiles being dragged.
// Nodes are listed in paint order; the body is omitted.
func RenderJSON(doc *dom.Document, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	w, h := doc.Window().Size()
	out := jsonOutput{
		Generator: buildinfo.UserAgent(),
		Scenario:  r.scenario,
		Width:     w,
		Height:    h,
		Nodes:     []jsonNode{},
	}
	if r.hasStep {
		out.Step = &r.step
	}

	for _, n := range doc.PaintOrder() {
		if n == doc.Body() {
			continue
		}
		out.Nodes = append(out.Nodes, buildNode(doc, n))

		if c, ok := widget.ContainerOf(n); ok {
			if out.Containers == nil {
				out.Containers = make(map[string][]string)
			}
			out.Containers[n.ID()] = c.Order()
		}
		if t, ok := widget.TileOf(n); ok && t.Selected() {
			out.Dragging = append(out.Dragging, n.ID())
		}
	}

	return json.MarshalIndent(out, "", "  ")
}

func buildNode(doc *dom.Document, n *dom.Node) jsonNode {
	rect := doc.Rect(n)
	jn := jsonNode{
		ID:         n.ID(),
		Tag:        n.Tag(),
		Text:       n.Text(),
		X:          rect.Left,
		Y:          rect.Top,
		Width:      rect.Width(),
		Height:     rect.Height(),
		Positioned: n.Style().Get(dom.PropPosition) == "absolute",
		Opacity:    dom.ParseOpacity(n.Style().Get(dom.PropOpacity)),
	}
	if p := n.Parent(); p != nil && p != doc.Body() {
		jn.Parent = p.ID()
	}
	return jn
}
