package scenario

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/errors"
	"github.com/matzehuels/dragbox/pkg/widget"
)

// StepResult records the board after one step.
type StepResult struct {
	Index     int
	Step      Step
	Target    string // id of the event target, "body" for the document body
	Prevented bool   // whether a listener called PreventDefault
	Orders    map[string][]string
	Dragging  []string
}

// Result is the outcome of [Run]. Doc holds the final board; callers that
// are done with it should Close it.
type Result struct {
	Scenario *Scenario
	Doc      *dom.Document
	Steps    []StepResult
}

// Final returns the container orders after the last step.
func (r *Result) Final() map[string][]string {
	if len(r.Steps) == 0 {
		return Orders(r.Doc)
	}
	return r.Steps[len(r.Steps)-1].Orders
}

// Run mounts the scenario's markup on a fresh document with drag-box and
// drag-container registered under opts, then replays every step.
func Run(ctx context.Context, sc *Scenario, opts widget.Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	reg := dom.NewRegistry()
	if err := widget.Register(reg, opts); err != nil {
		return nil, err
	}
	doc := dom.NewDocument(reg, sc.Viewport.Width, sc.Viewport.Height)
	if _, err := doc.MountMarkup(sc.Markup); err != nil {
		doc.Close()
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "scenario %q", sc.Name)
	}

	res := &Result{Scenario: sc, Doc: doc, Steps: make([]StepResult, 0, len(sc.Steps))}
	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			doc.Close()
			return nil, err
		}

		sr := StepResult{Index: i, Step: st}
		if st.EventType() == dom.EventResize {
			doc.Resize(st.Width, st.Height)
		} else {
			e := doc.DispatchPointer(st.EventType(), st.PointerInput())
			sr.Target = targetName(doc, e.Target)
			sr.Prevented = e.DefaultPrevented()
		}
		sr.Orders = Orders(doc)
		sr.Dragging = Dragging(doc)
		res.Steps = append(res.Steps, sr)

		logger.Debug("step", "scenario", sc.Name, "index", i, "step", st.String(), "target", sr.Target)
	}
	return res, nil
}

// Verify checks the scenario's expectations against the final orders. All
// mismatches are reported in one EXPECTATION_FAILED error.
func (r *Result) Verify() error {
	final := r.Final()
	var problems []string
	for _, ex := range r.Scenario.Expect {
		got, ok := final[ex.Container]
		if !ok {
			problems = append(problems, fmt.Sprintf("container %q not found", ex.Container))
			continue
		}
		if !slices.Equal(got, ex.Order) {
			problems = append(problems, fmt.Sprintf("container %q order = %v, want %v", ex.Container, got, ex.Order))
		}
	}
	if len(problems) > 0 {
		return errors.New(errors.ErrCodeExpectationFailed, "%s", strings.Join(problems, "; "))
	}
	return nil
}

// Orders returns the child order of every connected drag-container in doc,
// keyed by container id.
func Orders(doc *dom.Document) map[string][]string {
	out := make(map[string][]string)
	dom.Walk(doc.Body(), func(n *dom.Node) bool {
		if c, ok := widget.ContainerOf(n); ok {
			out[n.ID()] = c.Order()
		}
		return true
	})
	return out
}

// Dragging returns the ids of tiles currently being dragged, in tree order.
func Dragging(doc *dom.Document) []string {
	var ids []string
	dom.Walk(doc.Body(), func(n *dom.Node) bool {
		if t, ok := widget.TileOf(n); ok && t.Selected() {
			ids = append(ids, n.ID())
		}
		return true
	})
	return ids
}

func targetName(doc *dom.Document, n *dom.Node) string {
	if n == nil || n == doc.Body() {
		return "body"
	}
	return n.ID()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
