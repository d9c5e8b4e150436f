// Package scenario replays scripted pointer input against a drag-container
// board and checks the resulting child orders.
//
// A scenario is a TOML file:
//
//	name = "swap"
//	markup = '''
//	<drag-container id="row">
//	  <drag-box id="a" style="width: 4; height: 3">A</drag-box>
//	  <drag-box id="b" style="width: 4; height: 3">B</drag-box>
//	</drag-container>'''
//
//	[viewport]
//	width = 40
//	height = 10
//
//	[[step]]
//	action = "down"
//	x = 1
//	y = 1
//
//	[[step]]
//	action = "move"
//	x = 5
//	y = 1
//
//	[[step]]
//	action = "up"
//	x = 5
//	y = 1
//
//	[[expect]]
//	container = "row"
//	order = ["b", "a"]
//
// Steps default to mouse input with the primary button. Resize steps take
// width and height instead of a point.
package scenario

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/errors"
)

// Default viewport size when a scenario does not set one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Input kinds accepted by [Step.Input].
const (
	InputMouse = "mouse"
	InputTouch = "touch"
)

// Scenario is a scripted replay.
type Scenario struct {
	Name        string        `toml:"name"`
	Description string        `toml:"description"`
	Markup      string        `toml:"markup"`
	Viewport    Viewport      `toml:"viewport"`
	Steps       []Step        `toml:"step"`
	Expect      []Expectation `toml:"expect"`
}

// Viewport is the initial window size.
type Viewport struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Step is one input event.
type Step struct {
	Action string  `toml:"action"`
	Input  string  `toml:"input"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Button int     `toml:"button"`
	Touch  int     `toml:"touch"`

	// Width and Height apply to resize steps.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Expectation is the required child order of a container after the last step.
type Expectation struct {
	Container string   `toml:"container"`
	Order     []string `toml:"order"`
}

// EventType returns the dom event type of the step's action.
func (s Step) EventType() dom.EventType { return dom.EventType(s.Action) }

// PointerInput returns the dom input for a pointer step.
func (s Step) PointerInput() dom.Input {
	if s.Input == InputTouch {
		return dom.Touch{Touches: []dom.TouchPoint{{ID: s.Touch, X: s.X, Y: s.Y}}}
	}
	return dom.Mouse{X: s.X, Y: s.Y, Button: dom.Button(s.Button)}
}

// String describes the step for logs and tables.
func (s Step) String() string {
	if s.EventType() == dom.EventResize {
		return "resize " + formatFloat(s.Width) + "x" + formatFloat(s.Height)
	}
	return s.Action + " " + s.Input + " (" + formatFloat(s.X) + "," + formatFloat(s.Y) + ")"
}

// Load reads and validates the scenario at path. A scenario without a name
// takes the file's base name.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "scenario %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "open %s", path)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes a scenario from r, fills in defaults and validates it.
func Parse(r io.Reader) (*Scenario, error) {
	var sc Scenario
	md, err := toml.NewDecoder(r).Decode(&sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScenario, err, "decode scenario")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidScenario, "unknown keys: %s", strings.Join(keys, ", "))
	}

	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scenario) applyDefaults() {
	if sc.Viewport.Width == 0 {
		sc.Viewport.Width = DefaultWidth
	}
	if sc.Viewport.Height == 0 {
		sc.Viewport.Height = DefaultHeight
	}
	for i := range sc.Steps {
		if sc.Steps[i].Input == "" {
			sc.Steps[i].Input = InputMouse
		}
	}
}

// Validate checks the scenario's structure. It does not parse the markup.
func (sc *Scenario) Validate() error {
	if strings.TrimSpace(sc.Markup) == "" {
		return errors.New(errors.ErrCodeInvalidScenario, "markup is required")
	}
	if sc.Viewport.Width <= 0 || sc.Viewport.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScenario, "viewport must be positive, got %gx%g", sc.Viewport.Width, sc.Viewport.Height)
	}
	for i, st := range sc.Steps {
		switch st.EventType() {
		case dom.EventDown, dom.EventMove, dom.EventUp:
		case dom.EventResize:
			if st.Width <= 0 || st.Height <= 0 {
				return errors.New(errors.ErrCodeInvalidScenario, "step %d: resize needs a positive width and height", i)
			}
			continue
		default:
			return errors.New(errors.ErrCodeInvalidScenario, "step %d: unknown action %q", i, st.Action)
		}
		if st.Input != InputMouse && st.Input != InputTouch {
			return errors.New(errors.ErrCodeInvalidScenario, "step %d: unknown input %q", i, st.Input)
		}
		if st.Button < 0 || st.Button > int(dom.ButtonSecondary) {
			return errors.New(errors.ErrCodeInvalidScenario, "step %d: button %d out of range", i, st.Button)
		}
	}
	for i, ex := range sc.Expect {
		if ex.Container == "" {
			return errors.New(errors.ErrCodeInvalidScenario, "expect %d: container is required", i)
		}
	}
	return nil
}
