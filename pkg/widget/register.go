package widget

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dragbox/pkg/dom"
)

// Element kind names.
const (
	TagTile      = "drag-box"
	TagContainer = "drag-container"
)

// DefaultDragOpacity is the opacity of a tile while it is being dragged.
const DefaultDragOpacity = 0.1

// Options configures both widget kinds.
type Options struct {
	// Logger receives debug records for grabs, releases and reorders.
	// Nil discards them.
	Logger *log.Logger

	// DragOpacity dims the live tile while dragging. Values outside (0, 1]
	// fall back to DefaultDragOpacity.
	DragOpacity float64

	// LegacyTouchExclusion restores the touch overlap rule that only refuses
	// moves whose touch target is the container. By default touch input
	// follows the mouse rule: the element under the pointer must be neither
	// the drag source nor the container.
	LegacyTouchExclusion bool

	// Wrap lets container rows wrap when they run out of width.
	Wrap bool

	// Gap is the horizontal and vertical spacing between container children.
	Gap int
}

// DefaultOptions returns the options used by the CLI when no config overrides
// them.
func DefaultOptions() Options {
	return Options{
		DragOpacity: DefaultDragOpacity,
		Wrap:        true,
	}
}

func (o Options) normalize() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.DragOpacity <= 0 || o.DragOpacity > 1 {
		o.DragOpacity = DefaultDragOpacity
	}
	o.Gap = max(o.Gap, 0)
	return o
}

// Register defines drag-box and drag-container on reg.
func Register(reg *dom.Registry, opts Options) error {
	opts = opts.normalize()
	if err := reg.Define(TagTile, func(n *dom.Node) dom.Element {
		return &Tile{node: n, opts: opts}
	}); err != nil {
		return err
	}
	return reg.Define(TagContainer, func(n *dom.Node) dom.Element {
		return &Container{node: n, opts: opts}
	})
}

// TileOf returns the tile behaviour of n, if n is a drag-box.
func TileOf(n *dom.Node) (*Tile, bool) {
	if n == nil {
		return nil, false
	}
	t, ok := n.Element().(*Tile)
	return t, ok
}

// ContainerOf returns the container behaviour of n, if n is a drag-container.
func ContainerOf(n *dom.Node) (*Container, bool) {
	if n == nil {
		return nil, false
	}
	c, ok := n.Element().(*Container)
	return c, ok
}
