package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dragbox/pkg/observability"
)

// logHooks reports drag and render events to a logger. Drag events log at
// info level so the demo's log file shows a session without --verbose.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.DragHooks   = logHooks{}
	_ observability.RenderHooks = logHooks{}
)

// installHooks registers logging hooks and returns a function restoring the
// no-op defaults.
func installHooks(logger *log.Logger) func() {
	h := logHooks{logger: logger}
	observability.SetDragHooks(h)
	observability.SetRenderHooks(h)
	return observability.Reset
}

func (h logHooks) OnGrab(tile string, x, y float64) {
	h.logger.Info("grab", "tile", tile, "x", x, "y", y)
}

func (h logHooks) OnRelease(tile string) {
	h.logger.Info("release", "tile", tile)
}

func (h logHooks) OnReorder(container, source, target, position string, order []string) {
	h.logger.Info("reorder", "container", container, "source", source, "target", target, "position", position, "order", order)
}

func (h logHooks) OnRenderStart(_ context.Context, format string, inputSize int) {
	h.logger.Debug("render start", "format", format, "bytes", inputSize)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, d time.Duration, err error) {
	if err != nil {
		h.logger.Error("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("render done", "format", format, "took", d.Round(time.Millisecond))
}
