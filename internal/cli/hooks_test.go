package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dragbox/pkg/observability"
)

func TestInstallHooks(t *testing.T) {
	var buf bytes.Buffer
	reset := installHooks(newLogger(&buf, log.DebugLevel))

	observability.Drag().OnGrab("tile-1", 2, 1)
	observability.Drag().OnReorder("board", "tile-1", "tile-2", "afterend", []string{"tile-2", "tile-1"})
	observability.Drag().OnRelease("tile-1")
	observability.Render().OnRenderStart(context.Background(), "svg", 4)
	observability.Render().OnRenderComplete(context.Background(), "svg", 0, errors.New("boom"))

	out := buf.String()
	for _, want := range []string{"grab", "reorder", "release", "render start", "render failed", "boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	reset()
	buf.Reset()
	observability.Drag().OnGrab("tile-1", 0, 0)
	if buf.Len() != 0 {
		t.Errorf("hooks still log after reset: %q", buf.String())
	}
}
