package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// syncBuffer is a bytes.Buffer safe for the spinner goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return ansi.Strip(b.buf.String())
}

func TestRenderSpinnerFrames(t *testing.T) {
	var out syncBuffer
	s := newRenderSpinner(context.Background(), &out, "svg")
	s.run()
	time.Sleep(3 * spinnerInterval)
	s.stop()

	got := out.String()
	if !strings.Contains(got, "Rendering SVG") {
		t.Errorf("output %q should name the render", got)
	}
	if !strings.HasSuffix(got, "\r") {
		t.Errorf("output %q should end by clearing the line", got)
	}
	if s.interrupted() {
		t.Error("a stopped spinner was not interrupted")
	}
}

func TestRenderSpinnerStop(t *testing.T) {
	tests := []struct {
		name string
		run  bool
	}{
		{"after run", true},
		{"before run", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out syncBuffer
			s := newRenderSpinner(context.Background(), &out, "png")
			if tt.run {
				s.run()
			}
			s.stop()
			s.stop()
		})
	}
}

func TestRenderSpinnerInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	s := newRenderSpinner(ctx, &out, "pdf")
	s.run()

	cancel()
	s.stop()
	if !s.interrupted() {
		t.Error("cancelling the caller's context should interrupt the render")
	}
}

func TestRenderSpinnerFail(t *testing.T) {
	var out syncBuffer
	s := newRenderSpinner(context.Background(), &out, "pdf")
	s.run()
	s.fail()

	if got := out.String(); !strings.Contains(got, iconError+" Rendering PDF failed") {
		t.Errorf("output %q should report the failed render", got)
	}
}
