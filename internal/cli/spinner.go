package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// renderSpinner animates a status line such as "⠹ Rendering SVG 1.2s" while
// Graphviz or rsvg-convert runs. It stops by itself when ctx is cancelled.
type renderSpinner struct {
	w     io.Writer
	label string
	start time.Time

	parent  context.Context
	ctx     context.Context
	cancel  context.CancelFunc
	stopped chan struct{}
	once    sync.Once

	mu    sync.Mutex
	width int // visible width of the last frame
}

// newRenderSpinner returns a spinner for a render of format written to w.
func newRenderSpinner(ctx context.Context, w io.Writer, format string) *renderSpinner {
	sctx, cancel := context.WithCancel(ctx)
	return &renderSpinner{
		w:       w,
		label:   "Rendering " + strings.ToUpper(format),
		parent:  ctx,
		ctx:     sctx,
		cancel:  cancel,
		stopped: make(chan struct{}),
	}
}

// run starts the animation.
func (s *renderSpinner) run() {
	s.start = time.Now()
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()
		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				s.clear()
				return
			case <-ticker.C:
				s.frame(i)
			}
		}
	}()
}

func (s *renderSpinner) frame(i int) {
	elapsed := time.Since(s.start).Round(100 * time.Millisecond)
	text := fmt.Sprintf("%s %s", s.label, elapsed)

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s %s", styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]), StyleDim.Render(text))
	s.width = 2 + len(text)
}

func (s *renderSpinner) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.width > 0 {
		fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", s.width))
		s.width = 0
	}
}

// stop ends the animation and clears the line. It is safe to call more than
// once, and before run.
func (s *renderSpinner) stop() {
	s.once.Do(func() {
		started := !s.start.IsZero()
		s.cancel()
		if started {
			<-s.stopped
		}
	})
}

// fail stops the spinner and leaves an error line naming the render.
func (s *renderSpinner) fail() {
	s.stop()
	fmt.Fprintln(s.w, styleIconError.Render(iconError)+" "+s.label+" failed")
}

// interrupted reports whether the caller's context ended the render.
func (s *renderSpinner) interrupted() bool {
	return s.parent.Err() != nil
}
