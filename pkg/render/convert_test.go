package render

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/matzehuels/dragbox/pkg/errors"
	"github.com/matzehuels/dragbox/pkg/observability"
)

type renderRecorder struct {
	started []string
	failed  int
}

func (r *renderRecorder) OnRenderStart(_ context.Context, format string, _ int) {
	r.started = append(r.started, format)
}

func (r *renderRecorder) OnRenderComplete(_ context.Context, _ string, _ time.Duration, err error) {
	if err != nil {
		r.failed++
	}
}

func TestToPNGScale(t *testing.T) {
	for _, scale := range []float64{0, -1, MaxScale + 1} {
		_, err := ToPNG(context.Background(), []byte("<svg/>"), scale)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ToPNG(scale %v) error = %v, want %v", scale, err, errors.ErrCodeInvalidInput)
		}
	}
}

func TestConvertWithoutConverter(t *testing.T) {
	lookPath = func(string) (string, error) { return "", exec.ErrNotFound }
	defer func() { lookPath = exec.LookPath }()

	rec := &renderRecorder{}
	observability.SetRenderHooks(rec)
	defer observability.Reset()

	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("ToPDF() error = %v, want %v", err, errors.ErrCodeNotFound)
	}
	if len(rec.started) != 1 || rec.started[0] != "pdf" || rec.failed != 1 {
		t.Errorf("hooks: started = %v, failed = %d; want [pdf], 1", rec.started, rec.failed)
	}
}

func TestConvertPDF(t *testing.T) {
	if _, err := exec.LookPath(converter); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><rect width="10" height="10"/></svg>`)
	pdf, err := ToPDF(context.Background(), svg)
	if err != nil {
		t.Fatalf("ToPDF() error: %v", err)
	}
	if len(pdf) < 4 || string(pdf[:4]) != "%PDF" {
		t.Errorf("ToPDF() output starts %q, want %%PDF", pdf[:min(len(pdf), 8)])
	}
}
