package render

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"time"

	"github.com/matzehuels/dragbox/pkg/errors"
	"github.com/matzehuels/dragbox/pkg/observability"
)

// MaxScale bounds the PNG scale factor. At 10x a board of a few dozen
// elements is already several thousand pixels wide.
const MaxScale = 10

// converter is the external SVG converter from librsvg.
const converter = "rsvg-convert"

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// ToPDF converts an SVG diagram to PDF with rsvg-convert.
func ToPDF(ctx context.Context, svg []byte) ([]byte, error) {
	return convert(ctx, svg, "pdf")
}

// ToPNG converts an SVG diagram to PNG with rsvg-convert. scale must be in
// (0, MaxScale]; 2 produces a 2x resolution image.
func ToPNG(ctx context.Context, svg []byte, scale float64) ([]byte, error) {
	if !(scale > 0 && scale <= MaxScale) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "png scale %v out of range (0, %d]", scale, MaxScale)
	}
	return convert(ctx, svg, "png", "--zoom", strconv.FormatFloat(scale, 'f', 2, 64))
}

// convert pipes svg through the converter, reporting the run to the render
// hooks.
func convert(ctx context.Context, svg []byte, format string, args ...string) (out []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, format, len(svg))
	defer func() {
		observability.Render().OnRenderComplete(ctx, format, time.Since(start), err)
	}()

	bin, err := lookPath(converter)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err,
			"%s export needs %s (brew install librsvg, or apt install librsvg2-bin)", format, converter)
	}

	cmd := exec.CommandContext(ctx, bin, append([]string{"--format", format}, args...)...)
	cmd.Stdin = bytes.NewReader(svg)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", converter, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}
