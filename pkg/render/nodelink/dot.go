package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dragbox/pkg/dom"
	"github.com/matzehuels/dragbox/pkg/errors"
	"github.com/matzehuels/dragbox/pkg/observability"
	"github.com/matzehuels/dragbox/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes the layout rectangle and inline style in node labels.
	// When false, only the tag, id and text are shown.
	Detailed bool
}

// ToDOT converts a document's element tree to Graphviz DOT format. Edges run
// from parent to child in child order. The resulting DOT string can be
// rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Positioned nodes (drag ghosts) are drawn with dashed outlines, and dimmed
// nodes (drag sources) with a grey fill.
func ToDOT(doc *dom.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	nodes := append([]*dom.Node{doc.Body()}, descendants(doc.Body())...)
	keys := make(map[*dom.Node]string, len(nodes))
	for i, n := range nodes {
		keys[n] = "n" + strconv.Itoa(i)
		label := fmtLabel(doc, n, opts.Detailed)
		fmt.Fprintf(&buf, "  %s [%s];\n", keys[n], strings.Join(fmtAttrs(n, label), ", "))
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, c := range n.Children() {
			fmt.Fprintf(&buf, "  %s -> %s;\n", keys[n], keys[c])
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func descendants(root *dom.Node) []*dom.Node {
	var out []*dom.Node
	dom.Walk(root, func(n *dom.Node) bool {
		out = append(out, n)
		return true
	})
	return out
}

func fmtLabel(doc *dom.Document, n *dom.Node, detailed bool) string {
	parts := []string{n.Tag()}
	if n != doc.Body() {
		parts[0] = n.Tag() + "#" + n.ID()
	}
	if t := n.Text(); t != "" {
		parts = append(parts, strconv.Quote(t))
	}
	if detailed {
		parts = append(parts, "rect: "+doc.Rect(n).String())
		for _, p := range n.Style().Properties() {
			parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Value))
		}
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *dom.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	s := n.Style()
	switch {
	case s.Get(dom.PropPosition) == "absolute":
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=white", "fontcolor=grey40")
	case dom.ParseOpacity(s.Get(dom.PropOpacity)) < 1:
		attrs = append(attrs, "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) (svg []byte, err error) {
	start := time.Now()
	observability.Render().OnRenderStart(ctx, "svg", len(dot))
	defer func() {
		observability.Render().OnRenderComplete(ctx, "svg", time.Since(start), err)
	}()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion. A scale of 2.0
// produces a 2x resolution image.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
