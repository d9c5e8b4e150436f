// Package render provides output renderers for documents.
//
// # Overview
//
// This package holds the shared format conversion used by the renderers in
// its subpackages:
//
//   - [screen]: draws the laid-out document onto a terminal cell grid
//   - [nodelink]: exports the element tree as a Graphviz diagram
//   - [snapshot]: exports node rectangles and container orders as JSON
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). Each conversion is reported
// to the render hooks of the observability package, and PNG scales outside
// (0, [MaxScale]] are rejected.
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [screen]: github.com/matzehuels/dragbox/pkg/render/screen
// [nodelink]: github.com/matzehuels/dragbox/pkg/render/nodelink
// [snapshot]: github.com/matzehuels/dragbox/pkg/render/snapshot
package render
