// Package nodelink renders a document's element tree as a node-link diagram.
//
// # Overview
//
// Every node becomes a box labelled with its tag, id and text; arrows run from
// parent to child in child order, so the left-to-right order of a container's
// children in the diagram is the order the container currently holds. Drag
// ghosts appear dashed and dimmed drag sources grey, which makes an exported
// mid-drag snapshot easy to read.
//
// # Usage
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0)  // 2x scale
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
