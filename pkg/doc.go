// Package pkg provides the libraries behind dragbox, a drag-to-reorder board.
//
// # Overview
//
// Dragbox hosts two custom elements on a small retained element tree:
// drag-box tiles that follow the pointer while held, and drag-container rows
// that move a held child before or after the sibling under the pointer. The
// pkg directory is organized into four areas:
//
//  1. [dom] - Element tree, inline styles, layout, hit testing and pointer events
//  2. [widget] - The drag-box and drag-container behaviours
//  3. [render] - Terminal, diagram and JSON views of a document
//  4. [scenario] - Scripted pointer replays with expected orders
//
// # Architecture
//
// The typical data flow:
//
//	markup (HTML fragment)
//	         ↓
//	    [dom] Document (mount, layout)
//	         ↓
//	    pointer input (terminal mouse or [scenario] steps)
//	         ↓
//	    [widget] Tile / Container handlers (ghost, reorder)
//	         ↓
//	    [render] screen / nodelink / snapshot output
//
// # Quick Start
//
// Mount a board and drag the first tile onto the last:
//
//	reg := dom.NewRegistry()
//	_ = widget.Register(reg, widget.DefaultOptions())
//
//	doc := dom.NewDocument(reg, 40, 10)
//	_, _ = doc.MountMarkup(`<drag-container id="row">
//	  <drag-box id="a" style="width: 4; height: 3">A</drag-box>
//	  <drag-box id="b" style="width: 4; height: 3">B</drag-box>
//	</drag-container>`)
//
//	doc.DispatchPointer(dom.EventDown, dom.Mouse{X: 1, Y: 1})
//	doc.DispatchPointer(dom.EventMove, dom.Mouse{X: 5, Y: 1})
//	doc.DispatchPointer(dom.EventUp, dom.Mouse{X: 5, Y: 1})
//
//	fmt.Println(screen.Render(doc, screen.Options{Plain: true}))
//
// # Main Packages
//
// [dom] - Nodes with ids, text and inline style; a registry of element kinds
// with connect/disconnect callbacks; flex-row and block layout measured in
// terminal cells; paint order, hit testing and listener dispatch for mouse,
// touch and resize events.
//
// [widget] - Tile lifts a ghost copy of itself that follows the pointer.
// Container keeps a cache of its children's rectangles and splices the drag
// source next to the child it overlaps.
//
// [render/screen] - Draws a document as terminal cells with lipgloss borders.
//
// [render/nodelink] - Element tree diagrams via Graphviz (DOT, SVG, PDF, PNG).
//
// [render/snapshot] - JSON export of rectangles and container orders.
//
// [scenario] - TOML scenarios of pointer steps, replayed against a fresh
// document and checked against expected orders.
//
// ## Supporting Packages
//
// [config] - TOML user settings. [cache] - Render cache for diagrams.
// [errors] - Coded errors. [observability] - Drag and render hooks.
// [geom] - Points and rectangles. [buildinfo] - Version information.
//
// [dom]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/dom
// [widget]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/widget
// [render]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/render
// [render/screen]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/render/screen
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/render/nodelink
// [render/snapshot]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/render/snapshot
// [scenario]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/scenario
// [config]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/observability
// [geom]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/geom
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dragbox/pkg/buildinfo
package pkg
