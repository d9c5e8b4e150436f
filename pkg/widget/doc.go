// Package widget implements the drag-and-reorder elements: drag-box, a tile
// that can be picked up and dragged, and drag-container, a flex row that
// reorders its children as a dragged child crosses its siblings.
//
// # Registration
//
// Both kinds are defined on a [dom.Registry]:
//
//	reg := dom.NewRegistry()
//	if err := widget.Register(reg, widget.DefaultOptions()); err != nil {
//	    return err
//	}
//	doc := dom.NewDocument(reg, 80, 24)
//	doc.MountMarkup(`<drag-container><drag-box>A</drag-box><drag-box>B</drag-box></drag-container>`)
//
// # Tiles
//
// A tile is Idle or Dragging. A primary down on the tile captures the pointer
// offset, appends a ghost copy to the document body and dims the tile. Moves
// anywhere in the document move the ghost; an up anywhere removes it.
//
// # Containers
//
// A container keeps a [PositionCache] of its children's rectangles. While one
// of its children is being dragged, every move tests the pointer against the
// cached rectangles in child order. The first sibling strictly containing the
// pointer wins: the drag source moves before it when the source sits below or
// to the right of it, after it when above or to the left. The cache is rebuilt
// after each reorder, on mount and on viewport resize.
//
// Tiles and containers are independent. A container reorders any child, and a
// tile drags without a container.
package widget
