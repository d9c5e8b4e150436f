// Package screen draws a laid-out document onto a terminal cell grid.
//
// # Overview
//
// [Render] walks the document's paint order and draws every node into a grid
// the size of the viewport: background fill, border (any lipgloss border
// named by the border property), then text inside the padding box. Later
// nodes overwrite earlier ones, so positioned nodes paint on top.
//
// Colors come from the node's color, background and border-color properties,
// falling back to the [Theme]. font-weight: bold draws bold text, and an
// effective opacity below 1 draws faint, which is how a dimmed drag source
// shows up in a terminal.
//
// # Usage
//
//	out := screen.Render(doc, screen.Options{Theme: screen.Theme{Border: "36"}})
//	fmt.Println(out)
//
// Set Options.Plain for uncolored output, for example in golden tests or when
// writing to a file.
//
// Wide runes are drawn as a single cell; the layout engine measures them as
// two, so lines containing them are shifted.
package screen
