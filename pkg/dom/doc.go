// Package dom implements the visual document that hosts the drag widgets.
//
// # Overview
//
// A [Document] owns a tree of [Node] values rooted at its body, a [Window]
// describing the viewport, and a [Registry] of custom element kinds. Nodes carry
// inline styles, optional text content and, for registered kinds, an [Element]
// behaviour whose Connected and Disconnected callbacks run when the node joins or
// leaves the connected tree.
//
// # Layout
//
// Layout is computed lazily in viewport cells whenever a rectangle is queried
// after a mutation. Block nodes stack their children vertically; nodes with
// display "flex" lay children out in a horizontal row, wrapping onto new rows
// when "flex-wrap: wrap" is set. Absolutely positioned nodes leave the flow and
// are placed at their left/top coordinates. Text is measured with lipgloss so
// the terminal renderer and the layout agree on sizes.
//
// # Events
//
// Pointer input arrives as an [Input] value, either [Mouse] or [Touch], and is
// normalised into an [Event] carrying a client position and a target node.
// Dispatch bubbles from the target through its ancestors to the document and
// finally the window. Listeners fire in registration order within each scope.
//
//	doc := dom.NewDocument(reg, 80, 24)
//	sub := doc.AddEventListener(dom.EventUp, func(e *dom.Event) { ... })
//	defer sub.Remove()
//	doc.DispatchPointer(dom.EventDown, dom.Mouse{X: 3, Y: 1})
//
// [ListenerGroup] collects subscriptions acquired during a mount so they can be
// released together.
//
// # Concurrency
//
// A Document is not safe for concurrent use. Hosts deliver events from a single
// goroutine, and every handler completes its mutations before dispatch returns.
package dom
