// Package snapshot exports a document's layout as JSON.
//
// The output lists every painted node with its rectangle, the current child
// order of each drag-container and the tiles being dragged. It is the
// machine-readable counterpart of the screen renderer, meant for diffing
// replay results or feeding other tools.
//
//	data, err := snapshot.RenderJSON(doc, snapshot.WithJSONScenario("swap"))
package snapshot
