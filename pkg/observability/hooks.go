// Package observability provides hooks for drag instrumentation and render
// timing.
//
// Widgets and renderers call the registered hooks; the application decides what
// to do with them (log, count, record a session). Nothing in the library
// depends on a particular backend.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDragHooks(&myDragHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Drag().OnReorder(container, source, target, "beforebegin", order)
//
// Drag hooks run inside input handlers, synchronously and on the UI goroutine,
// so they carry no context. Render hooks wrap cancellable work and do.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Drag Hooks
// =============================================================================

// DragHooks receives events from the drag-and-reorder widgets. Node arguments
// are element ids.
type DragHooks interface {
	// OnGrab records a tile entering the dragging state at pointer (x, y).
	OnGrab(tile string, x, y float64)

	// OnRelease records a tile leaving the dragging state.
	OnRelease(tile string)

	// OnReorder records a container moving source next to target. Position is
	// "beforebegin" or "afterend"; order is the container's new child order.
	OnReorder(container, source, target, position string, order []string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from diagram renders and SVG conversions.
// inputSize is the byte length of the DOT or SVG being rendered.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, format string, inputSize int)
	OnRenderComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDragHooks is a no-op implementation of DragHooks.
type NoopDragHooks struct{}

func (NoopDragHooks) OnGrab(string, float64, float64)                    {}
func (NoopDragHooks) OnRelease(string)                                   {}
func (NoopDragHooks) OnReorder(string, string, string, string, []string) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string, int)                      {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dragHooks   DragHooks   = NoopDragHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetDragHooks registers custom drag hooks.
// This should be called once at application startup before any widget is mounted.
func SetDragHooks(h DragHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dragHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Drag returns the registered drag hooks.
func Drag() DragHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dragHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dragHooks = NoopDragHooks{}
	renderHooks = NoopRenderHooks{}
}
