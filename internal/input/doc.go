// Package input models the root input surface of a terminal UI as an explicit
// listener registry, and provides the two watchers the inline editor is built
// from.
//
// # Surface
//
// A Surface is the terminal equivalent of a window or document: components
// register listeners for an event kind and later remove exactly those
// listeners again. The host feeds it by translating Bubble Tea messages:
//
//	surface := input.NewSurface()
//	for _, ev := range input.Translate(msg) {
//	    surface.Dispatch(ev)
//	}
//
// Terminals only report key presses, so Translate emits a KeyDown immediately
// followed by a KeyUp for every tea.KeyMsg. Mouse presses become PointerDown
// events. TouchStart has no terminal source and is dispatched directly by
// hosts that have one.
//
// # Watchers
//
//   - KeyWatcher: level-triggered "is this key held down" state
//   - OutsideWatcher: callback for pointer-down/touch-start outside a Region
//
// Both register on construction and must be closed when their owner goes
// away. A closed watcher never receives another event.
//
// # Thread Safety
//
// None of the types here are safe for concurrent use. Everything runs inside
// the Bubble Tea update loop, which serializes all messages.
package input
