package input

// Region is a rendered area used for "did this event start inside" tests.
// The watcher only reads it.
type Region interface {
	Contains(p Point) bool
}

// Rect is an axis-aligned block of terminal cells. The zero Rect contains
// nothing.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p lies inside r. The top-left cell is inside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether r covers no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// OutsideWatcher calls a function for every pointer-down or touch-start that
// originates outside a region.
type OutsideWatcher struct {
	region    Region
	registrar Registrar

	pointerID ListenerID
	touchID   ListenerID
	active    bool
}

// NewOutsideWatcher starts watching r for interactions outside region.
func NewOutsideWatcher(r Registrar, region Region, fn func()) *OutsideWatcher {
	w := &OutsideWatcher{
		region:    region,
		registrar: r,
	}
	w.register(fn)
	return w
}

// SetCallback replaces the callback. The listeners are re-registered so that
// the previous function can never run again. A closed watcher stays closed.
func (w *OutsideWatcher) SetCallback(fn func()) {
	if !w.active {
		return
	}
	w.unregister()
	w.register(fn)
}

// Close unregisters both listeners. Calling Close more than once is a no-op.
func (w *OutsideWatcher) Close() {
	if !w.active {
		return
	}
	w.unregister()
}

func (w *OutsideWatcher) register(fn func()) {
	// Each registration gets its own closure bound to fn, so a stale listener
	// could only ever call the function it was registered with.
	handler := func(ev Event) {
		if w.region != nil && w.region.Contains(ev.Origin) {
			return
		}
		if fn != nil {
			fn()
		}
	}
	w.pointerID = w.registrar.AddListener(PointerDown, handler)
	w.touchID = w.registrar.AddListener(TouchStart, handler)
	w.active = true
}

func (w *OutsideWatcher) unregister() {
	w.registrar.RemoveListener(PointerDown, w.pointerID)
	w.registrar.RemoveListener(TouchStart, w.touchID)
	w.active = false
}
