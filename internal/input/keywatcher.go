package input

// KeyWatcher tracks whether a single key is currently held down.
//
// The state is level-triggered: it is set on a matching KeyDown and cleared on
// a matching KeyUp. Events for other keys never touch it. Consumers that need
// edges register an OnChange callback, which only fires when the state flips.
type KeyWatcher struct {
	key      string
	pressed  bool
	onChange func(pressed bool)

	registrar Registrar
	downID    ListenerID
	upID      ListenerID
	closed    bool
}

// NewKeyWatcher starts watching key on r.
func NewKeyWatcher(r Registrar, key string) *KeyWatcher {
	w := &KeyWatcher{
		key:       key,
		registrar: r,
	}
	w.downID = r.AddListener(KeyDown, w.handleDown)
	w.upID = r.AddListener(KeyUp, w.handleUp)
	return w
}

// Key returns the watched key name
func (w *KeyWatcher) Key() string {
	return w.key
}

// Pressed reports whether the watched key is down.
func (w *KeyWatcher) Pressed() bool {
	return w.pressed
}

// OnChange sets the function called after every change of the pressed state.
// Passing nil removes it.
func (w *KeyWatcher) OnChange(fn func(pressed bool)) {
	w.onChange = fn
}

// Close unregisters both listeners. Calling Close more than once is a no-op.
func (w *KeyWatcher) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.registrar.RemoveListener(KeyDown, w.downID)
	w.registrar.RemoveListener(KeyUp, w.upID)
	w.onChange = nil
}

func (w *KeyWatcher) handleDown(ev Event) {
	if ev.Key == w.key {
		w.set(true)
	}
}

func (w *KeyWatcher) handleUp(ev Event) {
	if ev.Key == w.key {
		w.set(false)
	}
}

func (w *KeyWatcher) set(pressed bool) {
	if w.pressed == pressed {
		return
	}
	w.pressed = pressed
	if w.onChange != nil {
		w.onChange(pressed)
	}
}
