package input

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/inlineedit/internal/logging"
)

// Kind identifies the type of an input event.
type Kind int

const (
	KeyDown Kind = iota
	KeyUp
	PointerDown
	TouchStart
)

// String returns the DOM-style event name for the kind
func (k Kind) String() string {
	switch k {
	case KeyDown:
		return "keydown"
	case KeyUp:
		return "keyup"
	case PointerDown:
		return "mousedown"
	case TouchStart:
		return "touchstart"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Point is a terminal cell position. X is the column, Y the row.
type Point struct {
	X int
	Y int
}

// Event is a single input event delivered through a Surface.
type Event struct {
	Kind Kind
	// Key is the Bubble Tea key name ("enter", "esc", "a", ...). Only set for
	// KeyDown and KeyUp.
	Key string
	// Origin is where a pointer or touch event started. Only meaningful for
	// PointerDown and TouchStart.
	Origin Point
}

// Handler receives events from a Surface.
type Handler func(Event)

// ListenerID identifies one registered listener.
type ListenerID uint64

// Registrar is the part of a Surface that watchers depend on.
type Registrar interface {
	AddListener(kind Kind, h Handler) ListenerID
	RemoveListener(kind Kind, id ListenerID)
}

type listener struct {
	id ListenerID
	h  Handler
}

// Surface is the shared listener registry for one UI.
type Surface struct {
	listeners map[Kind][]listener
	nextID    ListenerID
}

// NewSurface creates an empty surface
func NewSurface() *Surface {
	return &Surface{
		listeners: make(map[Kind][]listener),
	}
}

// AddListener registers h for events of the given kind and returns an ID that
// removes it again.
func (s *Surface) AddListener(kind Kind, h Handler) ListenerID {
	s.nextID++
	id := s.nextID
	s.listeners[kind] = append(s.listeners[kind], listener{id: id, h: h})

	logging.Debug("Listener added",
		zap.String("kind", kind.String()),
		zap.Uint64("id", uint64(id)),
		zap.Int("count", len(s.listeners[kind])),
	)
	return id
}

// RemoveListener unregisters a listener. Unknown IDs are ignored.
func (s *Surface) RemoveListener(kind Kind, id ListenerID) {
	list := s.listeners[kind]
	for i, l := range list {
		if l.id != id {
			continue
		}
		// Copy so that an in-flight Dispatch keeps its snapshot intact
		next := make([]listener, 0, len(list)-1)
		next = append(next, list[:i]...)
		next = append(next, list[i+1:]...)
		if len(next) == 0 {
			delete(s.listeners, kind)
		} else {
			s.listeners[kind] = next
		}

		logging.Debug("Listener removed",
			zap.String("kind", kind.String()),
			zap.Uint64("id", uint64(id)),
			zap.Int("count", len(next)),
		)
		return
	}
}

// Dispatch delivers ev to every listener registered for its kind, in
// registration order. Listeners added during dispatch see the next event, not
// this one. Listeners removed during dispatch are skipped.
func (s *Surface) Dispatch(ev Event) {
	snapshot := s.listeners[ev.Kind]
	for _, l := range snapshot {
		if !s.registered(ev.Kind, l.id) {
			continue
		}
		l.h(ev)
	}
}

// Listeners returns how many listeners are registered for kind
func (s *Surface) Listeners(kind Kind) int {
	return len(s.listeners[kind])
}

func (s *Surface) registered(kind Kind, id ListenerID) bool {
	for _, l := range s.listeners[kind] {
		if l.id == id {
			return true
		}
	}
	return false
}
