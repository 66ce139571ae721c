package input

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key names as reported by tea.KeyMsg.String()
const (
	KeyEnter  = "enter"
	KeyEscape = "esc"
)

// Translate converts a Bubble Tea message into surface events.
//
// A key message becomes a KeyDown followed by a KeyUp, since terminals do not
// report releases. A mouse press becomes a PointerDown at the event's cell.
// Everything else (releases, motion, wheel, window size, ticks) produces no
// events.
func Translate(msg tea.Msg) []Event {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		name := msg.String()
		return []Event{
			{Kind: KeyDown, Key: name},
			{Kind: KeyUp, Key: name},
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || tea.MouseEvent(msg).IsWheel() {
			return nil
		}
		return []Event{
			{Kind: PointerDown, Origin: Point{X: msg.X, Y: msg.Y}},
		}
	}
	return nil
}
