package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KeyDown, "keydown"},
		{KeyUp, "keyup"},
		{PointerDown, "mousedown"},
		{TouchStart, "touchstart"},
		{Kind(42), "unknown(42)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind.String() = %q, want %q", got, tt.expected)
		}
	}
}

func TestSurface_DispatchOrderAndKind(t *testing.T) {
	s := NewSurface()
	var order []string

	s.AddListener(KeyDown, func(Event) { order = append(order, "first") })
	s.AddListener(KeyUp, func(Event) { order = append(order, "keyup") })
	s.AddListener(KeyDown, func(Event) { order = append(order, "second") })

	s.Dispatch(Event{Kind: KeyDown, Key: "a"})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("dispatch order = %v, want [first second]", order)
	}
}

func TestSurface_RemoveListener(t *testing.T) {
	s := NewSurface()
	calls := 0
	id := s.AddListener(PointerDown, func(Event) { calls++ })
	other := s.AddListener(PointerDown, func(Event) {})

	s.RemoveListener(PointerDown, id)
	s.Dispatch(Event{Kind: PointerDown})

	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}
	if got := s.Listeners(PointerDown); got != 1 {
		t.Errorf("Listeners() = %d, want 1", got)
	}

	// Wrong kind or unknown id leaves others untouched
	s.RemoveListener(KeyDown, other)
	s.RemoveListener(PointerDown, ListenerID(999))
	if got := s.Listeners(PointerDown); got != 1 {
		t.Errorf("Listeners() = %d after unrelated removals, want 1", got)
	}

	s.RemoveListener(PointerDown, other)
	if got := s.Listeners(PointerDown); got != 0 {
		t.Errorf("Listeners() = %d, want 0", got)
	}
}

func TestSurface_MutationDuringDispatch(t *testing.T) {
	s := NewSurface()
	var secondID ListenerID
	secondCalls, lateCalls := 0, 0

	s.AddListener(TouchStart, func(Event) {
		s.RemoveListener(TouchStart, secondID)
		s.AddListener(TouchStart, func(Event) { lateCalls++ })
	})
	secondID = s.AddListener(TouchStart, func(Event) { secondCalls++ })

	s.Dispatch(Event{Kind: TouchStart})

	if secondCalls != 0 {
		t.Errorf("listener removed mid-dispatch was called %d times", secondCalls)
	}
	if lateCalls != 0 {
		t.Errorf("listener added mid-dispatch was called %d times", lateCalls)
	}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.Msg
		expected []Event
	}{
		{
			name: "enter key",
			msg:  tea.KeyMsg{Type: tea.KeyEnter},
			expected: []Event{
				{Kind: KeyDown, Key: KeyEnter},
				{Kind: KeyUp, Key: KeyEnter},
			},
		},
		{
			name: "escape key",
			msg:  tea.KeyMsg{Type: tea.KeyEsc},
			expected: []Event{
				{Kind: KeyDown, Key: KeyEscape},
				{Kind: KeyUp, Key: KeyEscape},
			},
		},
		{
			name: "rune key",
			msg:  tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")},
			expected: []Event{
				{Kind: KeyDown, Key: "q"},
				{Kind: KeyUp, Key: "q"},
			},
		},
		{
			name:     "left press",
			msg:      tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			expected: []Event{{Kind: PointerDown, Origin: Point{X: 3, Y: 7}}},
		},
		{
			name:     "right press",
			msg:      tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
			expected: []Event{{Kind: PointerDown, Origin: Point{X: 1, Y: 1}}},
		},
		{
			name: "release",
			msg:  tea.MouseMsg{X: 3, Y: 7, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		},
		{
			name: "wheel",
			msg:  tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
		},
		{
			name: "window size",
			msg:  tea.WindowSizeMsg{Width: 80, Height: 24},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Translate(tt.msg)
			if len(got) != len(tt.expected) {
				t.Fatalf("Translate() = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Translate()[%d] = %+v, want %+v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}
