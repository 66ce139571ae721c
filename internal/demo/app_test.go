package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/inlineedit/internal/config"
	"github.com/muurk/inlineedit/internal/input"
)

func newTestApp(t *testing.T) AppModel {
	t.Helper()
	m, err := NewAppModel(config.DefaultFields())
	if err != nil {
		t.Fatalf("NewAppModel() error = %v", err)
	}
	t.Cleanup(m.Close)
	return step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func step(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	updated, _ := m.Update(msg)
	app, ok := updated.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T, want AppModel", updated)
	}
	return app
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func clickAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestNewAppModel_MountsAllFields(t *testing.T) {
	m := newTestApp(t)

	if len(m.Fields) != 10 {
		t.Fatalf("got %d fields, want 10", len(m.Fields))
	}
	// Two key watchers per widget
	if got := m.Surface.Listeners(input.KeyDown); got != 20 {
		t.Errorf("Listeners(KeyDown) = %d, want 20", got)
	}
	if got := m.Surface.Listeners(input.PointerDown); got != 10 {
		t.Errorf("Listeners(PointerDown) = %d, want 10", got)
	}
	if m.Value("heading1") != "This is a Heading 1 element" {
		t.Errorf("Value(heading1) = %q", m.Value("heading1"))
	}
}

func TestAppModel_ViewShowsAllText(t *testing.T) {
	m := newTestApp(t)
	view := m.View()

	for _, f := range config.DefaultFields().Fields {
		if !strings.Contains(view, f.Text) {
			t.Errorf("View() missing %q", f.Text)
		}
	}
}

func TestAppModel_LayoutMatchesView(t *testing.T) {
	m := newTestApp(t)
	lines := strings.Split(m.View(), "\n")

	for _, f := range m.Fields {
		if f.top >= len(lines) {
			t.Fatalf("field %s top %d beyond view of %d lines", f.Def.Name, f.top, len(lines))
		}
		if !strings.Contains(lines[f.top], f.Widget.Text()) {
			t.Errorf("line %d = %q, want field %s", f.top, lines[f.top], f.Def.Name)
		}
		if b := f.Widget.Bounds(); b.Y != f.top || b.X != ContentIndent {
			t.Errorf("field %s bounds = %+v, want row %d col %d", f.Def.Name, b, f.top, ContentIndent)
		}
	}
}

func TestAppModel_KeyboardEditConfirm(t *testing.T) {
	m := newTestApp(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Fields[0].Widget.Editing() {
		t.Fatal("Enter should open the focused field")
	}

	// q is text while editing, not quit
	m = step(t, m, runes("q"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Fields[0].Widget.Editing() {
		t.Error("Enter should confirm a single-line field")
	}
	if got := m.Value("heading1"); got != "This is a Heading 1 elementq" {
		t.Errorf("Value(heading1) = %q, want typed suffix", got)
	}
	if !strings.Contains(m.View(), "This is a Heading 1 elementq") {
		t.Error("View() should show the confirmed value")
	}
}

func TestAppModel_FocusNavigation(t *testing.T) {
	m := newTestApp(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.Focus != 2 {
		t.Errorf("Focus = %d, want 2", m.Focus)
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m = step(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.Focus != len(m.Fields)-1 {
		t.Errorf("Focus = %d, want wrap to %d", m.Focus, len(m.Fields)-1)
	}
}

func TestAppModel_EscapeCancels(t *testing.T) {
	m := newTestApp(t)

	m = step(t, m, runes("e"))
	m = step(t, m, runes("xyz"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.Fields[0].Widget.Editing() {
		t.Error("Escape should close the editor")
	}
	if got := m.Value("heading1"); got != "This is a Heading 1 element" {
		t.Errorf("Value(heading1) = %q, want unchanged", got)
	}
}

func TestAppModel_TextAreaEnterKeepsEditing(t *testing.T) {
	m := newTestApp(t)
	idx := -1
	for i, f := range m.Fields {
		if f.Def.IsTextArea() {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("no text area field in defaults")
	}

	m.Focus = idx
	m = step(t, m, runes("e"))
	m = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	f := m.Fields[idx]
	if !f.Widget.Editing() {
		t.Fatal("Enter must not confirm a text area")
	}
	if !strings.Contains(f.Widget.Buffer(), "\n") {
		t.Errorf("Buffer() = %q, want newline", f.Widget.Buffer())
	}
	if got := m.Value(f.Def.Name); got != f.Def.Text {
		t.Errorf("Value(%s) = %q, want unchanged until confirm", f.Def.Name, got)
	}
}

func TestAppModel_ClickAnotherFieldCommitsFirst(t *testing.T) {
	m := newTestApp(t)

	first := m.Fields[0].Widget.Bounds()
	m = step(t, m, clickAt(first.X, first.Y))
	if !m.Fields[0].Widget.Editing() {
		t.Fatal("click on text should open the editor")
	}
	m = step(t, m, runes("!"))

	// Layout moved, since the first field grew an options row
	third := m.Fields[2].Widget.Bounds()
	m = step(t, m, clickAt(third.X, third.Y))

	if m.Fields[0].Widget.Editing() {
		t.Error("first field should commit on the outside click")
	}
	if got := m.Value("heading1"); got != "This is a Heading 1 element!" {
		t.Errorf("Value(heading1) = %q, want committed edit", got)
	}
	if !m.Fields[2].Widget.Editing() {
		t.Error("third field should open after its text was clicked")
	}
	if m.Focus != 2 {
		t.Errorf("Focus = %d, want 2", m.Focus)
	}
}

func TestAppModel_ClickOnBlankAreaInDisplayIsNoop(t *testing.T) {
	m := newTestApp(t)

	m = step(t, m, clickAt(99, 0))

	for _, f := range m.Fields {
		if f.Widget.Editing() {
			t.Errorf("field %s opened on a blank click", f.Def.Name)
		}
	}
}

func TestAppModel_QuitUnmounts(t *testing.T) {
	m := newTestApp(t)

	updated, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}

	app := updated.(AppModel)
	for _, kind := range []input.Kind{input.KeyDown, input.KeyUp, input.PointerDown, input.TouchStart} {
		if got := app.Surface.Listeners(kind); got != 0 {
			t.Errorf("Listeners(%v) = %d after quit, want 0", kind, got)
		}
	}
}

func TestAppModel_HelpFollowsMode(t *testing.T) {
	m := newTestApp(t)
	if !strings.Contains(m.View(), "edit") {
		t.Error("navigation help should mention edit")
	}

	m = step(t, m, runes("e"))
	if !strings.Contains(m.View(), "cancel") {
		t.Error("editing help should mention cancel")
	}
}
