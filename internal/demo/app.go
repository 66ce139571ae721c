package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/muurk/inlineedit/internal/config"
	"github.com/muurk/inlineedit/internal/inlineedit"
	"github.com/muurk/inlineedit/internal/input"
	"github.com/muurk/inlineedit/internal/logging"
)

// Field is one inline-editable value on the page
type Field struct {
	Def    *config.Field
	Widget *inlineedit.Editable

	// Row of the widget's first line, set by layout
	top int
}

// AppModel is the demo page. It owns the page state the widgets edit and the
// shared input surface they are mounted on.
type AppModel struct {
	Fields []*Field
	// State is the authoritative value of every field, keyed by field name.
	// Widgets only report confirmed values into it.
	State map[string]string
	Focus int

	Surface *input.Surface

	// UI state
	Width  int
	Height int

	Help help.Model
	Keys keyMap

	headerHeight int
}

// NewAppModel builds the page from a field file and mounts every widget.
func NewAppModel(file *config.FieldFile) (AppModel, error) {
	width, height := GetTerminalSize()
	h := help.New()
	h.Width = width

	m := AppModel{
		State:   make(map[string]string, len(file.Fields)),
		Surface: input.NewSurface(),
		Width:   width,
		Height:  height,
		Help:    h,
		Keys:    newKeyMap(),
	}

	for _, def := range file.Fields {
		field, err := m.newField(def)
		if err != nil {
			m.Close()
			return AppModel{}, err
		}
		m.Fields = append(m.Fields, field)
	}

	m.layout()
	return m, nil
}

func (m AppModel) newField(def *config.Field) (*Field, error) {
	factory := inlineedit.TextInput()
	if def.IsTextArea() {
		factory = inlineedit.TextArea(def.Rows, def.Cols)
	}

	state := m.State
	name := def.Name
	state[name] = def.Text

	widget, err := inlineedit.New(inlineedit.Config{
		Name:        name,
		InitialText: def.Text,
		Editor:      factory,
		TextStyle:   ElementStyle(def.Element),
		OnConfirm: func(value string) {
			state[name] = value
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create field %q: %w", name, err)
	}
	if err := widget.Mount(m.Surface); err != nil {
		return nil, fmt.Errorf("failed to mount field %q: %w", name, err)
	}

	logging.Debug("Field mounted",
		zap.String("name", name),
		zap.String("element", def.Element),
		zap.String("editor", factory.Kind.String()),
	)
	return &Field{Def: def, Widget: widget}, nil
}

// Close unmounts every widget. The model must not be used afterwards.
func (m AppModel) Close() {
	for _, f := range m.Fields {
		f.Widget.Unmount()
	}
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Every message first goes through the input
// surface, so outside clicks and Enter/Escape reach the watchers before any
// widget sees the message.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ForceQuit) {
			return m.quit()
		}
	}

	editing := m.editingIndex()

	for _, ev := range input.Translate(msg) {
		m.Surface.Dispatch(ev)
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.MouseMsg:
		for i, f := range m.Fields {
			wasEditing := f.Widget.Editing()
			cmds = append(cmds, f.Widget.Update(msg))
			if !wasEditing && f.Widget.Editing() {
				m.Focus = i
			}
		}

	case tea.KeyMsg:
		// While a field was being edited the key belongs to it, even if the
		// surface dispatch above just closed the editor.
		if editing >= 0 {
			cmds = append(cmds, m.Fields[editing].Widget.Update(msg))
			break
		}
		switch {
		case key.Matches(msg, m.Keys.Quit):
			return m.quit()
		case key.Matches(msg, m.Keys.Up):
			m.moveFocus(-1)
		case key.Matches(msg, m.Keys.Down):
			m.moveFocus(1)
		case key.Matches(msg, m.Keys.Edit):
			if f := m.focused(); f != nil {
				cmds = append(cmds, f.Widget.Activate())
			}
		}

	default:
		// Cursor blinks and other editor messages
		for _, f := range m.Fields {
			if f.Widget.Editing() {
				cmds = append(cmds, f.Widget.Update(msg))
			}
		}
	}

	m.layout()
	return m, tea.Batch(cmds...)
}

// View implements tea.Model
func (m AppModel) View() string {
	lines := strings.Split(RenderHeader(), "\n")
	indent := strings.Repeat(" ", ContentIndent)

	for i, f := range m.Fields {
		for len(lines) < f.top {
			lines = append(lines, "")
		}
		for j, line := range strings.Split(f.Widget.View(), "\n") {
			prefix := indent
			if j == 0 && i == m.Focus {
				prefix = FocusMarker + strings.Repeat(" ", ContentIndent-lipgloss.Width(FocusMarker))
			}
			lines = append(lines, prefix+line)
		}
	}

	lines = append(lines, "", HelpStyle.Render(m.helpView()))
	return strings.Join(lines, "\n")
}

// Value returns the confirmed value of a field
func (m AppModel) Value(name string) string {
	return m.State[name]
}

// layout hands every widget its position for the next frame and feeds the
// page state back into the widgets, the way a parent re-renders its children.
func (m *AppModel) layout() {
	m.headerHeight = lipgloss.Height(RenderHeader())
	row := m.headerHeight + 1

	for i, f := range m.Fields {
		row += f.Def.Section
		f.Widget.SetText(m.State[f.Def.Name])
		f.Widget.SetFocused(i == m.Focus)
		f.Widget.SetPosition(ContentIndent, row)
		f.top = row
		row += lipgloss.Height(f.Widget.View()) + 1
	}
}

func (m *AppModel) moveFocus(delta int) {
	if len(m.Fields) == 0 {
		return
	}
	m.Focus = (m.Focus + delta + len(m.Fields)) % len(m.Fields)
}

func (m AppModel) focused() *Field {
	if m.Focus < 0 || m.Focus >= len(m.Fields) {
		return nil
	}
	return m.Fields[m.Focus]
}

func (m AppModel) editingIndex() int {
	for i, f := range m.Fields {
		if f.Widget.Editing() {
			return i
		}
	}
	return -1
}

func (m AppModel) helpView() string {
	if i := m.editingIndex(); i >= 0 {
		multi := m.Fields[i].Widget.Kind() == inlineedit.MultiLine
		return m.Help.View(newEditKeyMap(multi))
	}
	return m.Help.View(m.Keys)
}

func (m AppModel) quit() (tea.Model, tea.Cmd) {
	m.Close()
	logging.Info("Demo closed", zap.Any("state", m.State))
	return m, tea.Quit
}
