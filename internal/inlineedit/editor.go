package inlineedit

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// EditorKind tells the widget what kind of control an editor factory produces.
type EditorKind int

const (
	// SingleLine editors confirm on Enter.
	SingleLine EditorKind = iota
	// MultiLine editors keep Enter for newlines; only the confirm button or an
	// outside interaction commits them.
	MultiLine
)

// String returns the kind name
func (k EditorKind) String() string {
	switch k {
	case SingleLine:
		return "single-line"
	case MultiLine:
		return "multi-line"
	default:
		return "unknown"
	}
}

// EditorProps is what the widget hands to an editor factory when editing
// starts.
type EditorProps struct {
	// Value is the current buffer, seeded from the committed text.
	Value string
	// OnChange must be called with the new value whenever the user edits it.
	OnChange func(value string)
	// Focus asks the editor to take keyboard focus.
	Focus bool
	// Width is a suggested width in cells. Zero means no preference.
	Width int
}

// Editor is the control shown in Edit mode. It lives for one edit session.
type Editor interface {
	Update(msg tea.Msg) tea.Cmd
	View() string
	// Focus returns the command that starts cursor blinking, if any.
	Focus() tea.Cmd
	Blur()
}

// EditorFactory pairs the render function with the kind of control it makes.
type EditorFactory struct {
	Kind   EditorKind
	Render func(props EditorProps) Editor
}

// TextInputOption customizes the textinput editor
type TextInputOption func(*textinput.Model)

// WithCharLimit limits the number of characters the input accepts.
func WithCharLimit(n int) TextInputOption {
	return func(m *textinput.Model) {
		m.CharLimit = n
	}
}

// WithPlaceholder sets the text shown while the input is empty.
func WithPlaceholder(s string) TextInputOption {
	return func(m *textinput.Model) {
		m.Placeholder = s
	}
}

// TextInput returns a single-line editor factory backed by bubbles/textinput.
func TextInput(opts ...TextInputOption) EditorFactory {
	return EditorFactory{
		Kind: SingleLine,
		Render: func(props EditorProps) Editor {
			input := textinput.New()
			input.Prompt = ""
			input.CharLimit = 0
			input.TextStyle = EditorTextStyle
			input.Cursor.Style = EditorCursorStyle
			if props.Width > 0 {
				input.Width = props.Width
			}
			for _, opt := range opts {
				opt(&input)
			}
			input.SetValue(props.Value)

			e := &textInputEditor{model: input, onChange: props.OnChange}
			if props.Focus {
				e.model.Focus()
			}
			return e
		},
	}
}

// TextArea returns a multi-line editor factory backed by bubbles/textarea,
// sized to rows x cols.
func TextArea(rows, cols int) EditorFactory {
	return EditorFactory{
		Kind: MultiLine,
		Render: func(props EditorProps) Editor {
			area := textarea.New()
			area.ShowLineNumbers = false
			area.Prompt = ""
			area.CharLimit = 0
			area.SetHeight(rows)
			width := cols
			if width <= 0 {
				width = props.Width
			}
			if width > 0 {
				area.SetWidth(width)
			}
			area.SetValue(props.Value)

			e := &textAreaEditor{model: area, onChange: props.OnChange}
			if props.Focus {
				e.model.Focus()
			}
			return e
		},
	}
}

type textInputEditor struct {
	model    textinput.Model
	onChange func(string)
}

func (e *textInputEditor) Update(msg tea.Msg) tea.Cmd {
	before := e.model.Value()
	var cmd tea.Cmd
	e.model, cmd = e.model.Update(msg)
	if after := e.model.Value(); after != before && e.onChange != nil {
		e.onChange(after)
	}
	return cmd
}

func (e *textInputEditor) View() string {
	return e.model.View()
}

func (e *textInputEditor) Focus() tea.Cmd {
	cmd := e.model.Focus()
	if cmd == nil {
		cmd = textinput.Blink
	}
	return cmd
}

func (e *textInputEditor) Blur() {
	e.model.Blur()
}

type textAreaEditor struct {
	model    textarea.Model
	onChange func(string)
}

func (e *textAreaEditor) Update(msg tea.Msg) tea.Cmd {
	before := e.model.Value()
	var cmd tea.Cmd
	e.model, cmd = e.model.Update(msg)
	if after := e.model.Value(); after != before && e.onChange != nil {
		e.onChange(after)
	}
	return cmd
}

func (e *textAreaEditor) View() string {
	return e.model.View()
}

func (e *textAreaEditor) Focus() tea.Cmd {
	cmd := e.model.Focus()
	if cmd == nil {
		cmd = textarea.Blink
	}
	return cmd
}

func (e *textAreaEditor) Blur() {
	e.model.Blur()
}
