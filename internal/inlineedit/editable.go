package inlineedit

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/inlineedit/internal/input"
	"github.com/muurk/inlineedit/internal/logging"
)

var (
	// ErrNoEditor is returned by New when the config has no render function.
	ErrNoEditor = errors.New("inlineedit: editor render function is required")
	// ErrNoSurface is returned by Mount when given a nil registrar.
	ErrNoSurface = errors.New("inlineedit: input surface is required")
	// ErrAlreadyMounted is returned by Mount on a mounted widget.
	ErrAlreadyMounted = errors.New("inlineedit: widget is already mounted")
)

// Mode is the widget's rendering state.
type Mode int

const (
	Display Mode = iota
	Edit
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Display:
		return "display"
	case Edit:
		return "edit"
	default:
		return "unknown"
	}
}

// Config configures one widget.
type Config struct {
	// Name identifies the widget in logs.
	Name string
	// InitialText is the committed text shown in Display mode.
	InitialText string
	// Editor builds the control shown in Edit mode.
	Editor EditorFactory
	// OnConfirm receives the final buffer on every confirm. Optional.
	OnConfirm func(value string)
	// TextStyle renders the Display mode text.
	TextStyle lipgloss.Style
	// Width is passed to the editor as a size hint.
	Width int
}

// Editable is an inline edit widget: static text that turns into an editor
// when clicked and back into text on confirm or cancel.
//
// Confirm paths: the Y button, Enter (single-line editors only) and any
// pointer-down or touch-start outside the widget. Cancel paths: the N button
// and Escape. Only confirm calls OnConfirm.
type Editable struct {
	cfg Config

	mode      Mode
	committed string
	buffer    string
	editor    Editor

	x       int
	y       int
	focused bool

	enter   *input.KeyWatcher
	escape  *input.KeyWatcher
	outside *input.OutsideWatcher
}

// New creates an unmounted widget in Display mode.
func New(cfg Config) (*Editable, error) {
	if cfg.Editor.Render == nil {
		return nil, ErrNoEditor
	}
	return &Editable{
		cfg:       cfg,
		mode:      Display,
		committed: cfg.InitialText,
	}, nil
}

// Mount subscribes the widget to r. Until Mount is called, keys and outside
// interactions have no effect.
func (e *Editable) Mount(r input.Registrar) error {
	if r == nil {
		return ErrNoSurface
	}
	if e.Mounted() {
		return ErrAlreadyMounted
	}

	e.enter = input.NewKeyWatcher(r, input.KeyEnter)
	e.enter.OnChange(e.handleEnter)
	e.escape = input.NewKeyWatcher(r, input.KeyEscape)
	e.escape.OnChange(e.handleEscape)
	e.outside = input.NewOutsideWatcher(r, e, e.handleOutside)
	return nil
}

// Unmount releases every listener the widget holds and drops any edit in
// progress without notifying.
func (e *Editable) Unmount() {
	if !e.Mounted() {
		return
	}
	e.enter.Close()
	e.escape.Close()
	e.outside.Close()
	e.enter, e.escape, e.outside = nil, nil, nil

	if e.mode == Edit {
		e.leaveEdit("unmount")
	}
}

// Mounted reports whether the widget is subscribed to an input surface
func (e *Editable) Mounted() bool {
	return e.outside != nil
}

// Mode returns the current mode
func (e *Editable) Mode() Mode {
	return e.mode
}

// Editing reports whether the widget is in Edit mode
func (e *Editable) Editing() bool {
	return e.mode == Edit
}

// Text returns the committed text
func (e *Editable) Text() string {
	return e.committed
}

// Buffer returns the in-progress edit value. Only meaningful in Edit mode.
func (e *Editable) Buffer() string {
	return e.buffer
}

// Kind returns the kind of editor this widget opens
func (e *Editable) Kind() EditorKind {
	return e.cfg.Editor.Kind
}

// SetText replaces the committed text. An edit in progress keeps its buffer.
func (e *Editable) SetText(text string) {
	e.committed = text
}

// SetFocused marks the widget as the host's keyboard focus target.
func (e *Editable) SetFocused(focused bool) {
	e.focused = focused
}

// SetPosition tells the widget where its top-left cell is drawn. Hit tests
// use it, so hosts must call it whenever the layout moves.
func (e *Editable) SetPosition(x, y int) {
	e.x = x
	e.y = y
}

// Activate switches to Edit mode with the buffer seeded from the committed
// text. It returns the editor's focus command.
func (e *Editable) Activate() tea.Cmd {
	return e.activate("activate")
}

// Confirm commits the buffer and notifies OnConfirm. No-op outside Edit mode.
func (e *Editable) Confirm() {
	if e.mode == Edit {
		e.confirm("confirm")
	}
}

// Cancel discards the buffer. No-op outside Edit mode.
func (e *Editable) Cancel() {
	if e.mode == Edit {
		e.cancel("cancel")
	}
}

// Update handles clicks on the text and option buttons and forwards
// everything else to the editor while editing.
func (e *Editable) Update(msg tea.Msg) tea.Cmd {
	if mouse, ok := msg.(tea.MouseMsg); ok && isPrimaryPress(mouse) {
		p := input.Point{X: mouse.X, Y: mouse.Y}
		switch e.mode {
		case Display:
			if e.textRect().Contains(p) {
				return e.activate("click")
			}
			return nil
		case Edit:
			confirm, cancel := e.buttonRects()
			if confirm.Contains(p) {
				e.confirm("button")
				return nil
			}
			if cancel.Contains(p) {
				e.cancel("button")
				return nil
			}
		}
	}

	if e.mode == Edit && e.editor != nil {
		return e.editor.Update(msg)
	}
	return nil
}

// View renders the widget
func (e *Editable) View() string {
	if e.mode == Edit && e.editor != nil {
		return lipgloss.JoinVertical(lipgloss.Left, e.editor.View(), renderOptions())
	}
	return e.renderText()
}

// Bounds returns the cells the widget currently covers.
func (e *Editable) Bounds() input.Rect {
	view := e.View()
	return input.Rect{
		X:      e.x,
		Y:      e.y,
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
	}
}

// Contains reports whether p is inside the widget. It makes the widget its own
// region for outside-interaction detection.
func (e *Editable) Contains(p input.Point) bool {
	return e.Bounds().Contains(p)
}

func (e *Editable) handleEnter(pressed bool) {
	if !pressed || e.mode != Edit {
		return
	}
	// Enter belongs to the editor for newlines
	if e.cfg.Editor.Kind == MultiLine {
		return
	}
	e.confirm("enter")
}

func (e *Editable) handleEscape(pressed bool) {
	if pressed && e.mode == Edit {
		e.cancel("escape")
	}
}

func (e *Editable) handleOutside() {
	if e.mode == Edit {
		e.confirm("outside")
	}
}

func (e *Editable) activate(trigger string) tea.Cmd {
	if e.mode == Edit {
		return nil
	}

	e.buffer = e.committed
	editor := e.cfg.Editor.Render(EditorProps{
		Value:    e.buffer,
		OnChange: e.setBuffer,
		Focus:    true,
		Width:    e.cfg.Width,
	})
	if editor == nil {
		logging.Warn("Editor render function returned nil; staying in display mode")
		return nil
	}

	e.editor = editor
	e.mode = Edit
	logging.LogTransition(e.cfg.Name, Display.String(), Edit.String(), trigger)
	return e.editor.Focus()
}

func (e *Editable) setBuffer(value string) {
	if e.mode == Edit {
		e.buffer = value
	}
}

func (e *Editable) confirm(trigger string) {
	value := e.buffer
	e.committed = value
	e.leaveEdit(trigger)

	logging.LogConfirm(e.cfg.Name, value)
	if e.cfg.OnConfirm != nil {
		e.cfg.OnConfirm(value)
	}
}

func (e *Editable) cancel(trigger string) {
	e.leaveEdit(trigger)
}

func (e *Editable) leaveEdit(trigger string) {
	if e.editor != nil {
		e.editor.Blur()
	}
	e.editor = nil
	e.buffer = e.committed
	e.mode = Display
	logging.LogTransition(e.cfg.Name, Edit.String(), Display.String(), trigger)
}

func (e *Editable) renderText() string {
	if e.committed == "" {
		return EmptyTextStyle.Render(EmptyText)
	}
	style := e.cfg.TextStyle
	if e.focused {
		style = style.Underline(true)
	}
	return style.Render(e.committed)
}

func (e *Editable) textRect() input.Rect {
	view := e.renderText()
	return input.Rect{
		X:      e.x,
		Y:      e.y,
		Width:  lipgloss.Width(view),
		Height: lipgloss.Height(view),
	}
}

func (e *Editable) buttonRects() (confirm, cancel input.Rect) {
	if e.editor == nil {
		return input.Rect{}, input.Rect{}
	}
	row := e.y + lipgloss.Height(e.editor.View())
	confirmWidth := lipgloss.Width(renderConfirmButton())
	confirm = input.Rect{X: e.x, Y: row, Width: confirmWidth, Height: 1}
	cancel = input.Rect{
		X:      e.x + confirmWidth + lipgloss.Width(OptionsGap),
		Y:      row,
		Width:  lipgloss.Width(renderCancelButton()),
		Height: 1,
	}
	return confirm, cancel
}

func renderOptions() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, renderConfirmButton(), OptionsGap, renderCancelButton())
}

func isPrimaryPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
