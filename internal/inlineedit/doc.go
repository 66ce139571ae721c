// Package inlineedit implements an inline edit widget for Bubble Tea
// programs: a line of text that turns into an editor when clicked.
//
// The widget has two modes. In Display mode it renders its committed text.
// Clicking the text (or calling Activate) opens the editor produced by the
// configured EditorFactory, seeded with the committed text, together with a
// confirm [Y] and a cancel [N] button.
//
// While editing:
//   - [Y], Enter, or a click/touch outside the widget commits the buffer and
//     calls OnConfirm
//   - [N] or Escape discards the buffer without calling OnConfirm
//   - Enter is left to the editor when the factory is MultiLine
//
// Treating a click outside as a confirm rather than a cancel is deliberate.
//
// Keys and outside clicks arrive through an input.Surface the widget is
// mounted on. Hosts translate every tea.Msg with input.Translate, dispatch the
// events, then pass the message to the widget's Update:
//
//	surface := input.NewSurface()
//	w, _ := inlineedit.New(inlineedit.Config{
//	    InitialText: "Default Text",
//	    Editor:      inlineedit.TextInput(),
//	    OnConfirm:   func(v string) { state.Title = v },
//	})
//	_ = w.Mount(surface)
//	defer w.Unmount()
package inlineedit
