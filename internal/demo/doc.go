// Package demo implements the inline edit demo page as a Bubble Tea program.
//
// The page is a column of inline-editable fields (headings, a paragraph, a
// span and two multi-line fields by default) bound to a map of local state.
// Confirmed values are written into the map and fed back into the widgets on
// the next layout pass, the same way a parent component re-renders its
// children with new props.
//
// # Input Flow
//
// Every message is first translated into surface events and dispatched, so
// each widget's key and outside-click watchers see it. The message is then
// routed:
//   - Mouse presses go to every widget, which hit-test their own text and
//     buttons
//   - Keys go to the field that was being edited, or drive focus navigation
//     when nothing is being edited
//   - Anything else (cursor blinks) goes to the editing field
//
// # Usage Example
//
//	app, err := demo.NewAppModel(config.DefaultFields())
//	if err != nil {
//	    return err
//	}
//	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
//	_, err = p.Run()
package demo
