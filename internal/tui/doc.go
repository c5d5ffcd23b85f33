// Package tui implements the interactive terminal form for editing a
// store's billboard.
//
// The form is a Bubble Tea program. FormModel owns a billboard.Controller and
// forwards key presses to it; actions run as tea.Cmds so the spinner and the
// disabled input render while a request is in flight. The delete path goes
// through AlertModal, which only reports the user's choice back to the
// controller.
//
// Key bindings:
//   - enter / ctrl+s: save the label
//   - ctrl+d: open the delete confirmation
//   - esc / ctrl+c: quit
//
// After a successful delete the router moves to the root route and the
// program exits.
package tui
