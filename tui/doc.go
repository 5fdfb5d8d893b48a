// Package tui provides a Bubble Tea view of a page's clipboard triggers.
//
// Triggers are listed in document order. Activating one clicks it, which runs
// the clipboard action through the delegate package; the outcome is shown in
// a status line. Page state from a cut stays selected until the next key.
package tui
