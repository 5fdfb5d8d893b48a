package action

import "github.com/iw2rmb/clipact/dom"

// Event names emitted by an action.
const (
	EventSuccess = "success"
	EventError   = "error"
)

// SuccessEvent is the "success" payload.
type SuccessEvent struct {
	Action  Mode
	Text    string
	Trigger *dom.Element
	Handle  *Handle
}

// ErrorEvent is the "error" payload. Nothing is guaranteed to have reached
// the clipboard, so it carries no text; users should copy manually.
type ErrorEvent struct {
	Action  Mode
	Trigger *dom.Element
	Handle  *Handle
}

// Handle lets a listener decide when the action's page state is torn down,
// for example to keep a cut selection visible until feedback is shown.
// All methods are idempotent and safe on a nil Handle.
type Handle struct {
	a *Action
}

// ClearSelection empties the selection and returns focus to the body. When
// the action has a Trigger that is still attached and focusable, focus moves
// to the trigger instead, and the body ends up active only when there is no
// such trigger.
func (h *Handle) ClearSelection() {
	if h == nil || h.a == nil {
		return
	}
	h.a.ClearSelection()
}

// Release runs ClearSelection and removes the temporary element.
func (h *Handle) Release() {
	if h == nil || h.a == nil {
		return
	}
	h.a.ClearSelection()
	h.a.RemoveFake()
}
