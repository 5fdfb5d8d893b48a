package action

import (
	"log/slog"

	"github.com/iw2rmb/clipact/dom"
)

// Emitter receives the outcome of an action.
type Emitter interface {
	Emit(name string, payload any)
}

// Config describes one clipboard action. Exactly one of Target and Text must
// be set.
type Config struct {
	// Action is "copy" or "cut" in any letter case. Empty means copy.
	Action string

	// Target is the element whose value or text content is selected. A nil
	// interface means unset; anything that is not a live *dom.Element (a typed
	// nil, a text node, an element with no document) is invalid.
	Target dom.Node

	// Text is selected through a temporary textarea. Empty means unset.
	Text string

	// Container receives the temporary textarea. Defaults to the host body.
	Container *dom.Element

	// Emitter receives "success" and "error". Required.
	Emitter Emitter

	// Trigger is the control the user activated. It is echoed in events and
	// regains focus when the selection is cleared.
	Trigger *dom.Element

	// Host defaults to the document owning Target or Container.
	Host Host

	Logger *slog.Logger
}
