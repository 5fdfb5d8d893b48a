// Package action implements the clipboard action: one copy or cut of a text
// selection, triggered by a user gesture.
//
// An action is built in two steps. NewPlan validates a Config without touching
// the page and returns an immutable Plan. Plan.Run selects the text (from a
// target element or from a temporary off-screen textarea), runs the host's
// clipboard command, emits "success" or "error" on the configured emitter,
// and releases the temporary element on every exit path.
//
// Configuration mistakes are returned as *ConfigError. A clipboard command the
// host refuses is not an error: it is reported through the "error" event.
package action
