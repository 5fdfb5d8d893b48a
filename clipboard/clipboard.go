// Package clipboard provides the system clipboard sinks that back the
// document's copy/cut command.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnsupported is returned when a backend cannot reach a clipboard on this
// platform (no display, missing helper binaries, no cgo).
var ErrUnsupported = errors.New("clipboard: unsupported on this platform")

// Clipboard is a plain-text clipboard.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Backend names accepted by Open.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendNative = "native"
	BackendOSC52  = "osc52"
	BackendMemory = "memory"
)

// Open returns the backend named by kind. w receives OSC 52 sequences and is
// only used by the osc52 backend.
//
// auto prefers the system clipboard and falls back to OSC 52 when the system
// clipboard is unsupported and w is set.
func Open(kind string, w io.Writer) (Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case BackendAuto, "":
		if !SystemUnsupported() {
			return System{}, nil
		}
		if w != nil {
			return NewOSC52(w), nil
		}
		return nil, ErrUnsupported
	case BackendSystem:
		if SystemUnsupported() {
			return nil, ErrUnsupported
		}
		return System{}, nil
	case BackendNative:
		n := &Native{}
		if err := n.init(); err != nil {
			return nil, err
		}
		return n, nil
	case BackendOSC52:
		if w == nil {
			return nil, fmt.Errorf("clipboard: osc52 backend needs an output writer")
		}
		return NewOSC52(w), nil
	case BackendMemory:
		return &Memory{}, nil
	default:
		return nil, fmt.Errorf("clipboard: unknown backend %q", kind)
	}
}
