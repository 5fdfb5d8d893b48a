package action

import (
	"errors"
	"fmt"
)

var (
	ErrMultipleSources  = errors.New(`multiple attributes declared, use either "target" or "text"`)
	ErrMissingSources   = errors.New(`missing required attributes, use either "target" or "text"`)
	ErrInvalidAction    = errors.New(`invalid "action" value, use either "copy" or "cut"`)
	ErrInvalidTarget    = errors.New(`invalid "target" value, use a valid Element`)
	ErrInvalidContainer = errors.New(`invalid "container" value, use an element attached to the document`)
	ErrMissingEmitter   = errors.New(`missing "emitter", events would be lost`)
	ErrMissingHost      = errors.New(`no host document, set "host" or use a target or container owned by a document`)
)

// ConfigError reports an invalid Config. Err is one of the Err* sentinels.
// Construction must not be retried with the same Config.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("action: %v (got %q)", e.Err, e.Value)
	}
	return "action: " + e.Err.Error()
}

func (e *ConfigError) Unwrap() error { return e.Err }
