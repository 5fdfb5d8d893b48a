package action

import "strings"

// Mode is the clipboard command an action runs.
type Mode string

const (
	Copy Mode = "copy"
	Cut  Mode = "cut"
)

// ParseMode lower-cases s and validates it. Empty input means Copy.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return Copy, nil
	}
	switch m := Mode(strings.ToLower(s)); m {
	case Copy, Cut:
		return m, nil
	}
	return "", &ConfigError{Field: "action", Value: s, Err: ErrInvalidAction}
}

func (m Mode) String() string { return string(m) }
