package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// System talks to the OS clipboard through helper tools (pbcopy, xclip,
// xsel, wl-copy) or the Win32 API.
type System struct{}

// SystemUnsupported reports whether no system clipboard helper was found.
func SystemUnsupported() bool { return clipboard.Unsupported }

func (System) ReadText() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnsupported
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("clipboard read failed: %w", err)
	}
	return s, nil
}

func (System) WriteText(s string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(s); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}
