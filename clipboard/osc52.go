package clipboard

import (
	"fmt"
	"io"

	"github.com/charmbracelet/x/ansi"
)

// OSC52 asks the terminal emulator to set its system clipboard. It works
// over SSH and inside multiplexers that forward the sequence.
//
// Reading is not supported: terminals answer asynchronously on stdin.
type OSC52 struct {
	w io.Writer
}

func NewOSC52(w io.Writer) *OSC52 { return &OSC52{w: w} }

func (o *OSC52) ReadText() (string, error) { return "", ErrUnsupported }

func (o *OSC52) WriteText(s string) error {
	seq := ansi.SetSystemClipboard(s)
	if _, err := io.WriteString(o.w, seq); err != nil {
		return fmt.Errorf("osc52 write failed: %w", err)
	}
	return nil
}
