package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

var (
	nativeOnce sync.Once
	nativeErr  error
)

// Native uses the platform clipboard API directly (Cocoa, Win32, X11).
// It needs cgo on darwin and linux.
type Native struct{}

func (*Native) init() error {
	nativeOnce.Do(func() {
		if err := clipboard.Init(); err != nil {
			nativeErr = fmt.Errorf("%w: %v", ErrUnsupported, err)
		}
	})
	return nativeErr
}

func (n *Native) ReadText() (string, error) {
	if err := n.init(); err != nil {
		return "", err
	}
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (n *Native) WriteText(s string) error {
	if err := n.init(); err != nil {
		return err
	}
	// The returned channel fires when another owner takes the clipboard.
	_ = clipboard.Write(clipboard.FmtText, []byte(s))
	return nil
}
