package dom

import "strings"

// Clipboard command names understood by ExecCommand.
const (
	CommandCopy = "copy"
	CommandCut  = "cut"
)

// QueryCommandSupported reports whether ExecCommand can run cmd.
func (d *Document) QueryCommandSupported(cmd string) bool {
	switch strings.ToLower(cmd) {
	case CommandCopy, CommandCut:
		return d.clip != nil
	}
	return false
}

// ExecCommand runs a clipboard command against the current selection and
// reports whether it was honored.
//
// copy writes the selected text to the clipboard. cut does the same and then
// deletes the selection from the form control holding it unless that control
// is read-only or disabled. A missing clipboard, a failed write, or an
// unknown command yields false.
func (d *Document) ExecCommand(cmd string) bool {
	cmd = strings.ToLower(cmd)
	if cmd != CommandCopy && cmd != CommandCut {
		return false
	}
	if d.clip == nil {
		return false
	}

	text := d.sel.String()
	if err := d.clip.WriteText(text); err != nil {
		return false
	}

	if cmd == CommandCut {
		if c := d.sel.Control(); c != nil && !c.ReadOnly() && !c.HasAttr("disabled") {
			c.deleteSelectedValue()
		}
	}
	return true
}
