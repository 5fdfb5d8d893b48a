package dom

import (
	"errors"
	"testing"

	"github.com/iw2rmb/clipact/clipboard"
)

type failingClipboard struct{}

func (failingClipboard) ReadText() (string, error) { return "", errors.New("denied") }
func (failingClipboard) WriteText(string) error    { return errors.New("denied") }

func TestExecCommand_CopyWritesSelection(t *testing.T) {
	d, _, p := newTestDoc(t)
	mem := d.Clipboard().(*clipboard.Memory)

	d.Selection().SelectNodeContents(p)
	if !d.ExecCommand("copy") {
		t.Fatalf("copy: expected success")
	}
	if got, _ := mem.ReadText(); got != "abc" {
		t.Fatalf("clipboard after copy: got %q, want %q", got, "abc")
	}
	if got := p.TextContent(); got != "abc" {
		t.Fatalf("source after copy: got %q, want unchanged", got)
	}
}

func TestExecCommand_CutRemovesEditableSelection(t *testing.T) {
	d, input, _ := newTestDoc(t)
	mem := d.Clipboard().(*clipboard.Memory)

	d.Focus(input)
	input.SetSelectionRange(1, 3)
	if !d.ExecCommand("CUT") {
		t.Fatalf("cut: expected success")
	}
	if got, _ := mem.ReadText(); got != "bc" {
		t.Fatalf("clipboard after cut: got %q, want %q", got, "bc")
	}
	if got := input.Value(); got != "a" {
		t.Fatalf("value after cut: got %q, want %q", got, "a")
	}
}

func TestExecCommand_CutKeepsReadOnlyValue(t *testing.T) {
	d, input, _ := newTestDoc(t)
	input.SetAttr("readonly", "")
	d.Focus(input)
	input.Select()

	if !d.ExecCommand("cut") {
		t.Fatalf("cut: expected success")
	}
	if got := input.Value(); got != "abc" {
		t.Fatalf("read-only value after cut: got %q, want %q", got, "abc")
	}
}

func TestExecCommand_Failures(t *testing.T) {
	d, _, p := newTestDoc(t)
	d.Selection().SelectNodeContents(p)

	if d.ExecCommand("paste") {
		t.Fatalf("paste: expected failure")
	}

	d.SetClipboard(failingClipboard{})
	if d.ExecCommand("copy") {
		t.Fatalf("copy with failing clipboard: expected failure")
	}

	d.SetClipboard(nil)
	if d.ExecCommand("copy") {
		t.Fatalf("copy without clipboard: expected failure")
	}
	if d.QueryCommandSupported("copy") {
		t.Fatalf("copy supported without clipboard")
	}
}

func TestQueryCommandSupported(t *testing.T) {
	d := New(Options{Clipboard: &clipboard.Memory{}})
	cases := []struct {
		cmd  string
		want bool
	}{
		{cmd: "copy", want: true},
		{cmd: "Cut", want: true},
		{cmd: "paste", want: false},
		{cmd: "", want: false},
	}
	for _, tc := range cases {
		if got := d.QueryCommandSupported(tc.cmd); got != tc.want {
			t.Fatalf("QueryCommandSupported(%q): got %v, want %v", tc.cmd, got, tc.want)
		}
	}
}

func TestExecCommand_CutKeepsDisabledValue(t *testing.T) {
	d, input, _ := newTestDoc(t)
	mem := d.Clipboard().(*clipboard.Memory)
	input.SetAttr("disabled", "")
	input.Select()
	d.Selection().SelectControl(input)

	if !d.ExecCommand("cut") {
		t.Fatalf("cut: expected success")
	}
	if got, _ := mem.ReadText(); got != "abc" {
		t.Fatalf("clipboard after cut: got %q, want %q", got, "abc")
	}
	if got := input.Value(); got != "abc" {
		t.Fatalf("disabled value after cut: got %q, want %q", got, "abc")
	}
}
