package dom

import (
	"testing"

	"github.com/iw2rmb/clipact/clipboard"
)

func newTestDoc(t *testing.T) (*Document, *Element, *Element) {
	t.Helper()
	d := New(Options{Clipboard: &clipboard.Memory{}})

	input := d.CreateElement("input")
	input.SetAttr("id", "input")
	input.SetValue("abc")
	d.Body().AppendChild(input)

	p := d.CreateElement("p")
	p.SetAttr("id", "paragraph")
	p.SetText("abc")
	d.Body().AppendChild(p)

	return d, input, p
}

func TestDocument_GetElementByID_OnlyConnected(t *testing.T) {
	d, input, _ := newTestDoc(t)
	if got := d.GetElementByID("input"); got != input {
		t.Fatalf("by id: got %p, want %p", got, input)
	}

	input.Remove()
	if got := d.GetElementByID("input"); got != nil {
		t.Fatalf("by id after remove: got %p, want nil", got)
	}
	if input.IsConnected() {
		t.Fatalf("removed element reports connected")
	}

	// Removing twice is a no-op.
	input.Remove()
}

func TestDocument_FocusAndBlur(t *testing.T) {
	d, input, p := newTestDoc(t)
	if got := d.ActiveElement(); got != d.Body() {
		t.Fatalf("initial active: got <%s>, want body", got.Tag())
	}

	if !d.Focus(input) {
		t.Fatalf("focus input: expected success")
	}
	if got := d.ActiveElement(); got != input {
		t.Fatalf("active after focus: got <%s>, want input", got.Tag())
	}

	if d.Focus(p) {
		t.Fatalf("focus paragraph: expected failure, paragraphs are not focusable")
	}
	if got := d.ActiveElement(); got != input {
		t.Fatalf("active after failed focus: got <%s>, want input", got.Tag())
	}

	d.Blur()
	if got := d.ActiveElement(); got != d.Body() {
		t.Fatalf("active after blur: got <%s>, want body", got.Tag())
	}
}

func TestDocument_RemovingFocusedSubtreeResetsFocus(t *testing.T) {
	d, input, _ := newTestDoc(t)
	d.Focus(input)
	input.Remove()
	if got := d.ActiveElement(); got != d.Body() {
		t.Fatalf("active after remove: got <%s>, want body", got.Tag())
	}
}

func TestDocument_VersionBumpsOnlyOnChange(t *testing.T) {
	d, input, _ := newTestDoc(t)
	v := d.Version()

	input.SetValue("abc")
	if d.Version() != v {
		t.Fatalf("version after same value: got %d, want %d", d.Version(), v)
	}

	d.Focus(input)
	if d.Version() != v+1 {
		t.Fatalf("version after focus: got %d, want %d", d.Version(), v+1)
	}
	d.Focus(input)
	if d.Version() != v+1 {
		t.Fatalf("version after repeated focus: got %d, want %d", d.Version(), v+1)
	}
}

func TestDocument_Dir(t *testing.T) {
	if got := New(Options{}).Dir(); got != "ltr" {
		t.Fatalf("default dir: got %q, want ltr", got)
	}
	if got := New(Options{Dir: "RTL"}).Dir(); got != "rtl" {
		t.Fatalf("rtl dir: got %q, want rtl", got)
	}
}

func TestElement_AppendChildMovesAndRejectsCycles(t *testing.T) {
	d := New(Options{})
	a := d.CreateElement("div")
	b := d.CreateElement("div")
	d.Body().AppendChild(a)
	a.AppendChild(b)

	b.AppendChild(a)
	if a.Parent() != d.Body() {
		t.Fatalf("cycle append moved ancestor")
	}

	d.Body().AppendChild(b)
	if b.Parent() != d.Body() || len(a.Children()) != 0 {
		t.Fatalf("append did not move child")
	}
}

func TestElement_TextContentConcatenatesDescendants(t *testing.T) {
	d := New(Options{})
	div := d.CreateElement("div")
	div.AppendText("a")
	span := d.CreateElement("span")
	span.SetText("b")
	div.AppendChild(span)
	div.AppendText("c")

	if got := div.TextContent(); got != "abc" {
		t.Fatalf("text content: got %q, want %q", got, "abc")
	}

	div.SetText("")
	if got := div.TextContent(); got != "" || len(div.Children()) != 0 {
		t.Fatalf("text content after clear: got %q with %d children", got, len(div.Children()))
	}
}
