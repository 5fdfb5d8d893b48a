package dom

import (
	"strings"

	"github.com/iw2rmb/clipact/clipboard"
)

// Options configures a Document.
type Options struct {
	// Clipboard receives copy/cut output. Without it ExecCommand fails.
	Clipboard clipboard.Clipboard

	// Dir is the text direction of the root element ("ltr" or "rtl").
	Dir string
}

// Document is a page: a root element holding a body, the focused element,
// the document selection, and the scroll position.
//
// A Document is not safe for concurrent use.
type Document struct {
	root *Element
	body *Element

	active *Element
	sel    Selection

	scrollTop int
	clip      clipboard.Clipboard

	version uint64
}

func New(opt Options) *Document {
	d := &Document{clip: opt.Clipboard}
	d.root = d.CreateElement("html")
	d.body = d.CreateElement("body")
	d.root.AppendChild(d.body)
	if opt.Dir != "" {
		d.root.SetAttr("dir", opt.Dir)
	}
	d.sel.doc = d
	d.version = 0
	return d
}

// Version increments on every observable change: tree, attributes, values,
// focus, and selection.
func (d *Document) Version() uint64 { return d.version }

func (d *Document) touch() {
	if d != nil {
		d.version++
	}
}

func (d *Document) Root() *Element { return d.root }
func (d *Document) Body() *Element { return d.body }

// Clipboard returns the sink used by ExecCommand.
func (d *Document) Clipboard() clipboard.Clipboard { return d.clip }

func (d *Document) SetClipboard(c clipboard.Clipboard) { d.clip = c }

// Dir returns the root element's text direction, defaulting to "ltr".
func (d *Document) Dir() string {
	if v, ok := d.root.Attr("dir"); ok && strings.EqualFold(v, "rtl") {
		return "rtl"
	}
	return "ltr"
}

func (d *Document) ScrollTop() int { return d.scrollTop }

func (d *Document) SetScrollTop(y int) {
	if y < 0 {
		y = 0
	}
	if y == d.scrollTop {
		return
	}
	d.scrollTop = y
	d.touch()
}

// CreateElement returns a detached element owned by d.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{
		doc:   d,
		tag:   strings.ToLower(tag),
		attrs: map[string]string{},
		style: map[string]string{},
	}
}

// GetElementByID returns the first connected element with the given id.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	d.walk(d.root, func(e *Element) bool {
		if e.attrs["id"] == id {
			found = e
			return false
		}
		return true
	})
	return found
}

// walk visits connected elements in document order until fn returns false.
func (d *Document) walk(e *Element, fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			if !d.walk(el, fn) {
				return false
			}
		}
	}
	return true
}

// ActiveElement returns the focused element, or the body when nothing is
// focused.
func (d *Document) ActiveElement() *Element {
	if d.active == nil || !d.active.IsConnected() {
		return d.body
	}
	return d.active
}

// Focus moves focus to e if it is connected and focusable. It reports
// whether focus moved to e.
func (d *Document) Focus(e *Element) bool {
	if e == nil || e.doc != d || !e.IsConnected() || !e.Focusable() {
		return false
	}
	if e == d.body {
		e = nil
	}
	if d.active == e {
		return true
	}
	if e != nil && e != d.sel.control {
		d.sel.control = nil
	}
	d.active = e
	d.touch()
	return true
}

// Blur returns focus to the body.
func (d *Document) Blur() {
	if d.active == nil {
		return
	}
	d.active = nil
	d.touch()
}

// Focusable reports whether e can hold focus.
func (e *Element) Focusable() bool {
	if e.HasAttr("disabled") {
		return false
	}
	switch e.tag {
	case "body", "button", "select":
		return true
	case "a":
		return e.HasAttr("href")
	}
	if e.IsFormControl() {
		return true
	}
	return e.HasAttr("tabindex")
}

// forget drops focus and selection references into a subtree that was just
// detached.
func (d *Document) forget(e *Element) {
	if d.active != nil && e.Contains(d.active) {
		d.active = nil
	}
	if d.sel.node != nil && e.Contains(d.sel.node) {
		d.sel.node = nil
	}
	if d.sel.control != nil && e.Contains(d.sel.control) {
		d.sel.control = nil
	}
}
