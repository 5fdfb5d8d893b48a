package dom

import (
	"sort"
	"strings"
)

// Node is anything that can be placed in the tree: an *Element or a *Text.
type Node interface {
	Parent() *Element
	TextContent() string

	setParent(p *Element)
}

// Text is a text node.
type Text struct {
	parent *Element
	data   string
}

func (t *Text) Parent() *Element     { return t.parent }
func (t *Text) TextContent() string  { return t.data }
func (t *Text) Data() string         { return t.data }
func (t *Text) setParent(p *Element) { t.parent = p }

// Element is a tagged node with attributes, inline style, and children.
type Element struct {
	doc    *Document
	tag    string
	parent *Element

	attrs    map[string]string
	style    map[string]string
	children []Node

	// Form control state; unused for other tags.
	value    string
	valueSel Range

	listeners map[string][]*listener
}

func (e *Element) Parent() *Element         { return e.parent }
func (e *Element) setParent(p *Element)     { e.parent = p }
func (e *Element) Tag() string              { return e.tag }
func (e *Element) OwnerDocument() *Document { return e.doc }
func (e *Element) ID() string               { return e.attrs["id"] }

// TextContent concatenates the data of every descendant text node.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.writeText(&sb)
	return sb.String()
}

func (e *Element) writeText(sb *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			sb.WriteString(n.data)
		case *Element:
			n.writeText(sb)
		}
	}
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(s string) {
	for _, c := range e.children {
		c.setParent(nil)
	}
	e.children = nil
	if s != "" {
		t := &Text{data: s}
		t.setParent(e)
		e.children = []Node{t}
	}
	e.doc.touch()
}

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[strings.ToLower(name)]
	return ok
}

func (e *Element) SetAttr(name, value string) {
	name = strings.ToLower(name)
	if cur, ok := e.attrs[name]; ok && cur == value {
		return
	}
	e.attrs[name] = value
	e.doc.touch()
}

func (e *Element) RemoveAttr(name string) {
	name = strings.ToLower(name)
	if _, ok := e.attrs[name]; !ok {
		return
	}
	delete(e.attrs, name)
	e.doc.touch()
}

// AttrNames returns attribute names in sorted order.
func (e *Element) AttrNames() []string {
	names := make([]string, 0, len(e.attrs))
	for k := range e.attrs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Classes returns the whitespace-separated entries of the class attribute.
func (e *Element) Classes() []string {
	return strings.Fields(e.attrs["class"])
}

func (e *Element) HasClass(name string) bool {
	for _, c := range e.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// Style returns an inline style property.
func (e *Element) Style(prop string) string { return e.style[prop] }

func (e *Element) SetStyle(prop, value string) {
	if value == "" {
		delete(e.style, prop)
	} else {
		e.style[prop] = value
	}
	e.doc.touch()
}

func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// ElementChildren returns only the element children, in order.
func (e *Element) ElementChildren() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// AppendChild moves n under e, detaching it from its previous parent.
// Appending an ancestor of e is ignored.
func (e *Element) AppendChild(n Node) {
	if n == nil {
		return
	}
	if el, ok := n.(*Element); ok {
		if el == nil {
			return
		}
		for p := e; p != nil; p = p.parent {
			if p == el {
				return
			}
		}
	}
	if p := n.Parent(); p != nil {
		p.detach(n)
	}
	n.setParent(e)
	e.children = append(e.children, n)
	e.doc.touch()
}

// AppendText appends a new text node holding s.
func (e *Element) AppendText(s string) *Text {
	t := &Text{data: s}
	e.AppendChild(t)
	return t
}

// RemoveChild detaches n from e. It reports whether n was a child of e.
func (e *Element) RemoveChild(n Node) bool {
	if n == nil || n.Parent() != e {
		return false
	}
	e.detach(n)
	n.setParent(nil)
	e.doc.touch()
	return true
}

// Remove detaches e from its parent. It is a no-op for detached elements.
func (e *Element) Remove() {
	if e.parent == nil {
		return
	}
	e.parent.RemoveChild(e)
}

func (e *Element) detach(n Node) {
	for i, c := range e.children {
		if c == n {
			e.children = append(e.children[:i], e.children[i+1:]...)
			break
		}
	}
	if el, ok := n.(*Element); ok {
		e.doc.forget(el)
	}
}

// IsConnected reports whether e is attached to its document's tree.
func (e *Element) IsConnected() bool {
	if e.doc == nil {
		return false
	}
	for p := e; p != nil; p = p.parent {
		if p == e.doc.root {
			return true
		}
	}
	return false
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for p := other; p != nil; p = p.parent {
		if p == e {
			return true
		}
	}
	return false
}
