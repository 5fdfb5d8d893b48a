package action

import "github.com/iw2rmb/clipact/dom"

// Selector is the selection and focus capability an action drives.
type Selector interface {
	// SelectElementText selects el's whole text content and returns it.
	SelectElementText(el *dom.Element) string
	// SelectFormValue moves the selection into el's whole value, focusing el
	// when it can, and returns the selected text.
	SelectFormValue(el *dom.Element) string
	// ClearSelection empties the selection and returns focus to the body.
	ClearSelection()
	// Focus moves focus to el.
	Focus(el *dom.Element)
}

// Host is the page an action runs in.
type Host interface {
	Selector

	// ExecCommand runs the clipboard command for the current selection and
	// reports whether the platform honored it.
	ExecCommand(cmd string) bool

	Body() *dom.Element
	CreateElement(tag string) *dom.Element
	Dir() string
	ScrollTop() int
}

// DocumentHost adapts a *dom.Document to Host.
type DocumentHost struct {
	Doc *dom.Document
}

// HostFor returns the Host backed by d.
func HostFor(d *dom.Document) DocumentHost { return DocumentHost{Doc: d} }

func (h DocumentHost) SelectElementText(el *dom.Element) string {
	s := h.Doc.Selection()
	s.RemoveAllRanges()
	s.SelectNodeContents(el)
	return s.String()
}

// SelectFormValue drops any document range first. A control that cannot take
// focus, such as a disabled input, still holds the selection.
func (h DocumentHost) SelectFormValue(el *dom.Element) string {
	s := h.Doc.Selection()
	s.RemoveAllRanges()
	if !h.Doc.Focus(el) {
		h.Doc.Blur()
	}
	el.Select()
	s.SelectControl(el)
	return s.String()
}

func (h DocumentHost) ClearSelection() {
	h.Doc.Blur()
	h.Doc.Selection().RemoveAllRanges()
}

func (h DocumentHost) Focus(el *dom.Element)                 { h.Doc.Focus(el) }
func (h DocumentHost) ExecCommand(cmd string) bool           { return h.Doc.ExecCommand(cmd) }
func (h DocumentHost) Body() *dom.Element                    { return h.Doc.Body() }
func (h DocumentHost) CreateElement(tag string) *dom.Element { return h.Doc.CreateElement(tag) }
func (h DocumentHost) Dir() string                           { return h.Doc.Dir() }
func (h DocumentHost) ScrollTop() int                        { return h.Doc.ScrollTop() }
