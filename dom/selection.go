package dom

// Selection is the document selection. It is empty, covers the full contents
// of one element, or lives inside a form control's value. A form control
// takes precedence over the document range, as in browsers.
type Selection struct {
	doc     *Document
	node    *Element
	control *Element
}

func (d *Document) Selection() *Selection { return &d.sel }

// SelectNodeContents replaces the selection with a range over e's contents.
// Focus leaves a form control that does not contain e.
func (s *Selection) SelectNodeContents(e *Element) {
	if e == nil || e.doc != s.doc || !e.IsConnected() {
		return
	}
	if a := s.doc.active; a != nil && a.IsFormControl() && !a.Contains(e) {
		s.doc.Blur()
	}
	if s.node == e && s.control == nil {
		return
	}
	s.node = e
	s.control = nil
	s.doc.touch()
}

// SelectControl moves the selection into e's value, whether or not e can
// take focus. The selected part is e's SelectionRange.
func (s *Selection) SelectControl(e *Element) {
	if e == nil || e.doc != s.doc || !e.IsConnected() || !e.IsFormControl() {
		return
	}
	if s.control == e && s.node == nil {
		return
	}
	s.node = nil
	s.control = e
	s.doc.touch()
}

// RemoveAllRanges empties the selection.
func (s *Selection) RemoveAllRanges() {
	if s.node == nil && s.control == nil {
		return
	}
	s.node = nil
	s.control = nil
	s.doc.touch()
}

// RangeCount is 1 when a document range is set, else 0.
func (s *Selection) RangeCount() int {
	if s.node == nil || !s.node.IsConnected() {
		return 0
	}
	return 1
}

// Node returns the element whose contents are selected, or nil.
func (s *Selection) Node() *Element {
	if s.RangeCount() == 0 {
		return nil
	}
	return s.node
}

// Control returns the form control holding the selection: the one passed to
// SelectControl, else the focused control. Moving focus elsewhere drops the
// former. It is nil when the selection is a document range or empty.
func (s *Selection) Control() *Element {
	if c := s.control; c != nil && c.IsConnected() {
		return c
	}
	if a := s.doc.active; a != nil && a.IsConnected() && a.IsFormControl() {
		return a
	}
	return nil
}

// String returns the selected text. A control with an empty value selection
// yields "" even when a document range was set earlier.
func (s *Selection) String() string {
	if c := s.Control(); c != nil {
		return c.SelectedValue()
	}
	if n := s.Node(); n != nil {
		return n.TextContent()
	}
	return ""
}

// IsEmpty reports whether String would return "".
func (s *Selection) IsEmpty() bool { return s.String() == "" }
