package dom

import "github.com/iw2rmb/clipact/internal/grapheme"

// IsFormControl reports whether e holds an editable value (input or
// textarea) rather than text content.
func (e *Element) IsFormControl() bool {
	switch e.tag {
	case "textarea":
		return true
	case "input":
		switch e.attrs["type"] {
		case "", "text", "search", "url", "tel", "password", "email":
			return true
		}
	}
	return false
}

// ReadOnly reports whether the readonly attribute is present.
func (e *Element) ReadOnly() bool { return e.HasAttr("readonly") }

// Value returns the form control value. It is empty for other elements.
func (e *Element) Value() string { return e.value }

// SetValue replaces the value and collapses the selection to its end.
func (e *Element) SetValue(v string) {
	if !e.IsFormControl() {
		return
	}
	n := grapheme.Count(v)
	next := Range{Start: n, End: n}
	if v == e.value && next == e.valueSel {
		return
	}
	e.value = v
	e.valueSel = next
	e.doc.touch()
}

// SelectionRange returns the normalized value selection.
func (e *Element) SelectionRange() Range { return e.valueSel }

// SetSelectionRange selects [start, end) of the value, clamped to its length.
func (e *Element) SetSelectionRange(start, end int) {
	if !e.IsFormControl() {
		return
	}
	next := ClampRange(Range{Start: start, End: end}, grapheme.Count(e.value))
	if next == e.valueSel {
		return
	}
	e.valueSel = next
	e.doc.touch()
}

// Select selects the whole value.
func (e *Element) Select() {
	e.SetSelectionRange(0, grapheme.Count(e.value))
}

// SelectedValue returns the value text covered by the selection.
func (e *Element) SelectedValue() string {
	if e.valueSel.IsEmpty() {
		return ""
	}
	return grapheme.Slice(e.value, e.valueSel.Start, e.valueSel.End)
}

// deleteSelectedValue removes the selected text and collapses the selection
// at its start.
func (e *Element) deleteSelectedValue() {
	r := e.valueSel
	if r.IsEmpty() {
		return
	}
	e.value = grapheme.Remove(e.value, r.Start, r.End)
	e.valueSel = Range{Start: r.Start, End: r.Start}
	e.doc.touch()
}
