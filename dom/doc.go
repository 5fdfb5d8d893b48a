// Package dom implements the in-memory page model that clipboard actions run
// against: elements, form control values, the document selection, focus, and
// click events.
//
// Value selections are half-open ranges in grapheme clusters: [Start, End).
package dom
