package dom

import "testing"

func TestParseSelector_Errors(t *testing.T) {
	for _, s := range []string{"", "#", ".", "div p", "a > b", "[x", "[]", "a,,b"} {
		if _, err := ParseSelector(s); err == nil {
			t.Fatalf("ParseSelector(%q): expected error", s)
		}
	}
}

func TestQuerySelector(t *testing.T) {
	d := New(Options{})
	btn := d.CreateElement("button")
	btn.SetAttr("class", "btn primary")
	btn.SetAttr("data-clipboard-text", "x")
	d.Body().AppendChild(btn)

	in := d.CreateElement("input")
	in.SetAttr("id", "input")
	d.Body().AppendChild(in)

	cases := []struct {
		sel  string
		want *Element
	}{
		{sel: "#input", want: in},
		{sel: "input", want: in},
		{sel: ".btn", want: btn},
		{sel: "button.btn.primary", want: btn},
		{sel: "[data-clipboard-text]", want: btn},
		{sel: `[data-clipboard-text="x"]`, want: btn},
		{sel: `[data-clipboard-text=y]`, want: nil},
		{sel: "#foo", want: nil},
		{sel: "#foo, .primary", want: btn},
		{sel: "*", want: d.Root()},
	}
	for _, tc := range cases {
		if got := d.QuerySelector(tc.sel); got != tc.want {
			t.Fatalf("QuerySelector(%q): got %v, want %v", tc.sel, got, tc.want)
		}
	}

	if got := len(d.QuerySelectorAll("button, input")); got != 2 {
		t.Fatalf("QuerySelectorAll: got %d, want 2", got)
	}
}

func TestClosest(t *testing.T) {
	d := New(Options{})
	btn := d.CreateElement("button")
	btn.SetAttr("class", "btn")
	icon := d.CreateElement("span")
	btn.AppendChild(icon)
	d.Body().AppendChild(btn)

	sel, err := ParseSelector(".btn")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := icon.Closest(sel); got != btn {
		t.Fatalf("closest: got %v, want button", got)
	}
	if !btn.Matches(".btn") || btn.Matches("(") {
		t.Fatalf("matches: unexpected result")
	}
}

func TestParseSelector_QuotedAttributeValues(t *testing.T) {
	d := New(Options{})
	btn := d.CreateElement("button")
	btn.SetAttr("data-x", "a,b")
	d.Body().AppendChild(btn)
	link := d.CreateElement("a")
	link.SetAttr("title", "x]y")
	d.Body().AppendChild(link)

	cases := []struct {
		sel  string
		want int
	}{
		{sel: `[data-x="a,b"]`, want: 1},
		{sel: `[data-x='a,b'], a`, want: 2},
		{sel: `[title="x]y"]`, want: 1},
		{sel: `[data-x="a"]`, want: 0},
	}
	for _, tc := range cases {
		if _, err := ParseSelector(tc.sel); err != nil {
			t.Fatalf("ParseSelector(%q): %v", tc.sel, err)
		}
		if got := len(d.QuerySelectorAll(tc.sel)); got != tc.want {
			t.Fatalf("QuerySelectorAll(%q): got %d, want %d", tc.sel, got, tc.want)
		}
	}

	if _, err := ParseSelector(`[data-x="a,b]`); err == nil {
		t.Fatalf("unterminated quote: expected error")
	}
}
