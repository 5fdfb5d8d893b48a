package dom

import (
	"fmt"
	"strings"
)

// Selector is a parsed selector list: comma-separated compound selectors made
// of an optional tag, #id, .class, and [attr] / [attr=value] parts.
// Combinators are not supported.
type Selector struct {
	groups []compound
}

type compound struct {
	tag     string
	id      string
	classes []string
	attrs   []attrMatch
}

type attrMatch struct {
	name  string
	value string
	exact bool
}

// ParseSelector parses s. Empty input and combinators are errors.
func ParseSelector(s string) (Selector, error) {
	var sel Selector
	parts, err := splitList(s)
	if err != nil {
		return Selector{}, err
	}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return Selector{}, fmt.Errorf("dom: empty selector in %q", s)
		}
		c, err := parseCompound(part)
		if err != nil {
			return Selector{}, err
		}
		sel.groups = append(sel.groups, c)
	}
	return sel, nil
}

// splitList splits s on commas outside brackets and quotes.
func splitList(s string) ([]string, error) {
	var (
		parts []string
		quote byte
		depth int
	)
	start := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '[':
			depth++
		case ch == ']':
			depth--
		case ch == ',' && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("dom: unterminated string in selector %q", s)
	}
	return append(parts, s[start:]), nil
}

// attrEnd returns the index of the ']' closing the attribute part s starts
// with, skipping quoted values, or -1.
func attrEnd(s string) int {
	var quote byte
	for i := 1; i < len(s); i++ {
		switch ch := s[i]; {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == ']':
			return i
		}
	}
	return -1
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}

func parseCompound(s string) (compound, error) {
	var c compound
	i := 0
	readIdent := func() string {
		start := i
		for i < len(s) && !strings.ContainsRune("#.[] >+~", rune(s[i])) {
			i++
		}
		return s[start:i]
	}

	if i < len(s) && s[i] != '#' && s[i] != '.' && s[i] != '[' {
		c.tag = strings.ToLower(readIdent())
		if c.tag == "*" {
			c.tag = ""
		}
	}
	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			c.id = readIdent()
			if c.id == "" {
				return compound{}, fmt.Errorf("dom: empty id in selector %q", s)
			}
		case '.':
			i++
			cls := readIdent()
			if cls == "" {
				return compound{}, fmt.Errorf("dom: empty class in selector %q", s)
			}
			c.classes = append(c.classes, cls)
		case '[':
			end := attrEnd(s[i:])
			if end < 0 {
				return compound{}, fmt.Errorf("dom: unterminated attribute in selector %q", s)
			}
			body := s[i+1 : i+end]
			i += end + 1
			am := attrMatch{name: strings.ToLower(strings.TrimSpace(body))}
			if k, v, ok := strings.Cut(body, "="); ok {
				am.name = strings.ToLower(strings.TrimSpace(k))
				am.value = unquote(strings.TrimSpace(v))
				am.exact = true
			}
			if am.name == "" {
				return compound{}, fmt.Errorf("dom: empty attribute in selector %q", s)
			}
			c.attrs = append(c.attrs, am)
		default:
			return compound{}, fmt.Errorf("dom: unsupported selector %q", s)
		}
	}
	return c, nil
}

// Match reports whether e matches any group of sel.
func (sel Selector) Match(e *Element) bool {
	if e == nil {
		return false
	}
	for _, c := range sel.groups {
		if c.match(e) {
			return true
		}
	}
	return false
}

func (c compound) match(e *Element) bool {
	if c.tag != "" && c.tag != e.tag {
		return false
	}
	if c.id != "" && e.attrs["id"] != c.id {
		return false
	}
	for _, cls := range c.classes {
		if !e.HasClass(cls) {
			return false
		}
	}
	for _, am := range c.attrs {
		v, ok := e.attrs[am.name]
		if !ok || (am.exact && v != am.value) {
			return false
		}
	}
	return true
}

// Matches reports whether e matches the selector string s. Invalid selectors
// never match.
func (e *Element) Matches(s string) bool {
	sel, err := ParseSelector(s)
	if err != nil {
		return false
	}
	return sel.Match(e)
}

// Closest returns the nearest inclusive ancestor of e matching sel.
func (e *Element) Closest(sel Selector) *Element {
	for p := e; p != nil; p = p.parent {
		if sel.Match(p) {
			return p
		}
	}
	return nil
}

// QuerySelector returns the first connected element in document order that
// matches s, or nil when nothing matches or s is invalid.
func (d *Document) QuerySelector(s string) *Element {
	sel, err := ParseSelector(s)
	if err != nil {
		return nil
	}
	var found *Element
	d.walk(d.root, func(e *Element) bool {
		if sel.Match(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// QuerySelectorAll returns every connected element matching s.
func (d *Document) QuerySelectorAll(s string) []*Element {
	sel, err := ParseSelector(s)
	if err != nil {
		return nil
	}
	var out []*Element
	d.walk(d.root, func(e *Element) bool {
		if sel.Match(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}
