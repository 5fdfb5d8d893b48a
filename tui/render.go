package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/clipact/action"
	"github.com/iw2rmb/clipact/delegate"
	"github.com/iw2rmb/clipact/dom"
)

func (m Model) View() string {
	st := m.cfg.Style
	var sb strings.Builder

	sb.WriteString(st.Title.Render("Clipboard triggers"))
	sb.WriteByte('\n')

	if len(m.triggers) == 0 {
		sb.WriteString(st.Preview.Render("  (no triggers on this page)"))
		sb.WriteByte('\n')
	}
	for i, t := range m.triggers {
		label := triggerLabel(t)
		var line string
		if i == m.cursor {
			line = "> " + st.Cursor.Render(label)
		} else {
			line = "  " + st.Trigger.Render(label)
		}
		sb.WriteString(line)
		if p := m.preview(t); p != "" {
			sb.WriteString("  ")
			sb.WriteString(st.Preview.Render(m.fit(p, runewidth.StringWidth(label)+4)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteByte('\n')
	sb.WriteString(m.statusLine())
	sb.WriteByte('\n')
	sb.WriteString(st.Help.Render(helpLine(m.cfg.KeyMap)))
	return sb.String()
}

func (m Model) statusLine() string {
	st := m.cfg.Style
	o := m.last
	switch {
	case !o.set:
		return ""
	case o.err != nil:
		return st.Error.Render("misconfigured trigger: " + o.err.Error())
	case o.ok:
		return st.Success.Render(m.fit(fmt.Sprintf("%s %q", pastTense(o.mode), o.text), 0))
	default:
		return st.Error.Render(fmt.Sprintf("%s not supported, copy manually", o.mode))
	}
}

func pastTense(mode action.Mode) string {
	if mode == action.Cut {
		return "Cut"
	}
	return "Copied"
}

// fit truncates s to the remaining width after used columns.
func (m Model) fit(s string, used int) string {
	if m.width <= 0 {
		return s
	}
	avail := m.width - used
	if avail <= 1 {
		return ""
	}
	return runewidth.Truncate(s, avail, "…")
}

func triggerLabel(t *dom.Element) string {
	if s := strings.TrimSpace(t.TextContent()); s != "" {
		return s
	}
	if id := t.ID(); id != "" {
		return "#" + id
	}
	return "<" + t.Tag() + ">"
}

// preview describes what activating t would put on the clipboard.
func (m Model) preview(t *dom.Element) string {
	mode, _ := t.Attr(delegate.AttrAction)
	if mode == "" {
		mode = "copy"
	}
	if text, ok := t.Attr(delegate.AttrText); ok {
		return fmt.Sprintf("%s %q", strings.ToLower(mode), text)
	}
	sel, ok := t.Attr(delegate.AttrTarget)
	if !ok {
		return ""
	}
	target := m.cfg.Doc.QuerySelector(sel)
	if target == nil {
		return fmt.Sprintf("%s %s (missing)", strings.ToLower(mode), sel)
	}
	src := target.TextContent()
	if target.IsFormControl() {
		src = target.Value()
	}
	return fmt.Sprintf("%s %s %q", strings.ToLower(mode), sel, src)
}

func helpLine(km KeyMap) string {
	parts := make([]string, 0, 5)
	for _, b := range km.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
