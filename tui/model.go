package tui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/clipact/action"
	"github.com/iw2rmb/clipact/delegate"
	"github.com/iw2rmb/clipact/dom"
)

// DefaultSelector matches any element carrying a clipboard attribute.
const DefaultSelector = "[" + delegate.AttrAction + "], [" + delegate.AttrTarget + "], [" + delegate.AttrText + "]"

// Config configures the page view Model.
type Config struct {
	Doc *dom.Document

	// Selector picks trigger elements. Defaults to DefaultSelector.
	Selector string

	KeyMap KeyMap
	Style  Style
	Logger *slog.Logger
}

// outcome is written by delegate listeners during Update. Model copies share
// it through a pointer.
type outcome struct {
	ok      bool
	set     bool
	mode    action.Mode
	text    string
	err     error
	pending *action.Handle
}

// Model is a Bubble Tea component listing a page's clipboard triggers.
type Model struct {
	cfg Config
	del *delegate.Delegate

	triggers []*dom.Element
	cursor   int
	last     *outcome

	width       int
	lastVersion uint64
}

func New(cfg Config) (Model, error) {
	if cfg.Selector == "" {
		cfg.Selector = DefaultSelector
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	del, err := delegate.New(cfg.Doc, cfg.Selector, delegate.Options{Logger: cfg.Logger})
	if err != nil {
		return Model{}, err
	}

	m := Model{cfg: cfg, del: del, last: &outcome{}}
	del.On(action.EventSuccess, func(p any) {
		ev := p.(action.SuccessEvent)
		*m.last = outcome{ok: true, set: true, mode: ev.Action, text: ev.Text, pending: ev.Handle}
	})
	del.On(action.EventError, func(p any) {
		ev := p.(action.ErrorEvent)
		*m.last = outcome{set: true, mode: ev.Action, pending: ev.Handle}
	})
	del.On(delegate.EventConfigError, func(p any) {
		*m.last = outcome{set: true, err: p.(error)}
	})
	m.syncTriggers()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Triggers returns the trigger elements in document order.
func (m Model) Triggers() []*dom.Element { return m.triggers }

// Cursor returns the index of the highlighted trigger.
func (m Model) Cursor() int { return m.cursor }

// Close stops listening on the document and releases the last action.
func (m Model) Close() { m.del.Destroy() }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.width = width
	return m
}

// syncTriggers rescans the page when it changed outside the view.
func (m *Model) syncTriggers() {
	ver := m.cfg.Doc.Version()
	if m.triggers != nil && ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	m.triggers = m.cfg.Doc.QuerySelectorAll(m.cfg.Selector)
	if m.cursor >= len(m.triggers) {
		m.cursor = len(m.triggers) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
