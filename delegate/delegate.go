// Package delegate runs clipboard actions when trigger elements are clicked.
//
// Triggers describe the action with attributes:
//
//	data-clipboard-action  copy (default) or cut
//	data-clipboard-target  selector of the element to copy from
//	data-clipboard-text    literal text to copy
//
// Each attribute lookup can be replaced through Options.
package delegate

import (
	"log/slog"

	"github.com/iw2rmb/clipact/action"
	"github.com/iw2rmb/clipact/dom"
	"github.com/iw2rmb/clipact/emitter"
)

// EventConfigError is emitted with the error when a click produced an invalid
// action configuration.
const EventConfigError = "config-error"

// Attribute names read from triggers.
const (
	AttrAction = "data-clipboard-action"
	AttrTarget = "data-clipboard-target"
	AttrText   = "data-clipboard-text"
)

type Options struct {
	// Action returns the mode for trigger. Defaults to AttrAction.
	Action func(trigger *dom.Element) string
	// Target returns the source element for trigger. Defaults to resolving
	// the AttrTarget selector.
	Target func(trigger *dom.Element) dom.Node
	// Text returns literal text for trigger. Defaults to AttrText.
	Text func(trigger *dom.Element) string

	// Container receives temporary elements. Defaults to the body.
	Container *dom.Element

	Logger *slog.Logger
}

// Delegate listens for clicks on the document body and runs one action per
// click on an element matching its selector.
type Delegate struct {
	doc    *dom.Document
	sel    dom.Selector
	opt    Options
	events *emitter.Emitter
	log    *slog.Logger

	unlisten func()
	last     *action.Action
}

// New starts listening. selector picks the trigger elements.
func New(doc *dom.Document, selector string, opt Options) (*Delegate, error) {
	sel, err := dom.ParseSelector(selector)
	if err != nil {
		return nil, err
	}
	d := &Delegate{
		doc:    doc,
		sel:    sel,
		opt:    opt,
		events: emitter.New(),
		log:    opt.Logger,
	}
	if d.log == nil {
		d.log = slog.New(slog.DiscardHandler)
	}
	if d.opt.Action == nil {
		d.opt.Action = attrString(AttrAction)
	}
	if d.opt.Text == nil {
		d.opt.Text = attrString(AttrText)
	}
	if d.opt.Target == nil {
		d.opt.Target = d.targetFromAttr
	}
	d.unlisten = doc.Body().AddEventListener("click", d.onClick)
	return d, nil
}

func attrString(name string) func(*dom.Element) string {
	return func(el *dom.Element) string {
		v, _ := el.Attr(name)
		return v
	}
}

// targetFromAttr resolves the trigger's target selector. A selector that
// matches nothing yields a typed nil, which the action rejects as an invalid
// target rather than treating it as unset.
func (d *Delegate) targetFromAttr(el *dom.Element) dom.Node {
	v, ok := el.Attr(AttrTarget)
	if !ok {
		return nil
	}
	return d.doc.QuerySelector(v)
}

// On subscribes to action.EventSuccess, action.EventError, or
// EventConfigError.
func (d *Delegate) On(name string, fn emitter.Handler) emitter.Subscription {
	return d.events.On(name, fn)
}

func (d *Delegate) Off(sub emitter.Subscription) { d.events.Off(sub) }

func (d *Delegate) onClick(ev *dom.Event) {
	trigger := ev.Target.Closest(d.sel)
	if trigger == nil {
		return
	}
	if _, err := d.Trigger(trigger); err != nil {
		d.log.Warn("clipboard trigger misconfigured", "trigger", trigger.Tag(), "id", trigger.ID(), "err", err)
		d.events.Emit(EventConfigError, err)
	}
}

// Trigger runs the action described by trigger, as a click would. The
// previous action is destroyed first.
func (d *Delegate) Trigger(trigger *dom.Element) (*action.Action, error) {
	if d.last != nil {
		d.last.Destroy()
		d.last = nil
	}
	a, err := action.New(action.Config{
		Action:    d.opt.Action(trigger),
		Target:    d.opt.Target(trigger),
		Text:      d.opt.Text(trigger),
		Container: d.opt.Container,
		Trigger:   trigger,
		Emitter:   d.events,
		Host:      action.HostFor(d.doc),
		Logger:    d.log,
	})
	if err != nil {
		return nil, err
	}
	d.last = a
	return a, nil
}

// Last returns the most recent action, or nil.
func (d *Delegate) Last() *action.Action { return d.last }

// Destroy stops listening and releases the last action.
func (d *Delegate) Destroy() {
	if d.unlisten != nil {
		d.unlisten()
		d.unlisten = nil
	}
	if d.last != nil {
		d.last.Destroy()
		d.last = nil
	}
}

// CommandQuerier reports platform support for a clipboard command.
type CommandQuerier interface {
	QueryCommandSupported(cmd string) bool
}

// IsSupported reports whether every action is supported. With no actions it
// checks copy and cut.
func IsSupported(q CommandQuerier, actions ...string) bool {
	if len(actions) == 0 {
		actions = []string{string(action.Copy), string(action.Cut)}
	}
	for _, a := range actions {
		if !q.QueryCommandSupported(a) {
			return false
		}
	}
	return true
}
