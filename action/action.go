package action

import (
	"fmt"

	"github.com/iw2rmb/clipact/dom"
)

// Action is one executed clipboard action. Create a fresh one per user
// gesture; actions are not reusable.
type Action struct {
	plan Plan

	selectedText string
	succeeded    bool

	fake         *dom.Element
	dropFakeHook func()

	handle *Handle
}

// New validates cfg and runs it.
func New(cfg Config) (*Action, error) {
	p, err := NewPlan(cfg)
	if err != nil {
		return nil, err
	}
	return p.Run(), nil
}

// Run selects the text, runs the clipboard command, and emits the result.
//
// For copy the temporary element is removed right after the clipboard
// command, before listeners run. For cut it is kept so the selection stays
// visible; it goes away on Handle.Release, Destroy, RemoveFake, or the next
// click inside the container. If anything panics, the temporary element is
// removed before the panic propagates.
//
// p must come from NewPlan.
func (p Plan) Run() *Action {
	if p.host == nil || p.emitter == nil {
		panic("action: Run called on a Plan not built by NewPlan")
	}

	a := &Action{plan: p}
	a.handle = &Handle{a: a}

	completed := false
	defer func() {
		if !completed {
			a.RemoveFake()
		}
	}()

	a.selectText()
	a.succeeded = a.execCommand()
	if p.mode != Cut {
		a.RemoveFake()
	}
	a.emitResult()

	completed = true
	return a
}

func (a *Action) selectText() {
	if a.plan.target != nil {
		a.selectTarget()
		return
	}
	a.selectFake()
}

func (a *Action) selectTarget() {
	t := a.plan.target
	if t.IsFormControl() {
		a.selectedText = a.plan.host.SelectFormValue(t)
	} else {
		a.selectedText = a.plan.host.SelectElementText(t)
	}
	a.plan.log.Debug("selected target", "tag", t.Tag(), "id", t.ID(), "form", t.IsFormControl())
}

// selectFake puts the literal text into an off-screen, read-only textarea so
// the host has a node to select.
func (a *Action) selectFake() {
	a.RemoveFake()

	h := a.plan.host
	el := h.CreateElement("textarea")
	el.SetStyle("font-size", "12pt")
	el.SetStyle("border", "0")
	el.SetStyle("padding", "0")
	el.SetStyle("margin", "0")
	el.SetStyle("position", "absolute")
	if h.Dir() == "rtl" {
		el.SetStyle("right", "-9999px")
	} else {
		el.SetStyle("left", "-9999px")
	}
	el.SetStyle("top", fmt.Sprintf("%dpx", h.ScrollTop()))
	el.SetAttr("readonly", "")
	el.SetValue(a.plan.text)

	c := a.plan.container
	c.AppendChild(el)
	a.fake = el
	a.dropFakeHook = c.AddEventListener("click", func(*dom.Event) { a.RemoveFake() })

	a.selectedText = h.SelectFormValue(el)
	a.plan.log.Debug("selected temporary element", "len", len(a.selectedText))
}

// execCommand treats a panicking host like a refused command.
func (a *Action) execCommand() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.plan.log.Warn("clipboard command panicked", "action", a.plan.mode, "panic", r)
			ok = false
		}
	}()
	ok = a.plan.host.ExecCommand(string(a.plan.mode))
	a.plan.log.Debug("clipboard command", "action", a.plan.mode, "ok", ok)
	return ok
}

func (a *Action) emitResult() {
	if a.succeeded {
		a.plan.emitter.Emit(EventSuccess, SuccessEvent{
			Action:  a.plan.mode,
			Text:    a.selectedText,
			Trigger: a.plan.trigger,
			Handle:  a.handle,
		})
		return
	}
	a.plan.emitter.Emit(EventError, ErrorEvent{
		Action:  a.plan.mode,
		Trigger: a.plan.trigger,
		Handle:  a.handle,
	})
}

// RemoveFake detaches the temporary element, if any. It is idempotent.
func (a *Action) RemoveFake() {
	if a.dropFakeHook != nil {
		a.dropFakeHook()
		a.dropFakeHook = nil
	}
	if a.fake != nil {
		a.fake.Remove()
		a.fake = nil
		a.plan.log.Debug("removed temporary element")
	}
}

// ClearSelection empties the selection and focuses the body. A Trigger that
// is attached and focusable receives focus instead of the body.
func (a *Action) ClearSelection() {
	a.plan.host.ClearSelection()
	if t := a.plan.trigger; t != nil && t.IsConnected() && t.Focusable() {
		a.plan.host.Focus(t)
	}
}

// Destroy releases everything the action created.
func (a *Action) Destroy() { a.RemoveFake() }

func (a *Action) Mode() Mode                { return a.plan.mode }
func (a *Action) Target() *dom.Element      { return a.plan.target }
func (a *Action) Trigger() *dom.Element     { return a.plan.trigger }
func (a *Action) SelectedText() string      { return a.selectedText }
func (a *Action) FakeElement() *dom.Element { return a.fake }
func (a *Action) Succeeded() bool           { return a.succeeded }
func (a *Action) Handle() *Handle           { return a.handle }
