package dom

// Event is a dispatched DOM event.
type Event struct {
	Type string

	// Target is the element the event was dispatched to.
	Target *Element

	// CurrentTarget is the element whose listener is running.
	CurrentTarget *Element

	stopped bool
}

// StopPropagation prevents the event from reaching further ancestors.
func (ev *Event) StopPropagation() { ev.stopped = true }

type listener struct {
	fn      func(*Event)
	removed bool
}

// AddEventListener registers fn for events of type typ reaching e. The
// returned func removes the listener; calling it more than once is safe.
func (e *Element) AddEventListener(typ string, fn func(*Event)) (remove func()) {
	if fn == nil {
		return func() {}
	}
	if e.listeners == nil {
		e.listeners = map[string][]*listener{}
	}
	l := &listener{fn: fn}
	e.listeners[typ] = append(e.listeners[typ], l)
	return func() {
		if l.removed {
			return
		}
		l.removed = true
		ls := e.listeners[typ]
		for i, x := range ls {
			if x == l {
				e.listeners[typ] = append(ls[:i], ls[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers an event of type typ to e and then to each ancestor,
// until a listener stops propagation.
func (e *Element) Dispatch(typ string) *Event {
	ev := &Event{Type: typ, Target: e}
	for cur := e; cur != nil && !ev.stopped; cur = cur.parent {
		ls := append([]*listener(nil), cur.listeners[typ]...)
		ev.CurrentTarget = cur
		for _, l := range ls {
			if l.removed {
				continue
			}
			l.fn(ev)
		}
	}
	ev.CurrentTarget = nil
	return ev
}

// Click focuses e when it is focusable and dispatches a bubbling click.
func (d *Document) Click(e *Element) *Event {
	if e == nil || e.doc != d {
		return nil
	}
	if e.Focusable() {
		d.Focus(e)
	}
	return e.Dispatch("click")
}
