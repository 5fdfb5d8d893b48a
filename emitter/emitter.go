// Package emitter is a minimal synchronous publish/subscribe hub.
package emitter

// Handler receives an emitted payload.
type Handler func(payload any)

type entry struct {
	id   uint64
	fn   Handler
	once bool
}

// Emitter dispatches payloads to handlers registered by event name. The zero
// value is ready to use. It is not safe for concurrent use.
type Emitter struct {
	handlers map[string][]entry
	nextID   uint64
}

func New() *Emitter { return &Emitter{} }

// Subscription identifies a registered handler for Off.
type Subscription struct {
	name string
	id   uint64
}

// On registers fn for name.
func (e *Emitter) On(name string, fn Handler) Subscription {
	return e.add(name, fn, false)
}

// Once registers fn for the next emission of name only.
func (e *Emitter) Once(name string, fn Handler) Subscription {
	return e.add(name, fn, true)
}

func (e *Emitter) add(name string, fn Handler, once bool) Subscription {
	if fn == nil {
		return Subscription{}
	}
	if e.handlers == nil {
		e.handlers = map[string][]entry{}
	}
	e.nextID++
	e.handlers[name] = append(e.handlers[name], entry{id: e.nextID, fn: fn, once: once})
	return Subscription{name: name, id: e.nextID}
}

// Off removes the handler behind sub. Unknown or zero subscriptions are
// ignored.
func (e *Emitter) Off(sub Subscription) {
	if sub.id == 0 {
		return
	}
	hs := e.handlers[sub.name]
	for i, h := range hs {
		if h.id == sub.id {
			e.remove(sub.name, i)
			return
		}
	}
}

// OffAll removes every handler for name.
func (e *Emitter) OffAll(name string) {
	delete(e.handlers, name)
}

func (e *Emitter) remove(name string, i int) {
	hs := e.handlers[name]
	next := make([]entry, 0, len(hs)-1)
	next = append(next, hs[:i]...)
	next = append(next, hs[i+1:]...)
	if len(next) == 0 {
		delete(e.handlers, name)
		return
	}
	e.handlers[name] = next
}

// Emit calls the handlers registered for name in registration order.
// Handlers added or removed during dispatch take effect on the next Emit.
func (e *Emitter) Emit(name string, payload any) {
	hs := e.handlers[name]
	if len(hs) == 0 {
		return
	}
	snapshot := append([]entry(nil), hs...)
	for _, h := range snapshot {
		if h.once {
			e.Off(Subscription{name: name, id: h.id})
		}
	}
	for _, h := range snapshot {
		h.fn(payload)
	}
}

// Len returns the number of handlers registered for name.
func (e *Emitter) Len(name string) int { return len(e.handlers[name]) }
