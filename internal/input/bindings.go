package input

import "github.com/zyedidia/generic/mapset"

// Handler reacts to a bound key.
type Handler func()

// Bindings maps keys to handlers. Overlays rebind keys as they open and
// close, so a key can be live in one state and inert in another.
type Bindings struct {
	handlers map[Key]Handler
}

// NewBindings returns an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{handlers: make(map[Key]Handler)}
}

// Bind attaches h to every given key, replacing any earlier handler.
func (b *Bindings) Bind(h Handler, keys ...Key) {
	for _, k := range keys {
		b.handlers[k] = h
	}
}

// Unbind detaches the given keys. Keys that are not bound are ignored.
func (b *Bindings) Unbind(keys ...Key) {
	for _, k := range keys {
		delete(b.handlers, k)
	}
}

// IsBound reports whether k currently has a handler.
func (b *Bindings) IsBound(k Key) bool {
	_, ok := b.handlers[k]
	return ok
}

// Dispatch runs the handler bound to the event's key. It returns false when
// nothing is bound.
func (b *Bindings) Dispatch(ev Event) bool {
	h, ok := b.handlers[ev.Key]
	if !ok || ev.Key == KeyNone {
		return false
	}
	h()
	return true
}

// Bound returns the set of keys that currently have a handler.
func (b *Bindings) Bound() mapset.Set[Key] {
	set := mapset.New[Key]()
	for k := range b.handlers {
		set.Put(k)
	}
	return set
}
