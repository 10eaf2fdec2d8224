package visitor

import "github.com/hupe1980/visitmesh/typeid"

// Handler is a single-type capability of a plain visitor: "handle exactly
// this type". Build handlers with For (mutable view) or ForReadOnly.
type Handler struct {
	key   typeid.Key
	visit func(view any) error
}

// Key returns the type key the handler is registered for.
func (h Handler) Key() typeid.Key { return h.key }

// For declares a plain handler for mutable views of T. The handler receives
// the entity's T sub-object and may mutate it. A returned error propagates
// unmodified out of the dispatch call.
func For[T any](fn func(*T) error) Handler {
	return Handler{
		key: typeid.Of[T](),
		visit: func(view any) error {
			return fn(view.(*T))
		},
	}
}

// ForReadOnly declares a plain handler for read-only views of T. The handler
// receives the same sub-object address as its mutable counterpart would;
// treating it as read-only is part of the contract.
func ForReadOnly[T any](fn func(*T) error) Handler {
	return Handler{
		key: typeid.ReadOnlyOf[T](),
		visit: func(view any) error {
			return fn(view.(*T))
		},
	}
}

// Visitor is a fixed bundle of plain handlers with O(1) capability lookup.
// It carries no entity state and may be reused across any number of
// dispatch calls. A match always terminates the ancestor scan.
type Visitor struct {
	handlers map[typeid.Key]func(view any) error
}

// New composes a plain visitor from the given handlers. A later handler for
// an already declared key replaces the earlier one.
func New(handlers ...Handler) *Visitor {
	v := &Visitor{handlers: make(map[typeid.Key]func(view any) error, len(handlers))}
	for _, h := range handlers {
		v.handlers[h.key] = h.visit
	}
	return v
}

// Handles reports whether the visitor has a capability for key.
func (v *Visitor) Handles(key typeid.Key) bool {
	_, ok := v.handlers[key]
	return ok
}

func (v *Visitor) handlerFor(key typeid.Key) (func(view any) error, bool) {
	fn, ok := v.handlers[key]
	return fn, ok
}

// RecursiveHandler is a single-type capability of a recursive visitor. Its
// function additionally decides whether the ancestor scan should stop.
type RecursiveHandler struct {
	key   typeid.Key
	visit func(view any) (stop bool, err error)
}

// Key returns the type key the handler is registered for.
func (h RecursiveHandler) Key() typeid.Key { return h.key }

// Recurse declares a recursive handler for mutable views of T. Returning
// stop=true ends the scan; stop=false keeps probing further ancestors. An
// error ends the scan and propagates unmodified.
func Recurse[T any](fn func(*T) (stop bool, err error)) RecursiveHandler {
	return RecursiveHandler{
		key: typeid.Of[T](),
		visit: func(view any) (bool, error) {
			return fn(view.(*T))
		},
	}
}

// RecurseReadOnly declares a recursive handler for read-only views of T.
func RecurseReadOnly[T any](fn func(*T) (stop bool, err error)) RecursiveHandler {
	return RecursiveHandler{
		key: typeid.ReadOnlyOf[T](),
		visit: func(view any) (bool, error) {
			return fn(view.(*T))
		},
	}
}

// RecursiveVisitor is a fixed bundle of recursive handlers. Unlike a plain
// visitor it visits every handled ancestor until one signals stop, and a
// scan that matches nothing is a silent success.
type RecursiveVisitor struct {
	handlers map[typeid.Key]func(view any) (bool, error)
}

// NewRecursive composes a recursive visitor from the given handlers. A later
// handler for an already declared key replaces the earlier one.
func NewRecursive(handlers ...RecursiveHandler) *RecursiveVisitor {
	v := &RecursiveVisitor{handlers: make(map[typeid.Key]func(view any) (bool, error), len(handlers))}
	for _, h := range handlers {
		v.handlers[h.key] = h.visit
	}
	return v
}

// Handles reports whether the visitor has a capability for key.
func (v *RecursiveVisitor) Handles(key typeid.Key) bool {
	_, ok := v.handlers[key]
	return ok
}

func (v *RecursiveVisitor) handlerFor(key typeid.Key) (func(view any) (bool, error), bool) {
	fn, ok := v.handlers[key]
	return fn, ok
}
