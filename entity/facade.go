package entity

import (
	"github.com/hupe1980/visitmesh/lineage"
	"github.com/hupe1980/visitmesh/typeid"
	"github.com/hupe1980/visitmesh/visitor"
)

// Binding exposes part of a foreign object as a dispatchable ancestor.
// Build bindings with BindAs.
type Binding struct {
	key  typeid.Key
	view any
}

// BindAs declares that the wrapped object can be viewed as U through the
// given pointer, typically the address of one of its fields. The binding's
// position among its siblings fixes its probe order.
func BindAs[U any](view *U) Binding {
	return Binding{key: typeid.Of[U](), view: view}
}

// Facade projects an externally owned object into the dispatch system. The
// ancestor table is authored explicitly (self first, then the bindings in
// declaration order) rather than derived, and the facade never owns the
// pointee: the caller must keep it alive for as long as the facade is used.
type Facade struct {
	name  string
	lin   lineage.Lineage
	ro    lineage.Lineage
	views map[typeid.Key]any
}

// NewFacade wraps target, binding it as its own type plus every given
// binding. Checked conversion to any bound type works through the cast
// utility, exactly as for assembled instances.
func NewFacade[T any](target *T, bindings ...Binding) *Facade {
	keys := make([]typeid.Key, 0, len(bindings)+1)
	views := make(map[typeid.Key]any, 2*(len(bindings)+1))

	bind := func(key typeid.Key, view any) {
		if _, ok := views[key]; ok {
			return
		}
		keys = append(keys, key)
		views[key] = view
		views[key.ReadOnly()] = view
	}

	bind(typeid.Of[T](), target)
	for _, b := range bindings {
		bind(b.key, b.view)
	}

	lin := lineage.Of(keys...)
	return &Facade{
		name:  typeid.Name[T](),
		lin:   lin,
		ro:    lin.ReadOnly(),
		views: views,
	}
}

// Lineage returns the mutable probe order.
func (f *Facade) Lineage() lineage.Lineage { return f.lin }

// ReadOnlyLineage returns the read-only probe order.
func (f *Facade) ReadOnlyLineage() lineage.Lineage { return f.ro }

// View returns the bound view for key, if declared.
func (f *Facade) View(key typeid.Key) (any, bool) {
	view, ok := f.views[key]
	return view, ok
}

// TypeName returns the wrapped type's display name.
func (f *Facade) TypeName() string { return f.name }

// Accept runs plain mutable dispatch against v.
func (f *Facade) Accept(v *visitor.Visitor) error {
	return visitor.Dispatch(f, v)
}

// AcceptReadOnly runs plain read-only dispatch against v.
func (f *Facade) AcceptReadOnly(v *visitor.Visitor) error {
	return visitor.DispatchReadOnly(f, v)
}

// AcceptRecursive runs recursive mutable dispatch against v.
func (f *Facade) AcceptRecursive(v *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursive(f, v)
}

// AcceptRecursiveReadOnly runs recursive read-only dispatch against v.
func (f *Facade) AcceptRecursiveReadOnly(v *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursiveReadOnly(f, v)
}
