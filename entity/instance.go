package entity

import (
	"github.com/hupe1980/visitmesh/lineage"
	"github.com/hupe1980/visitmesh/typeid"
	"github.com/hupe1980/visitmesh/visitor"
)

// Instance is a live entity assembled by a Kind. It owns one sub-object per
// reachable ancestor and implements visitor.Visitable. Instances are created
// and destroyed by the surrounding program; the dispatch machinery never
// takes ownership.
type Instance[T any] struct {
	kind  *Kind[T]
	self  *T
	views map[typeid.Key]any
}

// Self returns the instance's own (most derived) state.
func (i *Instance[T]) Self() *T { return i.self }

// Kind returns the declaring kind.
func (i *Instance[T]) Kind() *Kind[T] { return i.kind }

// Lineage returns the mutable probe order.
func (i *Instance[T]) Lineage() lineage.Lineage { return i.kind.lin }

// ReadOnlyLineage returns the read-only probe order.
func (i *Instance[T]) ReadOnlyLineage() lineage.Lineage { return i.kind.ro }

// View returns the sub-object backing key, if key is part of the ancestor
// table.
func (i *Instance[T]) View(key typeid.Key) (any, bool) {
	view, ok := i.views[key]
	return view, ok
}

// TypeName returns the kind's display name.
func (i *Instance[T]) TypeName() string { return i.kind.name }

// Accept runs plain mutable dispatch against v.
func (i *Instance[T]) Accept(v *visitor.Visitor) error {
	return visitor.Dispatch(i, v)
}

// AcceptReadOnly runs plain read-only dispatch against v.
func (i *Instance[T]) AcceptReadOnly(v *visitor.Visitor) error {
	return visitor.DispatchReadOnly(i, v)
}

// AcceptRecursive runs recursive mutable dispatch against v.
func (i *Instance[T]) AcceptRecursive(v *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursive(i, v)
}

// AcceptRecursiveReadOnly runs recursive read-only dispatch against v.
func (i *Instance[T]) AcceptRecursiveReadOnly(v *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursiveReadOnly(i, v)
}
