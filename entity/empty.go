package entity

import (
	"github.com/hupe1980/visitmesh/lineage"
	"github.com/hupe1980/visitmesh/typeid"
	"github.com/hupe1980/visitmesh/visitor"
)

// Empty participates in dispatch with zero ancestors: plain dispatch always
// fails with IncompatibleVisitorError and recursive dispatch trivially
// succeeds without invoking anything.
type Empty struct{}

// Lineage returns the empty probe order.
func (Empty) Lineage() lineage.Lineage { return lineage.Lineage{} }

// ReadOnlyLineage returns the empty probe order.
func (Empty) ReadOnlyLineage() lineage.Lineage { return lineage.Lineage{} }

// View always reports no view.
func (Empty) View(typeid.Key) (any, bool) { return nil, false }

// TypeName returns the display name used in dispatch errors.
func (Empty) TypeName() string { return "entity.Empty" }

// Accept always fails with IncompatibleVisitorError.
func (e Empty) Accept(v *visitor.Visitor) error {
	return visitor.Dispatch(e, v)
}

// AcceptReadOnly always fails with IncompatibleVisitorError.
func (e Empty) AcceptReadOnly(v *visitor.Visitor) error {
	return visitor.DispatchReadOnly(e, v)
}

// AcceptRecursive succeeds without invoking anything.
func (e Empty) AcceptRecursive(v *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursive(e, v)
}

// AcceptRecursiveReadOnly succeeds without invoking anything.
func (e Empty) AcceptRecursiveReadOnly(v *visitor.RecursiveVisitor) error {
	return visitor.DispatchRecursiveReadOnly(e, v)
}
