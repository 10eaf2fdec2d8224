// Package visitmesh provides a high-level façade over the dispatch engine
// and entity declarations, enabling ancestor-aware multiple dispatch and
// checked casts without runtime type queries. Most applications interact
// with this package by:
//  1. Declaring entity kinds (entity.Root, entity.Derive, entity.Join,
//     entity.SharedJoin) or wrapping foreign data (entity.NewFacade,
//     entity.NewValue)
//  2. Composing visitors from per-type handlers (For, Recurse and their
//     read-only counterparts)
//  3. Dispatching entities against visitors, or casting them to concrete
//     ancestor types
//
// The façade re-exports the common surface of the visitor package so simple
// programs need only one import. Hierarchies can additionally be authored in
// YAML documents (see the hierarchy package and cmd/visitctl).
package visitmesh

import "github.com/hupe1980/visitmesh/visitor"

// Re-exported visitor types for single-import usage.
type (
	// Visitor is a fixed bundle of plain handlers.
	Visitor = visitor.Visitor
	// RecursiveVisitor is a fixed bundle of recursive handlers.
	RecursiveVisitor = visitor.RecursiveVisitor
	// Handler is a single-type capability of a plain visitor.
	Handler = visitor.Handler
	// RecursiveHandler is a single-type capability of a recursive visitor.
	RecursiveHandler = visitor.RecursiveHandler
	// Visitable is any dispatch participant.
	Visitable = visitor.Visitable
	// Engine walks ancestor tables against visitor bundles.
	Engine = visitor.Engine
	// IncompatibleVisitorError reports an exhausted ancestor table.
	IncompatibleVisitorError = visitor.IncompatibleVisitorError
)

// New composes a plain visitor from the given handlers.
func New(handlers ...Handler) *Visitor { return visitor.New(handlers...) }

// NewRecursive composes a recursive visitor from the given handlers.
func NewRecursive(handlers ...RecursiveHandler) *RecursiveVisitor {
	return visitor.NewRecursive(handlers...)
}

// For declares a plain handler for mutable views of T.
func For[T any](fn func(*T) error) Handler { return visitor.For[T](fn) }

// ForReadOnly declares a plain handler for read-only views of T.
func ForReadOnly[T any](fn func(*T) error) Handler { return visitor.ForReadOnly[T](fn) }

// Recurse declares a recursive handler for mutable views of T.
func Recurse[T any](fn func(*T) (stop bool, err error)) RecursiveHandler {
	return visitor.Recurse[T](fn)
}

// RecurseReadOnly declares a recursive handler for read-only views of T.
func RecurseReadOnly[T any](fn func(*T) (stop bool, err error)) RecursiveHandler {
	return visitor.RecurseReadOnly[T](fn)
}

// Dispatch runs plain mutable dispatch on the default engine.
func Dispatch(target Visitable, v *Visitor) error { return visitor.Dispatch(target, v) }

// DispatchReadOnly runs plain read-only dispatch on the default engine.
func DispatchReadOnly(target Visitable, v *Visitor) error {
	return visitor.DispatchReadOnly(target, v)
}

// DispatchRecursive runs recursive mutable dispatch on the default engine.
func DispatchRecursive(target Visitable, v *RecursiveVisitor) error {
	return visitor.DispatchRecursive(target, v)
}

// DispatchRecursiveReadOnly runs recursive read-only dispatch on the default
// engine.
func DispatchRecursiveReadOnly(target Visitable, v *RecursiveVisitor) error {
	return visitor.DispatchRecursiveReadOnly(target, v)
}

// Cast attempts to view target as a mutable T, returning nil on a miss.
func Cast[T any](target Visitable) *T { return visitor.Cast[T](target) }

// CastRef is the failing form of Cast.
func CastRef[T any](target Visitable) (*T, error) { return visitor.CastRef[T](target) }

// CastReadOnly attempts to view target as a read-only T.
func CastReadOnly[T any](target Visitable) *T { return visitor.CastReadOnly[T](target) }

// CastRefReadOnly is the failing form of CastReadOnly.
func CastRefReadOnly[T any](target Visitable) (*T, error) {
	return visitor.CastRefReadOnly[T](target)
}

// IsIncompatibleVisitor reports whether err is (or wraps) an
// IncompatibleVisitorError.
func IsIncompatibleVisitor(err error) bool { return visitor.IsIncompatibleVisitor(err) }
