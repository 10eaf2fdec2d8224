// Package entity declares the object kinds that participate in visitor
// dispatch and assembles instances of them.
//
// Kinds are declared once, at package init time, and describe composition
// rather than inheritance:
//
//	var (
//		KindShape  = entity.Root[Shape]()
//		KindCircle = entity.Derive[Circle](KindShape)
//		KindLabel  = entity.Root[Label]()
//		KindBadge  = entity.SharedJoin[Badge](KindCircle, KindLabel)
//	)
//
// A kind owns two fixed ancestor tables (mutable and read-only) computed
// from its parents, and a recipe for allocating per-ancestor state. New()
// builds an instance: one sub-object per reachable ancestor, wired into a
// view table keyed by type. For a plain Join, parents keep independent
// sub-objects and a type reachable through several parents is backed by the
// first one the declaration-order scan reaches. For a SharedJoin, such a
// diamond collapses to a single shared sub-object - the difference is object
// identity, never dispatch order.
//
// Facade wraps an externally owned pointer with an author-declared ancestor
// table (it never owns the pointee), and Value projects a plain value into
// the dispatch system with explicit converted views. Empty participates with
// zero ancestors.
package entity
