// Package visitor implements ancestor-aware visitor dispatch and checked
// casts over declared entity hierarchies.
//
// A Visitor bundles per-type handlers; a key lookup decides in O(1) whether
// a given ancestor is handled. The Engine walks an entity's ancestor table
// front to back (most derived first) against that bundle:
//
//   - Plain dispatch invokes the first handled ancestor and stops. If no
//     ancestor is handled the dispatch fails with IncompatibleVisitorError.
//   - Recursive dispatch invokes every handled ancestor until a handler
//     signals stop. Exhausting the table without any invocation is a legal,
//     silent success.
//
// Handlers come in mutable (For, Recurse) and read-only (ForReadOnly,
// RecurseReadOnly) flavors. Mutable dispatch probes an entity's mutable
// ancestor keys and can therefore only ever select mutable handlers; the
// read-only call shapes probe the read-only twin keys. The two paths never
// cross.
//
// Cast and friends recover a concrete typed view of an entity. They are a
// thin layer over recursive dispatch: a one-shot visitor whose only
// capability is the target type records the view's address and stops. The
// pointer forms return nil on a miss; the reference forms return an
// IncompatibleVisitorError.
//
// The engine never owns entities or visitors, holds no mutable state and is
// fully reentrant: a handler may dispatch again, on the same or another
// entity.
package visitor
