// Package typeid issues stable, process-unique identity keys for Go types.
//
// A Key is an opaque comparable value: the same type always yields the same
// key and distinct types never alias. Keys come in two flavors per type, a
// mutable key (Of) and a read-only twin (ReadOnlyOf). The two flavors form
// disjoint key spaces, which is how the dispatch layer keeps mutable and
// read-only probe paths apart without language-level const support.
//
// Keys can also be minted from plain names (Named) for hierarchies that are
// declared in documents rather than as Go types. Reflection is used here for
// identity and display names only; nothing else in the module inspects types
// at runtime.
package typeid
