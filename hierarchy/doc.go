// Package hierarchy loads entity hierarchies declared in YAML documents and
// computes the same ancestor tables the programmatic API derives for Go
// types, keyed by declared name instead.
//
// A document lists one declaration per entity kind:
//
//	entities:
//	  - name: A
//	    kind: root
//	  - name: C
//	    kind: derived
//	    parent: A
//	  - name: D
//	    kind: shared_join
//	    parents: [A, B]
//
// Declarations may reference parents declared later in the document; cycles,
// duplicates and unknown parents are rejected at load time. join and
// shared_join produce identical ancestor tables - sharing affects instance
// storage, which a document-level table has none of.
//
// The resulting Table is used for validation and tooling (see cmd/visitctl):
// it can print probe orders and simulate which declared type a plain or
// recursive dispatch would select.
package hierarchy
