// Package lineage computes the ordered, deduplicated ancestor tables that
// drive visitor dispatch.
//
// A Lineage lists the type keys an entity can be matched against, most
// derived first, each key exactly once. Lineages are structural data: they
// are fixed when an entity kind is declared and never change afterwards,
// which makes them freely shareable across goroutines.
//
// Every entry carries a depth. Roots sit at depth 0 and each derivation step
// pushes the new self one level above everything below it. Merging the
// lineages of several parents (for join kinds) walks the parent tables left
// to right and inserts entries by depth: an entry that is already present at
// the same or a greater depth is skipped, a shallower duplicate is lifted to
// its deeper position, and entries of equal depth keep their first-arrival
// order. The result is a total, deterministic probe order even for diamond
// shaped hierarchies.
package lineage
