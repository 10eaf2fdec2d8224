// Package testutil contains the shared fixture hierarchy and visitor
// builders used across tests to reduce boilerplate. The fixture family
// (A, B, X roots; C derived; D, E, F shared joins) exercises every merge
// rule including diamonds and nested joins. These helpers are intentionally
// minimal and are not intended for production usage.
package testutil
