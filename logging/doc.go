// Package logging provides a minimal logging interface and adapters for
// visitmesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the dispatch engine uses for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	engine := visitor.NewEngine(func(o *visitor.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
