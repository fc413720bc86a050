// Package orchestrator coordinates the full generation pipeline: load
// the template, materialize its files, then resolve and apply the
// requested plugins in dependency order. It applies sensible defaults
// while remaining open to dependency injection for advanced callers.
package orchestrator
