// Package plugin defines the plugin contract, the name-keyed registry,
// and dependency resolution. Resolve computes an application order where
// every plugin follows all of its transitive dependencies; cycle
// detection is built into the ordering itself and cannot be skipped.
package plugin
