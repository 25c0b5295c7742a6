// Package index builds the canonical ecosystem index: it enumerates the
// repositories beneath a root directory, resolves their attributes, derives
// the reverse-dependency graph and per-layer summaries, and emits the
// published index document consumed by the site and the audit tooling.
package index
