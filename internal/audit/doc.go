// Package audit implements the content audit engine for ecosystem
// properties. Three independent analyzers scan repository files for branding
// drift, stale statistics and dates, and broken relative links; the engine
// drives them across every repository named in the inventory document and
// aggregates their findings into a single report with a pass/fail status.
package audit
