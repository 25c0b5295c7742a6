// Package metadata validates per-repository metadata.yml descriptors against
// the ecosystem schema: required keys, layer and status enumerations, the
// description length cap, dependency existence in the published index, and
// tag shape.
package metadata
