// Package sourcefs provides the read-only filesystem access used by the index
// builder and the audit engine: existence probes, bounded text reads, stable
// directory enumeration, glob matching, and recursive markdown discovery with
// ignorable directories pruned.
package sourcefs
