// Package resolve determines the descriptive attributes of a scanned
// repository through a three-tier cascade: a structured metadata.yml
// descriptor, marker extraction from a README document, and finally
// name-pattern heuristics. Each attribute is resolved independently, so a
// repository may take its layer from metadata while its description comes
// from the README.
package resolve
