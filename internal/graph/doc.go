// Package graph renders the published ecosystem index as an SVG layer
// diagram and a Mermaid definition.
package graph
