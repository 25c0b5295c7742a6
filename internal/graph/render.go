package graph

import (
	"fmt"
	"strings"

	"github.com/activemirror/sitesync/internal/index"
	"github.com/activemirror/sitesync/internal/resolve"
)

const (
	canvasWidthConstant             = 1200
	canvasHeightConstant            = 800
	layerColumnTopConstant          = 100
	layerColumnHeightConstant       = 580
	repositoryBoxHeightConstant     = 40
	repositoryBoxSpacingConstant    = 50
	mermaidSubgraphRepositoryLimit  = 8
	svgColumnRepositoryLimit        = 10
	repositoryNameDisplayLimit      = 20
	fallbackLayerColorConstant      = "#9CA3AF"
	mermaidHeaderConstant           = "graph TB"
	mermaidNodeSeparatorConstant    = "_"
	repositoryNameSeparatorConstant = "-"
)

// layerColors maps every layer to its presentation color.
var layerColors = map[resolve.Layer]string{
	resolve.LayerProtocol:       "#3B82F6",
	resolve.LayerLanguage:       "#22C55E",
	resolve.LayerRuntime:        "#A855F7",
	resolve.LayerApplication:    "#F97316",
	resolve.LayerInfrastructure: "#14B8A6",
	resolve.LayerResearch:       "#EAB308",
}

// RenderMermaid produces a Mermaid graph definition from the index document.
// Repositories are grouped into per-layer subgraphs, capped for readability,
// and the edges come from the declared dependencies of ecosystem records.
func RenderMermaid(document index.Document) string {
	lines := []string{mermaidHeaderConstant}

	for _, layer := range resolve.OrderedLayers() {
		layerSummary, layerPresent := document.Layers[string(layer)]
		if !layerPresent || len(layerSummary.Repos) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("    subgraph %s", strings.ToUpper(string(layer))))
		repositoryNames := layerSummary.Repos
		if len(repositoryNames) > mermaidSubgraphRepositoryLimit {
			repositoryNames = repositoryNames[:mermaidSubgraphRepositoryLimit]
		}
		for _, repositoryName := range repositoryNames {
			lines = append(lines, fmt.Sprintf("        %s[%s]", mermaidNodeName(repositoryName), repositoryName))
		}
		lines = append(lines, "    end")
	}

	for _, record := range document.Repos {
		if !record.IsEcosystem {
			continue
		}
		for _, dependencyName := range record.Dependencies {
			lines = append(lines, fmt.Sprintf("    %s --> %s", mermaidNodeName(record.Name), mermaidNodeName(dependencyName)))
		}
	}

	return strings.Join(lines, "\n")
}

// mermaidNodeName converts a repository name into a Mermaid-safe identifier.
func mermaidNodeName(repositoryName string) string {
	return strings.ReplaceAll(repositoryName, repositoryNameSeparatorConstant, mermaidNodeSeparatorConstant)
}

// RenderSVG produces a static layer-column visualization of the index
// document. Each layer occupies one column with up to ten repository boxes;
// overflow is collapsed into a "+N more" footer per column.
func RenderSVG(document index.Document) string {
	orderedLayers := resolve.OrderedLayers()
	columnWidth := canvasWidthConstant / len(orderedLayers)

	svgParts := []string{
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">`, canvasWidthConstant, canvasHeightConstant),
		`<style>`,
		`  .layer-label { font: bold 14px sans-serif; fill: #374151; }`,
		`  .repo-label { font: 11px sans-serif; fill: #1F2937; }`,
		`  .repo-box { rx: 6; ry: 6; stroke: #E5E7EB; stroke-width: 1; }`,
		`  .legend-text { font: 12px sans-serif; fill: #374151; }`,
		`</style>`,
		`<rect width="100%" height="100%" fill="#F9FAFB"/>`,
		``,
		`<text x="600" y="40" text-anchor="middle" style="font: bold 24px sans-serif; fill: #111827;">MirrorDNA Ecosystem</text>`,
		fmt.Sprintf(`<text x="600" y="65" text-anchor="middle" style="font: 14px sans-serif; fill: #6B7280;">%d repositories | %d layers | Sovereign AI Infrastructure</text>`, document.TotalRepos, len(orderedLayers)),
		``,
	}

	for layerIndex, layer := range orderedLayers {
		columnLeft := layerIndex*columnWidth + 20
		layerSummary := document.Layers[string(layer)]
		layerColor, colorPresent := layerColors[layer]
		if !colorPresent {
			layerColor = fallbackLayerColorConstant
		}

		repositoryNames := layerSummary.Repos
		if len(repositoryNames) > svgColumnRepositoryLimit {
			repositoryNames = repositoryNames[:svgColumnRepositoryLimit]
		}

		svgParts = append(svgParts,
			fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="%s15" rx="12"/>`, columnLeft, layerColumnTopConstant, columnWidth-40, layerColumnHeightConstant, layerColor),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" class="layer-label">%s</text>`, columnLeft+(columnWidth-40)/2, layerColumnTopConstant+25, strings.ToUpper(string(layer))),
			fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" style="font: 11px sans-serif; fill: #6B7280;">%d repos</text>`, columnLeft+(columnWidth-40)/2, layerColumnTopConstant+45, layerSummary.Count),
		)

		for repositoryIndex, repositoryName := range repositoryNames {
			boxTop := layerColumnTopConstant + 60 + repositoryIndex*repositoryBoxSpacingConstant
			svgParts = append(svgParts,
				fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d" fill="white" class="repo-box"/>`, columnLeft+10, boxTop, columnWidth-60, repositoryBoxHeightConstant),
				fmt.Sprintf(`<rect x="%d" y="%d" width="4" height="%d" fill="%s" rx="2"/>`, columnLeft+10, boxTop, repositoryBoxHeightConstant, layerColor),
				fmt.Sprintf(`<text x="%d" y="%d" class="repo-label">%s</text>`, columnLeft+22, boxTop+25, displayName(repositoryName)),
			)
		}

		if layerSummary.Count > svgColumnRepositoryLimit {
			svgParts = append(svgParts,
				fmt.Sprintf(`<text x="%d" y="%d" text-anchor="middle" style="font: 11px sans-serif; fill: #9CA3AF;">+%d more</text>`, columnLeft+(columnWidth-40)/2, layerColumnTopConstant+560, layerSummary.Count-svgColumnRepositoryLimit),
			)
		}
	}

	svgParts = append(svgParts,
		``,
		`<text x="60" y="720" class="legend-text" style="font-weight: bold;">Layers:</text>`,
	)
	for layerIndex, layer := range orderedLayers {
		legendLeft := 140 + layerIndex*160
		svgParts = append(svgParts,
			fmt.Sprintf(`<rect x="%d" y="708" width="16" height="16" fill="%s" rx="3"/>`, legendLeft, layerColors[layer]),
			fmt.Sprintf(`<text x="%d" y="720" class="legend-text">%s</text>`, legendLeft+22, string(layer)),
		)
	}

	svgParts = append(svgParts,
		fmt.Sprintf(`<text x="600" y="%d" text-anchor="middle" style="font: 11px sans-serif; fill: #9CA3AF;">Generated from ecosystem-index.json | github.com/MirrorDNA-Reflection-Protocol/mirrordna-ecosystem</text>`, canvasHeightConstant-20),
		`</svg>`,
	)

	return strings.Join(svgParts, "\n")
}

// displayName truncates long repository names for the SVG boxes.
func displayName(repositoryName string) string {
	if len(repositoryName) < repositoryNameDisplayLimit {
		return repositoryName
	}
	return repositoryName[:repositoryNameDisplayLimit-3] + "..."
}
