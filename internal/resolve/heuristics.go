package resolve

import "strings"

const (
	ecosystemTagConstant              = "mirrordna"
	fallbackDescriptionSuffixConstant = " - MirrorDNA ecosystem component"
	prototypeNameFragmentConstant     = "prototype"
	demoNameFragmentConstant          = "demo"
	exampleNameFragmentConstant       = "example"
)

// layerNamePatterns maps each layer to the repository name patterns that imply it.
type layerNamePatterns struct {
	layer    Layer
	patterns []string
}

// HeuristicTables holds the immutable name-pattern configuration consulted when
// neither metadata nor README markers resolve an attribute.
type HeuristicTables struct {
	layerPatterns    []layerNamePatterns
	stableNames      []string
	exclusionEntries []string
}

// DefaultHeuristicTables returns the fixed pattern tables for the ecosystem.
func DefaultHeuristicTables() HeuristicTables {
	return HeuristicTables{
		layerPatterns: []layerNamePatterns{
			{layer: LayerProtocol, patterns: []string{
				"MirrorDNA", "SCD-Protocol", "MirrorDNA-Standard", "LingOS",
				"mirrordna-zkp", "MirrorDNA-Lattice", "glyph-engine",
				"active-mirror-identity", "sovereign-memory", "udtp",
			}},
			{layer: LayerLanguage, patterns: []string{
				"lingos-kernel", "beacon-glyph-sdk", "LingOS",
			}},
			{layer: LayerRuntime, patterns: []string{
				"MirrorBrain", "mirrordna-mcp", "mirrordna-daemons", "mirror-registry",
				"mirrorgate", "chrysalis-bridge", "world-state-daemon", "mirror-swarm-demo",
				"mirrorswarm", "MirrorShell", "MirrorOS_Swarm", "mesh-boot-generator",
				"active-mirror-mesh", "mirrordna-automation", "mirrordna-skills",
			}},
			{layer: LayerApplication, patterns: []string{
				"activemirror-site", "MirrorBrain-Mobile", "mirrorcowork",
				"active-mirror-2050-core", "ActiveMirrorOS", "Apps",
			}},
			{layer: LayerInfrastructure, patterns: []string{
				"sc1-deployment", "sovereign-canaryd", "mirrordna-ecosystem",
				"mirror-authority", "mirror-genesis",
			}},
			{layer: LayerResearch, patterns: []string{
				"research-papers", "mirrordna-llm-optimizer", "oversight-prototype",
				"active-mirror-identity-synthesis", "mirrordna-examples", "Reflective-Ai",
				"reflex", "awesome", "crewAIInc", "langchain-ai", "mem0",
			}},
		},
		stableNames:      []string{"MirrorDNA", "SCD-Protocol", "mirrordna-mcp"},
		exclusionEntries: []string{"awesome-", "Awesome-", "langchain-ai", "crewAIInc", "mem0"},
	}
}

// GuessLayer classifies a repository name against the layer pattern tables.
// An exact case-insensitive name match anywhere in the table wins over
// substring containment; unmatched names default to the research layer.
func (tables HeuristicTables) GuessLayer(repositoryName string) Layer {
	loweredName := strings.ToLower(repositoryName)

	for _, layerEntry := range tables.layerPatterns {
		for _, pattern := range layerEntry.patterns {
			if strings.ToLower(pattern) == loweredName {
				return layerEntry.layer
			}
		}
	}

	for _, layerEntry := range tables.layerPatterns {
		for _, pattern := range layerEntry.patterns {
			if strings.Contains(loweredName, strings.ToLower(pattern)) {
				return layerEntry.layer
			}
		}
	}

	return LayerResearch
}

// GuessStatus infers repository maturity from naming conventions.
func (tables HeuristicTables) GuessStatus(repositoryName string) Status {
	loweredName := strings.ToLower(repositoryName)

	if strings.Contains(loweredName, prototypeNameFragmentConstant) || strings.Contains(loweredName, demoNameFragmentConstant) {
		return StatusAlpha
	}
	if strings.Contains(loweredName, exampleNameFragmentConstant) {
		return StatusBeta
	}
	for _, stableName := range tables.stableNames {
		if repositoryName == stableName {
			return StatusStable
		}
	}
	return StatusBeta
}

// FallbackDescription builds the template description for unresolved repositories.
func FallbackDescription(repositoryName string) string {
	return repositoryName + fallbackDescriptionSuffixConstant
}

// IsEcosystemRepository reports whether the named repository belongs to the
// published ecosystem. Vendored forks and third-party mirrors are excluded by
// name prefix or exact match.
func (tables HeuristicTables) IsEcosystemRepository(repositoryName string) bool {
	for _, exclusionEntry := range tables.exclusionEntries {
		if strings.HasPrefix(repositoryName, exclusionEntry) || repositoryName == exclusionEntry {
			return false
		}
	}
	return true
}
