package resolve

// Layer classifies a repository within the ecosystem architecture.
type Layer string

// Supported layer values, ordered from lowest to highest level of the stack.
const (
	LayerProtocol       Layer = "protocol"
	LayerLanguage       Layer = "language"
	LayerRuntime        Layer = "runtime"
	LayerApplication    Layer = "application"
	LayerInfrastructure Layer = "infrastructure"
	LayerResearch       Layer = "research"
)

// OrderedLayers returns every layer value in canonical presentation order.
func OrderedLayers() []Layer {
	return []Layer{
		LayerProtocol,
		LayerLanguage,
		LayerRuntime,
		LayerApplication,
		LayerInfrastructure,
		LayerResearch,
	}
}

// Status captures the maturity of a repository.
type Status string

// Supported status values.
const (
	StatusAlpha      Status = "alpha"
	StatusBeta       Status = "beta"
	StatusStable     Status = "stable"
	StatusArchived   Status = "archived"
	StatusDeprecated Status = "deprecated"
)

// OrderedStatuses returns every status value in canonical presentation order.
func OrderedStatuses() []Status {
	return []Status{
		StatusAlpha,
		StatusBeta,
		StatusStable,
		StatusArchived,
		StatusDeprecated,
	}
}

// AttributeProvenance identifies which cascade tier supplied an attribute value.
type AttributeProvenance string

// Provenance values ordered by cascade priority.
const (
	ProvenanceMetadata  AttributeProvenance = "metadata"
	ProvenanceReadme    AttributeProvenance = "readme"
	ProvenanceHeuristic AttributeProvenance = "heuristic"
)

// ResolvedAttributes carries the complete attribute set for one repository.
type ResolvedAttributes struct {
	Layer        Layer
	Status       Status
	Description  string
	Dependencies []string
	Tags         []string
	HasMetadata  bool
	HasReadme    bool
}

// stringCandidate models one cascade tier's answer for a string-valued attribute.
type stringCandidate struct {
	value      string
	provenance AttributeProvenance
	resolved   bool
}

// firstResolvedString picks the highest-priority resolved candidate.
func firstResolvedString(candidates ...stringCandidate) stringCandidate {
	for _, candidate := range candidates {
		if candidate.resolved {
			return candidate
		}
	}
	return stringCandidate{}
}
