package resolve

import "go.uber.org/zap"

const (
	resolverDebugMessageConstant    = "repository attributes resolved"
	logFieldRepositoryNameConstant  = "repository_name"
	logFieldResolvedLayerConstant   = "layer"
	logFieldResolvedStatusConstant  = "status"
	logFieldMetadataPresentConstant = "has_metadata"
	logFieldReadmePresentConstant   = "has_readme"
)

// SourceReader abstracts the filesystem probes the resolver depends on.
type SourceReader interface {
	FileExists(candidatePath string) bool
	ReadText(filePath string) (string, error)
	ReadTextPrefix(filePath string, prefixLength int) (string, error)
}

// Resolver computes repository attributes via the metadata, README, and
// heuristic cascade. Resolve is total: every attribute receives a value.
type Resolver struct {
	reader     SourceReader
	heuristics HeuristicTables
	logger     *zap.Logger
}

// NewResolver constructs a Resolver over the provided reader and tables.
func NewResolver(reader SourceReader, heuristics HeuristicTables, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		reader:     reader,
		heuristics: heuristics,
		logger:     logger,
	}
}

// Tables exposes the heuristic configuration the resolver was built with.
func (resolver *Resolver) Tables() HeuristicTables {
	return resolver.heuristics
}

// Resolve produces the complete attribute set for one repository. Each
// attribute is settled independently by the highest-priority source that
// answers for it.
func (resolver *Resolver) Resolve(repositoryPath string, repositoryName string) ResolvedAttributes {
	metadata, hasMetadata := resolver.readRepositoryMetadata(repositoryPath)
	readmeInfo := resolver.extractReadmeInfo(repositoryPath)

	layerCandidateFromMetadata := stringCandidate{provenance: ProvenanceMetadata}
	if hasMetadata {
		if layerValue, layerPresent := metadata.stringValue(metadataLayerKeyConstant); layerPresent {
			layerCandidateFromMetadata = stringCandidate{value: layerValue, provenance: ProvenanceMetadata, resolved: true}
		}
	}

	resolvedLayer := firstResolvedString(
		layerCandidateFromMetadata,
		stringCandidate{value: readmeInfo.layer, provenance: ProvenanceReadme, resolved: len(readmeInfo.layer) > 0},
		stringCandidate{value: string(resolver.heuristics.GuessLayer(repositoryName)), provenance: ProvenanceHeuristic, resolved: true},
	)

	statusCandidateFromMetadata := stringCandidate{provenance: ProvenanceMetadata}
	if hasMetadata {
		if statusValue, statusPresent := metadata.stringValue(metadataStatusKeyConstant); statusPresent {
			statusCandidateFromMetadata = stringCandidate{value: statusValue, provenance: ProvenanceMetadata, resolved: true}
		}
	}

	resolvedStatus := firstResolvedString(
		statusCandidateFromMetadata,
		stringCandidate{value: readmeInfo.status, provenance: ProvenanceReadme, resolved: len(readmeInfo.status) > 0},
		stringCandidate{value: string(resolver.heuristics.GuessStatus(repositoryName)), provenance: ProvenanceHeuristic, resolved: true},
	)

	descriptionCandidateFromMetadata := stringCandidate{provenance: ProvenanceMetadata}
	if hasMetadata {
		if descriptionValue, descriptionPresent := metadata.stringValue(metadataShortDescriptionKeyConstant); descriptionPresent {
			descriptionCandidateFromMetadata = stringCandidate{value: descriptionValue, provenance: ProvenanceMetadata, resolved: true}
		}
	}

	resolvedDescription := firstResolvedString(
		descriptionCandidateFromMetadata,
		stringCandidate{value: readmeInfo.description, provenance: ProvenanceReadme, resolved: len(readmeInfo.description) > 0},
		stringCandidate{value: FallbackDescription(repositoryName), provenance: ProvenanceHeuristic, resolved: true},
	)

	dependencies := []string{}
	if hasMetadata {
		if dependencyValues, dependenciesPresent := metadata.stringSliceValue(metadataDependenciesKeyConstant); dependenciesPresent {
			dependencies = dependencyValues
		}
	}

	tags := []string{resolvedLayer.value, ecosystemTagConstant}
	if hasMetadata {
		if tagValues, tagsPresent := metadata.stringSliceValue(metadataTagsKeyConstant); tagsPresent {
			tags = tagValues
		}
	}

	attributes := ResolvedAttributes{
		Layer:        Layer(resolvedLayer.value),
		Status:       Status(resolvedStatus.value),
		Description:  resolvedDescription.value,
		Dependencies: dependencies,
		Tags:         tags,
		HasMetadata:  hasMetadata,
		HasReadme:    readmeInfo.hasReadme,
	}

	resolver.logger.Debug(
		resolverDebugMessageConstant,
		zap.String(logFieldRepositoryNameConstant, repositoryName),
		zap.String(logFieldResolvedLayerConstant, string(attributes.Layer)),
		zap.String(logFieldResolvedStatusConstant, string(attributes.Status)),
		zap.Bool(logFieldMetadataPresentConstant, attributes.HasMetadata),
		zap.Bool(logFieldReadmePresentConstant, attributes.HasReadme),
	)

	return attributes
}
