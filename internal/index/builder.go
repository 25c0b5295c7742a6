package index

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/activemirror/sitesync/internal/resolve"
)

const (
	rootMissingWarningMessageConstant = "repositories root not found"
	logFieldRootDirectoryConstant     = "root_directory"
	buildCompletedMessageConstant     = "index build completed"
	logFieldScannedCountConstant      = "scanned_repositories"
	logFieldEcosystemCountConstant    = "ecosystem_repositories"
)

// DirectoryLister enumerates the immediate subdirectories of a root.
type DirectoryLister interface {
	FileExists(candidatePath string) bool
	ListSubdirectories(rootDirectory string) ([]string, error)
}

// AttributeResolver resolves the descriptive attributes of one repository.
type AttributeResolver interface {
	Resolve(repositoryPath string, repositoryName string) resolve.ResolvedAttributes
	Tables() resolve.HeuristicTables
}

// Builder assembles repository records and derives the dependency graph.
type Builder struct {
	lister   DirectoryLister
	resolver AttributeResolver
	logger   *zap.Logger
}

// NewBuilder constructs a Builder over the provided collaborators.
func NewBuilder(lister DirectoryLister, resolver AttributeResolver, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		lister:   lister,
		resolver: resolver,
		logger:   logger,
	}
}

// Build scans rootDirectory and produces the full build result. A missing root
// yields an empty result with a warning rather than an error; every run
// rebuilds the record set from a fresh read of disk state.
func (builder *Builder) Build(rootDirectory string) (BuildResult, error) {
	emptyResult := BuildResult{
		AllRecords:       []RepositoryRecord{},
		EcosystemRecords: []RepositoryRecord{},
		Layers:           emptyLayerSummaries(),
		MissingMetadata:  []string{},
	}

	if !builder.lister.FileExists(rootDirectory) {
		builder.logger.Warn(rootMissingWarningMessageConstant, zap.String(logFieldRootDirectoryConstant, rootDirectory))
		return emptyResult, nil
	}

	repositoryNames, listError := builder.lister.ListSubdirectories(rootDirectory)
	if listError != nil {
		builder.logger.Warn(rootMissingWarningMessageConstant, zap.String(logFieldRootDirectoryConstant, rootDirectory))
		return emptyResult, nil
	}

	allRecords := make([]RepositoryRecord, 0, len(repositoryNames))
	for _, repositoryName := range repositoryNames {
		repositoryPath := filepath.Join(rootDirectory, repositoryName)
		attributes := builder.resolver.Resolve(repositoryPath, repositoryName)

		record := RepositoryRecord{
			Name:                repositoryName,
			URL:                 fmt.Sprintf(repositoryURLTemplateConstant, repositoryName),
			LocalPath:           repositoryPath,
			HasMetadata:         attributes.HasMetadata,
			HasReadme:           attributes.HasReadme,
			IsEcosystem:         builder.resolver.Tables().IsEcosystemRepository(repositoryName),
			Layer:               attributes.Layer,
			Status:              attributes.Status,
			ShortDescription:    attributes.Description,
			Dependencies:        attributes.Dependencies,
			Tags:                attributes.Tags,
			Visibility:          repositoryVisibilityConstant,
			ReverseDependencies: []string{},
		}
		allRecords = append(allRecords, record)
	}

	ecosystemRecords := make([]RepositoryRecord, 0, len(allRecords))
	for _, record := range allRecords {
		if record.IsEcosystem {
			ecosystemRecords = append(ecosystemRecords, record)
		}
	}

	linkReverseDependencies(ecosystemRecords)

	result := BuildResult{
		AllRecords:       allRecords,
		EcosystemRecords: ecosystemRecords,
		Layers:           buildLayerSummaries(ecosystemRecords),
		MissingMetadata:  collectMissingMetadata(ecosystemRecords),
	}

	builder.logger.Info(
		buildCompletedMessageConstant,
		zap.String(logFieldRootDirectoryConstant, rootDirectory),
		zap.Int(logFieldScannedCountConstant, len(allRecords)),
		zap.Int(logFieldEcosystemCountConstant, len(ecosystemRecords)),
	)

	return result, nil
}

// linkReverseDependencies appends each declaring record's name onto its
// targets in enumeration order. Declared multiplicity is preserved, so a
// dependency listed twice yields two reverse entries; dangling names are
// ignored.
func linkReverseDependencies(records []RepositoryRecord) {
	recordPositions := make(map[string]int, len(records))
	for recordIndex := range records {
		recordPositions[records[recordIndex].Name] = recordIndex
	}

	for recordIndex := range records {
		for _, dependencyName := range records[recordIndex].Dependencies {
			targetIndex, targetExists := recordPositions[dependencyName]
			if !targetExists {
				continue
			}
			records[targetIndex].ReverseDependencies = append(records[targetIndex].ReverseDependencies, records[recordIndex].Name)
		}
	}
}

func buildLayerSummaries(records []RepositoryRecord) map[string]LayerSummary {
	summaries := make(map[string]LayerSummary, len(resolve.OrderedLayers()))
	for _, layer := range resolve.OrderedLayers() {
		memberNames := []string{}
		for _, record := range records {
			if record.Layer == layer {
				memberNames = append(memberNames, record.Name)
			}
		}
		summaries[string(layer)] = LayerSummary{
			Count: len(memberNames),
			Repos: memberNames,
		}
	}
	return summaries
}

func emptyLayerSummaries() map[string]LayerSummary {
	return buildLayerSummaries(nil)
}

func collectMissingMetadata(records []RepositoryRecord) []string {
	missingNames := []string{}
	for _, record := range records {
		if !record.HasMetadata {
			missingNames = append(missingNames, record.Name)
		}
	}
	return missingNames
}
