package index

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/activemirror/sitesync/internal/resolve"
	"github.com/activemirror/sitesync/internal/sourcefs"
	pathutils "github.com/activemirror/sitesync/internal/utils/path"
)

const (
	commandNameConstant             = "index"
	commandShortDescriptionConstant = "Scan the repositories root and write the ecosystem index"
	commandLongDescriptionConstant  = "index resolves every repository's attributes, derives the dependency graph, and writes the published ecosystem-index.json document."
	flagRootNameConstant            = "root"
	flagRootDescriptionConstant     = "Repositories root directory to scan."
	flagOutputNameConstant          = "output"
	flagOutputDescriptionConstant   = "Path of the index document to write."
	scanningMessageConstant         = "Scanning repos...\n"
	scanTotalsTemplateConstant      = "Found %d total repos, %d ecosystem repos\n"
	documentWrittenTemplateConstant = "\nWrote %s\n"
	layerSummaryHeaderConstant      = "\nLayer summary:\n"
	layerSummaryRowTemplateConstant = "  %s: %d repos\n"
	missingMetadataHeaderTemplate   = "\nRepos missing metadata.yml (%d):\n"
	missingMetadataRowTemplate      = "  - %s\n"
	missingMetadataOverflowTemplate = "  ... and %d more\n"
	missingMetadataDisplayCap       = 10
	documentWriteErrorTemplate      = "unable to write index document: %w"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted index configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the index cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Clock                 Clock
}

// Build constructs the cobra command for index generation.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagRootNameConstant, "", flagRootDescriptionConstant)
	command.Flags().String(flagOutputNameConstant, "", flagOutputDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	rootFlagValue, _ := command.Flags().GetString(flagRootNameConstant)
	outputFlagValue, _ := command.Flags().GetString(flagOutputNameConstant)

	rootSanitizer := pathutils.NewRootPathSanitizer()
	rootDirectory := rootSanitizer.Sanitize(rootFlagValue, configuration.Root)

	outputPath := outputFlagValue
	if len(outputPath) == 0 {
		outputPath = configuration.Output
	}

	logger := builder.resolveLogger()
	reader := sourcefs.NewReader()
	resolver := resolve.NewResolver(reader, resolve.DefaultHeuristicTables(), logger)
	indexBuilder := NewBuilder(reader, resolver, logger)

	fmt.Fprint(command.OutOrStdout(), scanningMessageConstant)

	result, buildError := indexBuilder.Build(rootDirectory)
	if buildError != nil {
		return buildError
	}

	fmt.Fprintf(command.OutOrStdout(), scanTotalsTemplateConstant, len(result.AllRecords), len(result.EcosystemRecords))

	document := AssembleDocument(result, configuration.Counts, builder.Clock)
	if writeError := WriteDocument(document, outputPath); writeError != nil {
		return fmt.Errorf(documentWriteErrorTemplate, writeError)
	}

	fmt.Fprintf(command.OutOrStdout(), documentWrittenTemplateConstant, outputPath)

	fmt.Fprint(command.OutOrStdout(), layerSummaryHeaderConstant)
	for _, layer := range resolve.OrderedLayers() {
		summary := result.Layers[string(layer)]
		fmt.Fprintf(command.OutOrStdout(), layerSummaryRowTemplateConstant, layer, summary.Count)
	}

	builder.printMissingMetadata(command, result.MissingMetadata)

	return nil
}

func (builder *CommandBuilder) printMissingMetadata(command *cobra.Command, missingNames []string) {
	if len(missingNames) == 0 {
		return
	}

	fmt.Fprintf(command.OutOrStdout(), missingMetadataHeaderTemplate, len(missingNames))
	displayedNames := missingNames
	if len(displayedNames) > missingMetadataDisplayCap {
		displayedNames = displayedNames[:missingMetadataDisplayCap]
	}
	for _, missingName := range displayedNames {
		fmt.Fprintf(command.OutOrStdout(), missingMetadataRowTemplate, missingName)
	}
	if len(missingNames) > missingMetadataDisplayCap {
		fmt.Fprintf(command.OutOrStdout(), missingMetadataOverflowTemplate, len(missingNames)-missingMetadataDisplayCap)
	}
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().sanitize()
}
