package graph

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/activemirror/sitesync/internal/index"
)

const (
	commandNameConstant             = "graph"
	commandShortDescriptionConstant = "Render the ecosystem index as an SVG diagram and a Mermaid definition"
	commandLongDescriptionConstant  = "graph reads the published ecosystem index and writes a layer-column SVG visualization plus a Mermaid graph definition into the output directory."
	flagIndexNameConstant           = "index"
	flagIndexDescriptionConstant    = "Path to the ecosystem index document."
	flagOutputNameConstant          = "output-dir"
	flagOutputDescriptionConstant   = "Directory receiving the rendered artifacts."
	svgFileNameConstant             = "ecosystem-graph.svg"
	mermaidFileNameConstant         = "ecosystem-graph.mmd"
	loadingIndexMessageConstant     = "Loading ecosystem index..."
	renderingMessageConstant        = "Generating SVG..."
	wroteFileTemplateConstant       = "Wrote %s\n"
	outputDirectoryErrorTemplate    = "unable to create output directory %s: %w"
	artifactWriteErrorTemplate      = "unable to write %s: %w"
	artifactFilePermissionsConstant = 0o644
	outputDirectoryPermissions      = 0o755
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted graph configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the graph cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the cobra command for the graph renderer.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagIndexNameConstant, "", flagIndexDescriptionConstant)
	command.Flags().String(flagOutputNameConstant, "", flagOutputDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	indexFlagValue, _ := command.Flags().GetString(flagIndexNameConstant)
	outputFlagValue, _ := command.Flags().GetString(flagOutputNameConstant)

	indexPath := indexFlagValue
	if len(indexPath) == 0 {
		indexPath = configuration.Index
	}
	outputDirectory := outputFlagValue
	if len(outputDirectory) == 0 {
		outputDirectory = configuration.OutputDir
	}

	fmt.Fprintln(command.OutOrStdout(), loadingIndexMessageConstant)
	document, readError := index.ReadDocument(indexPath)
	if readError != nil {
		return readError
	}

	fmt.Fprintln(command.OutOrStdout(), renderingMessageConstant)
	if directoryError := os.MkdirAll(outputDirectory, outputDirectoryPermissions); directoryError != nil {
		return fmt.Errorf(outputDirectoryErrorTemplate, outputDirectory, directoryError)
	}

	svgPath := filepath.Join(outputDirectory, svgFileNameConstant)
	if writeError := os.WriteFile(svgPath, []byte(RenderSVG(document)), artifactFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(artifactWriteErrorTemplate, svgPath, writeError)
	}
	fmt.Fprintf(command.OutOrStdout(), wroteFileTemplateConstant, svgPath)

	mermaidPath := filepath.Join(outputDirectory, mermaidFileNameConstant)
	if writeError := os.WriteFile(mermaidPath, []byte(RenderMermaid(document)), artifactFilePermissionsConstant); writeError != nil {
		return fmt.Errorf(artifactWriteErrorTemplate, mermaidPath, writeError)
	}
	fmt.Fprintf(command.OutOrStdout(), wroteFileTemplateConstant, mermaidPath)

	builder.resolveLogger().Debug("graph artifacts rendered", zap.String("index", indexPath), zap.String("output", outputDirectory))
	return nil
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
