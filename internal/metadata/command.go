package metadata

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/activemirror/sitesync/internal/index"
	"github.com/activemirror/sitesync/internal/sourcefs"
	pathutils "github.com/activemirror/sitesync/internal/utils/path"
)

const (
	commandNameConstant              = "validate"
	commandShortDescriptionConstant  = "Validate metadata.yml descriptors across the repositories root"
	commandLongDescriptionConstant   = "validate checks every repository's metadata.yml against the ecosystem schema and reports per-repository results."
	flagRootNameConstant             = "root"
	flagRootDescriptionConstant      = "Repositories root directory to scan."
	flagIndexNameConstant            = "index"
	flagIndexDescriptionConstant     = "Path of the published index used to verify dependency names."
	metadataFileNameConstant         = "metadata.yml"
	validatingHeaderConstant         = "Validating metadata.yml files...\n\n"
	repositoryPassTemplateConstant   = "[OK]   %s\n"
	repositoryFailTemplateConstant   = "[FAIL] %s\n"
	violationRowTemplateConstant     = "       - %s\n"
	summarySeparatorConstant         = "\n==================================================\n"
	summaryCheckedTemplateConstant   = "Checked: %d repos\n"
	summaryErrorsTemplateConstant    = "Errors:  %d\n"
	summaryFailedTemplateConstant    = "Failed:  %d repos\n"
	allValidMessageConstant          = "\nAll metadata files valid!\n"
	validationFailedTemplateConstant = "metadata validation failed for %d repositories"
	indexLoadWarningMessageConstant  = "published index unavailable, dependency checks skipped"
	logFieldIndexPathConstant        = "index_path"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandConfiguration captures persistent settings for the validate command.
type CommandConfiguration struct {
	Root  string `mapstructure:"root"`
	Index string `mapstructure:"index"`
}

// DefaultCommandConfiguration returns baseline configuration values for the validate command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Root:  "~/repos",
		Index: "ecosystem-index.json",
	}
}

// DefaultConfigurationValues produces Viper defaults for the validate command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + flagRootNameConstant:  defaults.Root,
		rootKey + "." + flagIndexNameConstant: defaults.Index,
	}
}

// ConfigurationProvider supplies the persisted validate configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the validate cobra command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the cobra command for metadata validation.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(flagRootNameConstant, "", flagRootDescriptionConstant)
	command.Flags().String(flagIndexNameConstant, "", flagIndexDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	rootFlagValue, _ := command.Flags().GetString(flagRootNameConstant)
	indexFlagValue, _ := command.Flags().GetString(flagIndexNameConstant)

	rootSanitizer := pathutils.NewRootPathSanitizer()
	rootDirectory := rootSanitizer.Sanitize(rootFlagValue, configuration.Root)

	indexPath := strings.TrimSpace(indexFlagValue)
	if len(indexPath) == 0 {
		indexPath = configuration.Index
	}

	validator := NewValidator(builder.loadKnownRepositories(indexPath))
	reader := sourcefs.NewReader()

	repositoryNames, listError := reader.ListSubdirectories(rootDirectory)
	if listError != nil {
		repositoryNames = nil
	}

	fmt.Fprint(command.OutOrStdout(), validatingHeaderConstant)

	checkedCount := 0
	violationCount := 0
	failedRepositories := []string{}

	for _, repositoryName := range repositoryNames {
		metadataPath := filepath.Join(rootDirectory, repositoryName, metadataFileNameConstant)
		if !reader.FileExists(metadataPath) {
			continue
		}

		metadataContents, readError := reader.ReadText(metadataPath)
		if readError != nil {
			continue
		}

		checkedCount++
		violations := validator.ValidateDocument([]byte(metadataContents))
		if len(violations) == 0 {
			fmt.Fprintf(command.OutOrStdout(), repositoryPassTemplateConstant, repositoryName)
			continue
		}

		violationCount += len(violations)
		failedRepositories = append(failedRepositories, repositoryName)
		fmt.Fprintf(command.OutOrStdout(), repositoryFailTemplateConstant, repositoryName)
		for _, violation := range violations {
			fmt.Fprintf(command.OutOrStdout(), violationRowTemplateConstant, violation)
		}
	}

	fmt.Fprint(command.OutOrStdout(), summarySeparatorConstant)
	fmt.Fprintf(command.OutOrStdout(), summaryCheckedTemplateConstant, checkedCount)
	fmt.Fprintf(command.OutOrStdout(), summaryErrorsTemplateConstant, violationCount)
	fmt.Fprintf(command.OutOrStdout(), summaryFailedTemplateConstant, len(failedRepositories))

	if len(failedRepositories) > 0 {
		return fmt.Errorf(validationFailedTemplateConstant, len(failedRepositories))
	}

	fmt.Fprint(command.OutOrStdout(), allValidMessageConstant)
	return nil
}

// loadKnownRepositories reads the published index when available; a missing or
// unreadable index only disables dependency existence checks.
func (builder *CommandBuilder) loadKnownRepositories(indexPath string) []string {
	document, readError := index.ReadDocument(indexPath)
	if readError != nil {
		builder.resolveLogger().Warn(indexLoadWarningMessageConstant, zap.String(logFieldIndexPathConstant, indexPath))
		return nil
	}

	repositoryNames := make([]string, 0, len(document.Repos))
	for _, record := range document.Repos {
		repositoryNames = append(repositoryNames, record.Name)
	}
	return repositoryNames
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

	configuration := builder.ConfigurationProvider()
	if len(strings.TrimSpace(configuration.Root)) == 0 {
		configuration.Root = DefaultCommandConfiguration().Root
	}
	if len(strings.TrimSpace(configuration.Index)) == 0 {
		configuration.Index = DefaultCommandConfiguration().Index
	}
	return configuration
}
