package graph

import "strings"

const (
	configurationIndexKeyConstant     = "index"
	configurationOutputDirKeyConstant = "output_dir"
	defaultIndexPathConstant          = "ecosystem-index.json"
	defaultOutputDirectoryConstant    = "assets"
)

// CommandConfiguration captures persistent settings for the graph command.
type CommandConfiguration struct {
	Index     string `mapstructure:"index"`
	OutputDir string `mapstructure:"output_dir"`
}

// DefaultCommandConfiguration returns baseline configuration values for the graph command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Index:     defaultIndexPathConstant,
		OutputDir: defaultOutputDirectoryConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the graph command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationIndexKeyConstant:     defaults.Index,
		rootKey + "." + configurationOutputDirKeyConstant: defaults.OutputDir,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Index = strings.TrimSpace(configuration.Index)
	if len(sanitized.Index) == 0 {
		sanitized.Index = defaultIndexPathConstant
	}

	sanitized.OutputDir = strings.TrimSpace(configuration.OutputDir)
	if len(sanitized.OutputDir) == 0 {
		sanitized.OutputDir = defaultOutputDirectoryConstant
	}

	return sanitized
}
