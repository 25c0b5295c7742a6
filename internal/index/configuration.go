package index

import "strings"

const (
	configurationRootKeyConstant      = "root"
	configurationOutputKeyConstant    = "output"
	configurationVersionKeyConstant   = "counts.version"
	configurationTotalKeyConstant     = "counts.total_repos"
	configurationPublicKeyConstant    = "counts.public_repos"
	configurationPrivateKeyConstant   = "counts.private_repos"
	defaultRepositoriesRootConstant   = "~/repos"
	defaultIndexOutputPathConstant    = "ecosystem-index.json"
	configurationKeySeparatorConstant = "."
)

// CommandConfiguration captures persistent settings for the index command.
type CommandConfiguration struct {
	Root   string         `mapstructure:"root"`
	Output string         `mapstructure:"output"`
	Counts ExternalCounts `mapstructure:"counts"`
}

// DefaultCommandConfiguration returns baseline configuration values for the index command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Root:   defaultRepositoriesRootConstant,
		Output: defaultIndexOutputPathConstant,
		Counts: DefaultExternalCounts(),
	}
}

// DefaultConfigurationValues produces Viper defaults for the index command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationRootKeyConstant:    defaults.Root,
		rootKey + configurationKeySeparatorConstant + configurationOutputKeyConstant:  defaults.Output,
		rootKey + configurationKeySeparatorConstant + configurationVersionKeyConstant: defaults.Counts.Version,
		rootKey + configurationKeySeparatorConstant + configurationTotalKeyConstant:   defaults.Counts.TotalRepositories,
		rootKey + configurationKeySeparatorConstant + configurationPublicKeyConstant:  defaults.Counts.PublicRepositories,
		rootKey + configurationKeySeparatorConstant + configurationPrivateKeyConstant: defaults.Counts.PrivateRepositories,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Root = strings.TrimSpace(configuration.Root)
	if len(sanitized.Root) == 0 {
		sanitized.Root = defaultRepositoriesRootConstant
	}

	sanitized.Output = strings.TrimSpace(configuration.Output)
	if len(sanitized.Output) == 0 {
		sanitized.Output = defaultIndexOutputPathConstant
	}

	if len(strings.TrimSpace(sanitized.Counts.Version)) == 0 {
		sanitized.Counts.Version = defaultDocumentVersionConstant
	}

	return sanitized
}
