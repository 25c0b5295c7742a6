package audit

import "strings"

const (
	configurationInventoryKeyConstant = "inventory"
	configurationReposKeyConstant     = "repos"
	defaultInventoryPathConstant      = "inventory.json"
	defaultRepositoriesRootConstant   = "~/repos"
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	Inventory string `mapstructure:"inventory"`
	Repos     string `mapstructure:"repos"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Inventory: defaultInventoryPathConstant,
		Repos:     defaultRepositoriesRootConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the audit command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationInventoryKeyConstant: defaults.Inventory,
		rootKey + "." + configurationReposKeyConstant:     defaults.Repos,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Inventory = strings.TrimSpace(configuration.Inventory)
	if len(sanitized.Inventory) == 0 {
		sanitized.Inventory = defaultInventoryPathConstant
	}

	sanitized.Repos = strings.TrimSpace(configuration.Repos)
	if len(sanitized.Repos) == 0 {
		sanitized.Repos = defaultRepositoriesRootConstant
	}

	return sanitized
}
