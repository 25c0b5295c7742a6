package audit

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/activemirror/sitesync/internal/sourcefs"
	pathutils "github.com/activemirror/sitesync/internal/utils/path"
)

const (
	commandNameConstant              = "audit"
	commandShortDescriptionConstant  = "Audit ecosystem properties for branding, freshness, and link issues"
	commandLongDescriptionConstant   = "audit scans every repository listed in the inventory for branding drift, stale statistics, and broken relative links, then prints an aggregate report."
	flagLinksNameConstant            = "links"
	flagLinksDescriptionConstant     = "Run the link check only."
	flagBrandingNameConstant         = "branding"
	flagBrandingDescriptionConstant  = "Run the branding audit only."
	flagStatsNameConstant            = "stats"
	flagStatsDescriptionConstant     = "Run the stats freshness check only."
	flagJSONNameConstant             = "json"
	flagJSONDescriptionConstant      = "Output the report as JSON."
	flagReposNameConstant            = "repos"
	flagReposDescriptionConstant     = "Path to the repositories root directory."
	flagInventoryNameConstant        = "inventory"
	flagInventoryDescriptionConstant = "Path to the inventory document."
	auditFailedTemplateConstant      = "audit status: %s"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Clock                 Clock
}

// Build constructs the cobra command for the content audit.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().Bool(flagLinksNameConstant, false, flagLinksDescriptionConstant)
	command.Flags().Bool(flagBrandingNameConstant, false, flagBrandingDescriptionConstant)
	command.Flags().Bool(flagStatsNameConstant, false, flagStatsDescriptionConstant)
	command.Flags().Bool(flagJSONNameConstant, false, flagJSONDescriptionConstant)
	command.Flags().String(flagReposNameConstant, "", flagReposDescriptionConstant)
	command.Flags().String(flagInventoryNameConstant, "", flagInventoryDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	linksFlag, _ := command.Flags().GetBool(flagLinksNameConstant)
	brandingFlag, _ := command.Flags().GetBool(flagBrandingNameConstant)
	statsFlag, _ := command.Flags().GetBool(flagStatsNameConstant)
	jsonFlag, _ := command.Flags().GetBool(flagJSONNameConstant)
	reposFlagValue, _ := command.Flags().GetString(flagReposNameConstant)
	inventoryFlagValue, _ := command.Flags().GetString(flagInventoryNameConstant)

	inventoryPath := inventoryFlagValue
	if len(inventoryPath) == 0 {
		inventoryPath = configuration.Inventory
	}

	rootSanitizer := pathutils.NewRootPathSanitizer()
	repositoriesRoot := rootSanitizer.Sanitize(reposFlagValue, configuration.Repos)

	inventory, inventoryError := LoadInventory(inventoryPath)
	if inventoryError != nil {
		return inventoryError
	}

	scope := resolveScope(linksFlag, brandingFlag, statsFlag)

	reader := sourcefs.NewReader()
	service := NewService(
		reader,
		NewBrandingAnalyzer(DefaultBrandingRules(), inventory.Branding),
		NewFreshnessAnalyzer(DefaultStatRules(), DefaultDatePatterns()),
		NewLinkAnalyzer(reader),
		builder.resolveLogger(),
		builder.Clock,
	)

	report := service.Run(inventory, repositoriesRoot, scope)

	if jsonFlag {
		if writeError := WriteJSONReport(command.OutOrStdout(), report); writeError != nil {
			return writeError
		}
	} else {
		WriteConsoleReport(command.OutOrStdout(), report)
	}

	if report.Summary.Status != ReportStatusPass {
		return fmt.Errorf(auditFailedTemplateConstant, report.Summary.Status)
	}
	return nil
}

// resolveScope enables every analyzer family unless at least one scope flag
// narrows the run.
func resolveScope(linksFlag bool, brandingFlag bool, statsFlag bool) RunScope {
	if !linksFlag && !brandingFlag && !statsFlag {
		return FullScope()
	}
	return RunScope{
		Branding: brandingFlag,
		Stats:    statsFlag,
		Links:    linksFlag,
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
