package audit

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	repositoryMissingDebugMessageConstant = "repository directory missing, skipped"
	repositoryAuditedDebugMessageConstant = "repository audited"
	logFieldRepositoryConstant            = "repository"
	logFieldCategoryConstant              = "category"
	globMarkerConstant                    = "*"
)

// brandingKeyFilePatterns lists the files checked for branding drift in each
// repository; entries containing a glob marker are expanded per repository.
var brandingKeyFilePatterns = []string{
	"README.md",
	"index.html",
	"src/App.jsx",
	"src/pages/*.jsx",
	"package.json",
}

// freshnessKeyFiles lists the files checked for stale statistics and dates.
var freshnessKeyFiles = []string{"README.md", "index.html"}

// linkIgnoredDirectoryNames lists directory names pruned from markdown discovery.
var linkIgnoredDirectoryNames = []string{"node_modules", ".git", "vendor", "__pycache__", ".venv", "venv"}

// FileReader abstracts the filesystem access the engine depends on.
type FileReader interface {
	FileExists(candidatePath string) bool
	ReadText(filePath string) (string, error)
	Glob(baseDirectory string, pattern string) []string
	WalkMarkdownFiles(rootDirectory string, ignoredDirectoryNames []string) []string
}

// RunScope selects which analyzer families participate in a run.
type RunScope struct {
	Branding bool
	Stats    bool
	Links    bool
}

// FullScope returns a scope with every analyzer family enabled.
func FullScope() RunScope {
	return RunScope{Branding: true, Stats: true, Links: true}
}

// Service drives the analyzers across every repository in the inventory.
type Service struct {
	reader    FileReader
	branding  *BrandingAnalyzer
	freshness *FreshnessAnalyzer
	links     *LinkAnalyzer
	logger    *zap.Logger
	clock     Clock
}

// NewService constructs a Service using the provided dependencies.
func NewService(reader FileReader, branding *BrandingAnalyzer, freshness *FreshnessAnalyzer, links *LinkAnalyzer, logger *zap.Logger, clock Clock) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{
		reader:    reader,
		branding:  branding,
		freshness: freshness,
		links:     links,
		logger:    logger,
		clock:     clock,
	}
}

// Run audits every repository named in the inventory beneath repositoriesRoot
// and aggregates the findings into one report. Categories are visited in
// lexicographic order and repositories in their declared order so finding
// order is reproducible across runs.
func (service *Service) Run(inventory Inventory, repositoriesRoot string, scope RunScope) Report {
	report := Report{
		Timestamp:          service.clock.Now().Format(time.RFC3339),
		BrandingViolations: []Finding{},
		StaleStats:         []Finding{},
		BrokenLinks:        []Finding{},
		HealthIssues:       []Finding{},
	}

	categoryNames := make([]string, 0, len(inventory.Repos))
	for categoryName := range inventory.Repos {
		categoryNames = append(categoryNames, categoryName)
	}
	sort.Strings(categoryNames)

	for _, categoryName := range categoryNames {
		for _, repositoryName := range inventory.Repos[categoryName] {
			repositoryPath := filepath.Join(repositoriesRoot, repositoryName)
			if !service.reader.FileExists(repositoryPath) {
				service.logger.Debug(
					repositoryMissingDebugMessageConstant,
					zap.String(logFieldCategoryConstant, categoryName),
					zap.String(logFieldRepositoryConstant, repositoryName),
				)
				continue
			}

			if scope.Branding {
				report.BrandingViolations = append(report.BrandingViolations, service.auditBranding(repositoryPath)...)
			}
			if scope.Stats {
				report.StaleStats = append(report.StaleStats, service.auditFreshness(repositoryPath)...)
			}
			if scope.Links {
				report.BrokenLinks = append(report.BrokenLinks, service.auditLinks(repositoryPath)...)
			}

			service.logger.Debug(
				repositoryAuditedDebugMessageConstant,
				zap.String(logFieldCategoryConstant, categoryName),
				zap.String(logFieldRepositoryConstant, repositoryName),
			)
		}
	}

	report.Summary = summarizeReport(report)
	return report
}

// auditBranding scans the repository's key files, expanding glob patterns.
func (service *Service) auditBranding(repositoryPath string) []Finding {
	findings := []Finding{}

	for _, keyFilePattern := range brandingKeyFilePatterns {
		var candidatePaths []string
		if strings.Contains(keyFilePattern, globMarkerConstant) {
			candidatePaths = service.reader.Glob(repositoryPath, keyFilePattern)
		} else {
			candidatePaths = []string{filepath.Join(repositoryPath, keyFilePattern)}
		}

		for _, candidatePath := range candidatePaths {
			if !service.reader.FileExists(candidatePath) {
				continue
			}
			fileText, readError := service.reader.ReadText(candidatePath)
			if readError != nil {
				continue
			}
			findings = append(findings, service.branding.Scan(candidatePath, fileText)...)
		}
	}

	return findings
}

func (service *Service) auditFreshness(repositoryPath string) []Finding {
	findings := []Finding{}

	for _, keyFileName := range freshnessKeyFiles {
		candidatePath := filepath.Join(repositoryPath, keyFileName)
		if !service.reader.FileExists(candidatePath) {
			continue
		}
		fileText, readError := service.reader.ReadText(candidatePath)
		if readError != nil {
			continue
		}
		findings = append(findings, service.freshness.Scan(candidatePath, fileText)...)
	}

	return findings
}

func (service *Service) auditLinks(repositoryPath string) []Finding {
	findings := []Finding{}

	for _, markdownPath := range service.reader.WalkMarkdownFiles(repositoryPath, linkIgnoredDirectoryNames) {
		fileText, readError := service.reader.ReadText(markdownPath)
		if readError != nil {
			continue
		}
		extractedLinks := service.links.ExtractLinks(fileText)
		findings = append(findings, service.links.Validate(extractedLinks, filepath.Dir(markdownPath))...)
	}

	return findings
}

// summarizeReport derives the per-category counts and the overall status.
// Stale statistics and dates are advisory: only branding violations and
// broken links fail the audit.
func summarizeReport(report Report) ReportSummary {
	status := ReportStatusPass
	if len(report.BrandingViolations) > 0 || len(report.BrokenLinks) > 0 {
		status = ReportStatusIssuesFound
	}

	return ReportSummary{
		BrandingViolations: len(report.BrandingViolations),
		StaleStats:         len(report.StaleStats),
		BrokenLinks:        len(report.BrokenLinks),
		HealthIssues:       len(report.HealthIssues),
		Status:             status,
	}
}
