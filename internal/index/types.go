package index

import (
	"time"

	"github.com/activemirror/sitesync/internal/resolve"
)

const (
	repositoryURLTemplateConstant  = "https://github.com/MirrorDNA-Reflection-Protocol/%s"
	repositoryVisibilityConstant   = "public"
	defaultDocumentVersionConstant = "2026-01"
	defaultTotalRepositoryCount    = 87
	defaultPublicRepositoryCount   = 60
	defaultPrivateRepositoryCount  = 27
)

// RepositoryRecord describes one scanned repository in the published index.
type RepositoryRecord struct {
	Name                string         `json:"name"`
	URL                 string         `json:"url"`
	LocalPath           string         `json:"local_path"`
	HasMetadata         bool           `json:"has_metadata"`
	HasReadme           bool           `json:"has_readme"`
	IsEcosystem         bool           `json:"is_ecosystem"`
	Layer               resolve.Layer  `json:"layer"`
	Status              resolve.Status `json:"status"`
	ShortDescription    string         `json:"short_description"`
	Dependencies        []string       `json:"dependencies"`
	Tags                []string       `json:"tags"`
	Visibility          string         `json:"visibility"`
	ReverseDependencies []string       `json:"reverse_dependencies"`
}

// LayerSummary aggregates the ecosystem membership of one layer.
type LayerSummary struct {
	Count int      `json:"count"`
	Repos []string `json:"repos"`
}

// ExternalCounts carries the index statistics supplied by configuration
// rather than derived from the scan. Private repositories never appear on
// local disk, so the totals cannot be computed here.
type ExternalCounts struct {
	Version             string `mapstructure:"version"`
	TotalRepositories   int    `mapstructure:"total_repos"`
	PublicRepositories  int    `mapstructure:"public_repos"`
	PrivateRepositories int    `mapstructure:"private_repos"`
}

// DefaultExternalCounts returns the currently published ecosystem totals.
func DefaultExternalCounts() ExternalCounts {
	return ExternalCounts{
		Version:             defaultDocumentVersionConstant,
		TotalRepositories:   defaultTotalRepositoryCount,
		PublicRepositories:  defaultPublicRepositoryCount,
		PrivateRepositories: defaultPrivateRepositoryCount,
	}
}

// Document is the published ecosystem index.
type Document struct {
	Version      string                  `json:"version"`
	Generated    string                  `json:"generated"`
	TotalRepos   int                     `json:"total_repos"`
	LocalRepos   int                     `json:"local_repos"`
	PublicRepos  int                     `json:"public_repos"`
	PrivateRepos int                     `json:"private_repos"`
	Repos        []RepositoryRecord      `json:"repos"`
	Layers       map[string]LayerSummary `json:"layers"`
}

// BuildResult captures the outcome of one index build pass.
type BuildResult struct {
	AllRecords       []RepositoryRecord
	EcosystemRecords []RepositoryRecord
	Layers           map[string]LayerSummary
	MissingMetadata  []string
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
