package index_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/activemirror/sitesync/internal/index"
	"github.com/activemirror/sitesync/internal/resolve"
	"github.com/activemirror/sitesync/internal/sourcefs"
)

type fixedClock struct {
	instant time.Time
}

func (clock fixedClock) Now() time.Time {
	return clock.instant
}

func newTestBuilder() *index.Builder {
	reader := sourcefs.NewReader()
	resolver := resolve.NewResolver(reader, resolve.DefaultHeuristicTables(), nil)
	return index.NewBuilder(reader, resolver, nil)
}

func writeRepository(testInstance *testing.T, rootDirectory string, repositoryName string, metadataContents string) {
	testInstance.Helper()
	repositoryPath := filepath.Join(rootDirectory, repositoryName)
	require.NoError(testInstance, os.MkdirAll(repositoryPath, 0o755))
	if len(metadataContents) > 0 {
		require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, "metadata.yml"), []byte(metadataContents), 0o644))
	}
}

func TestBuildReverseDependencyInversion(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeRepository(testInstance, rootDirectory, "MirrorDNA", "layer: protocol\n")
	writeRepository(testInstance, rootDirectory, "MirrorBrain", "layer: runtime\ndependencies: [MirrorDNA, MirrorDNA]\n")
	writeRepository(testInstance, rootDirectory, "mirrorgate", "layer: runtime\ndependencies: [MirrorDNA, ghost-repo]\n")

	result, buildError := newTestBuilder().Build(rootDirectory)
	require.NoError(testInstance, buildError)

	recordsByName := map[string]index.RepositoryRecord{}
	for _, record := range result.EcosystemRecords {
		recordsByName[record.Name] = record
	}

	// Declared multiplicity is preserved and ordering follows enumeration order.
	require.Equal(testInstance, []string{"MirrorBrain", "MirrorBrain", "mirrorgate"}, recordsByName["MirrorDNA"].ReverseDependencies)
	require.Empty(testInstance, recordsByName["MirrorBrain"].ReverseDependencies)
	require.Empty(testInstance, recordsByName["mirrorgate"].ReverseDependencies)
}

func TestBuildLayerSummariesPartitionEcosystemRecords(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeRepository(testInstance, rootDirectory, "MirrorDNA", "layer: protocol\n")
	writeRepository(testInstance, rootDirectory, "MirrorBrain", "layer: runtime\n")
	writeRepository(testInstance, rootDirectory, "activemirror-site", "layer: application\n")
	writeRepository(testInstance, rootDirectory, "awesome-agents", "")

	result, buildError := newTestBuilder().Build(rootDirectory)
	require.NoError(testInstance, buildError)

	memberTotal := 0
	seenNames := map[string]int{}
	for _, layer := range resolve.OrderedLayers() {
		summary := result.Layers[string(layer)]
		require.Equal(testInstance, len(summary.Repos), summary.Count)
		memberTotal += summary.Count
		for _, memberName := range summary.Repos {
			seenNames[memberName]++
		}
	}

	// The union over all layers is exactly the ecosystem record set.
	require.Equal(testInstance, len(result.EcosystemRecords), memberTotal)
	for _, record := range result.EcosystemRecords {
		require.Equal(testInstance, 1, seenNames[record.Name])
	}
	require.NotContains(testInstance, seenNames, "awesome-agents")
}

func TestBuildExcludedRepositoriesRetainedForDiagnostics(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeRepository(testInstance, rootDirectory, "MirrorDNA", "")
	writeRepository(testInstance, rootDirectory, "mem0", "")

	result, buildError := newTestBuilder().Build(rootDirectory)
	require.NoError(testInstance, buildError)

	require.Len(testInstance, result.AllRecords, 2)
	require.Len(testInstance, result.EcosystemRecords, 1)
	require.Equal(testInstance, "MirrorDNA", result.EcosystemRecords[0].Name)
}

func TestBuildMissingRootYieldsEmptyResult(testInstance *testing.T) {
	result, buildError := newTestBuilder().Build(filepath.Join(testInstance.TempDir(), "does-not-exist"))
	require.NoError(testInstance, buildError)
	require.Empty(testInstance, result.AllRecords)
	require.Empty(testInstance, result.EcosystemRecords)
	for _, layer := range resolve.OrderedLayers() {
		require.Zero(testInstance, result.Layers[string(layer)].Count)
	}
}

func TestBuildIsIdempotentAcrossRuns(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeRepository(testInstance, rootDirectory, "MirrorDNA", "layer: protocol\nstatus: stable\n")
	writeRepository(testInstance, rootDirectory, "MirrorBrain", "layer: runtime\ndependencies: [MirrorDNA]\n")

	builder := newTestBuilder()
	firstResult, firstError := builder.Build(rootDirectory)
	require.NoError(testInstance, firstError)
	secondResult, secondError := builder.Build(rootDirectory)
	require.NoError(testInstance, secondError)

	require.Equal(testInstance, firstResult, secondResult)
}

func TestAssembleDocumentUsesExternalCounts(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeRepository(testInstance, rootDirectory, "MirrorDNA", "")
	writeRepository(testInstance, rootDirectory, "mem0", "")

	result, buildError := newTestBuilder().Build(rootDirectory)
	require.NoError(testInstance, buildError)

	clock := fixedClock{instant: time.Date(2026, time.February, 3, 4, 5, 6, 0, time.UTC)}
	document := index.AssembleDocument(result, index.DefaultExternalCounts(), clock)

	require.Equal(testInstance, "2026-01", document.Version)
	require.Equal(testInstance, "2026-02-03T04:05:06Z", document.Generated)
	require.Equal(testInstance, 87, document.TotalRepos)
	require.Equal(testInstance, 60, document.PublicRepos)
	require.Equal(testInstance, 27, document.PrivateRepos)
	require.Equal(testInstance, 2, document.LocalRepos)
	require.Len(testInstance, document.Repos, 1)
}

func TestWriteAndReadDocumentRoundTrip(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeRepository(testInstance, rootDirectory, "MirrorDNA", "layer: protocol\n")

	result, buildError := newTestBuilder().Build(rootDirectory)
	require.NoError(testInstance, buildError)

	document := index.AssembleDocument(result, index.DefaultExternalCounts(), fixedClock{instant: time.Now()})
	outputPath := filepath.Join(testInstance.TempDir(), "ecosystem-index.json")
	require.NoError(testInstance, index.WriteDocument(document, outputPath))

	loadedDocument, readError := index.ReadDocument(outputPath)
	require.NoError(testInstance, readError)
	require.Equal(testInstance, document.Version, loadedDocument.Version)
	require.Len(testInstance, loadedDocument.Repos, 1)
	require.Equal(testInstance, "MirrorDNA", loadedDocument.Repos[0].Name)
}
