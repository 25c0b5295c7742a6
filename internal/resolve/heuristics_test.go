package resolve_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/activemirror/sitesync/internal/resolve"
)

func TestGuessLayerPatternTable(testInstance *testing.T) {
	testCases := []struct {
		name           string
		repositoryName string
		expectedLayer  resolve.Layer
	}{
		{
			name:           "exact_match_case_insensitive",
			repositoryName: "mirrordna",
			expectedLayer:  resolve.LayerProtocol,
		},
		{
			name:           "exact_match_beats_substring_in_earlier_layer",
			repositoryName: "lingos-kernel",
			expectedLayer:  resolve.LayerLanguage,
		},
		{
			name:           "substring_containment",
			repositoryName: "MirrorBrain-experiments",
			expectedLayer:  resolve.LayerRuntime,
		},
		{
			name:           "unknown_name_defaults_to_research",
			repositoryName: "totally-unrelated",
			expectedLayer:  resolve.LayerResearch,
		},
		{
			name:           "infrastructure_substring",
			repositoryName: "sc1-deployment-tools",
			expectedLayer:  resolve.LayerInfrastructure,
		},
	}

	tables := resolve.DefaultHeuristicTables()
	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedLayer, tables.GuessLayer(testCase.repositoryName))
		})
	}
}

func TestGuessStatusNamingRules(testInstance *testing.T) {
	testCases := []struct {
		name           string
		repositoryName string
		expectedStatus resolve.Status
	}{
		{
			name:           "prototype_maps_to_alpha",
			repositoryName: "oversight-Prototype",
			expectedStatus: resolve.StatusAlpha,
		},
		{
			name:           "demo_maps_to_alpha",
			repositoryName: "mirror-swarm-demo",
			expectedStatus: resolve.StatusAlpha,
		},
		{
			name:           "example_maps_to_beta",
			repositoryName: "mirrordna-examples",
			expectedStatus: resolve.StatusBeta,
		},
		{
			name:           "known_stable_name",
			repositoryName: "SCD-Protocol",
			expectedStatus: resolve.StatusStable,
		},
		{
			name:           "default_is_beta",
			repositoryName: "mirrorgate",
			expectedStatus: resolve.StatusBeta,
		},
	}

	tables := resolve.DefaultHeuristicTables()
	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedStatus, tables.GuessStatus(testCase.repositoryName))
		})
	}
}

func TestIsEcosystemRepositoryExclusions(testInstance *testing.T) {
	testCases := []struct {
		name           string
		repositoryName string
		expected       bool
	}{
		{name: "prefix_excluded", repositoryName: "awesome-agents", expected: false},
		{name: "capitalized_prefix_excluded", repositoryName: "Awesome-Lists", expected: false},
		{name: "exact_excluded", repositoryName: "mem0", expected: false},
		{name: "fork_excluded", repositoryName: "langchain-ai", expected: false},
		{name: "ecosystem_repository_included", repositoryName: "MirrorDNA", expected: true},
	}

	tables := resolve.DefaultHeuristicTables()
	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, tables.IsEcosystemRepository(testCase.repositoryName))
		})
	}
}
