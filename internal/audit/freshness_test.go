package audit_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/activemirror/sitesync/internal/audit"
)

func newFreshnessAnalyzer() *audit.FreshnessAnalyzer {
	return audit.NewFreshnessAnalyzer(audit.DefaultStatRules(), audit.DefaultDatePatterns())
}

func TestFreshnessStatisticChecks(testInstance *testing.T) {
	testCases := []struct {
		name          string
		fileText      string
		expectedCount int
		expectedStat  string
		expectedFound int
	}{
		{
			name:          "stale_repo_count",
			fileText:      "The ecosystem spans 42 repos across six layers.",
			expectedCount: 1,
			expectedStat:  "repo_count",
			expectedFound: 42,
		},
		{
			name:          "expected_repo_count_passes",
			fileText:      "The ecosystem spans 88 repos across six layers.",
			expectedCount: 0,
		},
		{
			name:          "dynamic_statistics_never_emit",
			fileText:      "Over 9000 users and 12 seeds created, 345 downloads.",
			expectedCount: 0,
		},
		{
			name:          "first_match_only",
			fileText:      "10 repos today, 20 repos tomorrow.",
			expectedCount: 1,
			expectedStat:  "repo_count",
			expectedFound: 10,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			findings := newFreshnessAnalyzer().Scan("README.md", testCase.fileText)
			require.Len(testInstance, findings, testCase.expectedCount)
			if testCase.expectedCount == 1 {
				require.Equal(testInstance, audit.FindingKindStaleStat, findings[0].Kind)
				require.Equal(testInstance, testCase.expectedStat, findings[0].Stat)
				require.NotNil(testInstance, findings[0].Found)
				require.Equal(testInstance, testCase.expectedFound, *findings[0].Found)
				require.NotNil(testInstance, findings[0].Expected)
				require.Equal(testInstance, 88, *findings[0].Expected)
			}
		})
	}
}

func TestFreshnessDateChecks(testInstance *testing.T) {
	testCases := []struct {
		name          string
		fileText      string
		expectedCount int
	}{
		{
			name:          "month_year_without_current_year",
			fileText:      "Last updated March 2024.",
			expectedCount: 1,
		},
		{
			name:          "iso_date_without_current_year",
			fileText:      "Released 2023-11-05.",
			expectedCount: 1,
		},
		{
			name:          "old_date_with_current_year_elsewhere",
			fileText:      "Archive of March 2024 notes, refreshed for 2026.",
			expectedCount: 0,
		},
		{
			name:          "multiple_matching_patterns_emit_once",
			fileText:      "March 2024 and 2023-11-05 both appear.",
			expectedCount: 1,
		},
		{
			name:          "no_dates_no_finding",
			fileText:      "Nothing dated here.",
			expectedCount: 0,
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			findings := newFreshnessAnalyzer().Scan("README.md", testCase.fileText)
			require.Len(testInstance, findings, testCase.expectedCount)
			if testCase.expectedCount == 1 {
				require.Equal(testInstance, audit.FindingKindStaleDate, findings[0].Kind)
				require.Equal(testInstance, "Contains old dates, may need updating", findings[0].Message)
			}
		})
	}
}
