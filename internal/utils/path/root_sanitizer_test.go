package pathutils_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/activemirror/sitesync/internal/utils/path"
)

func TestRootPathSanitizerSanitize(testInstance *testing.T) {
	homeExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "/home/tester", nil
	})
	sanitizer := pathutils.NewRootPathSanitizerWithExpander(homeExpander)

	testCases := []struct {
		name          string
		candidatePath string
		fallbackPath  string
		expectedPath  string
	}{
		{name: "candidate_preferred", candidatePath: "/srv/repos", fallbackPath: "~/repos", expectedPath: "/srv/repos"},
		{name: "blank_candidate_uses_fallback", candidatePath: "   ", fallbackPath: "/var/repos", expectedPath: "/var/repos"},
		{name: "tilde_expanded", candidatePath: "~/repos", fallbackPath: "", expectedPath: "/home/tester/repos"},
		{name: "bare_tilde_expanded", candidatePath: "~", fallbackPath: "", expectedPath: "/home/tester"},
		{name: "both_blank_yields_empty", candidatePath: "", fallbackPath: " ", expectedPath: ""},
		{name: "whitespace_trimmed", candidatePath: "  /srv/repos  ", fallbackPath: "", expectedPath: "/srv/repos"},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedPath, sanitizer.Sanitize(testCase.candidatePath, testCase.fallbackPath))
		})
	}
}

func TestHomeExpanderFallsBackWhenLookupFails(testInstance *testing.T) {
	failingExpander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
		return "", fmt.Errorf("no home directory")
	})

	require.Equal(testInstance, "~/repos", failingExpander.Expand("~/repos"))
}
