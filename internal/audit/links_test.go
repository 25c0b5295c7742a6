package audit_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/activemirror/sitesync/internal/audit"
	"github.com/activemirror/sitesync/internal/sourcefs"
)

func newLinkAnalyzer() *audit.LinkAnalyzer {
	return audit.NewLinkAnalyzer(sourcefs.NewReader())
}

func TestExtractLinksCollectionOrderAndCodeStripping(testInstance *testing.T) {
	fileText := "<a href=\"page.html\">x</a>\n" +
		"[guide](docs/guide.md)\n" +
		"[guide again](docs/guide.md)\n" +
		"<Link to=\"/dashboard\">Go</Link>\n" +
		"```\n[ignored](inside/fence.md)\n```\n" +
		"and `[inline](inside/span.md)` too\n"

	links := newLinkAnalyzer().ExtractLinks(fileText)

	require.Equal(testInstance, []string{"page.html", "docs/guide.md", "docs/guide.md", "/dashboard"}, links)
}

func TestValidateLinkRules(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(baseDirectory, "notes.md"), []byte("notes"), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(baseDirectory, "page.jsx"), []byte("jsx"), 0o644))

	testCases := []struct {
		name          string
		link          string
		expectedCount int
	}{
		{name: "external_https_always_valid", link: "https://example.com", expectedCount: 0},
		{name: "external_mailto_always_valid", link: "mailto:team@activemirror.ai", expectedCount: 0},
		{name: "pure_anchor_always_valid", link: "#section", expectedCount: 0},
		{name: "root_relative_always_valid", link: "/dashboard", expectedCount: 0},
		{name: "parent_token_skipped", link: "..", expectedCount: 0},
		{name: "ellipsis_skipped", link: "...", expectedCount: 0},
		{name: "pipe_token_skipped", link: "a|b", expectedCount: 0},
		{name: "leading_space_skipped", link: " spaced.md", expectedCount: 0},
		{name: "single_character_skipped", link: "x", expectedCount: 0},
		{name: "existing_file_valid", link: "notes.md", expectedCount: 0},
		{name: "fragment_with_existing_file_valid", link: "notes.md#section", expectedCount: 0},
		{name: "fragment_with_missing_file_broken", link: "ghost.md#section", expectedCount: 1},
		{name: "missing_relative_file_broken", link: "./missing.md", expectedCount: 1},
		{name: "markup_to_component_substitution", link: "page.html", expectedCount: 0},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			findings := newLinkAnalyzer().Validate([]string{testCase.link}, baseDirectory)
			require.Len(testInstance, findings, testCase.expectedCount)
			if testCase.expectedCount == 1 {
				require.Equal(testInstance, audit.FindingKindBrokenLink, findings[0].Kind)
				require.Equal(testInstance, testCase.link, findings[0].Link)
				require.Equal(testInstance, baseDirectory, findings[0].Base)
			}
		})
	}
}

func TestValidateLinkInsideFencedBlockNeverReported(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	fileText := "```\n[broken](./missing.md)\n```\n"

	analyzer := newLinkAnalyzer()
	links := analyzer.ExtractLinks(fileText)
	findings := analyzer.Validate(links, baseDirectory)

	require.Empty(testInstance, links)
	require.Empty(testInstance, findings)
}

func TestValidateDuplicateLinksPreserved(testInstance *testing.T) {
	baseDirectory := testInstance.TempDir()
	findings := newLinkAnalyzer().Validate([]string{"gone.md", "gone.md"}, baseDirectory)
	require.Len(testInstance, findings, 2)
}
