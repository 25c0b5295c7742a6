package sourcefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/activemirror/sitesync/internal/sourcefs"
)

func TestListSubdirectoriesOrderingAndHiddenEntries(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, "zeta"), 0o755))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, "alpha"), 0o755))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, ".hidden"), 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, "plainfile"), []byte("data"), 0o644))

	reader := sourcefs.NewReader()
	subdirectories, listError := reader.ListSubdirectories(rootDirectory)
	require.NoError(testInstance, listError)
	require.Equal(testInstance, []string{"alpha", "zeta"}, subdirectories)
}

func TestReadTextPrefixBounds(testInstance *testing.T) {
	testCases := []struct {
		name            string
		fileContents    string
		prefixLength    int
		expectedContent string
	}{
		{
			name:            "short_file_returned_whole",
			fileContents:    "short",
			prefixLength:    2000,
			expectedContent: "short",
		},
		{
			name:            "long_file_truncated",
			fileContents:    "abcdefghij",
			prefixLength:    4,
			expectedContent: "abcd",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(testInstance *testing.T) {
			rootDirectory := testInstance.TempDir()
			filePath := filepath.Join(rootDirectory, "sample.txt")
			require.NoError(testInstance, os.WriteFile(filePath, []byte(testCase.fileContents), 0o644))

			reader := sourcefs.NewReader()
			content, readError := reader.ReadTextPrefix(filePath, testCase.prefixLength)
			require.NoError(testInstance, readError)
			require.Equal(testInstance, testCase.expectedContent, content)
		})
	}
}

func TestWalkMarkdownFilesPrunesIgnoredDirectories(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, "docs"), 0o755))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, "node_modules", "pkg"), 0o755))
	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, "README.md"), []byte("# readme"), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, "docs", "guide.md"), []byte("guide"), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(rootDirectory, "node_modules", "pkg", "vendored.md"), []byte("vendored"), 0o644))

	reader := sourcefs.NewReader()
	markdownFiles := reader.WalkMarkdownFiles(rootDirectory, []string{"node_modules"})

	require.Len(testInstance, markdownFiles, 2)
	require.Contains(testInstance, markdownFiles, filepath.Join(rootDirectory, "README.md"))
	require.Contains(testInstance, markdownFiles, filepath.Join(rootDirectory, "docs", "guide.md"))
}
