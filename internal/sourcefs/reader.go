package sourcefs

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	hiddenEntryPrefixConstant  = "."
	markdownFileSuffixConstant = ".md"
)

// Reader exposes the filesystem primitives required by repository scanning.
type Reader struct{}

// NewReader constructs a Reader backed by operating system primitives.
func NewReader() *Reader {
	return &Reader{}
}

// FileExists reports whether the provided path names an existing file or directory.
func (reader *Reader) FileExists(candidatePath string) bool {
	_, statError := os.Stat(candidatePath)
	return statError == nil
}

// ReadText returns the full contents of the file as text.
func (reader *Reader) ReadText(filePath string) (string, error) {
	contents, readError := os.ReadFile(filePath)
	if readError != nil {
		return "", readError
	}
	return string(contents), nil
}

// ReadTextPrefix returns at most prefixLength bytes from the start of the file as text.
func (reader *Reader) ReadTextPrefix(filePath string, prefixLength int) (string, error) {
	fileHandle, openError := os.Open(filePath)
	if openError != nil {
		return "", openError
	}
	defer fileHandle.Close()

	prefixBuffer := make([]byte, prefixLength)
	bytesRead, readError := io.ReadFull(fileHandle, prefixBuffer)
	if readError != nil && readError != io.ErrUnexpectedEOF && readError != io.EOF {
		return "", readError
	}

	return string(prefixBuffer[:bytesRead]), nil
}

// ListSubdirectories enumerates the immediate subdirectories of rootDirectory in
// lexicographic order, skipping hidden entries.
func (reader *Reader) ListSubdirectories(rootDirectory string) ([]string, error) {
	directoryEntries, readError := os.ReadDir(rootDirectory)
	if readError != nil {
		return nil, readError
	}

	subdirectoryNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if !directoryEntry.IsDir() {
			continue
		}
		if strings.HasPrefix(directoryEntry.Name(), hiddenEntryPrefixConstant) {
			continue
		}
		subdirectoryNames = append(subdirectoryNames, directoryEntry.Name())
	}

	sort.Strings(subdirectoryNames)
	return subdirectoryNames, nil
}

// Glob returns the paths matching the provided pattern relative to baseDirectory.
func (reader *Reader) Glob(baseDirectory string, pattern string) []string {
	matches, globError := filepath.Glob(filepath.Join(baseDirectory, pattern))
	if globError != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

// WalkMarkdownFiles returns every markdown file beneath rootDirectory, pruning
// the provided ignorable directory names. Unreadable entries are skipped.
func (reader *Reader) WalkMarkdownFiles(rootDirectory string, ignoredDirectoryNames []string) []string {
	ignoredNames := make(map[string]struct{}, len(ignoredDirectoryNames))
	for _, ignoredDirectoryName := range ignoredDirectoryNames {
		ignoredNames[ignoredDirectoryName] = struct{}{}
	}

	var markdownFiles []string
	_ = filepath.WalkDir(rootDirectory, func(walkedPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			return nil
		}

		if directoryEntry.IsDir() {
			if _, ignored := ignoredNames[directoryEntry.Name()]; ignored {
				return fs.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(directoryEntry.Name(), markdownFileSuffixConstant) {
			markdownFiles = append(markdownFiles, walkedPath)
		}
		return nil
	})

	return markdownFiles
}
