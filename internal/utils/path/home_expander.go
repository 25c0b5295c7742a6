package pathutils

import (
	"os"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// HomeExpander converts user home shortcuts to absolute paths.
type HomeExpander struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewHomeExpander constructs a HomeExpander using the operating system lookup.
func NewHomeExpander() *HomeExpander {
	return NewHomeExpanderWithProvider(os.UserHomeDir)
}

// NewHomeExpanderWithProvider constructs a HomeExpander with a custom home directory provider.
func NewHomeExpanderWithProvider(provider HomeDirectoryProvider) *HomeExpander {
	resolvedProvider := provider
	if resolvedProvider == nil {
		resolvedProvider = os.UserHomeDir
	}
	return &HomeExpander{homeDirectoryProvider: resolvedProvider}
}

// Expand replaces a leading tilde shortcut with the user's home directory.
func (expander *HomeExpander) Expand(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if len(trimmedPath) == 0 {
		return ""
	}

	if trimmedPath != tildeSymbolConstant &&
		!strings.HasPrefix(trimmedPath, tildeForwardSlashPrefixConstant) &&
		!strings.HasPrefix(trimmedPath, tildeWithPathSeparatorPrefix) {
		return trimmedPath
	}

	homeDirectory, homeDirectoryError := expander.resolveHomeDirectory()
	if homeDirectoryError != nil || len(homeDirectory) == 0 {
		return trimmedPath
	}

	if trimmedPath == tildeSymbolConstant {
		return homeDirectory
	}

	remainder := trimmedPath[len(tildeSymbolConstant)+1:]
	return homeDirectory + string(os.PathSeparator) + remainder
}

func (expander *HomeExpander) resolveHomeDirectory() (string, error) {
	expander.initializationGuard.Do(func() {
		expander.homeDirectory, expander.homeDirectoryError = expander.homeDirectoryProvider()
	})
	return expander.homeDirectory, expander.homeDirectoryError
}
