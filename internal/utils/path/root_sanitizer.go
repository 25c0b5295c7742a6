package pathutils

import "strings"

// RootPathSanitizer normalizes repository root inputs consistently across commands.
type RootPathSanitizer struct {
	homeExpander *HomeExpander
}

// NewRootPathSanitizer constructs a RootPathSanitizer using the default home expander.
func NewRootPathSanitizer() *RootPathSanitizer {
	return NewRootPathSanitizerWithExpander(nil)
}

// NewRootPathSanitizerWithExpander constructs a RootPathSanitizer using the provided expander.
func NewRootPathSanitizerWithExpander(homeExpander *HomeExpander) *RootPathSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &RootPathSanitizer{homeExpander: resolvedExpander}
}

// Sanitize trims whitespace, expands the user's home directory, and falls back when the candidate is empty.
func (sanitizer *RootPathSanitizer) Sanitize(candidatePath string, fallbackPath string) string {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		trimmedCandidate = strings.TrimSpace(fallbackPath)
	}
	if len(trimmedCandidate) == 0 {
		return ""
	}

	expander := sanitizer.homeExpander
	if expander == nil {
		expander = NewHomeExpander()
	}

	return expander.Expand(trimmedCandidate)
}
