package audit

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	fragmentSeparatorConstant    = "#"
	rootRelativePrefixConstant   = "/"
	pipeCharacterConstant        = "|"
	spacePrefixConstant          = " "
	minimumLinkLengthConstant    = 2
	markupExtensionConstant      = ".html"
	componentExtensionConstant   = ".jsx"
	parentDirectoryTokenConstant = ".."
	ellipsisTokenConstant        = "..."
)

// externalLinkPrefixes lists the schemes that are never validated locally.
var externalLinkPrefixes = []string{"http://", "https://", "mailto:", "#", "javascript:"}

var (
	fencedCodeBlockExpression     = regexp.MustCompile("(?s)```.*?```")
	inlineCodeSpanExpression      = regexp.MustCompile("`[^`]+`")
	hrefAttributeExpression       = regexp.MustCompile(`href=["']([^"']+)["']`)
	markdownLinkExpression        = regexp.MustCompile(`\[.*?\]\(([^)]+)\)`)
	navigationAttributeExpression = regexp.MustCompile(`to=["']([^"']+)["']`)
)

// ExistenceProber answers whether a candidate path exists on disk.
type ExistenceProber interface {
	FileExists(candidatePath string) bool
}

// LinkAnalyzer extracts link targets from file text and validates the
// relative ones against the filesystem.
type LinkAnalyzer struct {
	prober ExistenceProber
}

// NewLinkAnalyzer constructs a LinkAnalyzer over the provided prober.
func NewLinkAnalyzer(prober ExistenceProber) *LinkAnalyzer {
	return &LinkAnalyzer{prober: prober}
}

// ExtractLinks collects link targets from href attributes, markdown links,
// and navigation attributes, in that order, keeping duplicates. Code blocks
// and inline code spans are stripped first so examples are never validated.
func (analyzer *LinkAnalyzer) ExtractLinks(fileText string) []string {
	strippedText := fencedCodeBlockExpression.ReplaceAllString(fileText, "")
	strippedText = inlineCodeSpanExpression.ReplaceAllString(strippedText, "")

	links := []string{}
	for _, hrefMatch := range hrefAttributeExpression.FindAllStringSubmatch(strippedText, -1) {
		links = append(links, hrefMatch[1])
	}
	for _, markdownMatch := range markdownLinkExpression.FindAllStringSubmatch(strippedText, -1) {
		links = append(links, markdownMatch[1])
	}
	for _, navigationMatch := range navigationAttributeExpression.FindAllStringSubmatch(strippedText, -1) {
		links = append(links, navigationMatch[1])
	}

	return links
}

// Validate checks each link against the precedence rules: external schemes
// and root-relative paths always pass, degenerate tokens are ignored,
// fragment links are checked by their file part only, and remaining relative
// paths must exist directly or through the markup-to-component substitution.
func (analyzer *LinkAnalyzer) Validate(links []string, baseDirectory string) []Finding {
	findings := []Finding{}

	for _, link := range links {
		if hasExternalPrefix(link) {
			continue
		}

		if strings.HasPrefix(link, rootRelativePrefixConstant) {
			continue
		}

		if isDegenerateToken(link) {
			continue
		}

		if strings.Contains(link, fragmentSeparatorConstant) {
			filePart := strings.SplitN(link, fragmentSeparatorConstant, 2)[0]
			if len(filePart) == 0 {
				continue
			}
			if analyzer.prober.FileExists(filepath.Join(baseDirectory, filePart)) {
				continue
			}
			findings = append(findings, brokenLinkFinding(link, baseDirectory))
			continue
		}

		if analyzer.prober.FileExists(filepath.Join(baseDirectory, link)) {
			continue
		}
		substitutedLink := strings.ReplaceAll(link, markupExtensionConstant, componentExtensionConstant)
		if analyzer.prober.FileExists(filepath.Join(baseDirectory, substitutedLink)) {
			continue
		}

		findings = append(findings, brokenLinkFinding(link, baseDirectory))
	}

	return findings
}

func brokenLinkFinding(link string, baseDirectory string) Finding {
	return Finding{
		Kind: FindingKindBrokenLink,
		Link: link,
		Base: baseDirectory,
	}
}

func hasExternalPrefix(link string) bool {
	for _, externalPrefix := range externalLinkPrefixes {
		if strings.HasPrefix(link, externalPrefix) {
			return true
		}
	}
	return false
}

func isDegenerateToken(link string) bool {
	if link == parentDirectoryTokenConstant || link == ellipsisTokenConstant {
		return true
	}
	if strings.Contains(link, pipeCharacterConstant) {
		return true
	}
	if strings.HasPrefix(link, spacePrefixConstant) {
		return true
	}
	return len(link) < minimumLinkLengthConstant
}
