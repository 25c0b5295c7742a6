package resolve

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	readmePrefixLengthConstant          = 2048
	readmeDescriptionLengthCapConstant  = 150
	readmeDescriptionTrimCutsetConstant = "# "
)

// readmeCandidateNames lists the document name variants probed in order.
var readmeCandidateNames = []string{"README.md", "readme.md", "README.MD"}

var (
	readmeLayerMarkerExpression  = regexp.MustCompile(`(?i)\*\*Layer:\*\*\s*(\w+)`)
	readmeStatusMarkerExpression = regexp.MustCompile(`(?i)\*\*Status:\*\*\s*(\w+)`)
)

// readmeExtraction captures the attribute candidates found in a README document.
type readmeExtraction struct {
	hasReadme   bool
	layer       string
	status      string
	description string
}

// extractReadmeInfo reads the first 2 KB of the first readable README variant
// and applies the layer/status markers plus the first-line description rule.
func (resolver *Resolver) extractReadmeInfo(repositoryPath string) readmeExtraction {
	for _, candidateName := range readmeCandidateNames {
		readmePath := filepath.Join(repositoryPath, candidateName)
		if !resolver.reader.FileExists(readmePath) {
			continue
		}

		readmeContent, readError := resolver.reader.ReadTextPrefix(readmePath, readmePrefixLengthConstant)
		if readError != nil {
			continue
		}

		extraction := readmeExtraction{hasReadme: true}

		if layerMatch := readmeLayerMarkerExpression.FindStringSubmatch(readmeContent); layerMatch != nil {
			extraction.layer = strings.ToLower(layerMatch[1])
		}
		if statusMatch := readmeStatusMarkerExpression.FindStringSubmatch(readmeContent); statusMatch != nil {
			extraction.status = strings.ToLower(statusMatch[1])
		}

		extraction.description = firstLineDescription(readmeContent)

		return extraction
	}

	return readmeExtraction{}
}

// firstLineDescription strips heading markers from the first content line and
// accepts it as a description only below the advisory length cap.
func firstLineDescription(readmeContent string) string {
	contentLines := strings.Split(strings.TrimSpace(readmeContent), "\n")
	if len(contentLines) == 0 {
		return ""
	}

	firstLine := strings.TrimSpace(strings.Trim(contentLines[0], readmeDescriptionTrimCutsetConstant))
	if len(firstLine) == 0 || utf8.RuneCountInString(firstLine) >= readmeDescriptionLengthCapConstant {
		return ""
	}
	return firstLine
}
