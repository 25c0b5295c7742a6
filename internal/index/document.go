package index

import (
	"encoding/json"
	"os"
	"time"
)

const (
	documentFilePermissionsConstant = 0o644
	documentIndentConstant          = "  "
)

// AssembleDocument combines a build result with the externally supplied
// counts into the published index document.
func AssembleDocument(result BuildResult, counts ExternalCounts, clock Clock) Document {
	if clock == nil {
		clock = SystemClock{}
	}

	return Document{
		Version:      counts.Version,
		Generated:    clock.Now().UTC().Format(time.RFC3339),
		TotalRepos:   counts.TotalRepositories,
		LocalRepos:   len(result.AllRecords),
		PublicRepos:  counts.PublicRepositories,
		PrivateRepos: counts.PrivateRepositories,
		Repos:        result.EcosystemRecords,
		Layers:       result.Layers,
	}
}

// WriteDocument serializes the document as indented JSON at outputPath.
func WriteDocument(document Document, outputPath string) error {
	encodedDocument, marshalError := json.MarshalIndent(document, "", documentIndentConstant)
	if marshalError != nil {
		return marshalError
	}
	return os.WriteFile(outputPath, encodedDocument, documentFilePermissionsConstant)
}

// ReadDocument loads a published index document from disk.
func ReadDocument(indexPath string) (Document, error) {
	documentContents, readError := os.ReadFile(indexPath)
	if readError != nil {
		return Document{}, readError
	}

	var document Document
	if unmarshalError := json.Unmarshal(documentContents, &document); unmarshalError != nil {
		return Document{}, unmarshalError
	}
	return document, nil
}
