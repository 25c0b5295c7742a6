package resolve

import (
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	metadataFileNameConstant            = "metadata.yml"
	metadataLayerKeyConstant            = "layer"
	metadataStatusKeyConstant           = "status"
	metadataShortDescriptionKeyConstant = "short_description"
	metadataDependenciesKeyConstant     = "dependencies"
	metadataTagsKeyConstant             = "tags"
)

// repositoryMetadata wraps the parsed metadata.yml mapping for one repository.
type repositoryMetadata struct {
	values map[string]any
}

// readRepositoryMetadata loads metadata.yml from the repository root. A missing
// file, an unreadable file, or content that does not parse to a mapping all
// yield absent metadata so the cascade falls through to the next source.
func (resolver *Resolver) readRepositoryMetadata(repositoryPath string) (repositoryMetadata, bool) {
	metadataPath := filepath.Join(repositoryPath, metadataFileNameConstant)
	if !resolver.reader.FileExists(metadataPath) {
		return repositoryMetadata{}, false
	}

	metadataContents, readError := resolver.reader.ReadText(metadataPath)
	if readError != nil {
		return repositoryMetadata{}, false
	}

	parsedValues := map[string]any{}
	if unmarshalError := yaml.Unmarshal([]byte(metadataContents), &parsedValues); unmarshalError != nil {
		return repositoryMetadata{}, false
	}
	if len(parsedValues) == 0 {
		return repositoryMetadata{}, false
	}

	return repositoryMetadata{values: parsedValues}, true
}

// stringValue returns the named key when present and string-valued.
func (metadata repositoryMetadata) stringValue(key string) (string, bool) {
	rawValue, keyPresent := metadata.values[key]
	if !keyPresent {
		return "", false
	}
	stringTyped, isString := rawValue.(string)
	if !isString {
		return "", false
	}
	return stringTyped, true
}

// stringSliceValue returns the named key when present and sequence-valued,
// keeping only string elements.
func (metadata repositoryMetadata) stringSliceValue(key string) ([]string, bool) {
	rawValue, keyPresent := metadata.values[key]
	if !keyPresent {
		return nil, false
	}
	sequenceTyped, isSequence := rawValue.([]any)
	if !isSequence {
		return nil, false
	}

	stringElements := make([]string, 0, len(sequenceTyped))
	for _, element := range sequenceTyped {
		if stringElement, isString := element.(string); isString {
			stringElements = append(stringElements, stringElement)
		}
	}
	return stringElements, true
}
