package metadata

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/activemirror/sitesync/internal/resolve"
)

const (
	descriptionLengthCapConstant           = 150
	parseErrorTemplateConstant             = "YAML parse error: %v"
	notMappingErrorConstant                = "metadata.yml must be a YAML object"
	missingFieldErrorTemplateConstant      = "Missing required field: %s"
	invalidLayerErrorTemplateConstant      = "Invalid layer '%v'. Must be one of: %v"
	invalidStatusErrorTemplateConstant     = "Invalid status '%v'. Must be one of: %v"
	descriptionLengthErrorTemplateConstant = "short_description exceeds %d chars (%d chars)"
	unknownDependencyErrorTemplateConstant = "Unknown dependency: %v"
	tagsNotSequenceErrorConstant           = "tags must be a list"
)

// requiredFieldNames lists every key a metadata descriptor must carry.
var requiredFieldNames = []string{
	"name", "layer", "status", "short_description",
	"dependencies", "license", "tags", "spec_version",
}

// Validator checks metadata descriptors against the ecosystem schema.
type Validator struct {
	knownRepositories map[string]struct{}
}

// NewValidator constructs a Validator aware of the published repository names.
// With no known names, dependency existence checks are skipped.
func NewValidator(knownRepositoryNames []string) *Validator {
	knownRepositories := make(map[string]struct{}, len(knownRepositoryNames))
	for _, repositoryName := range knownRepositoryNames {
		knownRepositories[repositoryName] = struct{}{}
	}
	return &Validator{knownRepositories: knownRepositories}
}

// ValidateDocument parses raw YAML and applies every schema rule, returning
// one message per violation. An empty slice means the descriptor is valid.
func (validator *Validator) ValidateDocument(documentContents []byte) []string {
	var parsedDocument any
	if parseError := yaml.Unmarshal(documentContents, &parsedDocument); parseError != nil {
		return []string{fmt.Sprintf(parseErrorTemplateConstant, parseError)}
	}

	mappingDocument, isMapping := parsedDocument.(map[string]any)
	if !isMapping {
		return []string{notMappingErrorConstant}
	}

	return validator.validateMapping(mappingDocument)
}

func (validator *Validator) validateMapping(document map[string]any) []string {
	violationMessages := []string{}

	for _, requiredField := range requiredFieldNames {
		if _, fieldPresent := document[requiredField]; !fieldPresent {
			violationMessages = append(violationMessages, fmt.Sprintf(missingFieldErrorTemplateConstant, requiredField))
		}
	}

	if layerValue, layerPresent := document["layer"]; layerPresent && !isValidLayer(layerValue) {
		violationMessages = append(violationMessages, fmt.Sprintf(invalidLayerErrorTemplateConstant, layerValue, resolve.OrderedLayers()))
	}

	if statusValue, statusPresent := document["status"]; statusPresent && !isValidStatus(statusValue) {
		violationMessages = append(violationMessages, fmt.Sprintf(invalidStatusErrorTemplateConstant, statusValue, resolve.OrderedStatuses()))
	}

	if descriptionValue, descriptionPresent := document["short_description"]; descriptionPresent {
		descriptionText := strings.TrimSpace(fmt.Sprintf("%v", descriptionValue))
		if descriptionLength := utf8.RuneCountInString(descriptionText); descriptionLength > descriptionLengthCapConstant {
			violationMessages = append(violationMessages, fmt.Sprintf(descriptionLengthErrorTemplateConstant, descriptionLengthCapConstant, descriptionLength))
		}
	}

	if dependenciesValue, dependenciesPresent := document["dependencies"]; dependenciesPresent && len(validator.knownRepositories) > 0 {
		if dependencySequence, isSequence := dependenciesValue.([]any); isSequence {
			for _, dependencyName := range dependencySequence {
				dependencyText, isString := dependencyName.(string)
				if !isString {
					violationMessages = append(violationMessages, fmt.Sprintf(unknownDependencyErrorTemplateConstant, dependencyName))
					continue
				}
				if _, dependencyKnown := validator.knownRepositories[dependencyText]; !dependencyKnown {
					violationMessages = append(violationMessages, fmt.Sprintf(unknownDependencyErrorTemplateConstant, dependencyText))
				}
			}
		}
	}

	if tagsValue, tagsPresent := document["tags"]; tagsPresent {
		if _, isSequence := tagsValue.([]any); !isSequence {
			violationMessages = append(violationMessages, tagsNotSequenceErrorConstant)
		}
	}

	return violationMessages
}

func isValidLayer(layerValue any) bool {
	layerText, isString := layerValue.(string)
	if !isString {
		return false
	}
	for _, validLayer := range resolve.OrderedLayers() {
		if layerText == string(validLayer) {
			return true
		}
	}
	return false
}

func isValidStatus(statusValue any) bool {
	statusText, isString := statusValue.(string)
	if !isString {
		return false
	}
	for _, validStatus := range resolve.OrderedStatuses() {
		if statusText == string(validStatus) {
			return true
		}
	}
	return false
}
