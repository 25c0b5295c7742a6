package audit

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	titleGlyphConstant            = "⟡"
	titleGlyphPatternNameConstant = "title_glyph"
	titleGlyphMessageConstant     = "Page title should include ⟡ glyph"
	titleGlyphTokenKeyConstant    = "title_glyph"
	titleOpenDelimiterConstant    = "<title>"
	titleCloseDelimiterConstant   = "</title>"
	caseInsensitivePrefixConstant = "(?i)"
)

// markupFileExtensions lists the extensions subject to the title glyph check.
var markupFileExtensions = []string{".html", ".jsx", ".tsx"}

// BrandingRule pairs a deprecated text pattern with its corrective message.
type BrandingRule struct {
	rawPattern string
	expression *regexp.Regexp
	message    string
}

// NewBrandingRule compiles a case-insensitive branding rule.
func NewBrandingRule(rawPattern string, message string) BrandingRule {
	return BrandingRule{
		rawPattern: rawPattern,
		expression: regexp.MustCompile(caseInsensitivePrefixConstant + rawPattern),
		message:    message,
	}
}

// DefaultBrandingRules returns the fixed ordered rule list applied to every file.
func DefaultBrandingRules() []BrandingRule {
	return []BrandingRule{
		NewBrandingRule(`Mirror\s+Protocol`, "Should be 'MirrorDNA Protocol'"),
		NewBrandingRule(`Active\s+MirrorOS`, "Should be 'ActiveMirrorOS' (no space)"),
		NewBrandingRule(`N1\s+Intelligence\s+Labs`, "Should be 'N1 Intelligence (OPC) Pvt Ltd'"),
		NewBrandingRule(`©\s*202[0-4]`, "Copyright year should be 2026"),
		NewBrandingRule(`activemirror\.com`, "Domain should be activemirror.ai"),
	}
}

// BrandingAnalyzer detects deprecated naming and formatting patterns.
type BrandingAnalyzer struct {
	rules      []BrandingRule
	tokens     map[string]string
	titleGlyph string
}

// NewBrandingAnalyzer constructs an analyzer over the provided rule list and
// approved branding tokens. A title_glyph token overrides the default glyph.
func NewBrandingAnalyzer(rules []BrandingRule, brandingTokens map[string]string) *BrandingAnalyzer {
	titleGlyph := titleGlyphConstant
	if tokenGlyph, tokenPresent := brandingTokens[titleGlyphTokenKeyConstant]; tokenPresent && len(tokenGlyph) > 0 {
		titleGlyph = tokenGlyph
	}
	return &BrandingAnalyzer{
		rules:      rules,
		tokens:     brandingTokens,
		titleGlyph: titleGlyph,
	}
}

// Scan applies every branding rule to the file text. Each matching rule yields
// exactly one finding regardless of occurrence count; markup files are also
// checked for the title glyph.
func (analyzer *BrandingAnalyzer) Scan(filePath string, fileText string) []Finding {
	findings := []Finding{}

	for _, rule := range analyzer.rules {
		if rule.expression.MatchString(fileText) {
			findings = append(findings, Finding{
				Kind:    FindingKindBranding,
				File:    filePath,
				Pattern: rule.rawPattern,
				Message: rule.message,
			})
		}
	}

	if isMarkupFile(filePath) {
		if titleFinding, titleMissingGlyph := analyzer.checkTitleGlyph(filePath, fileText); titleMissingGlyph {
			findings = append(findings, titleFinding)
		}
	}

	return findings
}

// checkTitleGlyph inspects the first title delimiter pair for the glyph.
func (analyzer *BrandingAnalyzer) checkTitleGlyph(filePath string, fileText string) (Finding, bool) {
	openSplit := strings.SplitN(fileText, titleOpenDelimiterConstant, 2)
	if len(openSplit) < 2 {
		return Finding{}, false
	}

	titleSegment := strings.SplitN(openSplit[1], titleCloseDelimiterConstant, 2)[0]
	if strings.Contains(titleSegment, analyzer.titleGlyph) {
		return Finding{}, false
	}

	return Finding{
		Kind:    FindingKindBranding,
		File:    filePath,
		Pattern: titleGlyphPatternNameConstant,
		Message: titleGlyphMessageConstant,
	}, true
}

func isMarkupFile(filePath string) bool {
	fileExtension := filepath.Ext(filePath)
	for _, markupExtension := range markupFileExtensions {
		if fileExtension == markupExtension {
			return true
		}
	}
	return false
}
