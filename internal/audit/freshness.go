package audit

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	currentYearTokenConstant = "2026"
	staleDateMessageConstant = "Contains old dates, may need updating"
	expectedRepositoryCount  = 88
)

// StatRule locates an embedded statistic and optionally pins its expected
// value. Rules with a nil expected value document intentionally dynamic
// statistics and never produce findings.
type StatRule struct {
	expression *regexp.Regexp
	statName   string
	expected   *int
}

// NewStatRule compiles a case-insensitive statistic rule.
func NewStatRule(rawPattern string, statName string, expected *int) StatRule {
	return StatRule{
		expression: regexp.MustCompile(caseInsensitivePrefixConstant + rawPattern),
		statName:   statName,
		expected:   expected,
	}
}

// DefaultStatRules returns the fixed statistic rule list.
func DefaultStatRules() []StatRule {
	return []StatRule{
		NewStatRule(`(\d+)\s*repos?`, "repo_count", intPointer(expectedRepositoryCount)),
		NewStatRule(`(\d+)\s*seeds?\s*created`, "seed_count", nil),
		NewStatRule(`(\d+)\s*users?`, "user_count", nil),
		NewStatRule(`(\d+)\s*downloads?`, "download_count", nil),
	}
}

// DefaultDatePatterns returns the stale-date detection patterns.
func DefaultDatePatterns() []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`(January|February|March|April|May|June|July|August|September|October|November|December)\s+202[0-5]`),
		regexp.MustCompile(`202[0-5]-\d{2}-\d{2}`),
	}
}

// FreshnessAnalyzer detects stale embedded statistics and outdated dates.
type FreshnessAnalyzer struct {
	statRules        []StatRule
	datePatterns     []*regexp.Regexp
	currentYearToken string
}

// NewFreshnessAnalyzer constructs an analyzer over the provided rule lists.
func NewFreshnessAnalyzer(statRules []StatRule, datePatterns []*regexp.Regexp) *FreshnessAnalyzer {
	return &FreshnessAnalyzer{
		statRules:        statRules,
		datePatterns:     datePatterns,
		currentYearToken: currentYearTokenConstant,
	}
}

// Scan runs the statistic and date checks over the file text.
func (analyzer *FreshnessAnalyzer) Scan(filePath string, fileText string) []Finding {
	findings := []Finding{}
	findings = append(findings, analyzer.scanStatistics(filePath, fileText)...)
	findings = append(findings, analyzer.scanDates(filePath, fileText)...)
	return findings
}

// scanStatistics evaluates the first match of every statistic rule against
// its expected value.
func (analyzer *FreshnessAnalyzer) scanStatistics(filePath string, fileText string) []Finding {
	findings := []Finding{}

	for _, rule := range analyzer.statRules {
		statMatch := rule.expression.FindStringSubmatch(fileText)
		if statMatch == nil {
			continue
		}
		if rule.expected == nil {
			continue
		}

		foundValue, parseError := strconv.Atoi(statMatch[1])
		if parseError != nil {
			continue
		}

		if foundValue != *rule.expected {
			findings = append(findings, Finding{
				Kind:     FindingKindStaleStat,
				File:     filePath,
				Stat:     rule.statName,
				Found:    intPointer(foundValue),
				Expected: intPointer(*rule.expected),
			})
		}
	}

	return findings
}

// scanDates emits at most one stale-date finding per file: the first date
// pattern that matches short-circuits the rest, and nothing is emitted when
// the current year token appears anywhere in the text.
func (analyzer *FreshnessAnalyzer) scanDates(filePath string, fileText string) []Finding {
	for _, datePattern := range analyzer.datePatterns {
		if !datePattern.MatchString(fileText) {
			continue
		}
		if strings.Contains(fileText, analyzer.currentYearToken) {
			return nil
		}
		return []Finding{{
			Kind:    FindingKindStaleDate,
			File:    filePath,
			Message: staleDateMessageConstant,
		}}
	}
	return nil
}
