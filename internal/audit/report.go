package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	reportTitleConstant             = "⟡ SITESYNC AUDIT REPORT"
	reportRuleWidthConstant         = 60
	reportTimestampTemplateConstant = "Timestamp: %s\n\n"
	brandingSectionTemplateConstant = "BRANDING VIOLATIONS: %d"
	staleSectionTemplateConstant    = "STALE STATISTICS: %d"
	linksSectionTemplateConstant    = "BROKEN LINKS: %d"
	statusTemplateConstant          = "STATUS: %s"
	findingRowTemplateConstant      = "  - %s: %s\n"
	findingOverflowTemplateConstant = "  ... and %d more\n"
	sectionDisplayCapConstant       = 5
	dateIssueLabelConstant          = "date"
	statIssueSuffixConstant         = " issue"
)

var (
	reportTitleStyle   = lipgloss.NewStyle().Bold(true)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true)
	passStatusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStatusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	horizontalRule     = lipgloss.NewStyle().Faint(true)
)

// WriteConsoleReport renders the report for terminal consumption.
func WriteConsoleReport(writer io.Writer, report Report) {
	doubleRule := horizontalRule.Render(strings.Repeat("=", reportRuleWidthConstant))
	singleRule := horizontalRule.Render(strings.Repeat("-", reportRuleWidthConstant))

	fmt.Fprintf(writer, "\n%s\n", doubleRule)
	fmt.Fprintln(writer, reportTitleStyle.Render(reportTitleConstant))
	fmt.Fprintf(writer, "%s\n", doubleRule)
	fmt.Fprintf(writer, reportTimestampTemplateConstant, report.Timestamp)

	writeBrandingSection(writer, report.BrandingViolations)
	writeStaleSection(writer, report.StaleStats)
	writeLinksSection(writer, report.BrokenLinks)

	fmt.Fprintf(writer, "%s\n", singleRule)
	statusStyle := passStatusStyle
	if report.Summary.Status != ReportStatusPass {
		statusStyle = failStatusStyle
	}
	fmt.Fprintln(writer, statusStyle.Render(fmt.Sprintf(statusTemplateConstant, report.Summary.Status)))
	fmt.Fprintf(writer, "%s\n", doubleRule)
}

func writeBrandingSection(writer io.Writer, findings []Finding) {
	fmt.Fprintln(writer, sectionHeaderStyle.Render(fmt.Sprintf(brandingSectionTemplateConstant, len(findings))))
	for _, finding := range capFindings(findings) {
		fmt.Fprintf(writer, findingRowTemplateConstant, finding.File, finding.Message)
	}
	writeOverflow(writer, findings)
	fmt.Fprintln(writer)
}

func writeStaleSection(writer io.Writer, findings []Finding) {
	fmt.Fprintln(writer, sectionHeaderStyle.Render(fmt.Sprintf(staleSectionTemplateConstant, len(findings))))
	for _, finding := range capFindings(findings) {
		issueLabel := finding.Stat
		if len(issueLabel) == 0 {
			issueLabel = dateIssueLabelConstant
		}
		fmt.Fprintf(writer, findingRowTemplateConstant, finding.File, issueLabel+statIssueSuffixConstant)
	}
	fmt.Fprintln(writer)
}

func writeLinksSection(writer io.Writer, findings []Finding) {
	fmt.Fprintln(writer, sectionHeaderStyle.Render(fmt.Sprintf(linksSectionTemplateConstant, len(findings))))
	for _, finding := range capFindings(findings) {
		fmt.Fprintf(writer, findingRowTemplateConstant, finding.Base, finding.Link)
	}
	fmt.Fprintln(writer)
}

func capFindings(findings []Finding) []Finding {
	if len(findings) > sectionDisplayCapConstant {
		return findings[:sectionDisplayCapConstant]
	}
	return findings
}

func writeOverflow(writer io.Writer, findings []Finding) {
	if len(findings) > sectionDisplayCapConstant {
		fmt.Fprintf(writer, findingOverflowTemplateConstant, len(findings)-sectionDisplayCapConstant)
	}
}

// WriteJSONReport serializes the report as indented JSON.
func WriteJSONReport(writer io.Writer, report Report) error {
	jsonEncoder := json.NewEncoder(writer)
	jsonEncoder.SetIndent("", "  ")
	return jsonEncoder.Encode(report)
}
