package audit

import "time"

// FindingKind enumerates the audit finding categories.
type FindingKind string

// Supported finding kinds.
const (
	FindingKindBranding   FindingKind = "branding"
	FindingKindStaleStat  FindingKind = "stale_stat"
	FindingKindStaleDate  FindingKind = "stale_date"
	FindingKindBrokenLink FindingKind = "broken_link"
)

// ReportStatus captures the derived pass/fail outcome of an audit run.
type ReportStatus string

// Supported report status values.
const (
	ReportStatusPass        ReportStatus = "PASS"
	ReportStatusIssuesFound ReportStatus = "ISSUES_FOUND"
)

// Finding is one immutable audit result. The optional fields are populated
// according to the finding kind.
type Finding struct {
	Kind     FindingKind `json:"type"`
	File     string      `json:"file,omitempty"`
	Message  string      `json:"message,omitempty"`
	Pattern  string      `json:"pattern,omitempty"`
	Stat     string      `json:"stat,omitempty"`
	Found    *int        `json:"found,omitempty"`
	Expected *int        `json:"expected,omitempty"`
	Link     string      `json:"link,omitempty"`
	Base     string      `json:"base,omitempty"`
}

// ReportSummary aggregates finding counts and the derived status.
type ReportSummary struct {
	BrandingViolations int          `json:"branding_violations"`
	StaleStats         int          `json:"stale_stats"`
	BrokenLinks        int          `json:"broken_links"`
	HealthIssues       int          `json:"health_issues"`
	Status             ReportStatus `json:"status"`
}

// Report aggregates every finding produced during one audit run.
type Report struct {
	Timestamp          string        `json:"timestamp"`
	BrandingViolations []Finding     `json:"branding_violations"`
	StaleStats         []Finding     `json:"stale_stats"`
	BrokenLinks        []Finding     `json:"broken_links"`
	HealthIssues       []Finding     `json:"health_issues"`
	Summary            ReportSummary `json:"summary"`
}

// Clock abstracts time-dependent functionality for deterministic testing.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the standard library.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

func intPointer(value int) *int {
	return &value
}
