package model

// Category groups check results for display. Categories render in the fixed
// order given by Categories; Details rows are informational and never scored.
type Category string

const (
	CategoryBasic       Category = "basic"
	CategoryPerformance Category = "performance"
	CategoryMetaTags    Category = "meta_tags"
	CategoryContent     Category = "content"
	CategoryImages      Category = "images"
	CategorySocial      Category = "social"
	CategoryTechnical   Category = "technical"
	CategoryLinks       Category = "links"
	CategoryDetails     Category = "details"
)

// Categories is the deterministic display order of report categories.
var Categories = []Category{
	CategoryBasic,
	CategoryPerformance,
	CategoryMetaTags,
	CategoryContent,
	CategoryImages,
	CategorySocial,
	CategoryTechnical,
	CategoryLinks,
	CategoryDetails,
}

// CheckResult is one evaluated or informational row of a report.
// Labels are unique within a report. Details rows always pass.
type CheckResult struct {
	Label    string   `json:"label"`
	Value    string   `json:"value"`
	Passed   bool     `json:"passed"`
	Category Category `json:"category"`
}

// Score aggregates the scorable (non-Details) rows of a report.
type Score struct {
	Passed     int `json:"passed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// Report is the complete result of auditing one page. It is assembled once
// per request and never mutated afterwards. LoadTimeMs is zero (omitted) for
// preview reports, which perform no fetch.
type Report struct {
	URL        string        `json:"url"`
	Results    []CheckResult `json:"results"`
	Score      Score         `json:"score"`
	LoadTimeMs int64         `json:"load_time_ms,omitempty"`
}

// ErrorResponse is the JSON shape returned on failure.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}
