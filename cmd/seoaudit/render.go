package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/webperf-id/seo-audit/internal/model"
)

var categoryTitles = map[model.Category]string{
	model.CategoryBasic:       "Basic",
	model.CategoryPerformance: "Performance",
	model.CategoryMetaTags:    "Meta Tags",
	model.CategoryContent:     "Content",
	model.CategoryImages:      "Images",
	model.CategorySocial:      "Social",
	model.CategoryTechnical:   "Technical",
	model.CategoryLinks:       "Links",
	model.CategoryDetails:     "Details",
}

func writeJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// writeChecklist prints the report grouped by category in the fixed display
// order, with a pass/fail marker per row and the aggregate score last.
func writeChecklist(w io.Writer, report *model.Report) {
	fmt.Fprintf(w, "%s\n", report.URL)
	if report.LoadTimeMs > 0 {
		fmt.Fprintf(w, "fetched in %d ms\n", report.LoadTimeMs)
	}

	for _, cat := range model.Categories {
		rows := rowsFor(report, cat)
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s\n%s\n", categoryTitles[cat], strings.Repeat("-", len(categoryTitles[cat])))
		for _, row := range rows {
			marker := "FAIL"
			if row.Passed {
				marker = "PASS"
			}
			if cat == model.CategoryDetails {
				marker = "INFO"
			}
			fmt.Fprintf(w, "  [%s] %-26s %s\n", marker, row.Label, row.Value)
		}
	}

	fmt.Fprintf(w, "\nScore: %d/%d (%d%%)\n", report.Score.Passed, report.Score.Total, report.Score.Percentage)
}

func rowsFor(report *model.Report, cat model.Category) []model.CheckResult {
	var rows []model.CheckResult
	for _, r := range report.Results {
		if r.Category == cat {
			rows = append(rows, r)
		}
	}
	return rows
}
