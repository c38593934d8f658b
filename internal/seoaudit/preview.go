package seoaudit

import (
	"fmt"

	"github.com/webperf-id/seo-audit/internal/model"
)

const previewLoadTimeMs = 1200

// PreviewReport returns a canned, fully-passing report for demonstrating a
// renderer without fetching anything. The hostname hint is used only for
// cosmetic substitution in the Details rows; anything unparseable falls back
// to example.com. Report.LoadTimeMs stays zero since no fetch happened.
func PreviewReport(hostnameHint string) *model.Report {
	host := DisplayHost(hostnameHint)
	if host == "" {
		host = "example.com"
	}

	results := BuildResults(
		true,
		RobotsStatus{State: RobotsFound, AgentAllowed: true},
		previewLoadTimeMs,
		HeadingCounts{Counts: [6]int{1, 3, 4, 0, 0, 0}},
		ImageStats{Total: 8, MissingAlt: 0},
		SocialStats{OpenGraph: 4, Twitter: 3},
		LinkStats{Total: 27, Internal: 21, External: 6},
		MetaSignals{
			HasTitle:       true,
			Title:          fmt.Sprintf("Welcome to %s", host),
			HasDescription: true,
			Description:    fmt.Sprintf("%s is a demonstration page with every SEO signal in place.", host),
			HasKeywords:    true,
			HasViewport:    true,
			HasCanonical:   true,
			HasSchema:      true,
		},
	)

	return &model.Report{
		URL:     "https://" + host,
		Results: results,
		Score:   ComputeScore(results),
	}
}
