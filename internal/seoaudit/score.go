package seoaudit

import (
	"math"

	"github.com/webperf-id/seo-audit/internal/model"
)

// ComputeScore aggregates the scorable rows of a checklist. Details rows are
// informational and excluded from both counts. An empty scorable set yields
// 0%, never a division by zero.
func ComputeScore(results []model.CheckResult) model.Score {
	var score model.Score
	for _, r := range results {
		if r.Category == model.CategoryDetails {
			continue
		}
		score.Total++
		if r.Passed {
			score.Passed++
		}
	}

	if score.Total == 0 {
		return score
	}
	score.Percentage = int(math.Round(100 * float64(score.Passed) / float64(score.Total)))
	return score
}
