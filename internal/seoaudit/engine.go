package seoaudit

import (
	"context"
	"strings"

	"github.com/webperf-id/seo-audit/internal/model"
	"github.com/webperf-id/seo-audit/internal/platform/errs"
)

// Engine orchestrates one audit: normalize the input, fetch the page, probe
// robots.txt, run the extractors, and assemble the scored checklist.
type Engine struct {
	fetcher PageFetcher
	prober  RobotsProber

	// selfHost feeds the internal/external link split. See CountLinks.
	selfHost string
}

// NewEngine returns an Engine backed by the given fetcher and robots prober.
func NewEngine(fetcher PageFetcher, prober RobotsProber, selfHost string) *Engine {
	return &Engine{
		fetcher:  fetcher,
		prober:   prober,
		selfHost: selfHost,
	}
}

// Audit runs the full checklist against one URL. Only the main page fetch
// can fail the operation; every other anomaly degrades to a failing row in
// the report. No partial report is ever produced on fetch failure.
func (e *Engine) Audit(ctx context.Context, rawURL string) (*model.Report, error) {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Enter a URL to audit (e.g., example.com).",
		}
	}

	target := NormalizeURL(raw)

	fetch, err := e.fetcher.FetchPage(ctx, target)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Unreachable,
			Message: "The site could not be reached. It may block bots or be blocked by CORS.",
			Cause:   err,
		}
	}

	if fetch.StatusCode >= 400 {
		return nil, &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: fetch.StatusCode,
			Message:        "The site answered with an error status.",
		}
	}

	httpsOK := fetch.FinalURL.Scheme == "https"
	origin := fetch.FinalURL.Scheme + "://" + fetch.FinalURL.Host
	robots := e.prober.ProbeRobots(ctx, origin)

	elapsedMs := fetch.Elapsed.Milliseconds()
	results := BuildResults(
		httpsOK,
		robots,
		elapsedMs,
		CountHeadings(fetch.Body),
		CountImages(fetch.Body),
		CountSocial(fetch.Body),
		CountLinks(fetch.Body, e.selfHost),
		DetectMeta(fetch.Body),
	)

	return &model.Report{
		URL:        fetch.FinalURL.String(),
		Results:    results,
		Score:      ComputeScore(results),
		LoadTimeMs: elapsedMs,
	}, nil
}
