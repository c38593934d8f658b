package seoaudit

import (
	"fmt"

	"github.com/webperf-id/seo-audit/internal/model"
)

// Check labels. Unique within a report; the two Details rows repeat the
// title/description subjects but carry the raw text instead of a verdict.
const (
	labelHTTPS        = "HTTPS Usage"
	labelRobots       = "robots.txt Found"
	labelLoadTime     = "Page Load Time"
	labelTitleTag     = "Title Tag Present"
	labelMetaDescTag  = "Meta Description Present"
	labelKeywords     = "Meta Keywords"
	labelViewport     = "Viewport Meta Tag"
	labelCanonical    = "Canonical URL"
	labelH1           = "H1 Tags"
	labelHeadingStrct = "Heading Structure"
	labelImagesAlt    = "Images Alt Text"
	labelOpenGraph    = "Open Graph Tags"
	labelTwitterCards = "Twitter Cards"
	labelSchema       = "Schema Markup"
	labelInternal     = "Internal Links"
	labelExternal     = "External Links"
	labelPageTitle    = "Page Title"
	labelMetaDesc     = "Meta Description"
)

const missingMarker = "missing"

// Load time verdicts, in milliseconds of wall-clock fetch time.
const (
	loadTimeGoodMs   = 3000
	loadTimeMediumMs = 5000
)

// BuildResults merges fetch metadata and extractor outputs into the fixed,
// ordered checklist: Basic, Performance, MetaTags, Content, Images, Social,
// Technical, Links, then the informational Details rows.
func BuildResults(
	httpsOK bool,
	robots RobotsStatus,
	elapsedMs int64,
	hc HeadingCounts,
	is ImageStats,
	ss SocialStats,
	ls LinkStats,
	ms MetaSignals,
) []model.CheckResult {
	results := make([]model.CheckResult, 0, 18)

	add := func(label, value string, passed bool, cat model.Category) {
		results = append(results, model.CheckResult{
			Label:    label,
			Value:    value,
			Passed:   passed,
			Category: cat,
		})
	}

	// Basic
	add(labelHTTPS, yesNo(httpsOK), httpsOK, model.CategoryBasic)
	add(labelRobots, robotsValue(robots), robots.State != RobotsMissing, model.CategoryBasic)

	// Performance
	add(labelLoadTime,
		fmt.Sprintf("%d ms (%s)", elapsedMs, speedLabel(elapsedMs)),
		elapsedMs < loadTimeGoodMs,
		model.CategoryPerformance)

	// Meta tags
	add(labelTitleTag, presence(ms.HasTitle), ms.HasTitle, model.CategoryMetaTags)
	add(labelMetaDescTag, presence(ms.HasDescription), ms.HasDescription, model.CategoryMetaTags)
	add(labelKeywords, presence(ms.HasKeywords), ms.HasKeywords, model.CategoryMetaTags)
	add(labelViewport, presence(ms.HasViewport), ms.HasViewport, model.CategoryMetaTags)
	add(labelCanonical, presence(ms.HasCanonical), ms.HasCanonical, model.CategoryMetaTags)

	// Content
	h1Value, h1OK := h1Verdict(hc.Counts[0])
	add(labelH1, h1Value, h1OK, model.CategoryContent)
	structOK := hc.Counts[0] >= 1 && hc.Counts[1] >= 1
	add(labelHeadingStrct, headingStructureValue(structOK), structOK, model.CategoryContent)

	// Images
	imgValue, imgOK := imageVerdict(is)
	add(labelImagesAlt, imgValue, imgOK, model.CategoryImages)

	// Social
	add(labelOpenGraph, tagCount(ss.OpenGraph), ss.OpenGraph > 0, model.CategorySocial)
	add(labelTwitterCards, tagCount(ss.Twitter), ss.Twitter > 0, model.CategorySocial)

	// Technical
	add(labelSchema, detected(ms.HasSchema), ms.HasSchema, model.CategoryTechnical)

	// Links
	add(labelInternal, linkCount(ls.Internal), ls.Internal > 0, model.CategoryLinks)
	add(labelExternal, linkCount(ls.External), true, model.CategoryLinks)

	// Details (informational, always pass, never scored)
	add(labelPageTitle, orMissing(ms.Title), true, model.CategoryDetails)
	add(labelMetaDesc, orMissing(ms.Description), true, model.CategoryDetails)

	return results
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return missingMarker
}

func detected(ok bool) string {
	if ok {
		return "detected"
	}
	return "not detected"
}

func robotsValue(robots RobotsStatus) string {
	switch robots.State {
	case RobotsMissing:
		return missingMarker
	case RobotsAmbiguous:
		return "unknown (assumed present)"
	}
	if !robots.AgentAllowed {
		return "found (bot disallowed)"
	}
	return "found"
}

func speedLabel(ms int64) string {
	switch {
	case ms < loadTimeGoodMs:
		return "Good"
	case ms < loadTimeMediumMs:
		return "Medium"
	default:
		return "Slow"
	}
}

func h1Verdict(count int) (string, bool) {
	switch {
	case count == 0:
		return "none found", false
	case count == 1:
		return "1 found", true
	default:
		return fmt.Sprintf("%d found (too many)", count), false
	}
}

func headingStructureValue(ok bool) string {
	if ok {
		return "h1 and h2 present"
	}
	return "missing h1 or h2"
}

func imageVerdict(is ImageStats) (string, bool) {
	switch {
	case is.Total == 0:
		return "no images", true
	case is.MissingAlt == 0:
		return fmt.Sprintf("%d images, all with alt text", is.Total), true
	default:
		return fmt.Sprintf("%d of %d missing alt text", is.MissingAlt, is.Total), false
	}
}

func tagCount(n int) string {
	if n == 0 {
		return "none found"
	}
	return fmt.Sprintf("%d found", n)
}

func linkCount(n int) string {
	if n == 0 {
		return "none found"
	}
	return fmt.Sprintf("%d found", n)
}

func orMissing(s string) string {
	if s == "" {
		return missingMarker
	}
	return s
}
