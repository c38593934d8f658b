package seoaudit

import (
	"fmt"
	"regexp"
	"strings"
)

// The extractors below deliberately scan raw HTML text with tolerant,
// case-insensitive patterns instead of building a DOM. The checklist contract
// is defined in terms of textual matches, so a full parser would change
// observable results (e.g. for markup inside comments or broken tags).
// Malformed markup never produces an error, only zero counts.

// HeadingCounts tallies heading elements per level.
type HeadingCounts struct {
	Counts  [6]int   // index 0 = h1 ... index 5 = h6
	Matched []string // raw matched heading elements, document order
}

// Total returns the number of headings found across all levels.
func (h HeadingCounts) Total() int {
	var n int
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// ImageStats counts img tags and those without usable alt text.
type ImageStats struct {
	Total      int
	MissingAlt int
}

// SocialStats counts social preview meta tags. Counts are raw tag counts,
// not deduplicated by property name.
type SocialStats struct {
	OpenGraph int
	Twitter   int
}

// LinkStats counts anchors carrying an href attribute.
type LinkStats struct {
	Total    int
	Internal int
	External int
}

// MetaSignals reports presence of the basic document-level meta tags.
type MetaSignals struct {
	Title          string
	HasTitle       bool
	Description    string
	HasDescription bool
	HasKeywords    bool
	HasViewport    bool
	HasCanonical   bool
	HasSchema      bool
}

var (
	headingRe = regexp.MustCompile(`(?i)<h([1-6])[^>]*>(.*?)</h[1-6]>`)
	imgTagRe  = regexp.MustCompile(`(?i)<img[^>]*>`)
	metaTagRe = regexp.MustCompile(`(?i)<meta[^>]*>`)
	linkTagRe = regexp.MustCompile(`(?i)<link[^>]*>`)
	aTagRe    = regexp.MustCompile(`(?i)<a\b[^>]*>`)
	titleRe   = regexp.MustCompile(`(?i)<title[^>]*>(.*?)</title>`)

	attrRes = map[string]*regexp.Regexp{}
)

func init() {
	for _, name := range []string{"alt", "href", "name", "property", "content", "rel"} {
		attrRes[name] = regexp.MustCompile(
			fmt.Sprintf(`(?i)\b%s\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s>]+))`, name))
	}
}

// attrValue extracts the value of the named attribute from a single tag's
// text. The second return reports whether the attribute is present at all,
// so an empty value can be told apart from a missing attribute.
func attrValue(tag, name string) (string, bool) {
	m := attrRes[name].FindStringSubmatch(tag)
	if m == nil {
		return "", false
	}
	for _, g := range m[1:] {
		if g != "" {
			return g, true
		}
	}
	return "", true
}

// CountHeadings tallies <h1> through <h6> elements. Matching is non-greedy
// and does not cross newlines, so a heading split over lines is not counted.
func CountHeadings(html string) HeadingCounts {
	var hc HeadingCounts
	for _, m := range headingRe.FindAllStringSubmatch(html, -1) {
		level := int(m[1][0] - '0')
		hc.Counts[level-1]++
		hc.Matched = append(hc.Matched, m[0])
	}
	return hc
}

// CountImages counts <img> tags and classifies a tag as missing alt text
// when it has no alt attribute at all or the attribute value is empty.
func CountImages(html string) ImageStats {
	var is ImageStats
	for _, tag := range imgTagRe.FindAllString(html, -1) {
		is.Total++
		if alt, ok := attrValue(tag, "alt"); !ok || alt == "" {
			is.MissingAlt++
		}
	}
	return is
}

// CountSocial counts Open Graph (<meta property="og:...">) and Twitter Card
// (<meta name="twitter:...">) tags independently.
func CountSocial(html string) SocialStats {
	var ss SocialStats
	for _, tag := range metaTagRe.FindAllString(html, -1) {
		if prop, ok := attrValue(tag, "property"); ok && hasFold(prop, "og:") {
			ss.OpenGraph++
		}
		if name, ok := attrValue(tag, "name"); ok && hasFold(name, "twitter:") {
			ss.Twitter++
		}
	}
	return ss
}

// CountLinks counts anchors with an href attribute. An href is external when
// it contains "http" and selfHost does not appear in it; everything else is
// internal. selfHost is the auditing service's own hostname, which mirrors
// the original checker's comparison against its own origin rather than the
// audited site's host.
func CountLinks(html, selfHost string) LinkStats {
	var ls LinkStats
	for _, tag := range aTagRe.FindAllString(html, -1) {
		href, ok := attrValue(tag, "href")
		if !ok {
			continue
		}
		ls.Total++
		if strings.Contains(strings.ToLower(href), "http") && !strings.Contains(href, selfHost) {
			ls.External++
		} else {
			ls.Internal++
		}
	}
	return ls
}

// DetectMeta reports presence of title, description, keywords, viewport and
// canonical tags plus schema markup (JSON-LD or microdata) anywhere in the
// document.
func DetectMeta(html string) MetaSignals {
	var ms MetaSignals

	if m := titleRe.FindStringSubmatch(html); m != nil {
		ms.HasTitle = true
		ms.Title = strings.TrimSpace(m[1])
	}

	for _, tag := range metaTagRe.FindAllString(html, -1) {
		name, ok := attrValue(tag, "name")
		if !ok {
			continue
		}
		switch {
		case strings.EqualFold(name, "description"):
			if content, ok := attrValue(tag, "content"); ok && !ms.HasDescription {
				ms.HasDescription = true
				ms.Description = strings.TrimSpace(content)
			}
		case strings.EqualFold(name, "keywords"):
			if _, ok := attrValue(tag, "content"); ok {
				ms.HasKeywords = true
			}
		case strings.EqualFold(name, "viewport"):
			ms.HasViewport = true
		}
	}

	for _, tag := range linkTagRe.FindAllString(html, -1) {
		if rel, ok := attrValue(tag, "rel"); ok && strings.EqualFold(rel, "canonical") {
			ms.HasCanonical = true
			break
		}
	}

	lower := strings.ToLower(html)
	ms.HasSchema = strings.Contains(lower, "application/ld+json") || strings.Contains(lower, "itemscope")

	return ms
}

func hasFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
