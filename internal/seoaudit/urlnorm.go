package seoaudit

import (
	"net/url"
	"strings"
)

// NormalizeURL turns free-form user input into a fetchable URL by prepending
// https:// when no http(s) scheme is present. Anything beyond the scheme is
// left untouched; malformed input is left for the fetch step to fail on.
func NormalizeURL(raw string) string {
	if hasHTTPScheme(raw) {
		return raw
	}
	return "https://" + raw
}

// DisplayHost extracts the hostname from a URL string for cosmetic display.
// Scheme-less input defaults to http:// here, not https:// as in
// NormalizeURL; the two call sites of the original tool used different
// defaults and the behaviors are kept separate on purpose. Returns "" on any
// parse failure.
func DisplayHost(raw string) string {
	s := raw
	if !hasHTTPScheme(s) {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
