package seoaudit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/temoto/robotstxt"
)

// FetchResult carries everything the engine needs from one page fetch.
type FetchResult struct {
	Body       string
	StatusCode int
	FinalURL   *url.URL // URL after redirects; determines the HTTPS check
	Elapsed    time.Duration
}

// PageFetcher retrieves the raw HTML of a page.
type PageFetcher interface {
	FetchPage(ctx context.Context, targetURL string) (*FetchResult, error)
}

// RobotsState classifies the outcome of a robots.txt probe.
type RobotsState int

const (
	// RobotsFound means /robots.txt answered with a 2xx status.
	RobotsFound RobotsState = iota
	// RobotsMissing means the origin answered with an error status.
	RobotsMissing
	// RobotsAmbiguous means the probe itself failed; the check degrades to
	// an optimistic pass rather than failing the audit.
	RobotsAmbiguous
)

// RobotsStatus is the result of probing {origin}/robots.txt.
type RobotsStatus struct {
	State RobotsState
	// AgentAllowed reports whether the audit agent may fetch the site root
	// according to the fetched file. True whenever the file is absent or
	// unreadable, matching the robots exclusion convention.
	AgentAllowed bool
}

// RobotsProber checks whether an origin serves a robots.txt file.
type RobotsProber interface {
	ProbeRobots(ctx context.Context, origin string) RobotsStatus
}

const (
	maxRedirects    = 5
	maxResponseBody = 10 << 20 // cap page bodies at 10 MB
	defaultAgent    = "SEOAuditBot/1.0"
)

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// HTTPClient implements PageFetcher and RobotsProber against live servers.
type HTTPClient struct {
	client       *http.Client
	robotsClient *http.Client
	userAgent    string
}

// NewHTTPClient returns an HTTPClient whose page fetches use the given
// timeout, a transport that blocks connections to private/reserved IP
// ranges, and redirect validation. Robots probes use a shorter 5s client
// that does not follow redirects.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	if userAgent == "" {
		userAgent = defaultAgent
	}
	transport := &http.Transport{
		DialContext:         safeDialer().DialContext,
		MaxConnsPerHost:     10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	return &HTTPClient{
		userAgent: userAgent,
		client: &http.Client{
			Timeout:       timeout,
			Transport:     transport,
			CheckRedirect: safeRedirectPolicy,
		},
		robotsClient: &http.Client{
			Timeout:   5 * time.Second,
			Transport: transport,
			CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// safeRedirectPolicy validates redirect targets and limits the redirect chain length.
func safeRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// FetchPage retrieves the page at targetURL and measures the wall-clock time
// from issuing the request to reading the full body.
func (c *HTTPClient) FetchPage(ctx context.Context, targetURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, err
	}

	return &FetchResult{
		Body:       string(body),
		StatusCode: resp.StatusCode,
		FinalURL:   resp.Request.URL,
		Elapsed:    time.Since(start),
	}, nil
}

// ProbeRobots requests {origin}/robots.txt. A 2xx answer counts as found and
// the body is parsed to see whether the audit agent may fetch the site root;
// an error status counts as missing; a transport failure is ambiguous.
func (c *HTTPClient) ProbeRobots(ctx context.Context, origin string) RobotsStatus {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return RobotsStatus{State: RobotsAmbiguous, AgentAllowed: true}
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.robotsClient.Do(req)
	if err != nil {
		return RobotsStatus{State: RobotsAmbiguous, AgentAllowed: true}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return RobotsStatus{State: RobotsMissing, AgentAllowed: true}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return RobotsStatus{State: RobotsFound, AgentAllowed: true}
	}

	status := RobotsStatus{State: RobotsFound, AgentAllowed: true}
	if data, err := robotstxt.FromStatusAndBytes(resp.StatusCode, body); err == nil {
		status.AgentAllowed = data.TestAgent("/", c.userAgent)
	}
	return status
}
