package seoaudit

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

// testClient wires an HTTPClient to the httptest server's client, bypassing
// the safe dialer which would reject loopback addresses.
func testClient(ts *httptest.Server) *HTTPClient {
	return &HTTPClient{
		client:       ts.Client(),
		robotsClient: ts.Client(),
		userAgent:    defaultAgent,
	}
}

func TestNewHTTPClient(t *testing.T) {
	c := NewHTTPClient(10*time.Second, "")
	if c == nil {
		t.Fatal("NewHTTPClient returned nil")
	}
	if c.client == nil || c.robotsClient == nil {
		t.Fatal("internal http clients are nil")
	}
	if c.userAgent != defaultAgent {
		t.Errorf("userAgent = %q, want default %q", c.userAgent, defaultAgent)
	}
}

func TestHTTPClient_FetchPage(t *testing.T) {
	const page = "<html><head><title>Hi</title></head><body></body></html>"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != defaultAgent {
			t.Errorf("User-Agent = %q, want %q", r.Header.Get("User-Agent"), defaultAgent)
		}
		if r.Header.Get("Accept") != "text/html" {
			t.Errorf("Accept = %q, want %q", r.Header.Get("Accept"), "text/html")
		}
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, page)
	}))
	defer ts.Close()

	c := testClient(ts)
	result, err := c.FetchPage(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", result.StatusCode, http.StatusOK)
	}
	if result.Body != page {
		t.Errorf("body = %q, want %q", result.Body, page)
	}
	if result.FinalURL.String() != ts.URL {
		t.Errorf("final URL = %q, want %q", result.FinalURL, ts.URL)
	}
	if result.Elapsed <= 0 {
		t.Errorf("elapsed = %v, want > 0", result.Elapsed)
	}
}

func TestHTTPClient_FetchPage_RecordsFinalURLAfterRedirect(t *testing.T) {
	var target *httptest.Server
	target = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, target.URL+"/final", http.StatusMovedPermanently)
			return
		}
		_, _ = fmt.Fprint(w, "<html></html>")
	}))
	defer target.Close()

	c := testClient(target)
	result, err := c.FetchPage(context.Background(), target.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := target.URL + "/final"; result.FinalURL.String() != want {
		t.Errorf("final URL = %q, want %q", result.FinalURL, want)
	}
}

func TestHTTPClient_FetchPage_InvalidURL(t *testing.T) {
	c := NewHTTPClient(time.Second, "")
	if _, err := c.FetchPage(context.Background(), "://bad-url"); err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestHTTPClient_FetchPage_CancelledContext(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := testClient(ts).FetchPage(ctx, ts.URL); err == nil {
		t.Fatal("expected error for cancelled context, got nil")
	}
}

func TestSafeRedirectPolicy(t *testing.T) {
	tests := []struct {
		name    string
		scheme  string
		via     int
		wantErr bool
	}{
		{name: "https within limit", scheme: "https", via: 3, wantErr: false},
		{name: "too many redirects", scheme: "https", via: 5, wantErr: true},
		{name: "blocked ftp scheme", scheme: "ftp", via: 0, wantErr: true},
		{name: "blocked file scheme", scheme: "file", via: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &http.Request{URL: &url.URL{Scheme: tt.scheme, Host: "example.com"}}
			via := make([]*http.Request, tt.via)

			err := safeRedirectPolicy(req, via)
			if (err != nil) != tt.wantErr {
				t.Errorf("safeRedirectPolicy() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHTTPClient_ProbeRobots(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantState   RobotsState
		wantAllowed bool
	}{
		{
			name:        "found and permissive",
			status:      http.StatusOK,
			body:        "User-agent: *\nAllow: /\n",
			wantState:   RobotsFound,
			wantAllowed: true,
		},
		{
			name:        "found but disallows everything",
			status:      http.StatusOK,
			body:        "User-agent: *\nDisallow: /\n",
			wantState:   RobotsFound,
			wantAllowed: false,
		},
		{
			name:        "missing",
			status:      http.StatusNotFound,
			body:        "not here",
			wantState:   RobotsMissing,
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/robots.txt" {
					t.Errorf("path = %q, want /robots.txt", r.URL.Path)
				}
				w.WriteHeader(tt.status)
				_, _ = fmt.Fprint(w, tt.body)
			}))
			defer ts.Close()

			got := testClient(ts).ProbeRobots(context.Background(), ts.URL)
			if got.State != tt.wantState {
				t.Errorf("State = %d, want %d", got.State, tt.wantState)
			}
			if got.AgentAllowed != tt.wantAllowed {
				t.Errorf("AgentAllowed = %v, want %v", got.AgentAllowed, tt.wantAllowed)
			}
		})
	}
}

func TestHTTPClient_ProbeRobots_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	origin := ts.URL
	ts.Close() // probe against a closed server

	c := &HTTPClient{
		client:       &http.Client{Timeout: time.Second},
		robotsClient: &http.Client{Timeout: time.Second},
		userAgent:    defaultAgent,
	}
	got := c.ProbeRobots(context.Background(), origin)
	if got.State != RobotsAmbiguous {
		t.Errorf("State = %d, want %d (RobotsAmbiguous)", got.State, RobotsAmbiguous)
	}
	if !got.AgentAllowed {
		t.Error("ambiguous probe should leave the agent allowed")
	}
}
