package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultStatsBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultStatsBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestParseBaseURL_Invalid(t *testing.T) {
	if _, err := parseBaseURL("http://[::1"); err == nil {
		t.Fatal("expected error for malformed host")
	}
}

func TestClient_FetchSample(t *testing.T) {
	t.Parallel()

	var gotPath, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cpu":17,"gpu":42,"ram":{"totalGiB":15.5,"usedGiB":6.1,"percent":39}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	s, err := c.FetchSample(ctx)
	if err != nil {
		t.Fatalf("FetchSample returned error: %v", err)
	}
	if gotPath != statsPath {
		t.Fatalf("path = %q, want %q", gotPath, statsPath)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("user agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
	if s.CPU != 17 || !s.HasGPU() || s.GPUPercent() != 42 {
		t.Fatalf("sample = %#v, want cpu=17 gpu=42", s)
	}
	if s.RAM.Percent != 39 || s.MemoryLabel() != "6.1 / 15.5 GB" {
		t.Fatalf("ram = %#v label %q", s.RAM, s.MemoryLabel())
	}
}

func TestClient_FetchSampleWithoutGPU(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cpu":3,"gpu":null,"ram":{"totalGiB":8,"usedGiB":1,"percent":12}}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	s, err := c.FetchSample(context.Background())
	if err != nil {
		t.Fatalf("FetchSample returned error: %v", err)
	}
	if s.HasGPU() || s.GPUPercent() != 0 {
		t.Fatalf("gpu = %v, want absent", s.GPU)
	}
}

func TestClient_Errors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchSample(context.Background())
	if err == nil || !strings.Contains(err.Error(), "status 503") {
		t.Fatalf("err = %v, want status 503", err)
	}

	garbage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cpu":`))
	}))
	t.Cleanup(garbage.Close)

	c, err = NewClient(garbage.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.FetchSample(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("err = %v, want decode error", err)
	}

	var nilClient *Client
	if _, err := nilClient.FetchSample(context.Background()); err == nil {
		t.Fatal("nil client should error")
	}
}
