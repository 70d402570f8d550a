package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"rent-analyzer/config"
	"rent-analyzer/utils"
)

func testConfig() *config.Config {
	return &config.Config{FetchTimeoutMs: 5000, UserAgent: "Mozilla/5.0"}
}

func TestFetchReturnsFixedRecordRegardlessOfContent(t *testing.T) {
	pages := []string{
		"<html><head><title>2 BHK in Powai</title></head><body>Rs. 90000</body></html>",
		"<html><body>completely unrelated page</body></html>",
		"not even html",
	}

	for _, page := range pages {
		body := page
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))

		s := New(testConfig(), utils.NewLogger(false))
		listing, err := s.Fetch(context.Background(), ts.URL)
		ts.Close()
		if err != nil {
			t.Fatalf("fetch: %v", err)
		}

		if listing.Location != "Andheri, Mumbai" || listing.Latitude != 19.119 ||
			listing.Longitude != 72.846 || listing.AreaSqft != 800 ||
			listing.BHK != 2 || listing.AmenitiesScore != 8 || listing.RentPrice != 50000 {
			t.Errorf("fixed record mismatch for page %q: %+v", body, listing)
		}
	}
}

func TestFetchSendsBrowserUserAgent(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer ts.Close()

	s := New(testConfig(), utils.NewLogger(false))
	if _, err := s.Fetch(context.Background(), ts.URL); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotUA != "Mozilla/5.0" {
		t.Errorf("User-Agent: got %q, want Mozilla/5.0", gotUA)
	}
}

func TestFetchSucceedsOnErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer ts.Close()

	s := New(testConfig(), utils.NewLogger(false))
	listing, err := s.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("a reachable page must not fail, got %v", err)
	}
	if listing.RentPrice != 50000 {
		t.Errorf("fixed record mismatch: %+v", listing)
	}
}

func TestFetchUnreachableHost(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	s := New(testConfig(), utils.NewLogger(false))
	if _, err := s.Fetch(context.Background(), url); err == nil {
		t.Error("expected error for refused connection")
	}
}

func TestFetchMalformedURL(t *testing.T) {
	s := New(testConfig(), utils.NewLogger(false))
	if _, err := s.Fetch(context.Background(), "://not-a-url"); err == nil {
		t.Error("expected error for malformed URL")
	}
}
