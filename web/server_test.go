package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"travelrec/models"
	"travelrec/web"
	"travelrec/web/pages/landing"

	"github.com/PuerkitoBio/goquery"
)

// startServer runs a server on addr backed by src and waits until it answers
func startServer(t *testing.T, addr string, src models.DataSource) string {
	t.Helper()

	cfg := models.DefaultConfig()
	cfg.Address = addr
	srv := web.NewServer(cfg, models.NewSearcher(src))

	go func() {
		srv.Run()
	}()

	baseURL := "http://localhost" + addr
	client := &http.Client{Timeout: time.Second}
	for i := 0; i < 50; i++ {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			return baseURL
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("server on %s did not start", addr)
	return ""
}

var (
	healthyURL string
	failingURL string
)

// servers starts the shared test servers once per package run
func servers(t *testing.T) (string, string) {
	t.Helper()

	if healthyURL == "" {
		healthyURL = startServer(t, ":18431", &models.FSSource{FS: web.StaticFS(), Path: models.DatasetFileName})

		// The remote dataset is missing: every fetch gets a 404
		missing := httptest.NewServer(http.NotFoundHandler())
		src, err := models.NewHTTPSource(missing.URL+"/", models.DatasetFileName, 0)
		if err != nil {
			t.Fatalf("failed to create http source: %v", err)
		}
		failingURL = startServer(t, ":18432", src)
	}
	return healthyURL, failingURL
}

func getDoc(t *testing.T, rawURL string) (*http.Response, *goquery.Document) {
	t.Helper()

	resp, err := http.Get(rawURL)
	if err != nil {
		t.Fatalf("GET %s failed: %v", rawURL, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("failed to parse HTML from %s: %v", rawURL, err)
	}
	return resp, doc
}

func isHidden(sel *goquery.Selection) bool {
	style, _ := sel.Attr("style")
	return strings.Contains(style, "display:none")
}

func TestLandingPage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	base, _ := servers(t)

	t.Run("InitialPage", func(t *testing.T) {
		resp, doc := getDoc(t, base+"/")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status 200, got %d", resp.StatusCode)
		}

		for _, id := range []string{"search", "searchBtn", "resetBtn", "searchResults"} {
			if doc.Find("#"+id).Length() != 1 {
				t.Errorf("expected exactly one element with id %q", id)
			}
		}

		results := doc.Find("#searchResults")
		if !isHidden(results) {
			t.Error("results container should start hidden")
		}
		if strings.TrimSpace(results.Text()) != "" {
			t.Errorf("results container should start empty, got %q", results.Text())
		}
	})

	t.Run("ServerSideSearch", func(t *testing.T) {
		resp, doc := getDoc(t, base+"/?q=japan&action=search")
		if resp.Header.Get(web.SearchIDHeader) == "" {
			t.Error("expected a search id header")
		}

		cards := doc.Find("#searchResults .result-card")
		if cards.Length() != 2 {
			t.Fatalf("expected 2 cards for Japan, got %d", cards.Length())
		}
		if got := cards.First().Find("h2").Text(); got != "Tokyo, Japan" {
			t.Errorf("expected first card Tokyo, Japan, got %q", got)
		}
		if val, _ := doc.Find("#search").Attr("value"); val != "japan" {
			t.Errorf("expected input to keep the query, got %q", val)
		}
	})

	t.Run("ResetClearsInputAndResults", func(t *testing.T) {
		_, doc := getDoc(t, base+"/?q=beaches&action=reset")

		if val, _ := doc.Find("#search").Attr("value"); val != "" {
			t.Errorf("expected empty input after reset, got %q", val)
		}
		results := doc.Find("#searchResults")
		if !isHidden(results) || results.Children().Length() != 0 {
			t.Error("expected cleared, hidden results after reset")
		}
	})

	t.Run("BlankQueryLeavesResultsHidden", func(t *testing.T) {
		_, doc := getDoc(t, base+"/?q="+url.QueryEscape("   "))

		results := doc.Find("#searchResults")
		if !isHidden(results) || results.Children().Length() != 0 {
			t.Error("expected hidden, empty results for blank query")
		}
	})
}

func TestResultsPartial(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	base, failing := servers(t)

	partial := func(baseURL, q string) *goquery.Selection {
		_, doc := getDoc(t, baseURL+"/partials/search-results?q="+url.QueryEscape(q))
		return doc.Find("#" + landing.ResultsID)
	}

	t.Run("Countries", func(t *testing.T) {
		for _, q := range []string{"countries", "Country"} {
			cards := partial(base, q).Find(".result-card")
			if cards.Length() != 6 {
				t.Errorf("%s: expected 6 city cards, got %d", q, cards.Length())
			}
		}
	})

	t.Run("Beaches", func(t *testing.T) {
		results := partial(base, "Beach")
		if isHidden(results) {
			t.Error("results should be visible")
		}
		var names []string
		results.Find(".result-card h2").Each(func(_ int, s *goquery.Selection) {
			names = append(names, s.Text())
		})
		want := []string{"Bora Bora, French Polynesia", "Copacabana Beach, Brazil"}
		if strings.Join(names, "|") != strings.Join(want, "|") {
			t.Errorf("expected %v, got %v", want, names)
		}
	})

	t.Run("UnknownCountry", func(t *testing.T) {
		results := partial(base, "Atlantis")
		if results.Find(".result-card").Length() != 0 {
			t.Error("expected no cards")
		}
		if results.Find(".no-results-message").Length() != 1 {
			t.Error("expected the no results message")
		}
	})

	t.Run("Blank", func(t *testing.T) {
		results := partial(base, " ")
		if !isHidden(results) || results.Children().Length() != 0 {
			t.Error("expected hidden, empty container for a blank term")
		}
	})

	t.Run("FetchFailure", func(t *testing.T) {
		results := partial(failing, "beaches")
		if results.Find(".result-card").Length() != 0 {
			t.Error("expected no stale cards on fetch failure")
		}
		msg := results.Find(".error-message")
		if msg.Length() != 1 || msg.Text() != landing.ErrorMessage {
			t.Errorf("expected the generic error message, got %q", msg.Text())
		}
	})
}

func TestDatasetRoute(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	base, _ := servers(t)

	resp, err := http.Get(base + "/" + models.DatasetFileName)
	if err != nil {
		t.Fatalf("failed to fetch dataset: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var ds models.Dataset
	if err := json.NewDecoder(resp.Body).Decode(&ds); err != nil {
		t.Fatalf("dataset route returned invalid JSON: %v", err)
	}
	if len(ds.Countries) != 3 || len(ds.Temples) != 2 || len(ds.Beaches) != 2 {
		t.Errorf("unexpected dataset shape: %d countries, %d temples, %d beaches",
			len(ds.Countries), len(ds.Temples), len(ds.Beaches))
	}

	// The page's relative reference resolves to this route
	src, err := models.NewHTTPSource(base+"/", models.DatasetFileName, 0)
	if err != nil {
		t.Fatalf("failed to create http source: %v", err)
	}
	if _, err := src.Fetch(t.Context()); err != nil {
		t.Errorf("http source could not read the published dataset: %v", err)
	}
}

func TestStaticFiles(t *testing.T) {
	base, _ := servers(t)

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/static/js/app.js", http.StatusOK, "application/javascript"},
		{"/static/css/app.css", http.StatusOK, "text/css"},
		{"/static/js/missing.js", http.StatusNotFound, ""},
		{"/static/js", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		resp, err := http.Get(base + tt.path)
		if err != nil {
			t.Fatalf("GET %s failed: %v", tt.path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != tt.status {
			t.Errorf("%s: expected status %d, got %d", tt.path, tt.status, resp.StatusCode)
			continue
		}
		if tt.status != http.StatusOK {
			continue
		}
		if got := resp.Header.Get("Content-Type"); !strings.HasPrefix(got, tt.contentType) {
			t.Errorf("%s: expected content type %q, got %q", tt.path, tt.contentType, got)
		}
		if got := resp.Header.Get("Cache-Control"); got != "public, max-age=3600" {
			t.Errorf("%s: unexpected cache control %q", tt.path, got)
		}
	}
}
