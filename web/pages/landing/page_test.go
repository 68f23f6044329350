package landing

import (
	"regexp"
	"strings"
	"testing"

	"travelrec/models"
)

// TestPageStructure verifies the page carries the widget's stable ids
func TestPageStructure(t *testing.T) {
	html := NewPage().Render()

	for _, id := range []string{SearchInputID, SearchButtonID, ResetButtonID, ResultsID} {
		if !strings.Contains(html, `id="`+id+`"`) {
			t.Errorf("page should contain id %q", id)
		}
	}

	if !strings.Contains(html, "<title>Travel Recommendations</title>") {
		t.Error("page should contain the title")
	}
	if !strings.Contains(html, "/static/js/app.js") {
		t.Error("page should include app.js")
	}
	if !strings.Contains(html, `style="display:none"`) {
		t.Error("results should be hidden on a fresh page")
	}
}

func TestPageWithSearch(t *testing.T) {
	panel := ResultsPanel{State: PanelCards, Items: []models.Destination{{Name: "Kyoto, Japan"}}}
	html := NewPage().WithSearch(`"Japan"`, panel).Render()

	if !strings.Contains(html, "Kyoto, Japan") {
		t.Error("page should render the result cards")
	}
	if !strings.Contains(html, `value="&#34;Japan&#34;"`) {
		t.Error("query should be kept, escaped, in the search input")
	}
}

var fragmentLink = regexp.MustCompile(`href="#([^"]+)"`)

// TestPageFragmentLinksResolve checks that in-page links point at elements on the page
func TestPageFragmentLinksResolve(t *testing.T) {
	html := NewPage().Render()

	for _, m := range fragmentLink.FindAllStringSubmatch(html, -1) {
		if !strings.Contains(html, `id="`+m[1]+`"`) {
			t.Errorf("link #%s has no target on the page", m[1])
		}
	}
}
