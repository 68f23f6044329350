package landing

import (
	"html"

	"github.com/rohanthewiz/element"
)

// Stable ids the page script binds to
const (
	SearchInputID  = "search"
	SearchButtonID = "searchBtn"
	ResetButtonID  = "resetBtn"
)

// SearchBar is the search form: text input, Search and Reset.
//
// Without JavaScript the form submits to / and the server renders the
// results (action=search) or a cleared page (action=reset). With the page
// script loaded, both clicks are handled in the browser.
type SearchBar struct {
	Query string
}

// Render implements element.Component. It builds the search form.
func (s SearchBar) Render(b *element.Builder) (x any) {
	b.Form("class", "search-bar", "id", "search-form", "method", "get", "action", "/").R(
		b.Input("type", "text", "class", "search-bar-input", "id", SearchInputID, "name", "q",
			"value", html.EscapeString(s.Query),
			"placeholder", "Enter a destination or keyword",
			"autocomplete", "off"),
		b.Button("type", "submit", "class", "btn btn-primary", "id", SearchButtonID,
			"name", "action", "value", "search").T("Search"),
		b.Button("type", "submit", "class", "btn btn-secondary", "id", ResetButtonID,
			"name", "action", "value", "reset").T("Reset"),
	)
	return
}
