package web

import (
	"travelrec/models"
	"travelrec/web/api"

	"github.com/rohanthewiz/rweb"
)

// SearchIDHeader carries the id of the search that produced a response
const SearchIDHeader = "X-Search-ID"

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, searcher *models.Searcher) {
	// Page routes - HTML responses
	s.Get("/", landingPage(searcher))

	// Partial used by the page script; returns only the results container
	s.Get("/partials/search-results", resultsPartial(searcher))

	// API v1 routes - JSON (or msgpack) responses
	s.Get("/api/v1/search", api.Search(searcher, SearchIDHeader))

	s.Get("/health", func(ctx rweb.Context) error {
		return ctx.WriteJSON(map[string]interface{}{"status": "ok"})
	})
}
