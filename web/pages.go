package web

import (
	"context"

	"travelrec/models"
	"travelrec/web/api"
	"travelrec/web/pages/landing"

	"github.com/rohanthewiz/rweb"
)

// landingPage serves the page. With ?q= it runs the search server-side so
// the form works without JavaScript; ?action=reset returns the cleared page.
func landingPage(searcher *models.Searcher) rweb.Handler {
	return func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")

		page := landing.NewPage()

		if api.QueryValue(ctx, "action") == "reset" {
			return ctx.WriteHTML(page.Render())
		}

		query := api.QueryValue(ctx, "q")
		if query == "" {
			return ctx.WriteHTML(page.Render())
		}

		panel := runSearch(ctx, searcher, query)
		return ctx.WriteHTML(page.WithSearch(query, panel).Render())
	}
}

// resultsPartial renders only the results container for ?q=.
// A fetch failure still answers 200 with the error panel so the script
// can swap it in like any other result.
func resultsPartial(searcher *models.Searcher) rweb.Handler {
	return func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		ctx.Response().SetHeader("Cache-Control", "no-store")

		panel := runSearch(ctx, searcher, api.QueryValue(ctx, "q"))
		return ctx.WriteHTML(panel.HTML())
	}
}

// runSearch runs one search and maps it onto the results panel.
// Errors are logged by the searcher.
func runSearch(ctx rweb.Context, searcher *models.Searcher, query string) landing.ResultsPanel {
	out, err := searcher.Run(context.Background(), query)
	if out.SearchID != "" {
		ctx.Response().SetHeader(SearchIDHeader, out.SearchID)
	}
	return landing.NewResultsPanel(out, err)
}
