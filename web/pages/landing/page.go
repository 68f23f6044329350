package landing

import (
	"travelrec/web/pages/comps"
	"travelrec/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// Page is the travel recommendation page: banner, toolbar with the search
// bar, hero heading, results panel and footer.
type Page struct {
	shared.Page
	Query   string
	Results ResultsPanel
}

// NewPage creates the landing page with an empty, hidden results panel
func NewPage() Page {
	return Page{
		Page: shared.Page{
			Title:   "Travel Recommendations",
			Tagline: "Find countries, temples and beaches worth the trip",
		},
	}
}

// WithSearch returns a copy of the page showing query and its results
func (p Page) WithSearch(query string, results ResultsPanel) Page {
	p.Query = query
	p.Results = results
	return p
}

// Render generates the complete HTML for the page
func (p Page) Render() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.renderHead(b),
		p.renderBody(b),
	)

	return b.String()
}

func (p Page) renderHead(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(p.Title),
		b.Link("rel", "stylesheet", "href", "/static/css/app.css?v=1"),
	)
}

func (p Page) renderBody(b *element.Builder) any {
	return b.Body().R(
		b.Div("class", "app-container", "id", "app").R(
			element.RenderComponents(b,
				p.Banner(),
				Toolbar{Query: p.Query},
			),

			b.Main("class", "app-main").R(
				element.RenderComponents(b,
					comps.Heading{
						Title:    "Explore dream destinations",
						Subtitle: `Search for "countries", "temples", "beaches" or a country name.`,
					},
					p.Results,
				),
			),

			element.RenderComponents(b, p.Footer()),
		),

		// Page script takes over the Search and Reset clicks
		b.Script("src", "/static/js/app.js?v=1").R(),
	)
}
