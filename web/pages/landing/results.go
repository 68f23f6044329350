package landing

import (
	"html"
	"net/url"

	"travelrec/models"

	"github.com/rohanthewiz/element"
)

// User-facing texts of the results panel
const (
	ErrorMessage     = "Sorry, there was an issue retrieving the data. Please try again later."
	NoResultsMessage = `No results found. Try searching for "countries", "temples", "beaches", or a specific country.`

	// PlaceholderImageURL replaces a card image that fails to load
	PlaceholderImageURL = "https://placehold.co/600x400/000000/FFFFFF?text=Image+Not+Found"

	// ResultsID is the stable id of the results container
	ResultsID = "searchResults"
)

// PanelState is what the results container currently shows
type PanelState int

const (
	PanelHidden PanelState = iota // cleared: empty and not displayed
	PanelCards
	PanelNoResults
	PanelError
)

func (s PanelState) String() string {
	switch s {
	case PanelCards:
		return "cards"
	case PanelNoResults:
		return "no-results"
	case PanelError:
		return "error"
	default:
		return "hidden"
	}
}

// ResultsPanel renders the results container for one search.
// Each render replaces whatever the container held before, so a panel never
// mixes cards from two searches or cards with an error.
type ResultsPanel struct {
	State      PanelState
	Items      []models.Destination
	Suggestion string
}

// NewResultsPanel maps a search outcome onto the panel state
func NewResultsPanel(out models.Outcome, err error) ResultsPanel {
	switch {
	case err != nil:
		return ResultsPanel{State: PanelError}
	case out.Blank:
		return ResultsPanel{State: PanelHidden}
	case len(out.Results) == 0:
		return ResultsPanel{State: PanelNoResults, Suggestion: out.Suggestion}
	}
	return ResultsPanel{State: PanelCards, Items: out.Results}
}

// Visible reports whether the container is displayed
func (p ResultsPanel) Visible() bool {
	return p.State != PanelHidden
}

// Render implements element.Component
func (p ResultsPanel) Render(b *element.Builder) any {
	display := "display:none"
	if p.Visible() {
		display = "display:flex"
	}

	b.Div("id", ResultsID, "class", "search-results", "style", display,
		"data-state", p.State.String()).R(
		b.Wrap(func() {
			switch p.State {
			case PanelError:
				b.PClass("error-message").T(ErrorMessage)

			case PanelNoResults:
				b.PClass("no-results-message").T(NoResultsMessage)
				if p.Suggestion != "" {
					b.PClass("suggestion").R(
						b.Wrap(func() {
							b.T("Did you mean ")
							b.A("href", "/?q="+url.QueryEscape(p.Suggestion), "class", "suggestion-link",
								"data-term", html.EscapeString(p.Suggestion)).T(html.EscapeString(p.Suggestion))
							b.T("?")
						}),
					)
				}

			case PanelCards:
				element.ForEach(p.Items, func(d models.Destination) {
					b.Wrap(func() {
						element.RenderComponents(b, ResultCard{Destination: d})
					})
				})
			}
		}),
	)
	return nil
}

// HTML renders the panel on its own, as returned to the page script
func (p ResultsPanel) HTML() string {
	b := element.NewBuilder()
	p.Render(b)
	return b.String()
}

// ResultCard is one rendered recommendation: image, title and description
type ResultCard struct {
	Destination models.Destination
}

// Render implements element.Component.
// Dataset text is escaped since the builder writes text verbatim.
func (c ResultCard) Render(b *element.Builder) any {
	d := c.Destination

	b.DivClass("result-card").R(
		b.Img("src", html.EscapeString(d.ImageURL), "alt", html.EscapeString(d.Name),
			"onerror", "this.onerror=null;this.src='"+PlaceholderImageURL+"'"),
		b.DivClass("card-text").R(
			b.H2().T(html.EscapeString(d.Name)),
			b.P().T(html.EscapeString(d.Description)),
		),
	)
	return nil
}
