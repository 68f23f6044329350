// Package shared contains components used by more than one page.
package shared

// Page is embedded in page structs to give them a title and the common
// banner and footer (the "mixin" pattern: composition through embedding).
//
// Example usage:
//
//	type Landing struct {
//	    shared.Page // Landing now has Title, Banner() and Footer()
//	    Query string
//	}
type Page struct {
	Title   string
	Tagline string
}

// Banner returns the header component for this page.
// VALUE RECEIVER: the method gets a copy of Page, which is fine for read-only use.
func (p Page) Banner() Banner {
	return Banner{Title: p.Title, Tagline: p.Tagline}
}

// Footer returns the footer component.
// Footer{} has no fields, so the empty literal is sufficient.
func (p Page) Footer() Footer {
	return Footer{}
}
