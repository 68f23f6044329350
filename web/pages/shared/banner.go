package shared

// IMPORT STATEMENT for third-party package
// We need the element package to use its Builder type
import "github.com/rohanthewiz/element"

// COMPONENT PATTERN: Banner is the site header shown above the search bar.
// It's a simple struct with data (Title, Tagline) and behavior (Render method)
type Banner struct {
	Title   string
	Tagline string
}

// INTERFACE IMPLEMENTATION: This method implements the element.Component interface
// If a type has all the methods of an interface, it automatically implements that interface
func (b Banner) Render(builder *element.Builder) any {
	// builder.Header() creates a <header> tag; .R() accepts the child elements
	builder.Header("class", "banner").R(
		// The title links home, which is also the no-script way to reset
		builder.A("href", "/", "class", "banner-title").T(b.Title),
		builder.Wrap(func() {
			if b.Tagline != "" {
				builder.PClass("banner-tagline").T(b.Tagline)
			}
		}),
	)

	// Returning nil satisfies the 'any' return type
	return nil
}
