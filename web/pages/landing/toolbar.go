package landing

import "github.com/rohanthewiz/element"

// Toolbar is the top navigation bar; it carries the search bar on the right
type Toolbar struct {
	Query string
}

// Render implements the element.Component interface
func (t Toolbar) Render(b *element.Builder) any {
	b.Nav("class", "toolbar").R(
		b.DivClass("toolbar-left").R(
			b.A("href", "/", "class", "toolbar-link").T("Home"),
		),
		b.DivClass("toolbar-right").R(
			element.RenderComponents(b, SearchBar{Query: t.Query}),
		),
	)
	return nil
}
