package comps

import "github.com/rohanthewiz/element"

// Heading is the hero heading shown above the results panel
type Heading struct {
	Title    string
	Subtitle string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.DivClass("hero").R(
		b.H1("class", "hero-title").T(h.Title),
		b.Wrap(func() {
			if h.Subtitle != "" {
				b.PClass("hero-subtitle").T(h.Subtitle)
			}
		}),
	)
	return
}
