package shared

import "github.com/rohanthewiz/element"

// EMPTY STRUCT: Footer is a component with no data fields.
// It only provides behavior (Render), so struct{} is enough.
type Footer struct{}

// Render implements element.Component
func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "site-footer").R(
		// &copy; is an HTML entity for the copyright symbol ©
		b.P().T("Copyright &copy; 2025 Travel Recommendations"),
	)
	return nil
}
