package tui

import (
	"strings"

	"travelrec/web/pages/landing"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#1F6F8B")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1F6F8B")).
			Padding(0, 1).
			MarginBottom(1)

	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	imageStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C0392B"))
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Travel Recommendations"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if m.pending {
		sb.WriteString(helpStyle.Render("Searching..."))
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.renderPanel())
	sb.WriteString(helpStyle.Render("enter: search • esc/ctrl+r: reset • ctrl+c: quit"))
	return sb.String()
}

// renderPanel renders the results area; empty when hidden
func (m Model) renderPanel() string {
	switch m.state {
	case panelError:
		return errorStyle.Render(landing.ErrorMessage) + "\n\n"

	case panelNoResults:
		s := landing.NoResultsMessage + "\n"
		if m.suggestion != "" {
			s += "Did you mean " + m.suggestion + "?\n"
		}
		return s + "\n"

	case panelCards:
		width := m.width - 4
		if width < 20 {
			width = 20
		}

		var sb strings.Builder
		for _, d := range m.results {
			card := cardTitleStyle.Render(d.Name) + "\n" +
				imageStyle.Render(d.ImageURL) + "\n" +
				d.Description
			sb.WriteString(cardStyle.Width(width).Render(card))
			sb.WriteString("\n")
		}
		return sb.String()
	}
	return ""
}
