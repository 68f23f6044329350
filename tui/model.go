// Package tui is the terminal version of the search widget: a search
// field, Search (enter) and Reset (esc / ctrl+r), and a results panel.
package tui

import (
	"context"

	"travelrec/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

// panelState mirrors the states of the HTML results container
type panelState int

const (
	panelHidden panelState = iota
	panelCards
	panelNoResults
	panelError
)

// searchDoneMsg delivers the outcome of one search.
// seq identifies the search so responses that are no longer the latest are dropped.
type searchDoneMsg struct {
	seq int
	out models.Outcome
	err error
}

// Model is the bubbletea model of the widget
type Model struct {
	searcher *models.Searcher
	input    textinput.Model

	seq        int // sequence number of the latest search or reset
	pending    bool
	state      panelState
	results    []models.Destination
	suggestion string
	width      int
}

// NewModel returns a focused, empty widget backed by searcher
func NewModel(searcher *models.Searcher) Model {
	ti := textinput.New()
	ti.Placeholder = "countries, temples, beaches or a country"
	ti.Prompt = "Search: "
	ti.CharLimit = 80
	ti.Focus()

	return Model{
		searcher: searcher,
		input:    ti,
		width:    80,
	}
}

// Run starts the program on the terminal and blocks until the user quits
func Run(searcher *models.Searcher) error {
	_, err := tea.NewProgram(NewModel(searcher), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.search()
		case tea.KeyEsc, tea.KeyCtrlR:
			return m.reset(), nil
		}

	case searchDoneMsg:
		if msg.seq != m.seq {
			return m, nil // superseded
		}
		m.pending = false
		m.apply(msg.out, msg.err)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// search validates the term and starts the fetch as a command
func (m Model) search() (tea.Model, tea.Cmd) {
	term := m.input.Value()
	m.seq++

	if models.IsBlankTerm(term) {
		// Any search still in flight is now stale
		m.pending = false
		m.clear()
		logger.Info("Please enter a search term.")
		return m, nil
	}

	m.pending = true
	seq, searcher := m.seq, m.searcher
	return m, func() tea.Msg {
		out, err := searcher.Run(context.Background(), term)
		return searchDoneMsg{seq: seq, out: out, err: err}
	}
}

// reset empties the input and clears the panel. Bumping seq makes any
// in-flight search stale.
func (m Model) reset() Model {
	m.seq++
	m.pending = false
	m.clear()
	m.input.Reset()
	return m
}

func (m *Model) clear() {
	m.state = panelHidden
	m.results = nil
	m.suggestion = ""
}

func (m *Model) apply(out models.Outcome, err error) {
	m.clear()
	switch {
	case err != nil:
		m.state = panelError
	case out.Blank:
		m.state = panelHidden
	case len(out.Results) == 0:
		m.state = panelNoResults
		m.suggestion = out.Suggestion
	default:
		m.state = panelCards
		m.results = out.Results
	}
}
