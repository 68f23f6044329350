package models

import (
	"context"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// Outcome is what one user-triggered search produced.
// Blank means the term was empty: results are cleared and nothing is fetched.
type Outcome struct {
	SearchID string
	Blank    bool
	SearchResult
}

// Searcher runs the search flow: validate the term, fetch the dataset,
// dispatch and report.
type Searcher struct {
	Source DataSource
}

// NewSearcher returns a Searcher reading from src
func NewSearcher(src DataSource) *Searcher {
	return &Searcher{Source: src}
}

// Run performs one search for term.
// A fetch or parse failure is returned as an error with no partial result;
// callers show the generic error message. Zero matches is not an error.
func (s *Searcher) Run(ctx context.Context, term string) (Outcome, error) {
	out := Outcome{SearchID: uuid.New().String()}

	if IsBlankTerm(term) {
		logger.Info("Please enter a search term.", "search_id", out.SearchID)
		out.Blank = true
		out.SearchResult = SearchResult{Term: term, Kind: MatchNone}
		return out, nil
	}

	ds, err := s.Source.Fetch(ctx)
	if err != nil {
		err = serr.Wrap(err, "error fetching or processing data")
		logger.LogErr(err, "search failed", "search_id", out.SearchID, "source", s.Source.String())
		return out, err
	}

	out.SearchResult = Search(ds, term)

	label := out.Normalized
	if out.Kind == MatchCountry {
		label = out.Country
	}
	logger.Info(`Results for "`+label+`"`,
		"search_id", out.SearchID,
		"kind", string(out.Kind),
		"count", len(out.Results),
	)

	return out, nil
}
