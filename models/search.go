package models

import (
	"strings"

	"github.com/agext/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MatchKind tells which branch of the dispatcher produced a result
type MatchKind string

const (
	MatchNone      MatchKind = "none"
	MatchCountries MatchKind = "countries"
	MatchTemples   MatchKind = "temples"
	MatchBeaches   MatchKind = "beaches"
	MatchCountry   MatchKind = "country"
)

// categoryTerms maps the fixed category vocabulary to its branch.
// Lookup order does not matter since the keys are disjoint.
var categoryTerms = map[string]MatchKind{
	"countries": MatchCountries,
	"country":   MatchCountries,
	"temples":   MatchTemples,
	"temple":    MatchTemples,
	"beaches":   MatchBeaches,
	"beach":     MatchBeaches,
}

// suggestionThreshold is the minimum Levenshtein similarity (0..1)
// for a "did you mean" hint.
const suggestionThreshold = 0.7

var lowerCaser = cases.Lower(language.Und)

// SearchResult is the outcome of one dispatch over a dataset.
type SearchResult struct {
	Term       string        // term as entered
	Normalized string        // lowercased term
	Kind       MatchKind     // branch that matched
	Country    string        // matched country name for MatchCountry
	Results    []Destination // records to render, in source order
	Suggestion string        // closest known term when nothing matched
}

// IsBlankTerm reports whether term is empty or whitespace only
func IsBlankTerm(term string) bool {
	return strings.TrimSpace(term) == ""
}

// NormalizeTerm lowercases term for comparison. Whitespace is kept, so
// " japan" is not the same term as "japan".
func NormalizeTerm(term string) string {
	return lowerCaser.String(term)
}

// Search dispatches term against ds.
// Category keywords win over country names; a country name must match
// exactly, ignoring case. An unmatched term yields an empty result, never an error.
func Search(ds *Dataset, term string) SearchResult {
	res := SearchResult{Term: term, Normalized: NormalizeTerm(term), Kind: MatchNone}

	switch categoryTerms[res.Normalized] {
	case MatchCountries:
		res.Kind = MatchCountries
		res.Results = ds.AllCities()
		return res
	case MatchTemples:
		res.Kind = MatchTemples
		res.Results = ds.Temples
		return res
	case MatchBeaches:
		res.Kind = MatchBeaches
		res.Results = ds.Beaches
		return res
	}

	for _, c := range ds.Countries {
		if NormalizeTerm(c.Name) == res.Normalized {
			res.Kind = MatchCountry
			res.Country = c.Name
			res.Results = c.Cities
			return res
		}
	}

	res.Suggestion = suggest(ds, strings.TrimSpace(res.Normalized))
	return res
}

// suggest returns the known term closest to normalized, or "" when
// nothing is similar enough. Category keywords are offered in plural form.
func suggest(ds *Dataset, normalized string) string {
	if normalized == "" {
		return ""
	}

	candidates := []string{"countries", "temples", "beaches"}
	candidates = append(candidates, ds.CountryNames()...)

	best, bestScore := "", 0.0
	for _, cand := range candidates {
		score := levenshtein.Similarity(normalized, NormalizeTerm(cand), nil)
		if score > bestScore {
			best, bestScore = cand, score
		}
	}
	if bestScore < suggestionThreshold {
		return ""
	}
	return best
}
