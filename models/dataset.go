package models

import (
	"encoding/json"
	"io"

	"github.com/rohanthewiz/serr"
)

// DatasetFileName is the published name of the dataset. The page refers to it
// relative to its own location.
const DatasetFileName = "travel_recommendation_api.json"

// Destination is one recommendation: a city, a temple or a beach.
// It is the record rendered as a card.
type Destination struct {
	Name        string `json:"name" msgpack:"name"`
	ImageURL    string `json:"imageUrl" msgpack:"imageUrl"`
	Description string `json:"description" msgpack:"description"`
}

// Country groups the recommended cities of one country, in source order.
type Country struct {
	Name   string        `json:"name" msgpack:"name"`
	Cities []Destination `json:"cities" msgpack:"cities"`
}

// Dataset mirrors the published JSON document.
// It is owned by the data source and treated as read-only by callers.
type Dataset struct {
	Countries []Country     `json:"countries"`
	Temples   []Destination `json:"temples"`
	Beaches   []Destination `json:"beaches"`
}

// DecodeDataset parses the dataset document from r
func DecodeDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, serr.Wrap(err, "failed to decode travel dataset")
	}
	return &ds, nil
}

// AllCities flattens every country's cities into one slice, keeping
// country order and then city order.
func (ds *Dataset) AllCities() []Destination {
	var out []Destination
	for _, c := range ds.Countries {
		out = append(out, c.Cities...)
	}
	return out
}

// CountryNames lists the country names in source order
func (ds *Dataset) CountryNames() []string {
	names := make([]string, 0, len(ds.Countries))
	for _, c := range ds.Countries {
		names = append(names, c.Name)
	}
	return names
}
