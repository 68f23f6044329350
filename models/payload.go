package models

import (
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackContentType is the media type clients send in Accept to get
// msgpack-encoded search responses instead of JSON.
const MsgPackContentType = "application/msgpack"

// SearchPayload is the API representation of an Outcome.
// The same struct is used for JSON and msgpack so both carry identical fields.
type SearchPayload struct {
	SearchID   string        `json:"search_id" msgpack:"search_id"`
	Query      string        `json:"query" msgpack:"query"`
	Kind       MatchKind     `json:"kind" msgpack:"kind"`
	Country    string        `json:"country,omitempty" msgpack:"country,omitempty"`
	Results    []Destination `json:"results" msgpack:"results"`
	Suggestion string        `json:"suggestion,omitempty" msgpack:"suggestion,omitempty"`
}

// MsgPackEnvelope is the msgpack counterpart of the JSON API envelope
type MsgPackEnvelope struct {
	Success bool           `msgpack:"success"`
	Data    *SearchPayload `msgpack:"data,omitempty"`
	Error   string         `msgpack:"error,omitempty"`
}

// ToPayload converts an outcome for the API.
// Results is never nil so JSON clients always see an array.
func (o Outcome) ToPayload() SearchPayload {
	results := o.Results
	if results == nil {
		results = []Destination{}
	}

	return SearchPayload{
		SearchID:   o.SearchID,
		Query:      o.Term,
		Kind:       o.Kind,
		Country:    o.Country,
		Results:    results,
		Suggestion: o.Suggestion,
	}
}

// EncodeMsgPack encodes an API envelope to msgpack bytes
func EncodeMsgPack(env MsgPackEnvelope) ([]byte, error) {
	b, err := msgpack.Marshal(env)
	if err != nil {
		return nil, serr.Wrap(err, "failed to msgpack encode search response")
	}
	return b, nil
}

// DecodeMsgPack decodes msgpack bytes produced by EncodeMsgPack
func DecodeMsgPack(b []byte) (MsgPackEnvelope, error) {
	var env MsgPackEnvelope
	if err := msgpack.Unmarshal(b, &env); err != nil {
		return env, serr.Wrap(err, "failed to unmarshal msgpack search response")
	}
	return env, nil
}
