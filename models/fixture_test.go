package models_test

import (
	"encoding/json"
	"testing"

	"travelrec/models"
)

// fixtureJSON is a small dataset in the published document shape
const fixtureJSON = `{
  "countries": [
    {"id": 1, "name": "Australia", "cities": [
      {"name": "Sydney, Australia", "imageUrl": "sydney.jpg", "description": "Harbour city."},
      {"name": "Melbourne, Australia", "imageUrl": "melbourne.jpg", "description": "Laneways and coffee."}
    ]},
    {"id": 2, "name": "Japan", "cities": [
      {"name": "Tokyo, Japan", "imageUrl": "tokyo.jpg", "description": "Neon and shrines."},
      {"name": "Kyoto, Japan", "imageUrl": "kyoto.jpg", "description": "Old capital."}
    ]},
    {"id": 3, "name": "Brazil", "cities": [
      {"name": "Rio de Janeiro, Brazil", "imageUrl": "rio.jpg", "description": "Carnival."}
    ]}
  ],
  "temples": [
    {"id": 1, "name": "Angkor Wat, Cambodia", "imageUrl": "angkor.jpg", "description": "Largest religious monument."},
    {"id": 2, "name": "Taj Mahal, India", "imageUrl": "taj.jpg", "description": "Ivory-white marble mausoleum."}
  ],
  "beaches": [
    {"id": 1, "name": "Bora Bora, French Polynesia", "imageUrl": "bora.jpg", "description": "Lagoon."},
    {"id": 2, "name": "Copacabana Beach, Brazil", "imageUrl": "copa.jpg", "description": "Famous promenade."}
  ]
}`

func loadFixture(t *testing.T) *models.Dataset {
	t.Helper()

	var ds models.Dataset
	if err := json.Unmarshal([]byte(fixtureJSON), &ds); err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return &ds
}
