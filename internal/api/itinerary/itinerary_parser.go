package itinerary

import (
	"encoding/json"
	"fmt"

	"github.com/FACorreiaa/local-wander/internal/types"
)

// GeneratedStop is a stop as produced by the model, before validation and ID
// assignment.
type GeneratedStop struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	ImageURL           *string `json:"image_url"`
	WalkingTimeMinutes int     `json:"walking_time_minutes"`
}

type GeneratedItinerary struct {
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes"`
	Stops           []GeneratedStop `json:"stops"`
}

type GeneratedSource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// GeneratedResponse is the parsed provider payload. It only ever exists as
// the result of a successful parse, so downstream code never touches raw
// provider fields optimistically.
type GeneratedResponse struct {
	Itineraries []GeneratedItinerary `json:"itineraries"`
	Sources     []GeneratedSource    `json:"sources"`
}

// parseGeneratedResponse turns raw model text into a GeneratedResponse.
// An empty payload fails with types.ErrEmptyResponse; a JSON parse failure or
// a missing/empty itineraries field fails with types.ErrMalformedResponse.
func parseGeneratedResponse(raw string) (*GeneratedResponse, error) {
	if raw == "" {
		return nil, types.ErrEmptyResponse
	}

	var resp GeneratedResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		return nil, fmt.Errorf("%w: %s", types.ErrMalformedResponse, err.Error())
	}
	if len(resp.Itineraries) == 0 {
		return nil, types.ErrMalformedResponse
	}
	return &resp, nil
}
