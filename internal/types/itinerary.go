package types

// Stop is a single point of interest within an itinerary.
type Stop struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	ImageURL           *string `json:"image_url"`
	WalkingTimeMinutes int     `json:"walking_time_minutes"`
}

// InsertStop is the validated payload for creating a Stop. The store assigns
// the ID.
type InsertStop struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	ImageURL           *string `json:"image_url"`
	WalkingTimeMinutes int     `json:"walking_time_minutes"`
}

// Itinerary is a themed sequence of stops tied to a search location. Stops are
// referenced by ID; they are always created before the itinerary that lists
// them.
type Itinerary struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
	Stops           []int  `json:"stops"`
}

type InsertItinerary struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
	Stops           []int  `json:"stops"`
}

// ItineraryWithStops is the denormalized response shape: the stored itinerary
// with full Stop records substituted for the bare ID list.
type ItineraryWithStops struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes"`
	Location        string `json:"location"`
	Stops           []Stop `json:"stops"`
}

// GroundingChunk is a citation/source record accompanying a generation result.
type GroundingChunk struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

type InsertGroundingChunk struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// GenerateItinerariesRequest is the body of POST /api/itineraries/generate.
// Location is free text: a city, neighborhood, address, or "lat,lng" pair.
type GenerateItinerariesRequest struct {
	Location string `json:"location"`
}

// GenerateItinerariesResponse is the 200 payload of the generate endpoint.
type GenerateItinerariesResponse struct {
	Itineraries []ItineraryWithStops `json:"itineraries"`
	Sources     []GroundingChunk     `json:"sources"`
}

// FavoritesResponse wraps the favorites endpoints' payload.
type FavoritesResponse struct {
	Favorites []Stop `json:"favorites"`
}

// AddFavoriteRequest is the body of POST /api/favorites.
type AddFavoriteRequest struct {
	StopID int `json:"stop_id"`
}
