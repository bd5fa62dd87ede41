package store

import (
	"context"
	"sync"

	"github.com/FACorreiaa/local-wander/internal/types"
)

// MemoryStore is the process-lifetime database of entities. All IDs are
// assigned from per-entity monotonic counters starting at 1, and records are
// never mutated or deleted after creation. A single mutex serializes mutation
// so that counter increment and map insert form one atomic step under
// concurrent requests.
type MemoryStore struct {
	mu sync.Mutex

	users           map[int]types.User
	stops           map[int]types.Stop
	itineraries     map[int]types.Itinerary
	groundingChunks map[int]types.GroundingChunk

	// favorites maps a session ID to an ordered list of stop IDs.
	favorites map[string][]int

	nextUserID           int
	nextStopID           int
	nextItineraryID      int
	nextGroundingChunkID int
}

// New returns an empty MemoryStore. Construct one at process start and pass
// it by reference; tests get isolation from fresh instances.
func New() *MemoryStore {
	return &MemoryStore{
		users:                make(map[int]types.User),
		stops:                make(map[int]types.Stop),
		itineraries:          make(map[int]types.Itinerary),
		groundingChunks:      make(map[int]types.GroundingChunk),
		favorites:            make(map[string][]int),
		nextUserID:           1,
		nextStopID:           1,
		nextItineraryID:      1,
		nextGroundingChunkID: 1,
	}
}

// CreateStop assigns the next stop ID and inserts the record. The counter
// advances even if later operations in the same request fail; there is no
// rollback.
func (s *MemoryStore) CreateStop(_ context.Context, p types.InsertStop) (types.Stop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stop := types.Stop{
		ID:                 s.nextStopID,
		Name:               p.Name,
		Category:           p.Category,
		Description:        p.Description,
		ImageURL:           p.ImageURL,
		WalkingTimeMinutes: p.WalkingTimeMinutes,
	}
	s.nextStopID++
	s.stops[stop.ID] = stop
	return stop, nil
}

// GetStop returns the stop or types.ErrNotFound.
func (s *MemoryStore) GetStop(_ context.Context, id int) (types.Stop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stop, ok := s.stops[id]
	if !ok {
		return types.Stop{}, types.ErrNotFound
	}
	return stop, nil
}

// GetStopsByIDs returns the subsequence of existing stops matching ids,
// preserving input order. IDs with no matching record are skipped silently:
// the join is deliberately lenient, never an error.
func (s *MemoryStore) GetStopsByIDs(_ context.Context, ids []int) ([]types.Stop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stops := make([]types.Stop, 0, len(ids))
	for _, id := range ids {
		if stop, ok := s.stops[id]; ok {
			stops = append(stops, stop)
		}
	}
	return stops, nil
}

// CreateItinerary assigns the next itinerary ID and inserts the record. The
// stops slice is copied so later caller mutation cannot reach stored state.
func (s *MemoryStore) CreateItinerary(_ context.Context, p types.InsertItinerary) (types.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stops := make([]int, len(p.Stops))
	copy(stops, p.Stops)

	itinerary := types.Itinerary{
		ID:              s.nextItineraryID,
		Title:           p.Title,
		Description:     p.Description,
		DurationMinutes: p.DurationMinutes,
		Location:        p.Location,
		Stops:           stops,
	}
	s.nextItineraryID++
	s.itineraries[itinerary.ID] = itinerary
	return itinerary, nil
}

// GetItinerary returns the itinerary or types.ErrNotFound.
func (s *MemoryStore) GetItinerary(_ context.Context, id int) (types.Itinerary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itinerary, ok := s.itineraries[id]
	if !ok {
		return types.Itinerary{}, types.ErrNotFound
	}
	return itinerary, nil
}

// CreateGroundingChunk assigns the next source ID and inserts the record.
func (s *MemoryStore) CreateGroundingChunk(_ context.Context, p types.InsertGroundingChunk) (types.GroundingChunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.createGroundingChunkLocked(p), nil
}

// CreateGroundingChunks inserts the given sources in order under a single
// critical section.
func (s *MemoryStore) CreateGroundingChunks(_ context.Context, ps []types.InsertGroundingChunk) ([]types.GroundingChunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chunks := make([]types.GroundingChunk, 0, len(ps))
	for _, p := range ps {
		chunks = append(chunks, s.createGroundingChunkLocked(p))
	}
	return chunks, nil
}

func (s *MemoryStore) createGroundingChunkLocked(p types.InsertGroundingChunk) types.GroundingChunk {
	chunk := types.GroundingChunk{
		ID:      s.nextGroundingChunkID,
		Title:   p.Title,
		URL:     p.URL,
		Snippet: p.Snippet,
	}
	s.nextGroundingChunkID++
	s.groundingChunks[chunk.ID] = chunk
	return chunk
}

// GetGroundingChunk returns the source record or types.ErrNotFound.
func (s *MemoryStore) GetGroundingChunk(_ context.Context, id int) (types.GroundingChunk, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	chunk, ok := s.groundingChunks[id]
	if !ok {
		return types.GroundingChunk{}, types.ErrNotFound
	}
	return chunk, nil
}

// CreateUser assigns the next user ID and inserts the record. Usernames are
// unique; a duplicate fails with types.ErrUsernameTaken.
func (s *MemoryStore) CreateUser(_ context.Context, p types.InsertUser) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == p.Username {
			return types.User{}, types.ErrUsernameTaken
		}
	}

	user := types.User{
		ID:       s.nextUserID,
		Username: p.Username,
		Password: p.Password,
	}
	s.nextUserID++
	s.users[user.ID] = user
	return user, nil
}

// GetUser returns the user or types.ErrNotFound.
func (s *MemoryStore) GetUser(_ context.Context, id int) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return types.User{}, types.ErrNotFound
	}
	return user, nil
}

// GetUserByUsername returns the user with the given username or
// types.ErrNotFound.
func (s *MemoryStore) GetUserByUsername(_ context.Context, username string) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return types.User{}, types.ErrNotFound
}

// GetFavorites returns the ordered stop IDs favorited by the given session.
func (s *MemoryStore) GetFavorites(_ context.Context, sessionID string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.favorites[sessionID]
	out := make([]int, len(ids))
	copy(out, ids)
	return out, nil
}

// AddFavorite appends stopID to the session's favorites. Adding a stop that
// is already favorited is a no-op.
func (s *MemoryStore) AddFavorite(_ context.Context, sessionID string, stopID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.favorites[sessionID] {
		if id == stopID {
			return nil
		}
	}
	s.favorites[sessionID] = append(s.favorites[sessionID], stopID)
	return nil
}

// RemoveFavorite removes stopID from the session's favorites. Removing a stop
// that is not in the list is a no-op.
func (s *MemoryStore) RemoveFavorite(_ context.Context, sessionID string, stopID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.favorites[sessionID]
	for i, id := range ids {
		if id == stopID {
			s.favorites[sessionID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}
