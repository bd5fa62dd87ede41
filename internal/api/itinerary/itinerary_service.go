package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"

	"github.com/FACorreiaa/local-wander/app/observability/metrics"
	"github.com/FACorreiaa/local-wander/internal/types"
)

// Generator is the boundary to the generative-AI provider.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

// Repository is the slice of the store the itinerary pipeline needs.
type Repository interface {
	CreateStop(ctx context.Context, p types.InsertStop) (types.Stop, error)
	GetStopsByIDs(ctx context.Context, ids []int) ([]types.Stop, error)
	CreateItinerary(ctx context.Context, p types.InsertItinerary) (types.Itinerary, error)
	GetItinerary(ctx context.Context, id int) (types.Itinerary, error)
	CreateGroundingChunks(ctx context.Context, ps []types.InsertGroundingChunk) ([]types.GroundingChunk, error)
}

// Service defines the business logic contract for itinerary operations.
type Service interface {
	GenerateItineraries(ctx context.Context, location string) (*types.GenerateItinerariesResponse, error)
	GetItinerary(ctx context.Context, id int) (*types.ItineraryWithStops, error)
}

// Ensure implementation satisfies the interface
var _ Service = (*ServiceImpl)(nil)

// ServiceImpl provides the implementation for Service.
type ServiceImpl struct {
	logger      *slog.Logger
	generator   Generator
	repo        Repository
	cache       *cache.Cache
	group       singleflight.Group
	temperature float32
}

// NewService creates the itinerary service. Parsed provider results are
// cached per location for cacheTTL and concurrent requests for the same
// location share one provider call; persistence and ID assignment still
// happen on every request.
func NewService(generator Generator, repo Repository, cacheTTL time.Duration, temperature float32, logger *slog.Logger) *ServiceImpl {
	metrics.InitAppMetrics()
	return &ServiceImpl{
		logger:      logger,
		generator:   generator,
		repo:        repo,
		cache:       cache.New(cacheTTL, 10*time.Minute),
		temperature: temperature,
	}
}

// GenerateItineraries runs the full pipeline for a location: provider call,
// parse, per-record validation and persistence, then response assembly.
//
// Persistence is not transactional. A validation failure partway through
// aborts the request but leaves already-stored records in place; the store
// counters have advanced and nothing is rolled back.
func (s *ServiceImpl) GenerateItineraries(ctx context.Context, location string) (*types.GenerateItinerariesResponse, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItineraries", trace.WithAttributes(
		attribute.String("location", location),
	))
	defer span.End()

	start := time.Now()
	m := metrics.Get()
	m.GenerationRequestsTotal.Add(ctx, 1)

	generated, err := s.generate(ctx, location)
	if err != nil {
		m.GenerationFailuresTotal.Add(ctx, 1)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Generation failed")
		return nil, err
	}

	sources, err := s.persistSources(ctx, generated.Sources)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to persist sources")
		return nil, err
	}

	itineraries := make([]types.ItineraryWithStops, 0, len(generated.Itineraries))
	for _, gen := range generated.Itineraries {
		stored, err := s.persistItinerary(ctx, location, gen)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Failed to persist itinerary")
			return nil, err
		}
		itineraries = append(itineraries, *stored)
	}

	m.GenerationDurationSeconds.Record(ctx, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("itineraries.count", len(itineraries)),
		attribute.Int("sources.count", len(sources)),
	)
	span.SetStatus(codes.Ok, "Itineraries generated successfully")

	s.logger.InfoContext(ctx, "Generated itineraries",
		slog.String("location", location),
		slog.Int("itineraries", len(itineraries)),
		slog.Int("sources", len(sources)),
		slog.Duration("duration", time.Since(start)),
	)

	return &types.GenerateItinerariesResponse{
		Itineraries: itineraries,
		Sources:     sources,
	}, nil
}

// generate returns the parsed provider result for a location, consulting the
// TTL cache first and collapsing concurrent identical locations onto a single
// provider call.
func (s *ServiceImpl) generate(ctx context.Context, location string) (*GeneratedResponse, error) {
	if cached, found := s.cache.Get(location); found {
		s.logger.DebugContext(ctx, "Provider result served from cache", slog.String("location", location))
		return cached.(*GeneratedResponse), nil
	}

	result, err, _ := s.group.Do(location, func() (interface{}, error) {
		config := &genai.GenerateContentConfig{
			Temperature:       genai.Ptr[float32](s.temperature),
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
			ResponseMIMEType:  "application/json",
			ResponseSchema:    itineraryResponseSchema(),
		}

		raw, err := s.generator.GenerateContent(ctx, getItinerariesPrompt(location), config)
		if err != nil {
			if errors.Is(err, types.ErrInvalidAPIKey) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s", types.ErrGenerationFailed, err.Error())
		}

		parsed, err := parseGeneratedResponse(raw)
		if err != nil {
			s.logger.WarnContext(ctx, "Provider returned unusable payload",
				slog.String("location", location),
				slog.Any("error", err),
			)
			return nil, fmt.Errorf("%w: %s", types.ErrGenerationFailed, err.Error())
		}

		s.cache.SetDefault(location, parsed)
		return parsed, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*GeneratedResponse), nil
}

func (s *ServiceImpl) persistSources(ctx context.Context, generated []GeneratedSource) ([]types.GroundingChunk, error) {
	if len(generated) == 0 {
		return []types.GroundingChunk{}, nil
	}

	inserts := lo.Map(generated, func(src GeneratedSource, _ int) types.InsertGroundingChunk {
		return types.InsertGroundingChunk{
			Title:   src.Title,
			URL:     src.URL,
			Snippet: src.Snippet,
		}
	})
	for i, insert := range inserts {
		validated, err := types.ValidateInsertGroundingChunk(insert)
		if err != nil {
			return nil, err
		}
		inserts[i] = validated
	}

	chunks, err := s.repo.CreateGroundingChunks(ctx, inserts)
	if err != nil {
		return nil, err
	}
	metrics.Get().StoredEntitiesTotal.Add(ctx, int64(len(chunks)), metric.WithAttributes(attribute.String("entity", "grounding_chunk")))
	return chunks, nil
}

// persistItinerary stores an itinerary's stops in generated order, then the
// itinerary record referencing the assigned stop IDs, and returns the
// denormalized record.
func (s *ServiceImpl) persistItinerary(ctx context.Context, location string, gen GeneratedItinerary) (*types.ItineraryWithStops, error) {
	m := metrics.Get()

	stopIDs := make([]int, 0, len(gen.Stops))
	for _, genStop := range gen.Stops {
		validated, err := types.ValidateInsertStop(types.InsertStop{
			Name:               genStop.Name,
			Category:           genStop.Category,
			Description:        genStop.Description,
			ImageURL:           genStop.ImageURL,
			WalkingTimeMinutes: genStop.WalkingTimeMinutes,
		})
		if err != nil {
			return nil, err
		}
		stored, err := s.repo.CreateStop(ctx, validated)
		if err != nil {
			return nil, err
		}
		stopIDs = append(stopIDs, stored.ID)
	}
	m.StoredEntitiesTotal.Add(ctx, int64(len(stopIDs)), metric.WithAttributes(attribute.String("entity", "stop")))

	validated, err := types.ValidateInsertItinerary(types.InsertItinerary{
		Title:           gen.Title,
		Description:     gen.Description,
		DurationMinutes: gen.DurationMinutes,
		Location:        location,
		Stops:           stopIDs,
	})
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.CreateItinerary(ctx, validated)
	if err != nil {
		return nil, err
	}
	m.StoredEntitiesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("entity", "itinerary")))

	fullStops, err := s.repo.GetStopsByIDs(ctx, stored.Stops)
	if err != nil {
		return nil, err
	}

	result := withStops(stored, fullStops)
	return &result, nil
}

// GetItinerary rehydrates a stored itinerary with its full stop records.
// Fails with types.ErrNotFound for an unknown ID.
func (s *ServiceImpl) GetItinerary(ctx context.Context, id int) (*types.ItineraryWithStops, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GetItinerary", trace.WithAttributes(
		attribute.Int("itinerary.id", id),
	))
	defer span.End()

	stored, err := s.repo.GetItinerary(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "Itinerary not found")
			return nil, err
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch itinerary")
		return nil, fmt.Errorf("error fetching itinerary: %w", err)
	}

	fullStops, err := s.repo.GetStopsByIDs(ctx, stored.Stops)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch stops")
		return nil, fmt.Errorf("error fetching stops: %w", err)
	}

	span.SetStatus(codes.Ok, "Itinerary fetched successfully")
	result := withStops(stored, fullStops)
	return &result, nil
}

func withStops(it types.Itinerary, stops []types.Stop) types.ItineraryWithStops {
	return types.ItineraryWithStops{
		ID:              it.ID,
		Title:           it.Title,
		Description:     it.Description,
		DurationMinutes: it.DurationMinutes,
		Location:        it.Location,
		Stops:           stops,
	}
}
