package itinerary

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/FACorreiaa/local-wander/internal/api"
	"github.com/FACorreiaa/local-wander/internal/types"
)

// Handler exposes the itinerary endpoints. The credential getter is consulted
// before every generation so a missing key is a configuration error surfaced
// without ever invoking the provider.
type Handler struct {
	service Service
	apiKey  func() string
	logger  *slog.Logger
}

func NewHandler(service Service, apiKey func() string, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		apiKey:  apiKey,
		logger:  logger,
	}
}

// GenerateItineraries handles POST /api/itineraries/generate.
func (h *Handler) GenerateItineraries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req types.GenerateItinerariesRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil || req.Location == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Location is required")
		return
	}

	if h.apiKey() == "" {
		h.logger.ErrorContext(ctx, "Generation requested without a configured Gemini API key")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "API_KEY_MISSING")
		return
	}

	resp, err := h.service.GenerateItineraries(ctx, req.Location)
	if err != nil {
		h.logger.ErrorContext(ctx, "Error generating itineraries",
			slog.String("location", req.Location),
			slog.Any("error", err),
		)
		switch {
		case errors.Is(err, types.ErrAPIKeyMissing):
			api.ErrorResponse(w, r, http.StatusInternalServerError, "API_KEY_MISSING")
		case errors.Is(err, types.ErrInvalidAPIKey):
			api.ErrorResponse(w, r, http.StatusInternalServerError, "INVALID_API_KEY")
		case errors.Is(err, types.ErrGenerationFailed):
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to generate itineraries")
		default:
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
}

// GetItinerary handles GET /api/itineraries/{id}. An unparseable ID is
// indistinguishable from an unknown one: both are a clean 404.
func (h *Handler) GetItinerary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
		return
	}

	result, err := h.service.GetItinerary(ctx, id)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Itinerary not found")
			return
		}
		h.logger.ErrorContext(ctx, "Error fetching itinerary",
			slog.Int("itinerary_id", id),
			slog.Any("error", err),
		)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, result)
}
