package favorites

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/FACorreiaa/local-wander/internal/api"
	"github.com/FACorreiaa/local-wander/internal/types"
)

// SessionCookieName carries the anonymous session identifier the favorites
// list is keyed by.
const SessionCookieName = "lw_session"

type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// ListFavorites handles GET /api/favorites. A request without a session
// cookie has no favorites yet; no cookie is created on reads.
func (h *Handler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFromRequest(r)
	if !ok {
		api.WriteJSONResponse(w, r, http.StatusOK, types.FavoritesResponse{Favorites: []types.Stop{}})
		return
	}

	stops, err := h.service.List(r.Context(), sessionID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error listing favorites", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, types.FavoritesResponse{Favorites: stops})
}

// AddFavorite handles POST /api/favorites.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	var req types.AddFavoriteRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil || req.StopID <= 0 {
		api.ErrorResponse(w, r, http.StatusBadRequest, "stop_id is required")
		return
	}

	sessionID := h.ensureSession(w, r)
	stops, err := h.service.Add(r.Context(), sessionID, req.StopID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			api.ErrorResponse(w, r, http.StatusNotFound, "Stop not found")
			return
		}
		h.logger.ErrorContext(r.Context(), "Error adding favorite",
			slog.Int("stop_id", req.StopID),
			slog.Any("error", err),
		)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, types.FavoritesResponse{Favorites: stops})
}

// RemoveFavorite handles DELETE /api/favorites/{stopID}.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	stopID, err := strconv.Atoi(chi.URLParam(r, "stopID"))
	if err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid stop ID")
		return
	}

	sessionID := h.ensureSession(w, r)
	stops, err := h.service.Remove(r.Context(), sessionID, stopID)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Error removing favorite",
			slog.Int("stop_id", stopID),
			slog.Any("error", err),
		)
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Internal server error")
		return
	}
	api.WriteJSONResponse(w, r, http.StatusOK, types.FavoritesResponse{Favorites: stops})
}

func sessionFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// ensureSession returns the request's session ID, minting one and setting the
// cookie on first write.
func (h *Handler) ensureSession(w http.ResponseWriter, r *http.Request) string {
	if sessionID, ok := sessionFromRequest(r); ok {
		return sessionID
	}
	sessionID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}
