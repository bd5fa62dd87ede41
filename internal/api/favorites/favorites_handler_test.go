package favorites

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/local-wander/internal/store"
	"github.com/FACorreiaa/local-wander/internal/types"
)

func setupHandlerTest(t *testing.T) (*chi.Mux, []types.Stop) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memStore := store.New()

	ctx := context.Background()
	var stops []types.Stop
	for _, name := range []string{"Stop A", "Stop B"} {
		stop, err := memStore.CreateStop(ctx, types.InsertStop{
			Name: name, Category: "Park", Description: "fine",
		})
		require.NoError(t, err)
		stops = append(stops, stop)
	}

	handler := NewHandler(NewService(memStore, logger), logger)
	r := chi.NewRouter()
	r.Get("/api/favorites", handler.ListFavorites)
	r.Post("/api/favorites", handler.AddFavorite)
	r.Delete("/api/favorites/{stopID}", handler.RemoveFavorite)
	return r, stops
}

func TestHandler_Favorites(t *testing.T) {
	t.Run("list without a session is empty and sets no cookie", func(t *testing.T) {
		router, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"favorites": []}`, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("first add mints a session cookie", func(t *testing.T) {
		router, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"stop_id": 1}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, SessionCookieName, cookies[0].Name)
		assert.NotEmpty(t, cookies[0].Value)
	})

	t.Run("add, list and remove round trip", func(t *testing.T) {
		router, stops := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"stop_id": 1}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		session := rec.Result().Cookies()[0]

		req = httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"stop_id": 2}`))
		req.AddCookie(session)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		req = httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		req.AddCookie(session)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var listed types.FavoritesResponse
		require.NoError(t, decodeBody(rec, &listed))
		require.Len(t, listed.Favorites, 2)
		assert.Equal(t, stops[0].Name, listed.Favorites[0].Name)
		assert.Equal(t, stops[1].Name, listed.Favorites[1].Name)

		req = httptest.NewRequest(http.MethodDelete, "/api/favorites/1", nil)
		req.AddCookie(session)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		require.NoError(t, decodeBody(rec, &listed))
		require.Len(t, listed.Favorites, 1)
		assert.Equal(t, stops[1].Name, listed.Favorites[0].Name)
	})

	t.Run("missing stop_id", func(t *testing.T) {
		router, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "stop_id is required"}`, rec.Body.String())
	})

	t.Run("unknown stop", func(t *testing.T) {
		router, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodPost, "/api/favorites", strings.NewReader(`{"stop_id": 99}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error": "Stop not found"}`, rec.Body.String())
	})

	t.Run("unparseable stop ID on delete", func(t *testing.T) {
		router, _ := setupHandlerTest(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/favorites/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error": "Invalid stop ID"}`, rec.Body.String())
	})
}

func decodeBody(rec *httptest.ResponseRecorder, dst any) error {
	return json.Unmarshal(rec.Body.Bytes(), dst)
}
