package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/local-wander/internal/api/favorites"
	"github.com/FACorreiaa/local-wander/internal/api/itinerary"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler *itinerary.Handler
	FavoritesHandler *favorites.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/itineraries", func(r chi.Router) {
			r.Post("/generate", cfg.ItineraryHandler.GenerateItineraries)
			r.Get("/{id}", cfg.ItineraryHandler.GetItinerary)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Get("/", cfg.FavoritesHandler.ListFavorites)
			r.Post("/", cfg.FavoritesHandler.AddFavorite)
			r.Delete("/{stopID}", cfg.FavoritesHandler.RemoveFavorite)
		})
	})

	return r
}
