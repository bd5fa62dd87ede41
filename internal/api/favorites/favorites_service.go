package favorites

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/local-wander/internal/types"
)

// Repository is the slice of the store the favorites feature needs.
type Repository interface {
	GetStop(ctx context.Context, id int) (types.Stop, error)
	GetStopsByIDs(ctx context.Context, ids []int) ([]types.Stop, error)
	GetFavorites(ctx context.Context, sessionID string) ([]int, error)
	AddFavorite(ctx context.Context, sessionID string, stopID int) error
	RemoveFavorite(ctx context.Context, sessionID string, stopID int) error
}

// Service defines the business logic contract for the per-session favorites
// list.
type Service interface {
	List(ctx context.Context, sessionID string) ([]types.Stop, error)
	Add(ctx context.Context, sessionID string, stopID int) ([]types.Stop, error)
	Remove(ctx context.Context, sessionID string, stopID int) ([]types.Stop, error)
}

var _ Service = (*ServiceImpl)(nil)

type ServiceImpl struct {
	logger *slog.Logger
	repo   Repository
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, repo: repo}
}

// List returns the session's favorited stops in insertion order. The join is
// lenient, like the itinerary one: IDs with no record are skipped.
func (s *ServiceImpl) List(ctx context.Context, sessionID string) ([]types.Stop, error) {
	ids, err := s.repo.GetFavorites(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("error fetching favorites: %w", err)
	}
	return s.repo.GetStopsByIDs(ctx, ids)
}

// Add favorites the given stop for the session and returns the updated list.
// Fails with types.ErrNotFound for an unknown stop; re-adding an existing
// favorite is a no-op.
func (s *ServiceImpl) Add(ctx context.Context, sessionID string, stopID int) ([]types.Stop, error) {
	ctx, span := otel.Tracer("FavoritesService").Start(ctx, "Add", trace.WithAttributes(
		attribute.Int("stop.id", stopID),
	))
	defer span.End()

	if _, err := s.repo.GetStop(ctx, stopID); err != nil {
		if errors.Is(err, types.ErrNotFound) {
			span.SetStatus(codes.Error, "Stop not found")
			return nil, err
		}
		span.RecordError(err)
		return nil, fmt.Errorf("error checking stop: %w", err)
	}

	if err := s.repo.AddFavorite(ctx, sessionID, stopID); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("error adding favorite: %w", err)
	}

	span.SetStatus(codes.Ok, "Favorite added")
	return s.List(ctx, sessionID)
}

// Remove unfavorites the given stop and returns the updated list. Removing a
// stop that is not in the list is a no-op.
func (s *ServiceImpl) Remove(ctx context.Context, sessionID string, stopID int) ([]types.Stop, error) {
	if err := s.repo.RemoveFavorite(ctx, sessionID, stopID); err != nil {
		return nil, fmt.Errorf("error removing favorite: %w", err)
	}
	return s.List(ctx, sessionID)
}
