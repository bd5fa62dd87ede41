package favorites

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/local-wander/internal/store"
	"github.com/FACorreiaa/local-wander/internal/types"
)

func setupServiceTest(t *testing.T) (*ServiceImpl, *store.MemoryStore, []types.Stop) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	memStore := store.New()

	ctx := context.Background()
	var stops []types.Stop
	for _, name := range []string{"Stop A", "Stop B", "Stop C"} {
		stop, err := memStore.CreateStop(ctx, types.InsertStop{
			Name: name, Category: "Park", Description: "fine",
		})
		require.NoError(t, err)
		stops = append(stops, stop)
	}

	return NewService(memStore, logger), memStore, stops
}

func TestServiceImpl_Add(t *testing.T) {
	ctx := context.Background()
	session := "session-a"

	t.Run("adds and returns full records in order", func(t *testing.T) {
		service, _, stops := setupServiceTest(t)

		_, err := service.Add(ctx, session, stops[1].ID)
		require.NoError(t, err)
		got, err := service.Add(ctx, session, stops[0].ID)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, stops[1], got[0])
		assert.Equal(t, stops[0], got[1])
	})

	t.Run("re-adding is a no-op", func(t *testing.T) {
		service, _, stops := setupServiceTest(t)

		_, err := service.Add(ctx, session, stops[2].ID)
		require.NoError(t, err)
		got, err := service.Add(ctx, session, stops[2].ID)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("unknown stop fails with ErrNotFound", func(t *testing.T) {
		service, _, _ := setupServiceTest(t)

		_, err := service.Add(ctx, session, 99)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestServiceImpl_Remove(t *testing.T) {
	ctx := context.Background()
	session := "session-a"

	t.Run("removes an existing favorite", func(t *testing.T) {
		service, _, stops := setupServiceTest(t)
		_, err := service.Add(ctx, session, stops[0].ID)
		require.NoError(t, err)
		_, err = service.Add(ctx, session, stops[1].ID)
		require.NoError(t, err)

		got, err := service.Remove(ctx, session, stops[0].ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, stops[1], got[0])
	})

	t.Run("removing an absent stop is a no-op", func(t *testing.T) {
		service, _, _ := setupServiceTest(t)
		got, err := service.Remove(ctx, session, 42)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestServiceImpl_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty for a fresh session", func(t *testing.T) {
		service, _, _ := setupServiceTest(t)
		got, err := service.List(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		service, _, stops := setupServiceTest(t)
		_, err := service.Add(ctx, "session-a", stops[0].ID)
		require.NoError(t, err)

		got, err := service.List(ctx, "session-b")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
