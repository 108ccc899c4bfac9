package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) GetDisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

func TestNameCache_CachesLoadedNames(t *testing.T) {
	ctx := context.Background()
	ana, anon := uuid.New(), uuid.New()
	reader := new(MockProfileStore)
	reader.On("GetDisplayNames", ctx, []uuid.UUID{ana, anon}).
		Return(map[uuid.UUID]string{ana: "Ana"}, nil).Once()
	// The placeholder is not cached, so the second call asks again for anon only
	reader.On("GetDisplayNames", ctx, []uuid.UUID{anon}).
		Return(map[uuid.UUID]string{}, nil).Once()

	cache := NewNameCache(reader, 10, time.Minute)

	names, err := cache.Resolve(ctx, []uuid.UUID{ana, anon})
	require.NoError(t, err)
	assert.Equal(t, "Ana", names[ana])
	assert.Equal(t, PlaceholderName(anon), names[anon])

	names, err = cache.Resolve(ctx, []uuid.UUID{ana, anon})
	require.NoError(t, err)
	assert.Equal(t, "Ana", names[ana])

	reader.AssertExpectations(t)
}

func TestNameCache_Invalidate(t *testing.T) {
	ctx := context.Background()
	ana := uuid.New()
	reader := new(MockProfileStore)
	reader.On("GetDisplayNames", ctx, []uuid.UUID{ana}).Return(map[uuid.UUID]string{ana: "Ana"}, nil).Once()
	reader.On("GetDisplayNames", ctx, []uuid.UUID{ana}).Return(map[uuid.UUID]string{ana: "Ana B."}, nil).Once()

	cache := NewNameCache(reader, 10, time.Minute)
	_, err := cache.Resolve(ctx, []uuid.UUID{ana})
	require.NoError(t, err)

	cache.Invalidate(ana)
	names, err := cache.Resolve(ctx, []uuid.UUID{ana})
	require.NoError(t, err)
	assert.Equal(t, "Ana B.", names[ana])
	reader.AssertExpectations(t)
}

func TestNameCache_LoadError(t *testing.T) {
	ctx := context.Background()
	reader := new(MockProfileStore)
	reader.On("GetDisplayNames", ctx, mock.Anything).Return(nil, errors.New("db down"))

	_, err := NewNameCache(reader, 10, time.Minute).Resolve(ctx, []uuid.UUID{uuid.New()})
	assert.ErrorContains(t, err, "db down")
}

func TestPlaceholderName(t *testing.T) {
	id := uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	assert.Equal(t, "Player 1b4e28ba", PlaceholderName(id))
}

func TestNameCache_Remember(t *testing.T) {
	ctx := context.Background()
	ana := uuid.New()
	store := new(MockProfileStore)
	store.On("UpsertProfile", ctx, &domain.Profile{ID: ana, DisplayName: "Ana"}).Return(nil).Once()

	cache := NewNameCache(store, 10, time.Minute)
	require.NoError(t, cache.Remember(ctx, ana, "Ana"))
	// Same name again is served from cache without a write
	require.NoError(t, cache.Remember(ctx, ana, "Ana"))
	require.NoError(t, cache.Remember(ctx, ana, ""))

	names, err := cache.Resolve(ctx, []uuid.UUID{ana})
	require.NoError(t, err)
	assert.Equal(t, "Ana", names[ana])
	store.AssertExpectations(t)
}
