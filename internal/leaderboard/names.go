package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/metrics"
)

// ProfileStore loads and stores display names for participants
type ProfileStore interface {
	UpsertProfile(ctx context.Context, profile *domain.Profile) error
	GetDisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}

// NameCache resolves participant display names through an expiring LRU
type NameCache struct {
	profiles ProfileStore
	cache    *expirable.LRU[uuid.UUID, string]
}

// NewNameCache creates a cache holding up to size names for ttl
func NewNameCache(profiles ProfileStore, size int, ttl time.Duration) *NameCache {
	if size <= 0 {
		size = DefaultNameCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultNameCacheTTL
	}
	return &NameCache{
		profiles: profiles,
		cache:    expirable.NewLRU[uuid.UUID, string](size, nil, ttl),
	}
}

// Resolve returns a name for every id. Participants without a profile get a
// generated placeholder which is not cached.
func (c *NameCache) Resolve(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	var missing []uuid.UUID
	for _, id := range ids {
		if name, ok := c.cache.Get(id); ok {
			names[id] = name
			continue
		}
		missing = append(missing, id)
	}
	metrics.ProfileCacheHits.Add(float64(len(ids) - len(missing)))

	if len(missing) == 0 {
		return names, nil
	}
	metrics.ProfileCacheMisses.Add(float64(len(missing)))

	loaded, err := c.profiles.GetDisplayNames(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to load display names: %w", err)
	}
	for _, id := range missing {
		if name, ok := loaded[id]; ok && name != "" {
			c.cache.Add(id, name)
			names[id] = name
			continue
		}
		names[id] = PlaceholderName(id)
	}
	return names, nil
}

// Remember stores the name the identity provider reported for a participant.
// Unchanged names cost no write.
func (c *NameCache) Remember(ctx context.Context, id uuid.UUID, name string) error {
	if name == "" {
		return nil
	}
	if cached, ok := c.cache.Get(id); ok && cached == name {
		return nil
	}
	if err := c.profiles.UpsertProfile(ctx, &domain.Profile{ID: id, DisplayName: name}); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	c.cache.Add(id, name)
	return nil
}

// Invalidate drops a cached name, e.g. after the participant renamed themselves
func (c *NameCache) Invalidate(id uuid.UUID) {
	c.cache.Remove(id)
}

// PlaceholderName is shown for participants that never stored a profile
func PlaceholderName(id uuid.UUID) string {
	return PlaceholderPrefix + id.String()[:8]
}
