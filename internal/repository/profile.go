package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/PlayPredix_Go/internal/domain"
)

// Profile defines the interface for participant display data
type Profile interface {
	UpsertProfile(ctx context.Context, profile *domain.Profile) error
	GetDisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)
}
