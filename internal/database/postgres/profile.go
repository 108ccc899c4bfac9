package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/repository"
)

// ProfileRepository implements repository.Profile for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

var _ repository.Profile = (*ProfileRepository)(nil)

// UpsertProfile stores the display name, skipping the write when it is unchanged
func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile *domain.Profile) error {
	if _, err := r.db.Exec(ctx, SQLUpsertProfile, profile.ID, profile.DisplayName); err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "upsert profile", err)
	}
	return nil
}

// GetDisplayNames returns names for the ids that have a profile
func (r *ProfileRepository) GetDisplayNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	params := make([]string, len(ids))
	for i, id := range ids {
		params[i] = id.String()
	}

	rows, err := r.db.Query(ctx, SQLGetDisplayNames, params)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "get display names", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, "display name", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "get display names", err)
	}
	return names, nil
}
