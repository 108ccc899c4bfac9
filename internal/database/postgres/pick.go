package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/repository"
)

// PickRepository implements repository.Pick for PostgreSQL
type PickRepository struct {
	db *pgxpool.Pool
}

// NewPickRepository creates a new PickRepository
func NewPickRepository(db *pgxpool.Pool) *PickRepository {
	return &PickRepository{db: db}
}

var _ repository.Pick = (*PickRepository)(nil)

func scanPick(row pgx.Row) (*domain.UserPick, error) {
	var p domain.UserPick
	err := row.Scan(&p.ID, &p.ParticipantID, &p.CompetitionID, &p.LeagueID, &p.GameID,
		&p.PropPredictionID, &p.Pick, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// upsertSQL picks the statement whose conflict target matches the pick's context and subject
func upsertSQL(pick *domain.UserPick) (string, error) {
	switch {
	case pick.GameID != nil && pick.PropPredictionID == nil:
		if pick.LeagueID == nil {
			return SQLUpsertPublicGamePick, nil
		}
		return SQLUpsertLeagueGamePick, nil
	case pick.PropPredictionID != nil && pick.GameID == nil:
		if pick.LeagueID == nil {
			return SQLUpsertPublicPropPick, nil
		}
		return SQLUpsertLeaguePropPick, nil
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrValidation, ErrMsgInvalidPickSubject)
	}
}

// UpsertPick creates the pick or overwrites the existing one for the same key.
// ID, CreatedAt and UpdatedAt are filled in from the stored row.
func (r *PickRepository) UpsertPick(ctx context.Context, pick *domain.UserPick) (bool, error) {
	sql, err := upsertSQL(pick)
	if err != nil {
		return false, err
	}

	var inserted bool
	err = r.db.QueryRow(ctx, sql,
		pick.ParticipantID, pick.CompetitionID, pick.LeagueID, pick.GameID, pick.PropPredictionID, pick.Pick,
	).Scan(&pick.ID, &pick.CreatedAt, &pick.UpdatedAt, &inserted)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, fmt.Errorf("%w: pick references a missing competition, league, game or prop", domain.ErrNotFound)
		}
		return false, fmt.Errorf(ErrMsgQueryFailed, "upsert pick", err)
	}
	return inserted, nil
}

// ListPicksForParticipant returns one participant's picks in a single context
func (r *PickRepository) ListPicksForParticipant(ctx context.Context, participantID uuid.UUID, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error) {
	return collect(ctx, r.db, "list participant picks", scanPick, SQLListPicksForParticipant, participantID, competitionID, leagueID)
}

// ListPicksInContext returns every pick of a competition in a single context
func (r *PickRepository) ListPicksInContext(ctx context.Context, competitionID int64, leagueID *uuid.UUID) ([]domain.UserPick, error) {
	return collect(ctx, r.db, "list context picks", scanPick, SQLListPicksInContext, competitionID, leagueID)
}

// ListPublicParticipants returns everyone with at least one public pick in the competition
func (r *PickRepository) ListPublicParticipants(ctx context.Context, competitionID int64) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, SQLListPublicParticipants, competitionID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "list public participants", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "public participants", err)
	}
	return ids, nil
}
