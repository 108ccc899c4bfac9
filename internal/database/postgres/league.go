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

// LeagueRepository implements repository.League for PostgreSQL
type LeagueRepository struct {
	db *pgxpool.Pool
}

// NewLeagueRepository creates a new LeagueRepository
func NewLeagueRepository(db *pgxpool.Pool) *LeagueRepository {
	return &LeagueRepository{db: db}
}

var _ repository.League = (*LeagueRepository)(nil)

func scanLeague(row pgx.Row) (*domain.League, error) {
	var l domain.League
	if err := row.Scan(&l.ID, &l.Name, &l.AdminID, &l.CompetitionID, &l.InviteCode, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

// CreateLeague inserts the league and the admin's membership in one transaction
func (r *LeagueRepository) CreateLeague(ctx context.Context, league *domain.League) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	err = tx.QueryRow(ctx, SQLInsertLeague,
		league.ID, league.Name, league.AdminID, league.CompetitionID, league.InviteCode,
	).Scan(&league.CreatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err, ConstraintInviteCode):
			return domain.ErrInviteCodeTaken
		case isForeignKeyViolation(err):
			return domain.ErrCompetitionNotFound
		}
		return fmt.Errorf(ErrMsgQueryFailed, "insert league", err)
	}

	if _, err := tx.Exec(ctx, SQLInsertLeagueMember, league.ID, league.AdminID); err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert league admin", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf(ErrMsgCommitTxFailed, err)
	}
	return nil
}

// GetLeague returns domain.ErrLeagueNotFound when the id is unknown
func (r *LeagueRepository) GetLeague(ctx context.Context, id uuid.UUID) (*domain.League, error) {
	return getOne(ctx, r.db, "get league", domain.ErrLeagueNotFound, scanLeague, SQLGetLeague, id)
}

// GetLeagueByInviteCode returns domain.ErrInviteCodeNotFound when no league uses code
func (r *LeagueRepository) GetLeagueByInviteCode(ctx context.Context, code string) (*domain.League, error) {
	return getOne(ctx, r.db, "get league by invite", domain.ErrInviteCodeNotFound, scanLeague, SQLGetLeagueByInviteCode, code)
}

// ListLeaguesForParticipant returns the leagues a participant belongs to
func (r *LeagueRepository) ListLeaguesForParticipant(ctx context.Context, participantID uuid.UUID) ([]domain.League, error) {
	return collect(ctx, r.db, "list participant leagues", scanLeague, SQLListLeaguesForParticipant, participantID)
}

// AddMember is idempotent and reports whether a new membership was created
func (r *LeagueRepository) AddMember(ctx context.Context, leagueID, participantID uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, SQLInsertLeagueMember, leagueID, participantID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, domain.ErrLeagueNotFound
		}
		return false, fmt.Errorf(ErrMsgQueryFailed, "insert league member", err)
	}
	return tag.RowsAffected() == 1, nil
}

// RemoveMember deletes a membership. The participant's league picks are kept.
func (r *LeagueRepository) RemoveMember(ctx context.Context, leagueID, participantID uuid.UUID) error {
	return execAffecting(ctx, r.db, "delete league member", domain.ErrNotLeagueMember, SQLDeleteLeagueMember, leagueID, participantID)
}

// IsMember treats the admin as a member
func (r *LeagueRepository) IsMember(ctx context.Context, leagueID, participantID uuid.UUID) (bool, error) {
	var member bool
	if err := r.db.QueryRow(ctx, SQLIsLeagueMember, leagueID, participantID).Scan(&member); err != nil {
		return false, fmt.Errorf(ErrMsgQueryFailed, "is league member", err)
	}
	return member, nil
}

// ListMemberIDs returns every member id including the admin
func (r *LeagueRepository) ListMemberIDs(ctx context.Context, leagueID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, SQLListLeagueMemberIDs, leagueID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, "list league member ids", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScanFailed, "league member ids", err)
	}
	return ids, nil
}

// ListMembers returns members with their display names in join order
func (r *LeagueRepository) ListMembers(ctx context.Context, leagueID uuid.UUID) ([]domain.LeagueMember, error) {
	return collect(ctx, r.db, "list league members", func(row pgx.Row) (*domain.LeagueMember, error) {
		m := domain.LeagueMember{LeagueID: leagueID}
		if err := row.Scan(&m.ParticipantID, &m.DisplayName, &m.IsAdmin, &m.JoinedAt); err != nil {
			return nil, err
		}
		return &m, nil
	}, SQLListLeagueMembers, leagueID)
}
