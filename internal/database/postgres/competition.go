package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PlayPredix_Go/internal/domain"
	"github.com/osse101/PlayPredix_Go/internal/repository"
)

// CompetitionRepository implements repository.Competition for PostgreSQL
type CompetitionRepository struct {
	db *pgxpool.Pool
}

// NewCompetitionRepository creates a new CompetitionRepository
func NewCompetitionRepository(db *pgxpool.Pool) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

var _ repository.Competition = (*CompetitionRepository)(nil)

func scanCompetition(row pgx.Row) (*domain.Competition, error) {
	var c domain.Competition
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.LockDate, &c.AllowDraws, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanTeam(row pgx.Row) (*domain.Team, error) {
	var t domain.Team
	if err := row.Scan(&t.ID, &t.Name, &t.LogoURL, &t.CreatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanGame(row pgx.Row) (*domain.Game, error) {
	var g domain.Game
	err := row.Scan(&g.ID, &g.CompetitionID, &g.TeamAID, &g.TeamBID, &g.StartTime, &g.Stage, &g.WinningTeamID, &g.IsDraw)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func scanProp(row pgx.Row) (*domain.PropPrediction, error) {
	var p domain.PropPrediction
	if err := row.Scan(&p.ID, &p.CompetitionID, &p.Question, &p.LockDate, &p.CorrectAnswer); err != nil {
		return nil, err
	}
	return &p, nil
}

// collect runs a query and scans every row with scan
func collect[T any](ctx context.Context, db *pgxpool.Pool, name string, scan func(pgx.Row) (*T, error), sql string, args ...any) ([]T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, name, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgScanFailed, name, err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf(ErrMsgQueryFailed, name, err)
	}
	return out, nil
}

// getOne runs a single-row query, mapping no rows to notFound
func getOne[T any](ctx context.Context, db *pgxpool.Pool, name string, notFound error, scan func(pgx.Row) (*T, error), sql string, args ...any) (*T, error) {
	v, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf(ErrMsgQueryFailed, name, err)
	}
	return v, nil
}

// execAffecting runs a statement and maps zero affected rows to notFound
func execAffecting(ctx context.Context, db *pgxpool.Pool, name string, notFound error, sql string, args ...any) error {
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, name, err)
	}
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// ListCompetitions returns every competition ordered by lock date
func (r *CompetitionRepository) ListCompetitions(ctx context.Context) ([]domain.Competition, error) {
	return collect(ctx, r.db, "list competitions", scanCompetition, SQLListCompetitions)
}

// GetCompetition returns domain.ErrCompetitionNotFound when the id is unknown
func (r *CompetitionRepository) GetCompetition(ctx context.Context, id int64) (*domain.Competition, error) {
	return getOne(ctx, r.db, "get competition", domain.ErrCompetitionNotFound, scanCompetition, SQLGetCompetition, id)
}

// CreateCompetition inserts c and fills in its ID and CreatedAt
func (r *CompetitionRepository) CreateCompetition(ctx context.Context, c *domain.Competition) error {
	err := r.db.QueryRow(ctx, SQLInsertCompetition, c.Name, c.Slug, c.Description, c.LockDate, c.AllowDraws).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, ConstraintCompetitionSlug) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateSlug, c.Slug)
		}
		return fmt.Errorf(ErrMsgQueryFailed, "insert competition", err)
	}
	return nil
}

// UpdateCompetition overwrites the editable fields. The slug never changes.
func (r *CompetitionRepository) UpdateCompetition(ctx context.Context, c *domain.Competition) error {
	return execAffecting(ctx, r.db, "update competition", domain.ErrCompetitionNotFound,
		SQLUpdateCompetition, c.ID, c.Name, c.Description, c.LockDate, c.AllowDraws)
}

// DeleteCompetition removes the competition. Games, props, leagues and picks cascade.
func (r *CompetitionRepository) DeleteCompetition(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db, "delete competition", domain.ErrCompetitionNotFound, SQLDeleteCompetition, id)
}

// SlugExists reports whether a competition already uses slug
func (r *CompetitionRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SQLSlugExists, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf(ErrMsgQueryFailed, "slug exists", err)
	}
	return exists, nil
}

// GetTeam returns domain.ErrTeamNotFound when the id is unknown
func (r *CompetitionRepository) GetTeam(ctx context.Context, id int64) (*domain.Team, error) {
	return getOne(ctx, r.db, "get team", domain.ErrTeamNotFound, scanTeam, SQLGetTeam, id)
}

// ListTeamsForCompetition returns the teams playing at least one game in the competition
func (r *CompetitionRepository) ListTeamsForCompetition(ctx context.Context, competitionID int64) ([]domain.Team, error) {
	return collect(ctx, r.db, "list teams", scanTeam, SQLListTeamsForCompetition, competitionID)
}

// CreateTeam inserts t and fills in its ID and CreatedAt
func (r *CompetitionRepository) CreateTeam(ctx context.Context, t *domain.Team) error {
	if err := r.db.QueryRow(ctx, SQLInsertTeam, t.Name, t.LogoURL).Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf(ErrMsgQueryFailed, "insert team", err)
	}
	return nil
}

// UpdateTeamLogo stores the public URL of a team's logo
func (r *CompetitionRepository) UpdateTeamLogo(ctx context.Context, id int64, logoURL string) error {
	return execAffecting(ctx, r.db, "update team logo", domain.ErrTeamNotFound, SQLUpdateTeamLogo, id, logoURL)
}

// DeleteTeam removes the team and every game it plays in
func (r *CompetitionRepository) DeleteTeam(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db, "delete team", domain.ErrTeamNotFound, SQLDeleteTeam, id)
}

// GetGame returns domain.ErrGameNotFound when the id is unknown
func (r *CompetitionRepository) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	return getOne(ctx, r.db, "get game", domain.ErrGameNotFound, scanGame, SQLGetGame, id)
}

// ListGames returns the games of a competition ordered by start time
func (r *CompetitionRepository) ListGames(ctx context.Context, competitionID int64) ([]domain.Game, error) {
	return collect(ctx, r.db, "list games", scanGame, SQLListGames, competitionID)
}

// CreateGame inserts g and fills in its ID
func (r *CompetitionRepository) CreateGame(ctx context.Context, g *domain.Game) error {
	err := r.db.QueryRow(ctx, SQLInsertGame, g.CompetitionID, g.TeamAID, g.TeamBID, g.StartTime, g.Stage).Scan(&g.ID)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: competition or team does not exist", domain.ErrNotFound)
		case isCheckViolation(err):
			return fmt.Errorf("%w: a team cannot play itself", domain.ErrValidation)
		}
		return fmt.Errorf(ErrMsgQueryFailed, "insert game", err)
	}
	return nil
}

// DeleteGame removes the game and its picks
func (r *CompetitionRepository) DeleteGame(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db, "delete game", domain.ErrGameNotFound, SQLDeleteGame, id)
}

// SetGameResult writes the winner and draw flag in one statement
func (r *CompetitionRepository) SetGameResult(ctx context.Context, id int64, winningTeamID *int64, isDraw bool) error {
	err := execAffecting(ctx, r.db, "set game result", domain.ErrGameNotFound, SQLSetGameResult, id, winningTeamID, isDraw)
	if err != nil && isCheckViolation(err) {
		return fmt.Errorf("%w: result violates game constraints", domain.ErrValidation)
	}
	return err
}

// ListGamesStartingBetween returns games whose start time falls in (from, to]
func (r *CompetitionRepository) ListGamesStartingBetween(ctx context.Context, from, to time.Time) ([]domain.Game, error) {
	return collect(ctx, r.db, "list starting games", scanGame, SQLListGamesStartingBetween, from, to)
}

// GetProp returns domain.ErrPropNotFound when the id is unknown
func (r *CompetitionRepository) GetProp(ctx context.Context, id int64) (*domain.PropPrediction, error) {
	return getOne(ctx, r.db, "get prop", domain.ErrPropNotFound, scanProp, SQLGetProp, id)
}

// ListProps returns the props of a competition ordered by lock date
func (r *CompetitionRepository) ListProps(ctx context.Context, competitionID int64) ([]domain.PropPrediction, error) {
	return collect(ctx, r.db, "list props", scanProp, SQLListProps, competitionID)
}

// CreateProp inserts p and fills in its ID
func (r *CompetitionRepository) CreateProp(ctx context.Context, p *domain.PropPrediction) error {
	err := r.db.QueryRow(ctx, SQLInsertProp, p.CompetitionID, p.Question, p.LockDate).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCompetitionNotFound
		}
		return fmt.Errorf(ErrMsgQueryFailed, "insert prop", err)
	}
	return nil
}

// DeleteProp removes the prop and its picks
func (r *CompetitionRepository) DeleteProp(ctx context.Context, id int64) error {
	return execAffecting(ctx, r.db, "delete prop", domain.ErrPropNotFound, SQLDeleteProp, id)
}

// SetPropAnswer stores the correct answer, nil clears it
func (r *CompetitionRepository) SetPropAnswer(ctx context.Context, id int64, answer *string) error {
	return execAffecting(ctx, r.db, "set prop answer", domain.ErrPropNotFound, SQLSetPropAnswer, id, answer)
}

// ListPropsLockingBetween returns props whose lock date falls in (from, to]
func (r *CompetitionRepository) ListPropsLockingBetween(ctx context.Context, from, to time.Time) ([]domain.PropPrediction, error) {
	return collect(ctx, r.db, "list locking props", scanProp, SQLListPropsLockingBetween, from, to)
}
